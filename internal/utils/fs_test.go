package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/quantmind-br/viteassets/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS_Resolve(t *testing.T) {
	root := t.TempDir()
	dist := filepath.Join(root, "dist")
	require.NoError(t, os.MkdirAll(dist, 0755))
	manifestPath := filepath.Join(dist, "manifest.json")
	require.NoError(t, os.WriteFile(manifestPath, []byte("{}"), 0644))

	fs := NewLocalFS(root)

	tests := []struct {
		name string
		ref  string
	}{
		{"absolute path", manifestPath},
		{"relative to root", "dist/manifest.json"},
		{"dot relative", "./dist/manifest.json"},
		{"uncleaned", "dist/../dist/./manifest.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := fs.Resolve(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, manifestPath, resolved)
		})
	}
}

func TestLocalFS_Resolve_Errors(t *testing.T) {
	root := t.TempDir()
	fs := NewLocalFS(root)

	tests := []struct {
		name     string
		ref      string
		resolved string
	}{
		{"empty reference", "", ""},
		{"blank reference", "   ", ""},
		{"missing file", "dist/manifest123.json", filepath.Join(root, "dist", "manifest123.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := fs.Resolve(tt.ref)

			assert.Empty(t, resolved)
			assert.ErrorIs(t, err, domain.ErrResolution)

			var resErr *domain.ResolutionError
			require.True(t, errors.As(err, &resErr))
			assert.Equal(t, tt.ref, resErr.Reference)
			assert.Equal(t, tt.resolved, resErr.Resolved)
		})
	}
}

func TestLocalFS_Resolve_WithoutRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	resolved, err := NewLocalFS("").Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
}

func TestLocalFS_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.css")
	require.NoError(t, os.WriteFile(path, []byte(".test {color: #000;}\n"), 0644))

	fs := NewLocalFS(dir)
	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ".test {color: #000;}\n", string(data))

	_, err = fs.ReadFile(filepath.Join(dir, "missing.css"))
	assert.Error(t, err)
}

func TestLocalFS_WebPath(t *testing.T) {
	fs := NewLocalFS("/var/www/public")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"below root", "/var/www/public/dist/assets/Main.css", "/dist/assets/Main.css"},
		{"outside root", "/opt/build/assets/Main.css", "/opt/build/assets/Main.css"},
		{"sibling prefix", "/var/www/public2/app.js", "/var/www/public2/app.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fs.WebPath(tt.input))
		})
	}

	assert.Equal(t, "/abs/file.js", NewLocalFS("").WebPath("/abs/file.js"))
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	t.Run("creates directory", func(t *testing.T) {
		tempDir := t.TempDir()
		testPath := filepath.Join(tempDir, "subdir", "file.txt")

		err := EnsureDir(testPath)
		require.NoError(t, err)

		// Check that the directory was created
		info, err := os.Stat(filepath.Dir(testPath))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("existing directory", func(t *testing.T) {
		tempDir := t.TempDir()
		testPath := filepath.Join(tempDir, "file.txt")

		err := EnsureDir(testPath)
		require.NoError(t, err)

		// Should not error if directory already exists
		err = EnsureDir(testPath)
		require.NoError(t, err)
	})
}

func TestExpandPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "home directory with slash",
			input:    "~/test",
			expected: filepath.Join(os.Getenv("HOME"), "test"),
		},
		{
			name:     "home directory only",
			input:    "~",
			expected: os.Getenv("HOME"),
		},
		{
			name:     "regular path",
			input:    "/tmp/test",
			expected: "/tmp/test",
		},
		{
			name:     "relative path",
			input:    "./test",
			expected: "./test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpandPath(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
