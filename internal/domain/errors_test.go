package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSentinelErrors verifies sentinel errors are defined
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check string
	}{
		{"ErrCacheMiss", ErrCacheMiss, "cache miss"},
		{"ErrResolution", ErrResolution, "cannot be resolved"},
		{"ErrRead", ErrRead, "cannot be read"},
		{"ErrFormat", ErrFormat, "invalid manifest format"},
		{"ErrInvalidEntry", ErrInvalidEntry, "invalid entry point"},
		{"ErrInvalidAsset", ErrInvalidAsset, "invalid asset"},
		{"ErrAmbiguousEntry", ErrAmbiguousEntry, "cannot be determined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Contains(t, tt.err.Error(), tt.check)
		})
	}
}

func TestTypedErrors_MatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		contains []string
	}{
		{
			name:     "resolution",
			err:      NewResolutionError("EXT:site/manifest.json", "/var/www/manifest.json", fs.ErrNotExist),
			sentinel: ErrResolution,
			contains: []string{"EXT:site/manifest.json", "/var/www/manifest.json"},
		},
		{
			name:     "read",
			err:      NewReadError("/dist/main.css", fs.ErrPermission),
			sentinel: ErrRead,
			contains: []string{"/dist/main.css"},
		},
		{
			name:     "format",
			err:      NewFormatError("/dist/manifest.json", "", errors.New("unexpected end of JSON input")),
			sentinel: ErrFormat,
			contains: []string{"/dist/manifest.json", "unexpected end"},
		},
		{
			name:     "format with chunk",
			err:      NewFormatError("/dist/manifest.json", "Main.js", errors.New("missing file")),
			sentinel: ErrFormat,
			contains: []string{"Main.js", "missing file"},
		},
		{
			name:     "invalid entry",
			err:      NewInvalidEntryError("Main.css", "/dist/manifest.json"),
			sentinel: ErrInvalidEntry,
			contains: []string{"Main.css", "/dist/manifest.json"},
		},
		{
			name:     "invalid asset",
			err:      NewInvalidAssetError("Logo.svg", "/dist/manifest.json"),
			sentinel: ErrInvalidAsset,
			contains: []string{"Logo.svg"},
		},
		{
			name:     "ambiguous entry",
			err:      NewAmbiguousEntryError("/dist/manifest.json", 2),
			sentinel: ErrAmbiguousEntry,
			contains: []string{"found 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)

			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)

			for _, s := range tt.contains {
				assert.Contains(t, tt.err.Error(), s)
			}
		})
	}
}

func TestTypedErrors_DoNotCrossMatch(t *testing.T) {
	err := NewInvalidEntryError("Main.js", "/dist/manifest.json")

	assert.False(t, errors.Is(err, ErrInvalidAsset))
	assert.False(t, errors.Is(err, ErrAmbiguousEntry))
}

func TestReadError_UnwrapsCause(t *testing.T) {
	err := NewReadError("/dist/main.css", fs.ErrPermission)

	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, fs.ErrPermission, err.Unwrap())
}

func TestAmbiguousEntryError_CarriesCount(t *testing.T) {
	var target *AmbiguousEntryError
	err := fmt.Errorf("detect: %w", NewAmbiguousEntryError("/dist/manifest.json", 0))

	assert.True(t, errors.As(err, &target))
	assert.Equal(t, 0, target.Count)
	assert.Equal(t, "/dist/manifest.json", target.Manifest)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("cache.backend", "unknown backend")

	assert.Equal(t, "validation error for cache.backend: unknown backend", err.Error())
}
