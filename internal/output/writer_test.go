package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "", expected: FormatJSON},
		{input: "json", expected: FormatJSON},
		{input: "JSON", expected: FormatJSON},
		{input: "yaml", expected: FormatYAML},
		{input: "yml", expected: FormatYAML},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("out/assets.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("out/assets.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("out/assets.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("out/assets"))
}

func TestNewWriter(t *testing.T) {
	w := NewWriter(WriterOptions{})
	assert.Equal(t, FormatJSON, w.Format())
	assert.False(t, w.force)
	assert.False(t, w.dryRun)
}

func TestWriter_Encode(t *testing.T) {
	value := map[string]string{"entry": "Main.js"}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(WriterOptions{Format: FormatJSON}).Encode(&buf, value))
		assert.Equal(t, "{\n  \"entry\": \"Main.js\"\n}\n", buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(WriterOptions{Format: FormatYAML}).Encode(&buf, value))
		assert.Equal(t, "entry: Main.js\n", buf.String())
	})
}

func TestWriter_WriteFile(t *testing.T) {
	value := map[string]int{"n": 1}

	t.Run("skips existing file without force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, os.WriteFile(path, []byte("keep"), 0644))

		require.NoError(t, NewWriter(WriterOptions{}).WriteFile(path, value))

		data, _ := os.ReadFile(path)
		assert.Equal(t, "keep", string(data))
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, NewWriter(WriterOptions{DryRun: true}).WriteFile(path, value))

		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "out.json")
		require.NoError(t, NewWriter(WriterOptions{}).WriteFile(path, value))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"n\": 1\n}\n", string(data))
	})
}
