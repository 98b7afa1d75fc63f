package store

import (
	"testing"

	"github.com/quantmind-br/viteassets/internal/manifest"
	"github.com/quantmind-br/viteassets/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	m, err := manifest.Parse([]byte(testutil.ValidManifest), "/a/manifest.json")
	require.NoError(t, err)

	value, err := encodeManifest(m)
	require.NoError(t, err)
	assert.Equal(t, codecVersion, value[0])

	restored, err := decodeManifest("/b/manifest.json", value)
	require.NoError(t, err)
	assert.Equal(t, "/b/manifest.json", restored.Path())
	assert.Equal(t, m.Identifiers(), restored.Identifiers())

	original, _ := m.Get("Main.js")
	got, ok := restored.Get("Main.js")
	require.True(t, ok)
	assert.Equal(t, original, got)
}

func TestCodec_RejectsForeignValues(t *testing.T) {
	tests := []struct {
		name  string
		value []byte
	}{
		{name: "empty", value: nil},
		{name: "wrong version", value: []byte{9, 1, 2, 3}},
		{name: "not zstd", value: append([]byte{codecVersion}, []byte("{}")...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeManifest("/a/manifest.json", tt.value)
			assert.Error(t, err)
		})
	}
}
