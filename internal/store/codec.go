package store

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/quantmind-br/viteassets/internal/manifest"
)

// codecVersion prefixes every cached value so the layout can change without
// misreading entries written by older builds.
const codecVersion byte = 1

var errCodecVersion = errors.New("unsupported cached manifest version")

// EncodeAll and DecodeAll are safe for concurrent use on shared instances.
var (
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	decoder, _ = zstd.NewReader(nil)
)

// encodeManifest serializes a parsed manifest for the cache
func encodeManifest(m *manifest.Manifest) ([]byte, error) {
	data, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 1, 1+len(data)/2)
	out[0] = codecVersion
	return encoder.EncodeAll(data, out), nil
}

// decodeManifest restores a cached manifest without re-validating it
func decodeManifest(path string, value []byte) (*manifest.Manifest, error) {
	if len(value) == 0 || value[0] != codecVersion {
		return nil, errCodecVersion
	}
	data, err := decoder.DecodeAll(value[1:], nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress cached manifest: %w", err)
	}
	return manifest.Restore(path, data)
}
