package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
)

// Chunk is one manifest record: a built module and its direct dependencies
type Chunk struct {
	Identifier     string   `json:"-" yaml:"identifier"`
	Src            *string  `json:"src,omitempty" yaml:"src,omitempty"`
	File           string   `json:"file" yaml:"file"`
	IsEntry        bool     `json:"isEntry,omitempty" yaml:"isEntry,omitempty"`
	IsDynamicEntry bool     `json:"isDynamicEntry,omitempty" yaml:"isDynamicEntry,omitempty"`
	Assets         []string `json:"assets,omitempty" yaml:"assets,omitempty"`
	CSS            []string `json:"css,omitempty" yaml:"css,omitempty"`
	Imports        []string `json:"imports,omitempty" yaml:"imports,omitempty"`
	DynamicImports []string `json:"dynamicImports,omitempty" yaml:"dynamicImports,omitempty"`
}

// Source returns the chunk's source path, or "" when the manifest has none
func (c *Chunk) Source() string {
	if c.Src == nil {
		return ""
	}
	return *c.Src
}

// Manifest is an immutable mapping from identifier to chunk. Chunks returned by
// its accessors are shared and must be treated as read-only.
type Manifest struct {
	path   string
	chunks map[string]*Chunk
}

// New builds a manifest for the file at path from already-typed chunks. Later
// chunks with a duplicate identifier replace earlier ones.
func New(path string, chunks ...*Chunk) *Manifest {
	m := &Manifest{
		path:   path,
		chunks: make(map[string]*Chunk, len(chunks)),
	}
	for _, c := range chunks {
		m.chunks[c.Identifier] = c
	}
	return m
}

// Path returns the absolute path of the manifest file
func (m *Manifest) Path() string {
	return m.path
}

// Dir returns the manifest's directory with a trailing slash. Emitted file
// paths in the manifest are relative to it.
func (m *Manifest) Dir() string {
	return filepath.ToSlash(filepath.Dir(m.path)) + "/"
}

// Get looks up a chunk by identifier
func (m *Manifest) Get(identifier string) (*Chunk, bool) {
	c, ok := m.chunks[identifier]
	return c, ok
}

// Len returns the number of chunks
func (m *Manifest) Len() int {
	return len(m.chunks)
}

// Identifiers returns all chunk identifiers in sorted order
func (m *Manifest) Identifiers() []string {
	ids := make([]string, 0, len(m.chunks))
	for id := range m.chunks {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Entries returns the identifiers of chunks flagged isEntry, sorted
func (m *Manifest) Entries() []string {
	var ids []string
	for id, c := range m.chunks {
		if c.IsEntry {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// MarshalJSON encodes the manifest in the bundler's own format
func (m *Manifest) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.chunks)
}

// Restore rebuilds a manifest previously encoded with MarshalJSON. It is the
// cache path: the value is trusted and never re-validated.
func Restore(path string, data []byte) (*Manifest, error) {
	records := make(map[string]*Chunk)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	chunks := make([]*Chunk, 0, len(records))
	for id, c := range records {
		if c == nil {
			return nil, fmt.Errorf("chunk %q: %w", id, ErrNotObject)
		}
		c.Identifier = id
		chunks = append(chunks, c)
	}
	return New(path, chunks...), nil
}
