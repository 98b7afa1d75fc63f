package manifest

import (
	"slices"

	"github.com/quantmind-br/viteassets/internal/domain"
)

// ResolvedEntry is the view of a manifest needed to emit one entry point.
// It references the manifest's chunk and must not outlive the manifest.
type ResolvedEntry struct {
	Chunk *Chunk
	// CSS lists the stylesheets emitted for the entry. Only the entry chunk's
	// own css list is used; CSS of imported chunks is not collected.
	CSS []string
}

// Identifier returns the entry's manifest key
func (r *ResolvedEntry) Identifier() string {
	return r.Chunk.Identifier
}

// FindSoleEntry returns the identifier of the only chunk flagged isEntry.
// Zero or several entry chunks yield a *domain.AmbiguousEntryError carrying
// the number found.
func FindSoleEntry(m *Manifest) (string, error) {
	entries := m.Entries()
	if len(entries) != 1 {
		return "", domain.NewAmbiguousEntryError(m.Path(), len(entries))
	}
	return entries[0], nil
}

// ResolveEntry validates that identifier names an entry chunk and returns it
// together with its CSS files. Chunks that exist only as dependencies are not
// valid targets.
func ResolveEntry(m *Manifest, identifier string) (*ResolvedEntry, error) {
	c, ok := m.Get(identifier)
	if !ok || !c.IsEntry {
		return nil, domain.NewInvalidEntryError(identifier, m.Path())
	}

	return &ResolvedEntry{
		Chunk: c,
		CSS:   slices.Clone(c.CSS),
	}, nil
}

// AssetPath returns the manifest directory joined with the emitted file of
// any chunk, entry or not.
func AssetPath(m *Manifest, key string) (string, error) {
	c, ok := m.Get(key)
	if !ok {
		return "", domain.NewInvalidAssetError(key, m.Path())
	}
	return m.Dir() + c.File, nil
}
