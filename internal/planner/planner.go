// Package planner turns a resolved entry point into the ordered list of
// descriptors the asset sink receives.
package planner

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/viteassets/internal/domain"
	"github.com/quantmind-br/viteassets/internal/manifest"
)

// DevClientIdentifier is the sink identifier of the dev server's HMR client
const DevClientIdentifier = "vite"

// DevClientPath is the dev server path of the HMR client
const DevClientPath = "@vite/client"

// Plan is a complete, ordered set of descriptors for one entry point
type Plan struct {
	Descriptors []domain.Descriptor
}

// Emit pushes every descriptor into sink in order
func (p *Plan) Emit(sink domain.AssetSink) {
	for _, d := range p.Descriptors {
		d.AddTo(sink)
	}
}

// Len returns the number of descriptors
func (p *Plan) Len() int {
	return len(p.Descriptors)
}

// ManifestOptions control how a production entry is emitted
type ManifestOptions struct {
	// AddCSS emits the entry's stylesheets
	AddCSS bool
	// InlineCSS embeds stylesheet contents instead of linking them. Inline
	// stylesheets are always placed in the priority group.
	InlineCSS bool
	// NormalizeCharset strips a byte-order mark and transcodes non-UTF-8
	// stylesheets before inlining. Without it the file's bytes are embedded
	// as they are.
	NormalizeCharset bool
	Asset            domain.AssetOptions
	Script           Attributes
	CSS              Attributes
}

// DevOptions control how a dev server entry is emitted
type DevOptions struct {
	Asset  domain.AssetOptions
	Script Attributes
}

// Planner builds plans. It reads stylesheet files only when CSS is inlined.
type Planner struct {
	fs domain.FileSystem
}

// New creates a Planner reading inline stylesheets through fs
func New(fs domain.FileSystem) *Planner {
	return &Planner{fs: fs}
}

// PlanDev plans the dev server HMR client followed by the entry module, both
// served from base
func (p *Planner) PlanDev(base *url.URL, entry string, opts DevOptions) *Plan {
	return &Plan{Descriptors: []domain.Descriptor{
		{
			Kind:       domain.KindScript,
			Identifier: DevClientIdentifier,
			Source:     devURL(base, DevClientPath),
			Attributes: ScriptAttributes(opts.Script),
			Options:    opts.Asset,
		},
		{
			Kind:       domain.KindScript,
			Identifier: EntryIdentifier(entry),
			Source:     devURL(base, entry),
			Attributes: ScriptAttributes(opts.Script),
			Options:    opts.Asset,
		},
	}}
}

// PlanManifest plans the entry's script and, when requested, its direct
// stylesheets. File paths are the manifest directory joined with the emitted
// file names. Nothing is returned unless every stylesheet could be planned.
func (p *Planner) PlanManifest(m *manifest.Manifest, entry *manifest.ResolvedEntry, opts ManifestOptions) (*Plan, error) {
	dir := m.Dir()
	id := entry.Identifier()

	plan := &Plan{Descriptors: []domain.Descriptor{{
		Kind:       domain.KindScript,
		Identifier: EntryIdentifier(id),
		Source:     dir + entry.Chunk.File,
		Attributes: ScriptAttributes(opts.Script),
		Options:    opts.Asset,
	}}}

	if !opts.AddCSS || len(entry.CSS) == 0 {
		return plan, nil
	}

	for _, file := range entry.CSS {
		path := dir + file
		d := domain.Descriptor{
			Identifier: StyleSheetIdentifier(id, file),
			Attributes: StyleSheetAttributes(opts.CSS),
		}

		if opts.InlineCSS {
			content, err := p.readStyleSheet(path, opts.NormalizeCharset)
			if err != nil {
				return nil, err
			}
			d.Kind = domain.KindInlineStyleSheet
			d.Source = content
			d.Options = opts.Asset.WithPriority()
		} else {
			d.Kind = domain.KindStyleSheet
			d.Source = path
			d.Options = opts.Asset
		}
		plan.Descriptors = append(plan.Descriptors, d)
	}

	return plan, nil
}

func (p *Planner) readStyleSheet(path string, normalize bool) (string, error) {
	data, err := p.fs.ReadFile(filepath.FromSlash(path))
	if err != nil {
		return "", domain.NewReadError(path, err)
	}
	if !normalize {
		return string(data), nil
	}
	data, err = StyleSheetToUTF8(data)
	if err != nil {
		return "", domain.NewReadError(path, err)
	}
	return string(data), nil
}

// EntryIdentifier is the sink identifier of an entry's script
func EntryIdentifier(entry string) string {
	return "vite:" + entry
}

// StyleSheetIdentifier is the sink identifier of one of an entry's stylesheets
func StyleSheetIdentifier(entry, file string) string {
	return "vite:" + entry + ":" + file
}

func devURL(base *url.URL, p string) string {
	u := *base
	u.Path = "/" + strings.TrimLeft(p, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
