package output

import (
	"sync"
	"time"

	"github.com/quantmind-br/viteassets/internal/domain"
)

var _ domain.AssetSink = (*AssetCollector)(nil)

// registry keeps descriptors in insertion order, keyed by identifier
type registry struct {
	order []string
	items map[string]domain.Descriptor
}

func newRegistry() *registry {
	return &registry{items: make(map[string]domain.Descriptor)}
}

// put stores d, replacing an earlier descriptor with the same identifier in
// its original position
func (r *registry) put(d domain.Descriptor) {
	if _, ok := r.items[d.Identifier]; !ok {
		r.order = append(r.order, d.Identifier)
	}
	r.items[d.Identifier] = d
}

func (r *registry) list(priority bool) []domain.Descriptor {
	out := make([]domain.Descriptor, 0, len(r.order))
	for _, id := range r.order {
		if d := r.items[id]; d.Options.Priority == priority {
			out = append(out, d)
		}
	}
	return out
}

func (r *registry) get(id string) (domain.Descriptor, bool) {
	d, ok := r.items[id]
	return d, ok
}

// AssetCollector is an in-memory page asset registry. Scripts, stylesheets
// and inline stylesheets are kept apart and each kind is split into a normal
// and a priority group when read.
type AssetCollector struct {
	mu                sync.RWMutex
	javaScripts       *registry
	styleSheets       *registry
	inlineStyleSheets *registry
	source            string
}

// NewAssetCollector creates an empty collector
func NewAssetCollector() *AssetCollector {
	return &AssetCollector{
		javaScripts:       newRegistry(),
		styleSheets:       newRegistry(),
		inlineStyleSheets: newRegistry(),
	}
}

// AddJavaScript registers a script
func (c *AssetCollector) AddJavaScript(identifier, source string, attributes map[string]string, options domain.AssetOptions) {
	c.add(c.javaScripts, domain.KindScript, identifier, source, attributes, options)
}

// AddStyleSheet registers a linked stylesheet
func (c *AssetCollector) AddStyleSheet(identifier, source string, attributes map[string]string, options domain.AssetOptions) {
	c.add(c.styleSheets, domain.KindStyleSheet, identifier, source, attributes, options)
}

// AddInlineStyleSheet registers a stylesheet embedded by content
func (c *AssetCollector) AddInlineStyleSheet(identifier, content string, attributes map[string]string, options domain.AssetOptions) {
	c.add(c.inlineStyleSheets, domain.KindInlineStyleSheet, identifier, content, attributes, options)
}

func (c *AssetCollector) add(r *registry, kind domain.DescriptorKind, identifier, source string, attributes map[string]string, options domain.AssetOptions) {
	attrs := make(map[string]string, len(attributes))
	for k, v := range attributes {
		attrs[k] = v
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	r.put(domain.Descriptor{
		Kind:       kind,
		Identifier: identifier,
		Source:     source,
		Attributes: attrs,
		Options:    options,
	})
}

// JavaScripts returns the scripts of one group in registration order
func (c *AssetCollector) JavaScripts(priority bool) []domain.Descriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.javaScripts.list(priority)
}

// StyleSheets returns the linked stylesheets of one group
func (c *AssetCollector) StyleSheets(priority bool) []domain.Descriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.styleSheets.list(priority)
}

// InlineStyleSheets returns the inline stylesheets of one group
func (c *AssetCollector) InlineStyleSheets(priority bool) []domain.Descriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inlineStyleSheets.list(priority)
}

// JavaScript looks up a script by identifier
func (c *AssetCollector) JavaScript(identifier string) (domain.Descriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.javaScripts.get(identifier)
}

// Count returns the number of registered assets of all kinds
func (c *AssetCollector) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.javaScripts.order) + len(c.styleSheets.order) + len(c.inlineStyleSheets.order)
}

// SetSource records the manifest or dev server the assets came from
func (c *AssetCollector) SetSource(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.source = source
}

// Group is one rendering group of an Index
type Group struct {
	JavaScripts       []domain.Descriptor `json:"javascripts" yaml:"javascripts"`
	StyleSheets       []domain.Descriptor `json:"stylesheets" yaml:"stylesheets"`
	InlineStyleSheets []domain.Descriptor `json:"inline_stylesheets" yaml:"inline_stylesheets"`
}

// Index is a serializable snapshot of the collector
type Index struct {
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Source      string    `json:"source,omitempty" yaml:"source,omitempty"`
	TotalAssets int       `json:"total_assets" yaml:"total_assets"`
	Priority    Group     `json:"priority" yaml:"priority"`
	Normal      Group     `json:"normal" yaml:"normal"`
}

// Index returns a snapshot of every registered asset
func (c *AssetCollector) Index() *Index {
	c.mu.RLock()
	defer c.mu.RUnlock()

	group := func(priority bool) Group {
		return Group{
			JavaScripts:       c.javaScripts.list(priority),
			StyleSheets:       c.styleSheets.list(priority),
			InlineStyleSheets: c.inlineStyleSheets.list(priority),
		}
	}

	return &Index{
		GeneratedAt: time.Now(),
		Source:      c.source,
		TotalAssets: len(c.javaScripts.order) + len(c.styleSheets.order) + len(c.inlineStyleSheets.order),
		Priority:    group(true),
		Normal:      group(false),
	}
}

// Flush writes the index to path. Without an explicit opts.Format it is
// YAML for .yaml/.yml paths and JSON otherwise.
func (c *AssetCollector) Flush(path string, opts WriterOptions) error {
	if opts.Format == "" {
		opts.Format = FormatFromPath(path)
	}
	return NewWriter(opts).WriteFile(path, c.Index())
}
