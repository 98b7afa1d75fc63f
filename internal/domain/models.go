package domain

// DescriptorKind tells the sink how a descriptor is rendered
type DescriptorKind string

const (
	KindScript           DescriptorKind = "script"
	KindStyleSheet       DescriptorKind = "stylesheet"
	KindInlineStyleSheet DescriptorKind = "inline-stylesheet"
)

// Descriptor is one emission instruction for the asset sink. Source holds a
// URL for scripts and linked stylesheets and the literal CSS for inline ones.
type Descriptor struct {
	Kind       DescriptorKind    `json:"kind" yaml:"kind"`
	Identifier string            `json:"identifier" yaml:"identifier"`
	Source     string            `json:"source" yaml:"source"`
	Attributes map[string]string `json:"attributes" yaml:"attributes"`
	Options    AssetOptions      `json:"options" yaml:"options"`
}

// AddTo pushes the descriptor into sink using the method matching its kind.
func (d Descriptor) AddTo(sink AssetSink) {
	switch d.Kind {
	case KindScript:
		sink.AddJavaScript(d.Identifier, d.Source, d.Attributes, d.Options)
	case KindStyleSheet:
		sink.AddStyleSheet(d.Identifier, d.Source, d.Attributes, d.Options)
	case KindInlineStyleSheet:
		sink.AddInlineStyleSheet(d.Identifier, d.Source, d.Attributes, d.Options)
	}
}
