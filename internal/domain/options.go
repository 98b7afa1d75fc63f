package domain

// AssetOptions are the sink options attached to every descriptor.
type AssetOptions struct {
	// Priority places the asset in the priority group, rendered before the
	// normal group.
	Priority bool `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// WithPriority returns a copy of the options with Priority forced on.
func (o AssetOptions) WithPriority() AssetOptions {
	o.Priority = true
	return o
}
