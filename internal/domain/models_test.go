package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	calls []string
}

func (s *recordingSink) AddJavaScript(id, _ string, _ map[string]string, _ AssetOptions) {
	s.calls = append(s.calls, "js:"+id)
}

func (s *recordingSink) AddStyleSheet(id, _ string, _ map[string]string, _ AssetOptions) {
	s.calls = append(s.calls, "css:"+id)
}

func (s *recordingSink) AddInlineStyleSheet(id, _ string, _ map[string]string, _ AssetOptions) {
	s.calls = append(s.calls, "inline:"+id)
}

func TestDescriptor_AddTo(t *testing.T) {
	sink := &recordingSink{}

	Descriptor{Kind: KindScript, Identifier: "vite:Main.js"}.AddTo(sink)
	Descriptor{Kind: KindStyleSheet, Identifier: "vite:Main.js:a.css"}.AddTo(sink)
	Descriptor{Kind: KindInlineStyleSheet, Identifier: "vite:Main.js:b.css"}.AddTo(sink)
	Descriptor{Kind: "unknown", Identifier: "ignored"}.AddTo(sink)

	assert.Equal(t, []string{
		"js:vite:Main.js",
		"css:vite:Main.js:a.css",
		"inline:vite:Main.js:b.css",
	}, sink.calls)
}

func TestAssetOptions_WithPriority(t *testing.T) {
	opts := AssetOptions{}
	prio := opts.WithPriority()

	assert.False(t, opts.Priority, "original options must not change")
	assert.True(t, prio.Priority)
}
