package pagetemplate

import (
	"maps"
	"slices"
)

// RootKind names the source root a template was loaded from.
type RootKind string

const (
	RootBundled  RootKind = "bundled"
	RootExternal RootKind = "external"
)

// PluginIdentity identifies the plugin a template renders the page for.
// EnglishName is the canonical name used as lookup key.
type PluginIdentity struct {
	EnglishName string         `yaml:"englishName"`
	ChineseName string         `yaml:"chineseName,omitempty"`
	Fields      map[string]any `yaml:",inline"`
}

// Template is one parsed page template. Everything the document carries besides
// the plugin identity and the rule lists lands in Fields unchanged.
// Fields must not be mutated after parse; registries hand out clones.
type Template struct {
	Plugin    *PluginIdentity `yaml:"plugin,omitempty"`
	GroupRule []string        `yaml:"groupRule,omitempty"`
	KeyRule   []string        `yaml:"keyRule,omitempty"`
	Fields    map[string]any  `yaml:",inline"`
	Origin    Origin          `yaml:"-"` // set by the loader, not from the document
}

// Origin records where a template was loaded from.
type Origin struct {
	Root RootKind
	Path string
}

// PluginName returns the canonical plugin name, or "" when the template has no plugin.
func (t Template) PluginName() string {
	if t.Plugin == nil {
		return ""
	}
	return t.Plugin.EnglishName
}

// CloneTemplate returns a copy of t with cloned slice and map fields.
// Nested values inside Fields are shared.
func CloneTemplate(t Template) Template {
	out := Template{
		GroupRule: slices.Clone(t.GroupRule),
		KeyRule:   slices.Clone(t.KeyRule),
		Origin:    t.Origin,
	}
	if t.Fields != nil {
		out.Fields = maps.Clone(t.Fields)
	}
	if t.Plugin != nil {
		p := *t.Plugin
		if p.Fields != nil {
			p.Fields = maps.Clone(p.Fields)
		}
		out.Plugin = &p
	}
	return out
}

// Registry answers list and lookup queries over loaded templates.
type Registry interface {
	ListAll() []Template
	Lookup(pluginName string) (Template, bool)
}
