package manifest

import (
	"maps"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldMapping maps a dotted document path to the attribute name used at the
// same nesting level, e.g. "plugin.english-name" -> "englishName".
// Sequence items share the path of the sequence itself.
type FieldMapping map[string]string

// DefaultFieldMapping returns the aliases accepted for the canonical attributes.
func DefaultFieldMapping() FieldMapping {
	return FieldMapping{
		"plugin.english-name": "englishName",
		"plugin.english_name": "englishName",
		"plugin.chinese-name": "chineseName",
		"plugin.chinese_name": "chineseName",
		"group-rule":          "groupRule",
		"group_rule":          "groupRule",
		"key-rule":            "keyRule",
		"key_rule":            "keyRule",
	}
}

func (m FieldMapping) clone() FieldMapping {
	if m == nil {
		return FieldMapping{}
	}
	return maps.Clone(m)
}

// apply renames mapping keys in place, walking the tree depth-first.
// Aliased content is renamed under the path of the alias, and merge keys
// (<<) pass the path of the mapping that holds them.
func (m FieldMapping) apply(n *yaml.Node, prefix string) {
	if len(m) == 0 || n == nil {
		return
	}
	w := mappingWalk{m: m, active: make(map[*yaml.Node]bool)}
	w.walk(n, prefix)
}

type mappingWalk struct {
	m      FieldMapping
	active map[*yaml.Node]bool // alias targets being walked; stops recursive aliases
}

func (w *mappingWalk) walk(n *yaml.Node, prefix string) {
	if n == nil {
		return
	}
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			w.walk(c, prefix)
		}
	case yaml.AliasNode:
		if w.active[n.Alias] {
			return
		}
		w.active[n.Alias] = true
		w.walk(n.Alias, prefix)
		delete(w.active, n.Alias)
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if isMergeKey(key) {
				w.walk(n.Content[i+1], prefix)
				continue
			}
			p := joinPath(prefix, key.Value)
			if to, ok := w.m[p]; ok {
				key.Value = to
				p = joinPath(prefix, to)
			}
			w.walk(n.Content[i+1], p)
		}
	}
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == "<<" && n.ShortTag() == "!!merge"
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	var b strings.Builder
	b.Grow(len(prefix) + 1 + len(key))
	b.WriteString(prefix)
	b.WriteByte('.')
	b.WriteString(key)
	return b.String()
}
