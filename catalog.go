package inspectable

import (
	"fmt"
	"sort"
	"strings"
)

// CatalogEntry links a type to the wrapper identifier it resolves through.
// Boxed equals Type for reference types.
type CatalogEntry struct {
	Type       Type   `json:"type"`
	Boxed      Type   `json:"boxed"`
	Wrapper    string `json:"wrapper"`
	Registered bool   `json:"registered"`
}

// Catalog is a snapshot of what a Resolver can build.
type Catalog struct {
	Entries []CatalogEntry `json:"entries"`
	// Orphans are registered identifiers outside the resolver's namespace.
	Orphans []string `json:"orphans,omitempty"`
}

// Catalog lists the nine primitive kinds followed by every other wrapper
// registered under the resolver's namespace.
func (r *Resolver) Catalog() Catalog {
	names := r.registry.names()
	registered := make(map[string]bool, len(names))
	for _, name := range names {
		registered[name] = true
	}

	var c Catalog
	seen := make(map[string]bool, len(names))
	for _, t := range PrimitiveKinds() {
		name, _ := r.naming.WrapperName(t)
		c.Entries = append(c.Entries, CatalogEntry{
			Type:       t,
			Boxed:      Boxed(t),
			Wrapper:    name,
			Registered: registered[name],
		})
		seen[name] = true
	}

	prefix := r.naming.Namespace + "."
	for _, name := range names {
		if seen[name] {
			continue
		}
		typeName, ok := strings.CutPrefix(name, prefix)
		if ok {
			typeName, ok = strings.CutSuffix(typeName, r.naming.Suffix)
		}
		if !ok || typeName == "" {
			c.Orphans = append(c.Orphans, name)
			continue
		}
		t := Named(typeName)
		c.Entries = append(c.Entries, CatalogEntry{Type: t, Boxed: t, Wrapper: name, Registered: true})
	}
	sort.Strings(c.Orphans)
	return c
}

// DOT exports Graphviz DOT text: primitive -> boxed -> wrapper.
func (c Catalog) DOT() string {
	var b strings.Builder
	b.WriteString("digraph inspectable {\n")
	b.WriteString("  rankdir=LR;\n")

	aliases := make(map[string]string)
	node := func(label, shape string) string {
		if alias, ok := aliases[label]; ok {
			return alias
		}
		alias := fmt.Sprintf("n%d", len(aliases))
		aliases[label] = alias
		b.WriteString(fmt.Sprintf("  %s [label=\"%s\" shape=%s];\n", alias, escapeDOT(label), shape))
		return alias
	}
	for _, e := range c.Entries {
		boxed := node(e.Boxed.String(), "box")
		if !e.Type.Equal(e.Boxed) {
			b.WriteString(fmt.Sprintf("  %s -> %s;\n", node(e.Type.String(), "ellipse"), boxed))
		}
		if e.Registered {
			b.WriteString(fmt.Sprintf("  %s -> %s;\n", boxed, node(e.Wrapper, "component")))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// Mermaid exports Mermaid graph text.
func (c Catalog) Mermaid() string {
	var b strings.Builder
	b.WriteString("graph LR\n")

	aliases := make(map[string]string)
	node := func(label string) string {
		if alias, ok := aliases[label]; ok {
			return alias
		}
		alias := fmt.Sprintf("n%d", len(aliases))
		aliases[label] = alias
		b.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", alias, escapeMermaid(label)))
		return alias
	}
	for _, e := range c.Entries {
		boxed := node(e.Boxed.String())
		if !e.Type.Equal(e.Boxed) {
			b.WriteString(fmt.Sprintf("    %s --> %s\n", node(e.Type.String()), boxed))
		}
		if e.Registered {
			b.WriteString(fmt.Sprintf("    %s --> %s\n", boxed, node(e.Wrapper)))
		}
	}
	return b.String()
}

func escapeDOT(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}

func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
