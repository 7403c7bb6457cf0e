package graph

import (
	"fmt"
	"io"
	"strings"
)

// WriteGraphviz writes the graph in Graphviz DOT form, one vertex per node
// and one arrow per (argument, head) pair. Node labels use the formula from
// the edge's Describer when available, otherwise the node name or v<i>.
func (g *Hypergraph) WriteGraphviz(w io.Writer) error {
	var b strings.Builder
	b.WriteString("digraph hypergraph {\n")
	b.WriteString("  rankdir=LR;\n")
	for i, e := range g.edges {
		b.WriteString(fmt.Sprintf("  n%d [label=%q];\n", i, g.nodeLabel(i, e)))
	}
	for i, e := range g.edges {
		for _, t := range e.tail {
			b.WriteString(fmt.Sprintf("  n%d -> n%d;\n", t, i))
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func (g *Hypergraph) nodeLabel(i int, e *Edge) string {
	name := g.nodes[i].name
	if name == "" {
		name = fmt.Sprintf("v%d", i)
	}
	d, ok := e.fn.(Describer)
	if !ok {
		return fmt.Sprintf("%s = %T", name, e.fn)
	}
	args := make([]string, len(e.tail))
	for pos, t := range e.tail {
		args[pos] = g.nodes[t].name
		if args[pos] == "" {
			args[pos] = fmt.Sprintf("v%d", t)
		}
	}
	return fmt.Sprintf("%s = %s", name, d.Describe(args))
}
