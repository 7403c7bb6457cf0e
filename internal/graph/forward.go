package graph

import "github.com/hypergrad-ml/hypergrad/internal/matrix"

// Forward evaluates the graph and returns the value of the last node, the
// designated output. Edges are visited in increasing index order; by the
// topological invariant every tail value is already cached when its edge
// runs, so the whole pass is one linear scan.
//
// There is no memoization beyond the single cached value per node: a second
// Forward recomputes everything, which is exactly what is needed after
// parameter or input values change. Panics on an empty graph.
func (g *Hypergraph) Forward() *matrix.Matrix {
	if len(g.edges) == 0 {
		panic("graph: Forward on an empty graph")
	}
	xs := make([]*matrix.Matrix, 0, 4) // reused argument buffer
	for _, e := range g.edges {
		xs = xs[:0]
		for _, t := range e.tail {
			xs = append(xs, g.nodes[t].value)
		}
		g.nodes[e.head].value = e.fn.Forward(xs)
	}
	g.fresh = true
	return g.nodes[len(g.nodes)-1].value
}
