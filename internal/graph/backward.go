package graph

import (
	"fmt"

	"github.com/hypergrad-ml/hypergrad/internal/matrix"
)

// Backward computes dE/dnode for every node, where E is the value of the
// last node, and stores the results in the nodes' gradient slots.
//
// The last node must be 1x1: the convention is that the graph computes a
// scalar loss, and its gradient is seeded with 1. Every other gradient is
// reset to zeros first, so repeated Backward calls after one Forward are
// idempotent rather than accumulating.
//
// Nodes are visited in decreasing index order. Every edge that consumes a
// node has a strictly higher head index, so by the time the scan reaches a
// node, all of its consumers have already added their contributions and its
// gradient is final; it is then distributed to the node's own arguments via
// the chain rule, one Function.Backward call per (edge, argument) pair.
// Leaves have no arguments and distribute nothing; their accumulated
// gradients are what optimizers read.
//
// Panics if cached values are stale (Backward before Forward, or after
// SetInput or InvalidateValues).
func (g *Hypergraph) Backward() {
	if !g.fresh {
		panic("graph: Backward with stale values; call Forward first")
	}
	last := len(g.nodes) - 1
	if d := matrix.DimOf(g.nodes[last].value); d != matrix.NewDim() {
		panic(fmt.Sprintf("graph: Backward needs a scalar output, last node is %s", d))
	}

	for _, n := range g.nodes {
		n.gradient = matrix.Zero(matrix.DimOf(n.value))
	}
	g.nodes[last].gradient = matrix.Scalar(1)

	xs := make([]*matrix.Matrix, 0, 4)
	for i := last; i >= 0; i-- {
		e := g.edges[i]
		if e.Arity() == 0 {
			continue
		}
		n := g.nodes[i]
		xs = xs[:0]
		for _, t := range e.tail {
			xs = append(xs, g.nodes[t].value)
		}
		for pos, t := range e.tail {
			local := e.fn.Backward(xs, n.value, n.gradient, pos)
			acc := g.nodes[t].gradient
			acc.Add(acc, local)
		}
	}
}
