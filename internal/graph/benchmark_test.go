package graph_test

import (
	"testing"

	"github.com/hypergrad-ml/hypergrad/internal/graph"
	"github.com/hypergrad-ml/hypergrad/internal/matrix"
	"github.com/hypergrad-ml/hypergrad/internal/ops"
)

// buildDeepMLP builds a depth-layer tanh MLP with width-sized hidden layers
// ending in a scalar loss.
func buildDeepMLP(width, depth int) *graph.Hypergraph {
	matrix.Seed(5)
	g := graph.New()
	x := g.AddInput(matrix.NewDim(width), "x")
	y := g.AddInput(matrix.NewDim(), "y")
	g.SetInput(x, matrix.RandomScaled(matrix.NewDim(width), 1))
	g.SetInput(y, matrix.Scalar(1))

	h := x
	for l := 0; l < depth; l++ {
		w := g.AddParameter(matrix.NewDim(width, width), "")
		b := g.AddParameter(matrix.NewDim(width), "")
		wh := graph.AddFunction[ops.MatMulOp](g, "", w, h)
		pre := graph.AddFunction[ops.SumOp](g, "", wh, b)
		h = graph.AddFunction[ops.TanhOp](g, "", pre)
	}
	v := g.AddParameter(matrix.NewDim(1, width), "")
	out := graph.AddFunction[ops.MatMulOp](g, "", v, h)
	graph.AddFunction[ops.SquaredDistanceOp](g, "", out, y)
	return g
}

func BenchmarkForward(b *testing.B) {
	g := buildDeepMLP(64, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Forward()
	}
}

func BenchmarkForwardBackward(b *testing.B) {
	g := buildDeepMLP(64, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Forward()
		g.Backward()
	}
}
