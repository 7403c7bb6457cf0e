package graph_test

import (
	"math"
	"testing"

	"github.com/hypergrad-ml/hypergrad/internal/graph"
	"github.com/hypergrad-ml/hypergrad/internal/matrix"
	"github.com/hypergrad-ml/hypergrad/internal/ops"
)

// buildChain builds loss = ||V*tanh(W*x + b) - y||^2, the usual tiny MLP,
// and returns the graph plus the indices the tests poke at.
func buildChain(t *testing.T) (g *graph.Hypergraph, x, w, loss int) {
	t.Helper()
	matrix.Seed(1)
	g = graph.New()
	x = g.AddInput(matrix.NewDim(2), "x")
	y := g.AddInput(matrix.NewDim(), "y")
	w = g.AddParameter(matrix.NewDim(4, 2), "W")
	b := g.AddParameter(matrix.NewDim(4), "b")
	v := g.AddParameter(matrix.NewDim(1, 4), "V")
	wx := graph.AddFunction[ops.MatMulOp](g, "Wx", w, x)
	h := graph.AddFunction[ops.SumOp](g, "h", wx, b)
	a := graph.AddFunction[ops.TanhOp](g, "a", h)
	out := graph.AddFunction[ops.MatMulOp](g, "out", v, a)
	loss = graph.AddFunction[ops.SquaredDistanceOp](g, "loss", out, y)

	g.SetInput(x, matrix.FromSlice(matrix.NewDim(2), []float64{0.5, -1.0}))
	g.SetInput(y, matrix.Scalar(0.25))
	return g, x, w, loss
}

func TestConstruction_Invariants(t *testing.T) {
	g, _, _, _ := buildChain(t)

	if g.NumNodes() != g.NumEdges() {
		t.Fatalf("NumNodes = %d, NumEdges = %d; must match", g.NumNodes(), g.NumEdges())
	}
	for i := 0; i < g.NumNodes(); i++ {
		e := g.Edge(i)
		if e.Head() != i {
			t.Errorf("edge %d: Head = %d, want %d", i, e.Head(), i)
		}
		if g.Node(i).InEdge() != i {
			t.Errorf("node %d: InEdge = %d, want %d", i, g.Node(i).InEdge(), i)
		}
		for _, tail := range e.Tail() {
			if tail >= i {
				t.Errorf("edge %d: tail index %d not < head", i, tail)
			}
		}
	}
}

func TestConstruction_OutEdges(t *testing.T) {
	g := graph.New()
	a := g.AddParameter(matrix.NewDim(), "a")
	b := g.AddParameter(matrix.NewDim(), "b")
	c := graph.AddFunction[ops.SumOp](g, "c", a, b)
	d := graph.AddFunction[ops.CwiseMulOp](g, "d", a, c)

	got := g.Node(a).OutEdges()
	if len(got) != 2 || got[0] != c || got[1] != d {
		t.Errorf("OutEdges(a) = %v, want [%d %d]", got, c, d)
	}
	if n := g.Node(d).OutEdges(); len(n) != 0 {
		t.Errorf("OutEdges(d) = %v, want empty", n)
	}
}

func TestApply_RejectsBadArguments(t *testing.T) {
	g := graph.New()
	a := g.AddParameter(matrix.NewDim(), "a")

	for name, arg := range map[string]int{
		"future index": 5,
		"self index":   1, // the index the new node would get
		"negative":     -1,
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("Apply accepted a tail index that does not exist")
				}
			}()
			g.Apply(ops.NegateOp{}, "bad", arg)
		})
	}
	_ = a
}

func TestForward_EmptyGraphPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Forward on empty graph did not panic")
		}
	}()
	graph.New().Forward()
}

func TestForward_Deterministic(t *testing.T) {
	g, _, _, _ := buildChain(t)
	first := g.Forward().At(0, 0)
	second := g.Forward().At(0, 0)
	if first != second {
		t.Errorf("repeated Forward: %v then %v; must be bit-identical", first, second)
	}
}

func TestForward_RecomputesAfterSetInput(t *testing.T) {
	g := graph.New()
	x := g.AddInput(matrix.NewDim(), "x")
	y := graph.AddFunction[ops.SquareOp](g, "y", x)

	g.SetInput(x, matrix.Scalar(3))
	if got := g.Forward().At(0, 0); got != 9 {
		t.Fatalf("Forward = %v, want 9", got)
	}
	g.SetInput(x, matrix.Scalar(4))
	if got := g.Forward().At(0, 0); got != 16 {
		t.Fatalf("Forward after SetInput = %v, want 16", got)
	}
	_ = y
}

// TestScenario_ScalarProduct is the end-to-end check: x=3 input, w=2
// parameter, y = w*x. Forward must give 6 and dE/dw must be 3.
func TestScenario_ScalarProduct(t *testing.T) {
	g := graph.New()
	x := g.AddInput(matrix.NewDim(), "x")
	w := g.AddParameter(matrix.NewDim(), "w")
	graph.AddFunction[ops.MatMulOp](g, "y", w, x)

	g.SetInput(x, matrix.Scalar(3))
	g.ParameterValue(w).Set(0, 0, 2)
	g.InvalidateValues()

	if got := g.Forward().At(0, 0); got != 6 {
		t.Fatalf("Forward = %v, want 6", got)
	}
	g.Backward()
	if got := g.Gradient(w).At(0, 0); got != 3 {
		t.Errorf("Gradient(w) = %v, want 3", got)
	}
}

// TestScenario_SharedNode checks that a node consumed by two edges
// accumulates both contributions: y = x² + x² has dy/dx = 4x.
func TestScenario_SharedNode(t *testing.T) {
	g := graph.New()
	x := g.AddParameter(matrix.NewDim(), "x")
	s1 := graph.AddFunction[ops.SquareOp](g, "s1", x)
	s2 := graph.AddFunction[ops.SquareOp](g, "s2", x)
	graph.AddFunction[ops.SumOp](g, "y", s1, s2)

	g.ParameterValue(x).Set(0, 0, 3)
	g.InvalidateValues()

	if got := g.Forward().At(0, 0); got != 18 {
		t.Fatalf("Forward = %v, want 18", got)
	}
	g.Backward()
	if got := g.Gradient(x).At(0, 0); got != 12 {
		t.Errorf("Gradient(x) = %v, want 12 (sum of both consumers)", got)
	}
}

func TestBackward_Idempotent(t *testing.T) {
	g, _, w, _ := buildChain(t)
	g.Forward()
	g.Backward()
	first := matrix.Clone(g.Gradient(w))
	g.Backward()
	second := g.Gradient(w)

	r, c := first.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if first.At(i, j) != second.At(i, j) {
				t.Fatalf("gradient[%d,%d] changed across Backward calls: %v then %v",
					i, j, first.At(i, j), second.At(i, j))
			}
		}
	}
}

func TestBackward_StaleValuesPanic(t *testing.T) {
	cases := map[string]func(t *testing.T) *graph.Hypergraph{
		"before any Forward": func(t *testing.T) *graph.Hypergraph {
			g, _, _, _ := buildChain(t)
			return g
		},
		"after SetInput": func(t *testing.T) *graph.Hypergraph {
			g, x, _, _ := buildChain(t)
			g.Forward()
			g.SetInput(x, matrix.FromSlice(matrix.NewDim(2), []float64{1, 1}))
			return g
		},
		"after InvalidateValues": func(t *testing.T) *graph.Hypergraph {
			g, _, _, _ := buildChain(t)
			g.Forward()
			g.InvalidateValues()
			return g
		},
	}
	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			g := build(t)
			defer func() {
				if recover() == nil {
					t.Fatal("Backward with stale values did not panic")
				}
			}()
			g.Backward()
		})
	}
}

func TestBackward_NonScalarOutputPanics(t *testing.T) {
	g := graph.New()
	x := g.AddInput(matrix.NewDim(2), "x")
	graph.AddFunction[ops.NegateOp](g, "y", x)
	g.SetInput(x, matrix.FromSlice(matrix.NewDim(2), []float64{1, 2}))
	g.Forward()

	defer func() {
		if recover() == nil {
			t.Fatal("Backward with a 2x1 output did not panic")
		}
	}()
	g.Backward()
}

// TestBackward_LeafGradients checks that leaf nodes end up with the sum of
// their consumers' contributions and that inputs receive a gradient too
// (they are differentiated like any node, just never updated).
func TestBackward_LeafGradients(t *testing.T) {
	g := graph.New()
	x := g.AddInput(matrix.NewDim(), "x")
	w := g.AddParameter(matrix.NewDim(), "w")
	wx := graph.AddFunction[ops.CwiseMulOp](g, "wx", w, x)
	graph.AddFunction[ops.SumOp](g, "y", wx, w) // w consumed twice

	g.SetInput(x, matrix.Scalar(5))
	g.ParameterValue(w).Set(0, 0, 2)
	g.InvalidateValues()
	g.Forward()
	g.Backward()

	// y = w*x + w, so dy/dw = x + 1 = 6, dy/dx = w = 2.
	if got := g.Gradient(w).At(0, 0); got != 6 {
		t.Errorf("Gradient(w) = %v, want 6", got)
	}
	if got := g.Gradient(x).At(0, 0); got != 2 {
		t.Errorf("Gradient(x) = %v, want 2", got)
	}
}

func TestParameters(t *testing.T) {
	g, _, _, _ := buildChain(t)
	params := g.Parameters()
	if len(params) != 3 {
		t.Fatalf("Parameters() = %v, want 3 entries", params)
	}
	for _, i := range params {
		if !g.Edge(i).Function().HasParameters() {
			t.Errorf("node %d listed as parameter but HasParameters is false", i)
		}
	}
}

func TestParameterValue_RejectsNonParameter(t *testing.T) {
	g := graph.New()
	x := g.AddInput(matrix.NewDim(), "x")
	defer func() {
		if recover() == nil {
			t.Fatal("ParameterValue on an input did not panic")
		}
	}()
	g.ParameterValue(x)
}

func TestSetInput_Rejections(t *testing.T) {
	g := graph.New()
	x := g.AddInput(matrix.NewDim(2), "x")
	w := g.AddParameter(matrix.NewDim(2), "w")

	t.Run("wrong shape", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("SetInput with wrong shape did not panic")
			}
		}()
		g.SetInput(x, matrix.Scalar(1))
	})
	t.Run("not an input", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("SetInput on a parameter did not panic")
			}
		}()
		g.SetInput(w, matrix.FromSlice(matrix.NewDim(2), []float64{1, 2}))
	})
}

func TestForward_UnsetInputPanics(t *testing.T) {
	g := graph.New()
	g.AddInput(matrix.NewDim(), "x")
	defer func() {
		if recover() == nil {
			t.Fatal("Forward over an unset input did not panic")
		}
	}()
	g.Forward()
}

func TestParameterInit_SmallMagnitude(t *testing.T) {
	matrix.Seed(99)
	g := graph.New()
	w := g.AddParameter(matrix.NewDim(8, 8), "w")
	values := g.ParameterValue(w)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if v := math.Abs(values.At(i, j)); v > 0.08 {
				t.Fatalf("parameter entry %v exceeds init scale 0.08", v)
			}
		}
	}
}
