// Package optim implements optimization algorithms over a hypergraph's
// trainable parameter leaves.
//
// An optimizer is bound to one Hypergraph at construction and remembers its
// parameter node indices. Each Step reads the gradients left by Backward,
// mutates the parameter storage in place, and invalidates the graph's cached
// values, so the usual training loop is:
//
//	opt := optim.NewSGD(g, optim.SGDConfig{LR: 0.1})
//	for i := 0; i < steps; i++ {
//	    loss := g.Forward()
//	    g.Backward()
//	    opt.Step()
//	}
package optim

import "github.com/hypergrad-ml/hypergrad/internal/graph"

// Optimizer is the interface all optimization algorithms implement.
type Optimizer interface {
	// Step applies one update from the gradients currently held by the
	// graph's parameter nodes, then invalidates cached values. Panics if
	// Backward has not populated the gradients.
	Step()

	// LR returns the current learning rate.
	LR() float64

	// SetLR replaces the learning rate, for external schedules.
	SetLR(lr float64)
}

// paramState pairs one parameter's mutable storage with its current
// gradient, both as flat row-major data.
type paramState struct {
	node   int
	values []float64
	grad   []float64
}

// collect snapshots every parameter's storage and gradient, panicking on any
// parameter whose gradient slot is still nil (Step before Backward).
func collect(g *graph.Hypergraph, params []int) []paramState {
	out := make([]paramState, 0, len(params))
	for _, i := range params {
		grad := g.Gradient(i)
		if grad == nil {
			panic("optim: Step before Backward populated parameter gradients")
		}
		out = append(out, paramState{
			node:   i,
			values: g.ParameterValue(i).RawMatrix().Data,
			grad:   grad.RawMatrix().Data,
		})
	}
	return out
}
