// Package graph implements a hypergraph of differentiable functions over
// dense matrices, with reverse-mode automatic differentiation.
//
// Nodes represent intermediate values and edges represent functions of
// multiple values. To represent the fact that a function may have several
// arguments, an edge has a single head and 0, 1, 2, or more tails; constants,
// inputs, and parameters are functions of zero arguments. Given z = f(x, y),
// the values z, x, and y are nodes, and f is an edge whose head is z and
// whose tails are x and y.
//
// Nodes and edges are stored in two parallel, index-aligned slices in
// construction order. An edge may only reference strictly lower node indices,
// so the slices are always a valid topological order: Forward is a single
// ascending scan and Backward a single descending scan, with no cycle
// detection or sorting.
package graph

import "github.com/hypergrad-ml/hypergrad/internal/matrix"

// Function is the contract every differentiable operation implements.
// Concrete implementations live in internal/ops; the two leaf functions
// (parameters and inputs) live in this package.
type Function interface {
	// Forward computes the function of the argument values. It must be
	// deterministic, side-effect-free, and allocate its result; it is called
	// exactly once per edge per Forward pass.
	Forward(xs []*matrix.Matrix) *matrix.Matrix

	// Backward returns dE/d(xs[i]) given that dE/d(fx) = dEdf, where fx is
	// the value Forward produced for the same xs (reverse-mode chain rule,
	// a local Jacobian-vector product). It is called once per consumed
	// argument per Backward pass.
	Backward(xs []*matrix.Matrix, fx, dEdf *matrix.Matrix, i int) *matrix.Matrix

	// HasParameters reports whether this function owns trainable values.
	// True only for parameter leaves.
	HasParameters() bool
}

// Describer is an optional extension a Function may implement to render a
// human-readable formula from the names of its arguments, for example
// "tanh(h)" or "W * x". The Graphviz writer uses it when present and falls
// back to the Go type name.
type Describer interface {
	Describe(args []string) string
}
