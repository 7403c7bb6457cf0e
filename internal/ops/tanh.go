package ops

import (
	"math"

	"github.com/hypergrad-ml/hypergrad/internal/matrix"
)

// TanhOp applies the hyperbolic tangent elementwise.
//
// Backward: d(tanh(x))/dx = 1 - tanh²(x). The derivative is computed from
// the already-cached output fx, not from the input.
type TanhOp struct{}

// Forward returns tanh(x) elementwise.
func (TanhOp) Forward(xs []*matrix.Matrix) *matrix.Matrix {
	var out matrix.Matrix
	out.Apply(func(_, _ int, v float64) float64 { return math.Tanh(v) }, xs[0])
	return &out
}

// Backward returns dEdf ∘ (1 - fx²).
func (TanhOp) Backward(xs []*matrix.Matrix, fx, dEdf *matrix.Matrix, i int) *matrix.Matrix {
	var deriv matrix.Matrix
	deriv.Apply(func(_, _ int, v float64) float64 { return 1 - v*v }, fx)
	var out matrix.Matrix
	out.MulElem(dEdf, &deriv)
	return &out
}

// HasParameters reports false.
func (TanhOp) HasParameters() bool { return false }

// Describe renders "tanh(a)".
func (TanhOp) Describe(args []string) string {
	return "tanh(" + args[0] + ")"
}
