package ops

import (
	"math"

	"github.com/hypergrad-ml/hypergrad/internal/matrix"
)

// SigmoidOp applies the logistic sigmoid σ(x) = 1/(1+exp(-x)) elementwise.
//
// Backward: d(σ(x))/dx = σ(x)(1 - σ(x)), computed from the cached output fx.
type SigmoidOp struct{}

// Forward returns σ(x) elementwise.
func (SigmoidOp) Forward(xs []*matrix.Matrix) *matrix.Matrix {
	var out matrix.Matrix
	out.Apply(func(_, _ int, v float64) float64 { return 1 / (1 + math.Exp(-v)) }, xs[0])
	return &out
}

// Backward returns dEdf ∘ fx ∘ (1 - fx).
func (SigmoidOp) Backward(xs []*matrix.Matrix, fx, dEdf *matrix.Matrix, i int) *matrix.Matrix {
	var deriv matrix.Matrix
	deriv.Apply(func(_, _ int, v float64) float64 { return v * (1 - v) }, fx)
	var out matrix.Matrix
	out.MulElem(dEdf, &deriv)
	return &out
}

// HasParameters reports false.
func (SigmoidOp) HasParameters() bool { return false }

// Describe renders "σ(a)".
func (SigmoidOp) Describe(args []string) string {
	return "sigmoid(" + args[0] + ")"
}
