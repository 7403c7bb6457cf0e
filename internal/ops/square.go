package ops

import "github.com/hypergrad-ml/hypergrad/internal/matrix"

// SquareOp squares its single argument elementwise.
//
// Backward: d(x²)/dx = 2x.
type SquareOp struct{}

// Forward returns x ∘ x.
func (SquareOp) Forward(xs []*matrix.Matrix) *matrix.Matrix {
	var out matrix.Matrix
	out.MulElem(xs[0], xs[0])
	return &out
}

// Backward returns dEdf ∘ 2x.
func (SquareOp) Backward(xs []*matrix.Matrix, fx, dEdf *matrix.Matrix, i int) *matrix.Matrix {
	var twoX matrix.Matrix
	twoX.Scale(2, xs[0])
	var out matrix.Matrix
	out.MulElem(dEdf, &twoX)
	return &out
}

// HasParameters reports false.
func (SquareOp) HasParameters() bool { return false }

// Describe renders "a^2".
func (SquareOp) Describe(args []string) string {
	return args[0] + "^2"
}
