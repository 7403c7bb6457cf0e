package ops

import "github.com/hypergrad-ml/hypergrad/internal/matrix"

// ReLUOp applies the rectified linear unit max(0, x) elementwise.
//
// Backward: gradient passes through where the input was positive and is
// zero elsewhere. The derivative at exactly zero is taken as zero.
type ReLUOp struct{}

// Forward returns max(0, x) elementwise.
func (ReLUOp) Forward(xs []*matrix.Matrix) *matrix.Matrix {
	var out matrix.Matrix
	out.Apply(func(_, _ int, v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	}, xs[0])
	return &out
}

// Backward returns dEdf masked by x > 0.
func (ReLUOp) Backward(xs []*matrix.Matrix, fx, dEdf *matrix.Matrix, i int) *matrix.Matrix {
	x := xs[0]
	var out matrix.Matrix
	out.Apply(func(r, c int, g float64) float64 {
		if x.At(r, c) > 0 {
			return g
		}
		return 0
	}, dEdf)
	return &out
}

// HasParameters reports false.
func (ReLUOp) HasParameters() bool { return false }

// Describe renders "relu(a)".
func (ReLUOp) Describe(args []string) string {
	return "relu(" + args[0] + ")"
}
