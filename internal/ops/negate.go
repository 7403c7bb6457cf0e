package ops

import "github.com/hypergrad-ml/hypergrad/internal/matrix"

// NegateOp computes the elementwise negation of its single argument.
type NegateOp struct{}

// Forward returns -x.
func (NegateOp) Forward(xs []*matrix.Matrix) *matrix.Matrix {
	var out matrix.Matrix
	out.Scale(-1, xs[0])
	return &out
}

// Backward returns -dEdf.
func (NegateOp) Backward(xs []*matrix.Matrix, fx, dEdf *matrix.Matrix, i int) *matrix.Matrix {
	var out matrix.Matrix
	out.Scale(-1, dEdf)
	return &out
}

// HasParameters reports false.
func (NegateOp) HasParameters() bool { return false }

// Describe renders "-a".
func (NegateOp) Describe(args []string) string {
	return "-" + args[0]
}
