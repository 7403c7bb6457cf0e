package ops

import (
	"strings"

	"github.com/hypergrad-ml/hypergrad/internal/matrix"
)

// SumOp computes the elementwise sum of one or more same-shaped arguments.
//
// Backward: d(Σx)/dx_i = 1, so the output gradient flows unchanged to every
// argument.
type SumOp struct{}

// Forward returns xs[0] + xs[1] + ... + xs[n-1].
func (SumOp) Forward(xs []*matrix.Matrix) *matrix.Matrix {
	if len(xs) == 0 {
		panic("ops: Sum needs at least one argument")
	}
	out := matrix.Clone(xs[0])
	for _, x := range xs[1:] {
		out.Add(out, x)
	}
	return out
}

// Backward returns dEdf for every argument.
func (SumOp) Backward(xs []*matrix.Matrix, fx, dEdf *matrix.Matrix, i int) *matrix.Matrix {
	return matrix.Clone(dEdf)
}

// HasParameters reports false.
func (SumOp) HasParameters() bool { return false }

// Describe renders "a + b + ...".
func (SumOp) Describe(args []string) string {
	return strings.Join(args, " + ")
}
