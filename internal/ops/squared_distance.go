package ops

import (
	"gonum.org/v1/gonum/mat"

	"github.com/hypergrad-ml/hypergrad/internal/matrix"
)

// SquaredDistanceOp computes the squared Euclidean distance Σ(a-b)² between
// its two same-shaped arguments, as a 1x1 matrix. It is the canonical
// regression loss for scalar-output graphs.
//
// Backward pass, with s = dEdf(0,0):
//   - dE/da = 2s(a-b)
//   - dE/db = -2s(a-b)
type SquaredDistanceOp struct{}

// Forward returns Σ(a-b)² as a 1x1 matrix.
func (SquaredDistanceOp) Forward(xs []*matrix.Matrix) *matrix.Matrix {
	var diff matrix.Matrix
	diff.Sub(xs[0], xs[1])
	var sq matrix.Matrix
	sq.MulElem(&diff, &diff)
	return matrix.Scalar(mat.Sum(&sq))
}

// Backward returns the gradient for argument i.
func (SquaredDistanceOp) Backward(xs []*matrix.Matrix, fx, dEdf *matrix.Matrix, i int) *matrix.Matrix {
	s := dEdf.At(0, 0)
	var diff matrix.Matrix
	diff.Sub(xs[0], xs[1])
	var out matrix.Matrix
	switch i {
	case 0:
		out.Scale(2*s, &diff)
	case 1:
		out.Scale(-2*s, &diff)
	default:
		panic("ops: SquaredDistance has exactly two arguments")
	}
	return &out
}

// HasParameters reports false.
func (SquaredDistanceOp) HasParameters() bool { return false }

// Describe renders "||a - b||^2".
func (SquaredDistanceOp) Describe(args []string) string {
	return "||" + args[0] + " - " + args[1] + "||^2"
}
