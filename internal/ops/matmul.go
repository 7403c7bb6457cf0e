package ops

import "github.com/hypergrad-ml/hypergrad/internal/matrix"

// MatMulOp computes the matrix product of its two arguments.
//
// Backward pass:
//   - d(A*B)/dA = dEdf * Bᵀ
//   - d(A*B)/dB = Aᵀ * dEdf
type MatMulOp struct{}

// Forward returns xs[0] * xs[1].
func (MatMulOp) Forward(xs []*matrix.Matrix) *matrix.Matrix {
	var out matrix.Matrix
	out.Mul(xs[0], xs[1])
	return &out
}

// Backward returns the gradient for argument i.
func (MatMulOp) Backward(xs []*matrix.Matrix, fx, dEdf *matrix.Matrix, i int) *matrix.Matrix {
	var out matrix.Matrix
	switch i {
	case 0:
		out.Mul(dEdf, xs[1].T())
	case 1:
		out.Mul(xs[0].T(), dEdf)
	default:
		panic("ops: MatMul has exactly two arguments")
	}
	return &out
}

// HasParameters reports false.
func (MatMulOp) HasParameters() bool { return false }

// Describe renders "a * b".
func (MatMulOp) Describe(args []string) string {
	return args[0] + " * " + args[1]
}
