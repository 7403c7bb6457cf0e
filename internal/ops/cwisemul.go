package ops

import "github.com/hypergrad-ml/hypergrad/internal/matrix"

// CwiseMulOp computes the elementwise (Hadamard) product of its two
// same-shaped arguments.
//
// Backward pass:
//   - d(a∘b)/da = dEdf ∘ b
//   - d(a∘b)/db = dEdf ∘ a
type CwiseMulOp struct{}

// Forward returns xs[0] ∘ xs[1].
func (CwiseMulOp) Forward(xs []*matrix.Matrix) *matrix.Matrix {
	var out matrix.Matrix
	out.MulElem(xs[0], xs[1])
	return &out
}

// Backward returns the gradient for argument i.
func (CwiseMulOp) Backward(xs []*matrix.Matrix, fx, dEdf *matrix.Matrix, i int) *matrix.Matrix {
	var out matrix.Matrix
	switch i {
	case 0:
		out.MulElem(dEdf, xs[1])
	case 1:
		out.MulElem(dEdf, xs[0])
	default:
		panic("ops: CwiseMul has exactly two arguments")
	}
	return &out
}

// HasParameters reports false.
func (CwiseMulOp) HasParameters() bool { return false }

// Describe renders "a .* b".
func (CwiseMulOp) Describe(args []string) string {
	return args[0] + " .* " + args[1]
}
