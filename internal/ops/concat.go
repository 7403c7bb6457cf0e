package ops

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/hypergrad-ml/hypergrad/internal/matrix"
)

// ConcatOp stacks its arguments vertically. All arguments must have the same
// number of columns.
//
// Backward: the gradient for argument i is the row block of dEdf at the rows
// that argument occupies in the output.
type ConcatOp struct{}

// Forward returns the arguments stacked top to bottom.
func (ConcatOp) Forward(xs []*matrix.Matrix) *matrix.Matrix {
	if len(xs) == 0 {
		panic("ops: Concat needs at least one argument")
	}
	_, cols := xs[0].Dims()
	rows := 0
	for _, x := range xs {
		r, c := x.Dims()
		if c != cols {
			panic(fmt.Sprintf("ops: Concat arguments must share columns, got %d and %d", cols, c))
		}
		rows += r
	}
	out := mat.NewDense(rows, cols, nil)
	off := 0
	for _, x := range xs {
		r, _ := x.Dims()
		out.Slice(off, off+r, 0, cols).(*mat.Dense).Copy(x)
		off += r
	}
	return out
}

// Backward returns the row block of dEdf corresponding to argument i.
func (ConcatOp) Backward(xs []*matrix.Matrix, fx, dEdf *matrix.Matrix, i int) *matrix.Matrix {
	off := 0
	for _, x := range xs[:i] {
		r, _ := x.Dims()
		off += r
	}
	r, c := xs[i].Dims()
	return mat.DenseCopyOf(dEdf.Slice(off, off+r, 0, c))
}

// HasParameters reports false.
func (ConcatOp) HasParameters() bool { return false }

// Describe renders "concat(a, b, ...)".
func (ConcatOp) Describe(args []string) string {
	return "concat(" + strings.Join(args, ", ") + ")"
}
