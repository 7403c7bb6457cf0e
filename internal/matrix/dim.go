package matrix

import "fmt"

// Dim describes the shape of a dense matrix: Rows x Cols.
//
// Dim is a small value type; pass it by value. Shape algebra is assumed
// statically consistent by the graph builder, so an incompatible
// multiplication is a contract violation, not a recoverable error.
type Dim struct {
	Rows int
	Cols int
}

// NewDim constructs a Dim:
//
//	NewDim()      // 1x1 (scalar)
//	NewDim(r)     // rx1 (column vector)
//	NewDim(r, c)  // rxc
//
// Any other argument count, or a non-positive dimension, panics.
func NewDim(dims ...int) Dim {
	var d Dim
	switch len(dims) {
	case 0:
		d = Dim{Rows: 1, Cols: 1}
	case 1:
		d = Dim{Rows: dims[0], Cols: 1}
	case 2:
		d = Dim{Rows: dims[0], Cols: dims[1]}
	default:
		panic(fmt.Sprintf("matrix: NewDim takes 0, 1, or 2 dimensions, got %d", len(dims)))
	}
	if d.Rows < 1 || d.Cols < 1 {
		panic(fmt.Sprintf("matrix: non-positive dimension %v", d))
	}
	return d
}

// Mul returns the shape of the product a*b.
// Panics unless a.Cols == b.Rows.
func Mul(a, b Dim) Dim {
	if a.Cols != b.Rows {
		panic(fmt.Sprintf("matrix: incompatible dimensions for multiplication: %v * %v", a, b))
	}
	return Dim{Rows: a.Rows, Cols: b.Cols}
}

// Transpose returns the Dim with rows and columns swapped.
func (d Dim) Transpose() Dim {
	return Dim{Rows: d.Cols, Cols: d.Rows}
}

// Elems returns the number of elements, Rows*Cols.
func (d Dim) Elems() int {
	return d.Rows * d.Cols
}

// String renders the shape as "(rows,cols)".
func (d Dim) String() string {
	return fmt.Sprintf("(%d,%d)", d.Rows, d.Cols)
}
