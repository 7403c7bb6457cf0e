// Package matrix provides the dense value type and shape algebra used by the
// computation graph.
//
// Matrix is an alias for gonum's mat.Dense, so every gonum operation
// (Add, Mul, MulElem, Apply, ...) is available directly on the values the
// graph stores. The package adds Dim-sized constructors and a seedable
// random initializer for parameter leaves.
package matrix

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense real-valued 2D container.
type Matrix = mat.Dense

// defaultScale keeps randomly initialized parameters small so nonlinearities
// start in their near-linear regime.
const defaultScale = 0.08

// rng drives Random and RandomScaled. The graph is single-threaded, so no
// locking beyond rand.Rand's own.
var rng = rand.New(rand.NewSource(1))

// Seed reseeds the random initializer, for reproducible parameter draws.
func Seed(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

// Zero returns a d-shaped matrix of zeros.
func Zero(d Dim) *Matrix {
	return mat.NewDense(d.Rows, d.Cols, nil)
}

// Ones returns a d-shaped matrix of ones.
func Ones(d Dim) *Matrix {
	data := make([]float64, d.Elems())
	for i := range data {
		data[i] = 1
	}
	return mat.NewDense(d.Rows, d.Cols, data)
}

// Random returns a d-shaped matrix with entries uniform in ±0.08.
func Random(d Dim) *Matrix {
	return RandomScaled(d, defaultScale)
}

// RandomScaled returns a d-shaped matrix with entries uniform in ±scale.
func RandomScaled(d Dim, scale float64) *Matrix {
	data := make([]float64, d.Elems())
	for i := range data {
		data[i] = (2*rng.Float64() - 1) * scale
	}
	return mat.NewDense(d.Rows, d.Cols, data)
}

// FromSlice builds a d-shaped matrix from row-major data.
// Panics if len(data) != d.Elems().
func FromSlice(d Dim, data []float64) *Matrix {
	if len(data) != d.Elems() {
		panic(fmt.Sprintf("matrix: FromSlice got %d values for shape %v", len(data), d))
	}
	return mat.NewDense(d.Rows, d.Cols, append([]float64(nil), data...))
}

// Scalar returns a 1x1 matrix holding v.
func Scalar(v float64) *Matrix {
	return mat.NewDense(1, 1, []float64{v})
}

// Clone returns an independent copy of m.
func Clone(m *Matrix) *Matrix {
	return mat.DenseCopyOf(m)
}

// DimOf returns the shape of m.
func DimOf(m *Matrix) Dim {
	r, c := m.Dims()
	return Dim{Rows: r, Cols: c}
}
