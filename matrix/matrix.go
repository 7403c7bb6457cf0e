// Copyright 2025 The Hypergrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense value type and shape algebra used by
// hypergrad graphs.
//
// Matrix is gonum's mat.Dense, so values interoperate directly with the
// gonum ecosystem.
//
// Example:
//
//	d := matrix.NewDim(3, 2)         // 3x2
//	w := matrix.Random(d)            // uniform in ±0.08
//	x := matrix.FromSlice(matrix.NewDim(2), []float64{1, -1})
//	out := matrix.Mul(d, matrix.DimOf(x)) // (3,1); panics on mismatch
package matrix

import "github.com/hypergrad-ml/hypergrad/internal/matrix"

// Dim describes a matrix shape: Rows x Cols.
type Dim = matrix.Dim

// Matrix is a dense real-valued 2D container (gonum mat.Dense).
type Matrix = matrix.Matrix

// NewDim constructs a Dim: NewDim() is 1x1, NewDim(r) is rx1, NewDim(r, c)
// is rxc.
func NewDim(dims ...int) Dim {
	return matrix.NewDim(dims...)
}

// Mul returns the shape of the product a*b; panics unless a.Cols == b.Rows.
func Mul(a, b Dim) Dim {
	return matrix.Mul(a, b)
}

// Seed reseeds the random initializer, for reproducible parameter draws.
func Seed(seed int64) {
	matrix.Seed(seed)
}

// Zero returns a d-shaped matrix of zeros.
func Zero(d Dim) *Matrix {
	return matrix.Zero(d)
}

// Ones returns a d-shaped matrix of ones.
func Ones(d Dim) *Matrix {
	return matrix.Ones(d)
}

// Random returns a d-shaped matrix with entries uniform in ±0.08.
func Random(d Dim) *Matrix {
	return matrix.Random(d)
}

// RandomScaled returns a d-shaped matrix with entries uniform in ±scale.
func RandomScaled(d Dim, scale float64) *Matrix {
	return matrix.RandomScaled(d, scale)
}

// FromSlice builds a d-shaped matrix from row-major data.
func FromSlice(d Dim, data []float64) *Matrix {
	return matrix.FromSlice(d, data)
}

// Scalar returns a 1x1 matrix holding v.
func Scalar(v float64) *Matrix {
	return matrix.Scalar(v)
}

// Clone returns an independent copy of m.
func Clone(m *Matrix) *Matrix {
	return matrix.Clone(m)
}

// DimOf returns the shape of m.
func DimOf(m *Matrix) Dim {
	return matrix.DimOf(m)
}
