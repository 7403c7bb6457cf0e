// Copyright 2025 The Hypergrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the concrete differentiable functions applied by
// hypergrad graphs. Every type implements graph.Function and is stateless,
// so the graph.AddFunction generic factory can instantiate it:
//
//	h := graph.AddFunction[ops.TanhOp](g, "h", pre)
package ops

import "github.com/hypergrad-ml/hypergrad/internal/ops"

// SumOp computes the elementwise sum of one or more same-shaped arguments.
type SumOp = ops.SumOp

// NegateOp computes the elementwise negation of its argument.
type NegateOp = ops.NegateOp

// MatMulOp computes the matrix product of its two arguments.
type MatMulOp = ops.MatMulOp

// CwiseMulOp computes the elementwise (Hadamard) product of its two
// arguments.
type CwiseMulOp = ops.CwiseMulOp

// TanhOp applies the hyperbolic tangent elementwise.
type TanhOp = ops.TanhOp

// SigmoidOp applies the logistic sigmoid elementwise.
type SigmoidOp = ops.SigmoidOp

// ReLUOp applies the rectified linear unit elementwise.
type ReLUOp = ops.ReLUOp

// SquareOp squares its argument elementwise.
type SquareOp = ops.SquareOp

// ConcatOp stacks its arguments vertically.
type ConcatOp = ops.ConcatOp

// SquaredDistanceOp computes the squared Euclidean distance between its two
// arguments as a 1x1 matrix.
type SquaredDistanceOp = ops.SquaredDistanceOp
