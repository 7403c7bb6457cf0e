// Copyright 2025 The Hypergrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph is the public surface of the hypergrad computation graph:
// reverse-mode automatic differentiation over an explicit hypergraph of
// functions applied to dense matrices.
//
// # Model
//
// Nodes represent values and edges represent functions of multiple values.
// An edge has one head (the node it produces) and zero or more tails (its
// arguments); parameters and inputs are functions of zero arguments. Nodes
// and edges live in two parallel index-aligned slices, and an edge may only
// reference strictly lower node indices, so construction order is always a
// valid topological order. Forward evaluates edges in one ascending scan;
// Backward distributes gradients in one descending scan, seeding the last
// node (a 1x1 loss) with 1 and accumulating chain-rule contributions into
// every ancestor.
//
// # Basic Usage
//
//	import (
//	    "github.com/hypergrad-ml/hypergrad/graph"
//	    "github.com/hypergrad-ml/hypergrad/matrix"
//	    "github.com/hypergrad-ml/hypergrad/ops"
//	)
//
//	g := graph.New()
//	x := g.AddInput(matrix.NewDim(2), "x")
//	y := g.AddInput(matrix.NewDim(), "y")
//	w := g.AddParameter(matrix.NewDim(1, 2), "W")
//	wx := graph.AddFunction[ops.MatMulOp](g, "Wx", w, x)
//	graph.AddFunction[ops.SquaredDistanceOp](g, "loss", wx, y)
//
//	g.SetInput(x, matrix.FromSlice(matrix.NewDim(2), []float64{1, -1}))
//	g.SetInput(y, matrix.Scalar(0.5))
//
//	loss := g.Forward() // 1x1 loss value
//	g.Backward()        // gradients for every node
//	_ = g.Gradient(w)   // dloss/dW, ready for an optimizer
//
// # Contract violations
//
// Shape mismatches, out-of-range indices, and illegal call orders (Backward
// before Forward, reading an unset input) are programmer errors and panic;
// they are never returned as recoverable errors.
package graph
