// Copyright 2025 The Hypergrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/hypergrad-ml/hypergrad/internal/graph"
	"github.com/hypergrad-ml/hypergrad/internal/matrix"
)

// Hypergraph is a computation graph of differentiable functions over dense
// matrices. See the package documentation for the construction and
// evaluation protocol.
type Hypergraph = graph.Hypergraph

// Node is an SSA variable holding a cached forward value and an accumulated
// gradient.
type Node = graph.Node

// Edge records one function application: one head node, zero or more
// argument nodes.
type Edge = graph.Edge

// Function is the contract every differentiable operation implements.
type Function = graph.Function

// Describer is the optional formula-rendering extension of Function, used by
// WriteGraphviz.
type Describer = graph.Describer

// ParameterLeaf is the zero-arity function backing a trainable parameter.
type ParameterLeaf = graph.ParameterLeaf

// InputLeaf is the zero-arity function backing an externally supplied input.
type InputLeaf = graph.InputLeaf

// New creates an empty hypergraph.
func New() *Hypergraph {
	return graph.New()
}

// AddFunction appends a node computed by a zero-value instance of the
// function type F applied to the given argument nodes:
//
//	h := graph.AddFunction[ops.TanhOp](g, "h", a)
//
// For functions that carry state, construct the value yourself and use
// Hypergraph.Apply.
func AddFunction[F any, PF interface {
	*F
	Function
}](g *Hypergraph, name string, args ...int) int {
	return graph.AddFunction[F, PF](g, name, args...)
}

// NewParameterLeaf creates a randomly initialized parameter leaf, for use
// with Hypergraph.Apply. AddParameter is the usual entry point.
func NewParameterLeaf(d matrix.Dim) *ParameterLeaf {
	return graph.NewParameterLeaf(d)
}

// NewInputLeaf creates an input leaf with no value yet, for use with
// Hypergraph.Apply. AddInput is the usual entry point.
func NewInputLeaf(d matrix.Dim) *InputLeaf {
	return graph.NewInputLeaf(d)
}
