// Copyright 2025 The Hypergrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms over a hypergraph's
// trainable parameters.
//
// # Overview
//
// This package contains:
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/hypergrad-ml/hypergrad/graph"
//	    "github.com/hypergrad-ml/hypergrad/optim"
//	)
//
//	g := buildModel()
//	opt := optim.NewAdam(g, optim.AdamConfig{LR: 0.001})
//
//	for i := 0; i < steps; i++ {
//	    loss := g.Forward()
//	    g.Backward()
//	    opt.Step()
//	}
//
// Each Step reads the gradients the last Backward left on the parameter
// nodes, updates the parameter storage in place, and marks the graph's
// cached values stale, so the next Backward requires a fresh Forward.
package optim
