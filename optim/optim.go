// Copyright 2025 The Hypergrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/hypergrad-ml/hypergrad/internal/graph"
	"github.com/hypergrad-ml/hypergrad/internal/optim"
)

// Optimizer is the interface all optimization algorithms implement.
type Optimizer = optim.Optimizer

// SGD (Stochastic Gradient Descent)

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig configures an SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over every trainable parameter of g.
//
// Example:
//
//	opt := optim.NewSGD(g, optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(g *graph.Hypergraph, config SGDConfig) *SGD {
	return optim.NewSGD(g, config)
}

// Adam (Adaptive Moment Estimation)

// Adam implements the Adam optimizer with bias correction.
type Adam = optim.Adam

// AdamConfig configures an Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam optimizer over every trainable parameter of g.
//
// Example:
//
//	opt := optim.NewAdam(g, optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
func NewAdam(g *graph.Hypergraph, config AdamConfig) *Adam {
	return optim.NewAdam(g, config)
}
