package optim

import "github.com/hypergrad-ml/hypergrad/internal/graph"

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	w = w - lr * g
//
// Update rule with momentum:
//
//	v = momentum * v + g
//	w = w - lr * v
type SGD struct {
	g          *graph.Hypergraph
	params     []int
	lr         float64
	momentum   float64
	velocities map[int][]float64 // keyed by parameter node index
}

// SGDConfig configures an SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default: 0.01)
	Momentum float64 // momentum factor (default: 0, range [0, 1))
}

// NewSGD creates an SGD optimizer over every trainable parameter of g.
func NewSGD(g *graph.Hypergraph, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		g:          g,
		params:     g.Parameters(),
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[int][]float64),
	}
}

// Step applies one gradient-descent update to every parameter and marks the
// graph's cached values stale.
func (s *SGD) Step() {
	for _, p := range collect(s.g, s.params) {
		if s.momentum == 0 {
			for k, gk := range p.grad {
				p.values[k] -= s.lr * gk
			}
			continue
		}
		v := s.velocities[p.node]
		if v == nil {
			v = make([]float64, len(p.values))
			s.velocities[p.node] = v
		}
		for k, gk := range p.grad {
			v[k] = s.momentum*v[k] + gk
			p.values[k] -= s.lr * v[k]
		}
	}
	s.g.InvalidateValues()
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 { return s.lr }

// SetLR replaces the learning rate.
func (s *SGD) SetLR(lr float64) { s.lr = lr }
