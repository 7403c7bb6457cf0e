package optim

import (
	"math"

	"github.com/hypergrad-ml/hypergrad/internal/graph"
)

// Adam implements the Adam (adaptive moment estimation) optimizer with bias
// correction.
//
// Update rule, per element, with t the step count:
//
//	m = beta1*m + (1-beta1)*g
//	v = beta2*v + (1-beta2)*g²
//	mHat = m / (1 - beta1^t)
//	vHat = v / (1 - beta2^t)
//	w = w - lr * mHat / (sqrt(vHat) + eps)
type Adam struct {
	g      *graph.Hypergraph
	params []int
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	step   int

	// first and second moment estimates, keyed by parameter node index
	m map[int][]float64
	v map[int][]float64
}

// AdamConfig configures an Adam optimizer.
type AdamConfig struct {
	LR    float64    // learning rate (default: 0.001)
	Betas [2]float64 // moment decay rates (default: 0.9, 0.999)
	Eps   float64    // numerical stability term (default: 1e-8)
}

// NewAdam creates an Adam optimizer over every trainable parameter of g.
func NewAdam(g *graph.Hypergraph, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas == [2]float64{} {
		config.Betas = [2]float64{0.9, 0.999}
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		g:      g,
		params: g.Parameters(),
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[int][]float64),
		v:      make(map[int][]float64),
	}
}

// Step applies one bias-corrected Adam update to every parameter and marks
// the graph's cached values stale.
func (a *Adam) Step() {
	a.step++
	c1 := 1 - math.Pow(a.beta1, float64(a.step))
	c2 := 1 - math.Pow(a.beta2, float64(a.step))

	for _, p := range collect(a.g, a.params) {
		m := a.m[p.node]
		v := a.v[p.node]
		if m == nil {
			m = make([]float64, len(p.values))
			v = make([]float64, len(p.values))
			a.m[p.node] = m
			a.v[p.node] = v
		}
		for k, gk := range p.grad {
			m[k] = a.beta1*m[k] + (1-a.beta1)*gk
			v[k] = a.beta2*v[k] + (1-a.beta2)*gk*gk
			mHat := m[k] / c1
			vHat := v[k] / c2
			p.values[k] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
		}
	}
	a.g.InvalidateValues()
}

// LR returns the current learning rate.
func (a *Adam) LR() float64 { return a.lr }

// SetLR replaces the learning rate.
func (a *Adam) SetLR(lr float64) { a.lr = lr }
