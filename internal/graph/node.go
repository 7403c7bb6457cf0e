package graph

import "github.com/hypergrad-ml/hypergrad/internal/matrix"

// Node is an SSA variable: it is written exactly once, by the edge that
// computes it. It caches the forward value and the accumulated gradient and
// records which edges produce and consume it, all by index.
type Node struct {
	inEdge   int   // index of the edge that computes this node
	outEdges []int // indices of the edges that consume this node, in creation order

	value    *matrix.Matrix // f(x_1, ..., x_n); valid after Forward
	gradient *matrix.Matrix // dE/df; valid after Backward, reset on every Backward

	name string // diagnostic only
}

// InEdge returns the index of the edge that computes this node.
func (n *Node) InEdge() int { return n.inEdge }

// OutEdges returns the indices of the edges that consume this node,
// in the order those edges were created.
func (n *Node) OutEdges() []int {
	return append([]int(nil), n.outEdges...)
}

// Value returns the cached forward value, or nil before the first Forward.
func (n *Node) Value() *matrix.Matrix { return n.value }

// Gradient returns the accumulated gradient dE/dvalue, or nil before the
// first Backward.
func (n *Node) Gradient() *matrix.Matrix { return n.gradient }

// Name returns the diagnostic name given at construction. It has no
// computational effect.
func (n *Node) Name() string { return n.name }
