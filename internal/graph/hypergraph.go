package graph

import (
	"fmt"

	"github.com/hypergrad-ml/hypergrad/internal/matrix"
)

// Hypergraph owns every node and edge of one computation graph. The two
// slices are parallel and index-aligned: after any sequence of construction
// calls, len(nodes) == len(edges), edges[i].head == i, and nodes[i].inEdge
// == i. Every tail index of edge i is strictly less than i, so the slices
// are a topological order by construction.
//
// A Hypergraph moves between two states: values stale (after construction,
// SetInput, or InvalidateValues) and values fresh (after Forward). Backward
// is only legal while values are fresh.
//
// A Hypergraph must be used from a single goroutine; construction, Forward,
// and Backward are strictly sequential scans.
type Hypergraph struct {
	nodes []*Node
	edges []*Edge
	fresh bool // cached node values reflect current parameter and input values
}

// New creates an empty hypergraph.
func New() *Hypergraph {
	return &Hypergraph{}
}

// AddParameter appends a trainable parameter leaf of shape d and returns its
// node index. The parameter is initialized with matrix.Random(d); read and
// mutate its storage through ParameterValue.
func (g *Hypergraph) AddParameter(d matrix.Dim, name string) int {
	return g.Apply(NewParameterLeaf(d), name)
}

// AddInput appends an input leaf of shape d and returns its node index. The
// value must be supplied with SetInput before the first Forward.
func (g *Hypergraph) AddInput(d matrix.Dim, name string) int {
	return g.Apply(NewInputLeaf(d), name)
}

// SetInput replaces the value of the input leaf at node i and marks cached
// values stale. Panics if node i is not an input or if m does not match the
// declared shape.
func (g *Hypergraph) SetInput(i int, m *matrix.Matrix) {
	in, ok := g.edge(i).fn.(*InputLeaf)
	if !ok {
		panic(fmt.Sprintf("graph: node %d is not an input", i))
	}
	in.Set(m)
	g.fresh = false
}

// Apply appends a node computed by fn applied to the given argument nodes
// and returns the new node's index. Every argument must be the index of an
// existing node; anything else (negative, out of range, or the about-to-be-
// created index itself) would corrupt the topological order and panics.
func (g *Hypergraph) Apply(fn Function, name string, args ...int) int {
	idx := len(g.nodes)
	for _, a := range args {
		if a < 0 || a >= idx {
			panic(fmt.Sprintf("graph: argument node %d does not exist (graph has %d nodes)", a, idx))
		}
	}
	g.nodes = append(g.nodes, &Node{inEdge: idx, name: name})
	g.edges = append(g.edges, &Edge{head: idx, tail: append([]int(nil), args...), fn: fn})
	for _, a := range args {
		g.nodes[a].outEdges = append(g.nodes[a].outEdges, idx)
	}
	g.fresh = false
	return idx
}

// AddFunction appends a node computed by a zero-value instance of the
// function type F applied to the given argument nodes. It is the generic-
// factory form of Apply, for stateless function types:
//
//	h := graph.AddFunction[ops.TanhOp](g, "h", a)
func AddFunction[F any, PF interface {
	*F
	Function
}](g *Hypergraph, name string, args ...int) int {
	return g.Apply(PF(new(F)), name, args...)
}

// NumNodes returns the number of nodes (always equal to NumEdges).
func (g *Hypergraph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of edges (always equal to NumNodes).
func (g *Hypergraph) NumEdges() int { return len(g.edges) }

// Node returns the node at index i.
func (g *Hypergraph) Node(i int) *Node { return g.node(i) }

// Edge returns the edge at index i.
func (g *Hypergraph) Edge(i int) *Edge { return g.edge(i) }

// Value returns the cached forward value of node i, or nil before Forward.
func (g *Hypergraph) Value(i int) *matrix.Matrix { return g.node(i).value }

// Gradient returns the accumulated gradient of node i, or nil before
// Backward.
func (g *Hypergraph) Gradient(i int) *matrix.Matrix { return g.node(i).gradient }

// Parameters returns the node indices of all trainable parameter leaves, in
// construction order.
func (g *Hypergraph) Parameters() []int {
	var params []int
	for i, e := range g.edges {
		if e.fn.HasParameters() {
			params = append(params, i)
		}
	}
	return params
}

// ParameterValue returns the mutable storage of the parameter leaf at node
// i. Panics if node i is not a parameter. After mutating the returned
// matrix, call InvalidateValues so the next Backward cannot run against
// stale cached values.
func (g *Hypergraph) ParameterValue(i int) *matrix.Matrix {
	p, ok := g.edge(i).fn.(*ParameterLeaf)
	if !ok {
		panic(fmt.Sprintf("graph: node %d is not a parameter", i))
	}
	return p.Values()
}

// InvalidateValues marks cached node values stale. Call it after mutating
// parameter storage outside the graph (optimizers do this on every step).
func (g *Hypergraph) InvalidateValues() {
	g.fresh = false
}

func (g *Hypergraph) node(i int) *Node {
	if i < 0 || i >= len(g.nodes) {
		panic(fmt.Sprintf("graph: node index %d out of range [0,%d)", i, len(g.nodes)))
	}
	return g.nodes[i]
}

func (g *Hypergraph) edge(i int) *Edge {
	if i < 0 || i >= len(g.edges) {
		panic(fmt.Sprintf("graph: edge index %d out of range [0,%d)", i, len(g.edges)))
	}
	return g.edges[i]
}
