package graph

// Edge records one application of a Function to an ordered list of argument
// nodes (its tail), producing one result node (its head). An edge with an
// empty tail is a leaf: a parameter or an input.
type Edge struct {
	head int   // index of the node holding the result
	tail []int // argument node indices; every entry is < head
	fn   Function
}

// Head returns the index of the node this edge produces.
func (e *Edge) Head() int { return e.head }

// Tail returns the argument node indices, in argument order.
func (e *Edge) Tail() []int {
	return append([]int(nil), e.tail...)
}

// Arity returns the number of arguments.
func (e *Edge) Arity() int { return len(e.tail) }

// Function returns the function this edge applies.
func (e *Edge) Function() Function { return e.fn }
