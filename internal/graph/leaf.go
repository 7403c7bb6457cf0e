package graph

import (
	"fmt"

	"github.com/hypergrad-ml/hypergrad/internal/matrix"
)

// ParameterLeaf is the zero-arity function backing a trainable parameter.
// It owns the parameter's storage; optimizers mutate Values in place and the
// next Forward picks the new values up.
type ParameterLeaf struct {
	dim    matrix.Dim
	values *matrix.Matrix
}

// NewParameterLeaf creates a parameter leaf with randomly initialized values
// (uniform in ±0.08, per matrix.Random).
func NewParameterLeaf(d matrix.Dim) *ParameterLeaf {
	return &ParameterLeaf{dim: d, values: matrix.Random(d)}
}

// Dim returns the declared shape.
func (p *ParameterLeaf) Dim() matrix.Dim { return p.dim }

// Values returns the mutable parameter storage.
func (p *ParameterLeaf) Values() *matrix.Matrix { return p.values }

// Forward returns a copy of the current parameter values.
func (p *ParameterLeaf) Forward(xs []*matrix.Matrix) *matrix.Matrix {
	if len(xs) != 0 {
		panic("graph: parameter leaf takes no arguments")
	}
	return matrix.Clone(p.values)
}

// Backward panics: a leaf has no arguments to distribute gradient to.
func (p *ParameterLeaf) Backward(xs []*matrix.Matrix, fx, dEdf *matrix.Matrix, i int) *matrix.Matrix {
	panic("graph: Backward called on a parameter leaf")
}

// HasParameters reports true: this leaf is trainable.
func (p *ParameterLeaf) HasParameters() bool { return true }

// Describe renders the leaf for debug output.
func (p *ParameterLeaf) Describe(args []string) string {
	return fmt.Sprintf("parameter %s", p.dim)
}

// InputLeaf is the zero-arity function backing an externally supplied input.
// Its value is a constant for differentiation; Backward never updates it.
type InputLeaf struct {
	dim    matrix.Dim
	values *matrix.Matrix // nil until Hypergraph.SetInput supplies a value
}

// NewInputLeaf creates an input leaf with no value yet.
func NewInputLeaf(d matrix.Dim) *InputLeaf {
	return &InputLeaf{dim: d}
}

// Dim returns the declared shape.
func (in *InputLeaf) Dim() matrix.Dim { return in.dim }

// Set replaces the input value. Panics if m does not match the declared
// shape.
func (in *InputLeaf) Set(m *matrix.Matrix) {
	if got := matrix.DimOf(m); got != in.dim {
		panic(fmt.Sprintf("graph: input declared %s, got value %s", in.dim, got))
	}
	in.values = matrix.Clone(m)
}

// Forward returns a copy of the supplied value. Panics if the value was
// never supplied; reading an unset input is a call-order violation, not a
// silent zero.
func (in *InputLeaf) Forward(xs []*matrix.Matrix) *matrix.Matrix {
	if len(xs) != 0 {
		panic("graph: input leaf takes no arguments")
	}
	if in.values == nil {
		panic("graph: Forward reached an input with no value; call SetInput first")
	}
	return matrix.Clone(in.values)
}

// Backward panics: a leaf has no arguments to distribute gradient to.
func (in *InputLeaf) Backward(xs []*matrix.Matrix, fx, dEdf *matrix.Matrix, i int) *matrix.Matrix {
	panic("graph: Backward called on an input leaf")
}

// HasParameters reports false: inputs are constants for differentiation.
func (in *InputLeaf) HasParameters() bool { return false }

// Describe renders the leaf for debug output.
func (in *InputLeaf) Describe(args []string) string {
	return fmt.Sprintf("input %s", in.dim)
}
