// Package ops provides the concrete differentiable functions applied by the
// hypergraph. Every type here implements graph.Function: a deterministic
// Forward over the argument values and a Backward returning the chain-rule
// contribution for one argument.
//
// Supported operations:
//   - SumOp: elementwise sum of n arguments (d(Σx)/dx_i = 1)
//   - NegateOp: elementwise negation
//   - MatMulOp: matrix product (d(A*B)/dA = dEdf*Bᵀ, d(A*B)/dB = Aᵀ*dEdf)
//   - CwiseMulOp: elementwise (Hadamard) product
//   - TanhOp, SigmoidOp, ReLUOp: elementwise nonlinearities
//   - SquareOp: elementwise square
//   - ConcatOp: vertical concatenation of n arguments
//   - SquaredDistanceOp: scalar Σ(a-b)², the usual regression loss
//
// Shape mismatches are contract violations and panic (gonum's own dimension
// panics, plus explicit checks where gonum would be lenient). None of these
// operations own trainable parameters.
package ops
