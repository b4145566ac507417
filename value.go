package main

// ===========================================================================
// WHAT'S GOING ON HERE
// ===========================================================================
//
// This file defines Value, the node type of the computation graph that the
// whole engine is built around.
//
// INTENTION:
// Every number that participates in a differentiable computation is wrapped
// in a Value. Each arithmetic operation (see ops.go) produces a new Value
// that remembers which Values it was computed from. The result is a DAG
// built incrementally during the forward pass, which backward.go can then
// walk in reverse to compute gradients.
//
// A Value is a "number with memory":
//   - data: the scalar computed during the forward pass
//   - grad: d(root)/d(this), accumulated by the backward pass
//   - prev: the operand Values this node was computed from (empty for leaves)
//   - op:   which operation produced it ("+", "*", "tanh", ...) - diagnostics
//           only, never consulted for gradient dispatch
//   - backward: a closure, attached at construction time, that pushes this
//           node's grad into its operands' grads via the chain rule
//
// OWNERSHIP:
// A Value may feed into many downstream nodes (the same weight used by every
// neuron of a layer, the same term appearing twice in an expression), so
// nodes are shared via *Value pointers and the garbage collector owns the
// graph. All consumers observe the same data/grad mutations. The graph is a
// DAG by construction: operands always point at nodes that already existed,
// so cycles cannot be formed.
//
// Values are not safe for concurrent use. The engine assumes exclusive
// single-threaded access for the duration of a forward+backward+update
// cycle.
//
// ===========================================================================

import (
	"fmt"
)

// Value is a scalar node in the computation graph.
type Value struct {
	data     float64  // forward value
	grad     float64  // d(root)/d(this), filled in by Backward
	prev     []*Value // operands that produced this node, in order
	op       string   // producing operation, "" for leaves
	label    string   // human-readable name for diagnostics
	backward func()   // chain-rule rule attached by the producing operation
}

// NewValue creates a leaf node: a plain input or parameter with no operands.
// An optional label names the node in diagnostics and graph drawings.
func NewValue(data float64, label ...string) *Value {
	v := &Value{data: data}
	if len(label) > 0 {
		v.label = label[0]
	}
	return v
}

// newResult creates a non-leaf node produced by op from the given operands.
// The caller attaches the backward closure. The label is derived from the
// operand labels when they are all named, so small hand-built expressions
// draw nicely; anonymous graphs (training loops) skip the bookkeeping.
func newResult(data float64, op string, operands ...*Value) *Value {
	out := &Value{
		data: data,
		prev: operands,
		op:   op,
	}
	out.label = deriveLabel(op, operands)
	return out
}

// deriveLabel builds a compound label like "(x1 * w1)" or "tanh(n)".
// Returns "" unless every operand carries a label.
func deriveLabel(op string, operands []*Value) string {
	for _, o := range operands {
		if o.label == "" {
			return ""
		}
	}
	switch len(operands) {
	case 1:
		return fmt.Sprintf("%s(%s)", op, operands[0].label)
	case 2:
		return fmt.Sprintf("(%s %s %s)", operands[0].label, op, operands[1].label)
	}
	return ""
}

// Data returns the forward value stored at this node.
func (v *Value) Data() float64 { return v.data }

// Grad returns the gradient accumulated at this node.
// Always defined: 0.0 until a backward pass reaches the node.
func (v *Value) Grad() float64 { return v.grad }

// Label returns the node's diagnostic name ("" if unnamed).
func (v *Value) Label() string { return v.label }

// Op returns the tag of the operation that produced this node,
// or "" for leaf nodes. Diagnostics only.
func (v *Value) Op() string { return v.op }

// Operands returns the node's direct inputs, in the order the producing
// operation received them. The returned slice must not be mutated.
func (v *Value) Operands() []*Value { return v.prev }

// IsLeaf reports whether the node has no operands (an input or parameter).
func (v *Value) IsLeaf() bool { return len(v.prev) == 0 }

// SetLabel renames the node for diagnostics.
func (v *Value) SetLabel(label string) { v.label = label }

// SetGrad overwrites the node's gradient. Backward seeds the root with
// this; tests use it to probe accumulation behavior.
func (v *Value) SetGrad(grad float64) { v.grad = grad }

// SetData overwrites the forward value of a leaf node. This is how
// weight updates mutate parameters between training steps, bypassing the
// graph. Panics on non-leaf nodes: intermediate values are derived and
// overwriting one would desynchronize the graph.
func (v *Value) SetData(data float64) {
	if !v.IsLeaf() {
		panic(fmt.Sprintf("scalargrad: SetData on non-leaf node %q (op %s)", v.label, v.op))
	}
	v.data = data
}

// String renders the node for debugging.
func (v *Value) String() string {
	if v.label != "" {
		return fmt.Sprintf("Value(data=%.4f, grad=%.4f, op=%q, label=%q)", v.data, v.grad, v.op, v.label)
	}
	return fmt.Sprintf("Value(data=%.4f, grad=%.4f, op=%q)", v.data, v.grad, v.op)
}
