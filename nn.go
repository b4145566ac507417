package main

// ===========================================================================
// WHAT'S GOING ON HERE
// ===========================================================================
//
// A small multilayer perceptron built on top of the Value engine. There is
// no autodiff logic in this file: neurons compose Values with the
// operations from ops.go, and training code gets gradients for free from
// Backward. This is the "external collaborator" view of the engine - if
// the Value API is right, a neural network is just arithmetic.
//
// A neuron computes tanh(w . x + b). A layer is a row of neurons sharing
// the same inputs. An MLP chains layers, so MLP(2, [4, 1]) is the classic
// 2-input, 4-hidden, 1-output network that can learn XOR.
//
// Weight initialization draws from a caller-seeded *rand.Rand so training
// runs are reproducible.
//
// ===========================================================================

import (
	"math/rand"
)

// Neuron is a single unit: weights, a bias, and a tanh squash.
type Neuron struct {
	weights []*Value
	bias    *Value
}

// NewNeuron creates a neuron with nin inputs, weights drawn uniformly
// from [-1, 1).
func NewNeuron(rng *rand.Rand, nin int) *Neuron {
	n := &Neuron{
		weights: make([]*Value, nin),
		bias:    NewValue(rng.Float64()*2 - 1),
	}
	for i := range n.weights {
		n.weights[i] = NewValue(rng.Float64()*2 - 1)
	}
	return n
}

// Forward computes tanh(w . x + b). Panics if len(x) != number of weights.
func (n *Neuron) Forward(x []*Value) *Value {
	if len(x) != len(n.weights) {
		panic("scalargrad: neuron input size mismatch")
	}
	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(x[i]))
	}
	return act.Tanh()
}

// Parameters returns the neuron's weights followed by its bias.
func (n *Neuron) Parameters() []*Value {
	return append(append([]*Value{}, n.weights...), n.bias)
}

// Layer is a row of neurons fed the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each taking nin inputs.
func NewLayer(rng *rand.Rand, nin, nout int) *Layer {
	l := &Layer{neurons: make([]*Neuron, nout)}
	for i := range l.neurons {
		l.neurons[i] = NewNeuron(rng, nin)
	}
	return l
}

// Forward feeds x through every neuron, returning one output per neuron.
func (l *Layer) Forward(x []*Value) []*Value {
	out := make([]*Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Parameters returns all neuron parameters in layer order.
func (l *Layer) Parameters() []*Value {
	var params []*Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// MLP is a multilayer perceptron: a chain of fully connected tanh layers.
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of sizes.
// NewMLP(rng, 2, []int{4, 1}) builds a 2->4->1 network.
func NewMLP(rng *rand.Rand, nin int, sizes []int) *MLP {
	m := &MLP{layers: make([]*Layer, len(sizes))}
	prev := nin
	for i, size := range sizes {
		m.layers[i] = NewLayer(rng, prev, size)
		prev = size
	}
	return m
}

// Forward feeds the inputs through every layer in order.
func (m *MLP) Forward(x []*Value) []*Value {
	for _, l := range m.layers {
		x = l.Forward(x)
	}
	return x
}

// Parameters returns every weight and bias in the network.
func (m *MLP) Parameters() []*Value {
	var params []*Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradient of every parameter. Input and intermediate
// nodes are rebuilt fresh each step, so zeroing the persistent parameters
// is all a training loop needs between steps.
func (m *MLP) ZeroGrad() {
	for _, p := range m.Parameters() {
		p.grad = 0
	}
}

// UpdateWeights applies one step of gradient descent:
// data -= lr * grad for every parameter. This mutates leaf data directly
// and never re-enters the graph.
func (m *MLP) UpdateWeights(lr float64) {
	for _, p := range m.Parameters() {
		p.data -= lr * p.grad
	}
}
