package main

import (
	"flag"
	"fmt"
)

// ===========================================================================
// VALUE CLI - A Single Neuron, By Hand
// ===========================================================================
//
// This command builds the classic hand-wired neuron expression
//
//   o = tanh(x1*w1 + x2*w2 + b)
//
// with fixed inputs, draws the computation graph, runs the backward pass,
// and draws it again so the gradients are visible at every node. The bias
// constant 6.881373587019543 makes tanh land at a friendly 0.7071, which
// keeps the hand-checkable arithmetic clean.
//
// With -visualize the backward pass runs step by step in the terminal,
// pausing between nodes.
//
// USAGE:
//   go run . value
//   go run . value -visualize
//
// ===========================================================================

// RunValueCommand implements the expression demo CLI.
func RunValueCommand(args []string) error {
	fs := flag.NewFlagSet("value", flag.ExitOnError)
	visualize := fs.Bool("visualize", false, "Step through the backward pass interactively")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Inputs x1, x2.
	x1 := NewValue(2.0, "x1")
	x2 := NewValue(0.0, "x2")

	// Weights w1, w2.
	w1 := NewValue(-3.0, "w1")
	w2 := NewValue(1.0, "w2")

	// Bias of the neuron.
	b := NewValue(6.881373587019543, "b")

	// Neuron activation: o = tanh(x1*w1 + x2*w2 + b).
	x1w1 := x1.Mul(w1)
	x1w1.SetLabel("x1*w1")
	x2w2 := x2.Mul(w2)
	x2w2.SetLabel("x2*w2")

	sum := x1w1.Add(x2w2)
	sum.SetLabel("x1w1 + x2w2")

	n := sum.Add(b)
	n.SetLabel("n")

	o := n.Tanh()
	o.SetLabel("o")

	fmt.Println("Before backprop:")
	fmt.Print(o.DrawASCII())
	fmt.Println()

	if *visualize {
		o.BackwardWithViz(NewBackpropViz())
	} else {
		o.Backward()
	}

	fmt.Println("After backprop:")
	fmt.Print(o.DrawASCII())
	return nil
}
