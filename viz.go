package main

// ===========================================================================
// BACKPROP VISUALIZATION - Watching the Chain Rule Work
// ===========================================================================
//
// This file implements an interactive, terminal-based walk through the
// backward pass. Before each node's gradient rule fires, the full graph is
// redrawn with the node about to be processed highlighted in yellow and
// already-processed nodes in green, then the walk pauses for Enter.
//
// INTENTION:
// Make the backward pass concrete. Seeing gradients appear node by node,
// in topological order, is the fastest way to internalize why the order
// matters and what "accumulate into operands" actually does.
//
// The visualizer drives exactly the same topological order as Backward;
// it reads node state through the same accessors as any other consumer
// and never touches graph semantics.
//
// ===========================================================================

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// BackpropViz tracks per-node progress during a visualized backward pass.
type BackpropViz struct {
	active    map[*Value]bool // node currently being processed
	completed map[*Value]bool // nodes whose rule has already fired

	out         io.Writer
	in          *bufio.Reader
	interactive bool // pause for Enter between steps

	activeStyle    *color.Color
	completedStyle *color.Color
	headerStyle    *color.Color
}

// NewBackpropViz creates an interactive visualizer on stdin/stdout.
func NewBackpropViz() *BackpropViz {
	return newBackpropViz(os.Stdout, os.Stdin, true)
}

func newBackpropViz(out io.Writer, in io.Reader, interactive bool) *BackpropViz {
	return &BackpropViz{
		active:         make(map[*Value]bool),
		completed:      make(map[*Value]bool),
		out:            out,
		in:             bufio.NewReader(in),
		interactive:    interactive,
		activeStyle:    color.New(color.FgHiYellow, color.Bold),
		completedStyle: color.New(color.FgHiGreen),
		headerStyle:    color.New(color.FgHiBlue, color.Bold),
	}
}

// BackwardWithViz runs the backward pass from v, drawing each step.
// Gradient semantics are identical to Backward.
func (v *Value) BackwardWithViz(viz *BackpropViz) {
	order := v.topoOrder()
	v.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.backward == nil {
			continue
		}

		viz.active[node] = true
		viz.drawStep(v, node)
		node.backward()
		delete(viz.active, node)
		viz.completed[node] = true
	}
	viz.drawFinal(v)
}

// drawStep prints the current operation header and the highlighted graph,
// then waits for Enter in interactive mode.
func (viz *BackpropViz) drawStep(root, node *Value) {
	fmt.Fprintln(viz.out)
	viz.headerStyle.Fprintln(viz.out, "Current Operation:")
	name := node.label
	if name == "" {
		name = node.op
	}
	fmt.Fprintf(viz.out, "Computing gradients through %q\n", name)
	fmt.Fprintf(viz.out, "  value: %.4f  upstream gradient: %.4f  op: %s\n", node.data, node.grad, node.op)

	fmt.Fprintln(viz.out)
	viz.headerStyle.Fprintln(viz.out, "Computation Graph:")
	viz.drawGraph(root)

	if viz.interactive {
		fmt.Fprintln(viz.out, "\nPress Enter to continue...")
		_, _ = viz.in.ReadString('\n')
	}
}

func (viz *BackpropViz) drawFinal(root *Value) {
	fmt.Fprintln(viz.out)
	viz.headerStyle.Fprintln(viz.out, "Backward pass complete:")
	viz.drawGraph(root)
}

// drawGraph reuses the ASCII tree, recoloring each line by node state.
func (viz *BackpropViz) drawGraph(root *Value) {
	tree := root.DrawASCII()
	lines := strings.Split(tree, "\n")

	// Color node lines by matching their "[data, grad] label" rendering
	// against the active/completed sets.
	styleFor := func(line string) *color.Color {
		for node := range viz.active {
			if strings.Contains(line, nodeLineTag(node)) {
				return viz.activeStyle
			}
		}
		for node := range viz.completed {
			if strings.Contains(line, nodeLineTag(node)) {
				return viz.completedStyle
			}
		}
		return nil
	}

	for _, line := range lines {
		if line == "" {
			continue
		}
		if style := styleFor(line); style != nil {
			style.Fprintln(viz.out, line)
		} else {
			fmt.Fprintln(viz.out, line)
		}
	}
}

// nodeLineTag returns the "[data, grad] label" fragment DrawASCII emits
// for a node, used to locate its line in the rendered tree.
func nodeLineTag(v *Value) string {
	name := v.label
	if name == "" {
		if v.op != "" {
			name = v.op
		} else {
			name = "const"
		}
	}
	return fmt.Sprintf("[%.4f, %.4f] %s", v.data, v.grad, name)
}
