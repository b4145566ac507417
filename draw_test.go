package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestDrawASCII checks that labels, values, and operations all appear in
// the rendered tree.
func TestDrawASCII(t *testing.T) {
	a := NewValue(2, "a")
	b := NewValue(-3, "b")
	c := a.Mul(b)
	c.SetLabel("c")

	out := c.DrawASCII()

	for _, want := range []string{"a", "b", "c", "2.0000", "-3.0000", "-6.0000", "└─ *"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected drawing to contain %q:\n%s", want, out)
		}
	}
}

// TestDrawASCIISharedNode: a node consumed twice renders once in full and
// once as a back-reference.
func TestDrawASCIISharedNode(t *testing.T) {
	a := NewValue(3, "a")
	y := a.Add(a)

	out := y.DrawASCII()

	if got := strings.Count(out, "[3.0000, 0.0000] a"); got != 1 {
		t.Errorf("shared node should render fully once, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "[shared] a") {
		t.Errorf("expected a [shared] back-reference:\n%s", out)
	}
}

// TestBackwardWithVizMatchesBackward: the visualized pass must produce
// exactly the gradients of the plain pass.
func TestBackwardWithVizMatchesBackward(t *testing.T) {
	build := func() (*Value, *Value, *Value) {
		a := NewValue(2, "a")
		b := NewValue(-3, "b")
		return a, b, a.Mul(b).AddConst(10).Tanh()
	}

	a1, b1, root1 := build()
	root1.Backward()

	a2, b2, root2 := build()
	var out bytes.Buffer
	viz := newBackpropViz(&out, strings.NewReader(""), false)
	root2.BackwardWithViz(viz)

	if a1.Grad() != a2.Grad() || b1.Grad() != b2.Grad() {
		t.Errorf("visualized gradients differ: (%g, %g) vs (%g, %g)",
			a1.Grad(), b1.Grad(), a2.Grad(), b2.Grad())
	}
	if out.Len() == 0 {
		t.Error("expected the visualizer to write output")
	}
	if !strings.Contains(out.String(), "Current Operation:") {
		t.Error("expected step headers in visualizer output")
	}
}
