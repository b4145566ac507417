package main

import (
	"math"
	"testing"
)

// TestForwardArithmetic verifies the forward result of each primitive.
func TestForwardArithmetic(t *testing.T) {
	a := NewValue(6)
	b := NewValue(4)

	if v := a.Add(b).Data(); v != 10 {
		t.Errorf("6+4: expected 10, got %f", v)
	}
	if v := a.Sub(b).Data(); v != 2 {
		t.Errorf("6-4: expected 2, got %f", v)
	}
	if v := a.Mul(b).Data(); v != 24 {
		t.Errorf("6*4: expected 24, got %f", v)
	}
	if v := a.Div(b).Data(); v != 1.5 {
		t.Errorf("6/4: expected 1.5, got %f", v)
	}
	if v := b.Pow(2).Data(); v != 16 {
		t.Errorf("4^2: expected 16, got %f", v)
	}
	if v := a.Neg().Data(); v != -6 {
		t.Errorf("-6: expected -6, got %f", v)
	}
	if v := NewValue(1).Exp().Data(); !near(v, math.E, 1e-12) {
		t.Errorf("exp(1): expected e, got %f", v)
	}
	if v := a.AddConst(1.5).Data(); v != 7.5 {
		t.Errorf("6+1.5: expected 7.5, got %f", v)
	}
	if v := a.MulConst(0.5).Data(); v != 3 {
		t.Errorf("6*0.5: expected 3, got %f", v)
	}
}

// TestDivisionByZeroPanics pins the hard-failure policy for x/0.
func TestDivisionByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on division by zero")
		}
	}()
	NewValue(1).Div(NewValue(0))
}

// TestPowZeroBaseNegativeExponentPanics pins the policy for 0^-k.
func TestPowZeroBaseNegativeExponentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on pow(0, -1)")
		}
	}()
	NewValue(0).Pow(-1)
}

// TestNonFiniteResultPanics: NaN must never flow silently into the graph.
func TestNonFiniteResultPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on pow(-1, 0.5) producing NaN")
		}
	}()
	NewValue(-1).Pow(0.5)
}

// TestTanhGradientAtZero: tanh(0) = 0, so the local derivative
// 1 - tanh^2 is exactly 1.
func TestTanhGradientAtZero(t *testing.T) {
	x := NewValue(0)
	y := x.Tanh()
	y.Backward()

	if y.Data() != 0 {
		t.Errorf("tanh(0): expected 0, got %f", y.Data())
	}
	if x.Grad() != 1 {
		t.Errorf("tanh'(0): expected 1, got %f", x.Grad())
	}
}

// TestReLUGradient checks the three regimes of relu's derivative,
// including the documented convention of 0 at exactly zero input.
func TestReLUGradient(t *testing.T) {
	cases := []struct {
		input    float64
		wantData float64
		wantGrad float64
	}{
		{-2, 0, 0},
		{0, 0, 0}, // kink: gradient defined as 0
		{3, 3, 1},
	}
	for _, c := range cases {
		x := NewValue(c.input)
		y := x.ReLU()
		y.Backward()

		if y.Data() != c.wantData {
			t.Errorf("relu(%g): expected %g, got %f", c.input, c.wantData, y.Data())
		}
		if x.Grad() != c.wantGrad {
			t.Errorf("relu'(%g): expected %g, got %f", c.input, c.wantGrad, x.Grad())
		}
	}
}

// TestDivGradient checks both operand gradients of division by hand.
// z = a/b with a=6, b=4: dz/da = 1/b = 0.25, dz/db = -a/b^2 = -0.375.
func TestDivGradient(t *testing.T) {
	a := NewValue(6)
	b := NewValue(4)
	z := a.Div(b)
	z.Backward()

	if !near(a.Grad(), 0.25, 1e-12) {
		t.Errorf("d(a/b)/da: expected 0.25, got %f", a.Grad())
	}
	if !near(b.Grad(), -0.375, 1e-12) {
		t.Errorf("d(a/b)/db: expected -0.375, got %f", b.Grad())
	}
}

// TestDivMatchesMulPow: a/b and a * b^-1 must produce identical values
// and gradients.
func TestDivMatchesMulPow(t *testing.T) {
	a1, b1 := NewValue(3), NewValue(7)
	a1.Div(b1).Backward()

	a2, b2 := NewValue(3), NewValue(7)
	a2.Mul(b2.Pow(-1)).Backward()

	if !near(a1.Grad(), a2.Grad(), 1e-12) {
		t.Errorf("a grads differ: %g vs %g", a1.Grad(), a2.Grad())
	}
	if !near(b1.Grad(), b2.Grad(), 1e-12) {
		t.Errorf("b grads differ: %g vs %g", b1.Grad(), b2.Grad())
	}
}

// TestExpGradient: d(e^x)/dx = e^x.
func TestExpGradient(t *testing.T) {
	x := NewValue(0.5)
	y := x.Exp()
	y.Backward()

	if !near(x.Grad(), y.Data(), 1e-12) {
		t.Errorf("exp'(0.5): expected %f, got %f", y.Data(), x.Grad())
	}
}
