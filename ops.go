package main

// ===========================================================================
// WHAT'S GOING ON HERE
// ===========================================================================
//
// This file implements the differentiable primitive operations. Each one
// computes a forward result, records its operands, and attaches a backward
// closure implementing the operation's local derivative times the upstream
// gradient (the chain rule).
//
// THE CHAIN RULE:
//
// Given: y = f(x) and L = g(y)
// Want: dL/dx
//
// Chain rule: dL/dx = dL/dy * dy/dx
//
// During backward, out.grad already holds dL/dout (the upstream gradient).
// Each closure multiplies it by the local derivative dout/doperand and ADDS
// the product into the operand's grad. Accumulating with += rather than
// assigning is what makes repeated operand use correct: in y = a + a, each
// occurrence of a contributes out.grad once, so a.grad ends up 2*out.grad.
// This is the single most important invariant of the engine.
//
// LOCAL DERIVATIVES:
//
//   add:  z = a + b      dz/da = 1          dz/db = 1
//   sub:  z = a - b      dz/da = 1          dz/db = -1
//   mul:  z = a * b      dz/da = b          dz/db = a
//   div:  z = a / b      dz/da = 1/b        dz/db = -a/b^2
//   pow:  z = a^k        dz/da = k * a^(k-1)
//   exp:  z = e^a        dz/da = e^a
//   tanh: z = tanh(a)    dz/da = 1 - z^2
//   relu: z = max(0, a)  dz/da = 1 if a > 0, else 0
//
// ERROR POLICY:
// Non-finite forward results fail hard. Division by zero, a zero base
// raised to a negative exponent, and overflow all panic at the operation
// that produced them instead of letting NaN/Inf flow silently into
// gradients. This mirrors how tensor shape bugs are handled elsewhere in
// the pack: programmer errors, not recoverable runtime conditions.
//
// ReLU's derivative at exactly zero is taken to be 0 (the strict a > 0
// test). The subgradient at the kink is anything in [0, 1]; picking 0
// keeps the rule identical to the forward test.
//
// ===========================================================================

import (
	"fmt"
	"math"
)

// checkFinite panics if a forward result is NaN or Inf.
func checkFinite(data float64, op string) {
	if math.IsNaN(data) || math.IsInf(data, 0) {
		panic(fmt.Sprintf("scalargrad: %s produced non-finite value %v", op, data))
	}
}

// Add returns v + other.
func (v *Value) Add(other *Value) *Value {
	out := newResult(v.data+other.data, "+", v, other)
	out.backward = func() {
		v.grad += out.grad
		other.grad += out.grad
	}
	return out
}

// Sub returns v - other.
func (v *Value) Sub(other *Value) *Value {
	out := newResult(v.data-other.data, "-", v, other)
	out.backward = func() {
		v.grad += out.grad
		other.grad -= out.grad
	}
	return out
}

// Mul returns v * other.
func (v *Value) Mul(other *Value) *Value {
	out := newResult(v.data*other.data, "*", v, other)
	out.backward = func() {
		v.grad += other.data * out.grad
		other.grad += v.data * out.grad
	}
	return out
}

// Div returns v / other. Panics if other is zero: a silent Inf here would
// corrupt every gradient upstream of it.
func (v *Value) Div(other *Value) *Value {
	if other.data == 0 {
		panic("scalargrad: division by zero")
	}
	out := newResult(v.data/other.data, "/", v, other)
	out.backward = func() {
		v.grad += out.grad / other.data
		other.grad += out.grad * (-v.data / (other.data * other.data))
	}
	return out
}

// Pow returns v^exponent for a fixed (non-differentiated) exponent.
// Panics when a zero base meets a negative exponent, and on any
// non-finite result.
func (v *Value) Pow(exponent float64) *Value {
	if v.data == 0 && exponent < 0 {
		panic(fmt.Sprintf("scalargrad: pow(0, %g) is a division by zero", exponent))
	}
	data := math.Pow(v.data, exponent)
	checkFinite(data, "pow")
	out := newResult(data, "pow", v)
	if v.label != "" {
		out.label = fmt.Sprintf("%s^%g", v.label, exponent)
	}
	out.backward = func() {
		v.grad += out.grad * exponent * math.Pow(v.data, exponent-1)
	}
	return out
}

// Exp returns e^v.
func (v *Value) Exp() *Value {
	data := math.Exp(v.data)
	checkFinite(data, "exp")
	out := newResult(data, "exp", v)
	out.backward = func() {
		// d(e^x)/dx = e^x, which is exactly out.data
		v.grad += out.data * out.grad
	}
	return out
}

// Tanh returns tanh(v), the classic squashing activation.
func (v *Value) Tanh() *Value {
	t := math.Tanh(v.data)
	out := newResult(t, "tanh", v)
	out.backward = func() {
		v.grad += (1 - t*t) * out.grad
	}
	return out
}

// ReLU returns max(0, v). The gradient at exactly zero is 0.
func (v *Value) ReLU() *Value {
	data := 0.0
	if v.data > 0 {
		data = v.data
	}
	out := newResult(data, "relu", v)
	out.backward = func() {
		if v.data > 0 {
			v.grad += out.grad
		}
	}
	return out
}

// Neg returns -v, implemented as v * (-1) so it reuses Mul's rule.
func (v *Value) Neg() *Value {
	return v.Mul(NewValue(-1))
}

// AddConst returns v + c, wrapping c as an unlabeled leaf.
func (v *Value) AddConst(c float64) *Value {
	return v.Add(NewValue(c))
}

// MulConst returns v * c, wrapping c as an unlabeled leaf.
func (v *Value) MulConst(c float64) *Value {
	return v.Mul(NewValue(c))
}
