package main

// ===========================================================================
// GRADIENT CHECKING - Trust, but Verify
// ===========================================================================
//
// Analytic gradients are easy to get subtly wrong (a dropped term, a sign
// flip, a stale captured value). The standard defense is to compare the
// engine's gradients against a finite-difference estimate:
//
//   df/dx ~= (f(x+h) - f(x-h)) / 2h        (central difference)
//
// The central formula's error is O(h^2), so with h = 1e-4 the estimate and
// the analytic gradient should agree to roughly 1e-4 for well-conditioned
// functions. gonum's diff/fd package supplies the formula and step
// handling; we supply the scalar function by re-running the forward pass
// on perturbed leaf values.
//
// ===========================================================================

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// gradCheckStep is the finite-difference step size h.
const gradCheckStep = 1e-4

// GradCheck holds the outcome of checking one function at one point.
type GradCheck struct {
	Analytic []float64 // engine gradients, one per input
	Numeric  []float64 // central-difference estimates
	MaxDiff  float64   // max over inputs of |analytic - numeric| / max(1, |numeric|)
}

// Within reports whether every input's relative difference is under tol.
func (g GradCheck) Within(tol float64) bool {
	return g.MaxDiff <= tol
}

// CheckGradients verifies the engine's gradients for f at the point `at`.
// f must build a fresh graph from its leaf inputs on every call and return
// the scalar output node.
func CheckGradients(f func(inputs []*Value) *Value, at []float64) GradCheck {
	// Analytic: one forward + one backward through the engine.
	leaves := make([]*Value, len(at))
	for i, x := range at {
		leaves[i] = NewValue(x)
	}
	out := f(leaves)
	out.Backward()

	analytic := make([]float64, len(at))
	for i, leaf := range leaves {
		analytic[i] = leaf.Grad()
	}

	// Numeric: central differences over a plain float function that
	// rebuilds the graph at each probe point.
	scalar := func(x []float64) float64 {
		probe := make([]*Value, len(x))
		for i, xi := range x {
			probe[i] = NewValue(xi)
		}
		return f(probe).Data()
	}
	numeric := fd.Gradient(nil, scalar, at, &fd.Settings{
		Formula: fd.Central,
		Step:    gradCheckStep,
	})

	maxDiff := 0.0
	for i := range analytic {
		diff := math.Abs(analytic[i] - numeric[i])
		if scale := math.Abs(numeric[i]); scale > 1 {
			diff /= scale
		}
		if diff > maxDiff {
			maxDiff = diff
		}
	}

	return GradCheck{Analytic: analytic, Numeric: numeric, MaxDiff: maxDiff}
}
