package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

// ===========================================================================
// GRADCHECK CLI - Numerical Verification of Every Primitive
// ===========================================================================
//
// This command runs the central-difference gradient check (gradcheck.go)
// over every primitive operation and a composite expression, at randomly
// sampled points, and prints a pass/fail table. It is the command-line
// face of the same oracle the test suite uses.
//
// USAGE:
//   go run . gradcheck
//   go run . gradcheck -trials=20 -tol=1e-5 -seed=7
//
// ===========================================================================

// gradCheckCase names a function to verify and how many inputs it takes.
type gradCheckCase struct {
	name   string
	inputs int
	build  func(in []*Value) *Value
}

// gradCheckCases covers each primitive plus a composite expression.
// Sampled inputs are kept away from each operation's singular points
// (division by zero, relu's kink, fractional powers of negatives).
var gradCheckCases = []gradCheckCase{
	{"add", 2, func(in []*Value) *Value { return in[0].Add(in[1]) }},
	{"sub", 2, func(in []*Value) *Value { return in[0].Sub(in[1]) }},
	{"mul", 2, func(in []*Value) *Value { return in[0].Mul(in[1]) }},
	{"div", 2, func(in []*Value) *Value { return in[0].Div(in[1]) }},
	{"pow3", 1, func(in []*Value) *Value { return in[0].Pow(3) }},
	{"exp", 1, func(in []*Value) *Value { return in[0].Exp() }},
	{"tanh", 1, func(in []*Value) *Value { return in[0].Tanh() }},
	{"relu", 1, func(in []*Value) *Value { return in[0].ReLU() }},
	{"composite", 3, func(in []*Value) *Value {
		// tanh(a*b + a/c) - the same leaf feeding two branches
		return in[0].Mul(in[1]).Add(in[0].Div(in[2])).Tanh()
	}},
}

// RunGradCheckCommand implements the gradient-verification CLI.
func RunGradCheckCommand(args []string) error {
	fs := flag.NewFlagSet("gradcheck", flag.ExitOnError)
	trials := fs.Int("trials", 10, "Random sample points per operation")
	tol := fs.Float64("tol", 1e-4, "Maximum allowed relative difference")
	seed := fs.Int64("seed", 1, "Random seed for sample points")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed))

	fmt.Println("===========================================================================")
	fmt.Println("GRADIENT CHECK: analytic vs central difference")
	fmt.Println("===========================================================================")
	fmt.Printf("%-12s %-8s %-14s %s\n", "op", "trials", "max diff", "status")

	failed := 0
	for _, c := range gradCheckCases {
		worst := 0.0
		for t := 0; t < *trials; t++ {
			at := make([]float64, c.inputs)
			for i := range at {
				// Sample in [0.5, 2.5), comfortably clear of singular points.
				at[i] = 0.5 + 2*rng.Float64()
			}
			check := CheckGradients(c.build, at)
			if check.MaxDiff > worst {
				worst = check.MaxDiff
			}
		}
		status := "ok"
		if worst > *tol {
			status = "FAIL"
			failed++
		}
		fmt.Printf("%-12s %-8d %-14.2e %s\n", c.name, *trials, worst, status)
	}

	if failed > 0 {
		return errors.Errorf("%d operation(s) failed gradient check", failed)
	}
	fmt.Println("\nAll gradients verified.")
	return nil
}
