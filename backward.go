package main

// ===========================================================================
// WHAT'S GOING ON HERE
// ===========================================================================
//
// This file implements the backward pass: reverse-mode automatic
// differentiation over the DAG that ops.go built during the forward pass.
//
// THE ALGORITHM:
//
// 1. Collect every node reachable from the root by following operand
//    edges, deduplicated by pointer identity.
// 2. Order them topologically: operands before the results computed from
//    them (a post-order DFS finishing order). Walking that order in
//    REVERSE visits the root first and leaves last, so by the time a
//    node's backward closure fires, every consumer of that node has
//    already deposited its gradient contribution.
// 3. Seed root.grad = 1 (dL/dL = 1).
// 4. Invoke each node's backward closure in reverse topological order.
//
// The DFS is iterative with an explicit stack. Training graphs can get
// deep (every epoch chains more loss terms if the caller builds them that
// way), and goroutine stacks are not the place to find that out.
//
// Calling Backward twice without a ZeroGrad in between accumulates
// gradients across both calls. That is deliberate: it mirrors training
// loops, which must explicitly zero gradients between steps.
//
// ===========================================================================

// topoOrder returns every node reachable from v, operands strictly before
// the nodes computed from them (v itself is last). Iterative post-order
// DFS with a pointer-identity visited set.
func (v *Value) topoOrder() []*Value {
	var order []*Value
	visited := make(map[*Value]bool)

	type frame struct {
		node     *Value
		expanded bool // operands already pushed
	}
	stack := []frame{{node: v}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			// All operands are already in order; now the node itself.
			order = append(order, f.node)
			continue
		}
		if visited[f.node] {
			continue
		}
		visited[f.node] = true

		stack = append(stack, frame{node: f.node, expanded: true})
		for _, operand := range f.node.prev {
			if !visited[operand] {
				stack = append(stack, frame{node: operand})
			}
		}
	}
	return order
}

// Reachable returns every node in the sub-graph rooted at v, in
// topological order (operands first, v last). Read-only convenience for
// visualization and tests.
func (v *Value) Reachable() []*Value {
	return v.topoOrder()
}

// Backward computes d(v)/d(x) for every node x reachable from v and
// accumulates it into x's grad. v's own grad is seeded with 1.
//
// Nodes with no path to v are never touched. Repeated calls accumulate;
// call ZeroGrad first for a fresh pass.
func (v *Value) Backward() {
	order := v.topoOrder()
	v.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		if order[i].backward != nil {
			order[i].backward()
		}
	}
}

// ZeroGrad resets the gradient of every node reachable from v to zero.
// Idempotent, and safe on a graph that has never had Backward run.
func (v *Value) ZeroGrad() {
	for _, node := range v.topoOrder() {
		node.grad = 0
	}
}
