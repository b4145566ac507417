package main

// ASCII rendering of a computation graph. Each node prints as
// "[data, grad] label" with its producing operation on a connector line
// and its operands indented below. Shared nodes are drawn once; later
// encounters render as a back-reference.

import (
	"fmt"
	"strings"
)

// DrawASCII renders the sub-graph rooted at v as an indented tree.
func (v *Value) DrawASCII() string {
	var b strings.Builder
	visited := make(map[*Value]bool)
	drawNode(&b, v, visited, "", "")
	return b.String()
}

// drawNode writes one node and recurses into its operands. linePrefix
// precedes the node's own line; childPrefix is the base indentation for
// everything below it.
func drawNode(b *strings.Builder, v *Value, visited map[*Value]bool, linePrefix, childPrefix string) {
	name := v.label
	if name == "" {
		if v.op != "" {
			name = v.op
		} else {
			name = "const"
		}
	}

	if visited[v] {
		fmt.Fprintf(b, "%s[shared] %s\n", linePrefix, name)
		return
	}
	visited[v] = true

	fmt.Fprintf(b, "%s[%.4f, %.4f] %s\n", linePrefix, v.data, v.grad, name)

	if len(v.prev) == 0 {
		return
	}
	fmt.Fprintf(b, "%s└─ %s\n", childPrefix, v.op)

	opIndent := childPrefix + "   "
	for i, operand := range v.prev {
		if i == len(v.prev)-1 {
			drawNode(b, operand, visited, opIndent+"└── ", opIndent+"    ")
		} else {
			drawNode(b, operand, visited, opIndent+"├── ", opIndent+"│   ")
		}
	}
}
