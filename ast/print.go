package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable representation of the tree to w, one node
// per line, children indented under their parent.
func Print(w io.Writer, e Expr) {
	printLevel(w, e, 0)
}

func printLevel(w io.Writer, e Expr, level int) {
	indent := strings.Repeat("    ", level)

	if e == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}

	switch node := e.(type) {
	case *Literal:
		line, col := node.Token().Pos()
		fmt.Fprintf(w, "%s(literal): %v [%d %d]\n", indent, node.Token(), line, col)

	case *Unary:
		fmt.Fprintf(w, "%s(unary): %v\n", indent, node.Op())
		printLevel(w, node.Inner(), level+1)

	case *Binary:
		fmt.Fprintf(w, "%s(binary): %v\n", indent, node.Op())
		printLevel(w, node.Left(), level+1)
		printLevel(w, node.Right(), level+1)

	default:
		panic("unknown node type")
	}
}
