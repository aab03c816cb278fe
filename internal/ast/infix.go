package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Infix renders n in a compact fully parenthesized form:
// binary operands are wrapped as "(left) op (right)", unary operators are
// prefixed, calls print as name:param[arg, arg].
func Infix(n Node) string {
	var sb strings.Builder
	writeInfix(&sb, n)
	return sb.String()
}

func writeInfix(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Number:
		sb.WriteString(strconv.FormatFloat(n.Value(), 'g', -1, 64))
	case *Variable:
		sb.WriteString(n.Name())
	case *Binary:
		sb.WriteByte('(')
		writeInfix(sb, n.Left)
		sb.WriteString(") ")
		if n.Implicit {
			sb.WriteString("·")
		} else {
			sb.WriteString(n.Op.Kind.Symbol())
		}
		sb.WriteString(" (")
		writeInfix(sb, n.Right)
		sb.WriteByte(')')
	case *Unary:
		sb.WriteString(n.Op.Kind.Symbol())
		writeInfix(sb, n.Operand)
	case *Call:
		sb.WriteString(n.Callee.Name)
		for _, p := range n.Params {
			sb.WriteByte(':')
			writeInfix(sb, p)
		}
		sb.WriteByte('[')
		for i, a := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeInfix(sb, a)
		}
		sb.WriteByte(']')
	default:
		panic(fmt.Errorf("ast: unexpected node %T", n))
	}
}

// Walk visits n and its children depth-first, parents before children.
// Returning false from fn skips the children of that node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Binary:
		return []Node{n.Left, n.Right}
	case *Unary:
		return []Node{n.Operand}
	case *Call:
		out := make([]Node, 0, len(n.Params)+len(n.Args))
		out = append(out, n.Params...)
		return append(out, n.Args...)
	default:
		return nil
	}
}
