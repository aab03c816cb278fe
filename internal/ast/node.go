// Package ast defines the untyped syntax tree produced by the parser.
// Every composite node exclusively owns its children; trees are acyclic.
package ast

import (
	"symcalc/internal/source"
	"symcalc/internal/token"
)

// Node is one of *Number, *Variable, *Binary, *Unary, *Call.
type Node interface {
	Span() source.Span
	node()
}

// Number is a numeric literal leaf.
type Number struct {
	Tok token.Token
}

// Variable is an identifier leaf.
type Variable struct {
	Tok token.Token
}

// Binary is an infix operator application. Implicit marks juxtaposition
// products ("2x"); their Op is a synthesized Star at the operand boundary.
type Binary struct {
	Op       token.Token
	Left     Node
	Right    Node
	Implicit bool
}

// Unary is a prefix '+' or '-'.
type Unary struct {
	Op      token.Token
	Operand Node
}

// Call is callee:param:param[arg, arg].
type Call struct {
	Callee token.Token
	Params []Node
	Args   []Node
	Sp     source.Span
}

func (n *Number) Span() source.Span   { return n.Tok.Span }
func (n *Variable) Span() source.Span { return n.Tok.Span }
func (n *Binary) Span() source.Span   { return n.Left.Span().Extend(n.Right.Span()) }
func (n *Unary) Span() source.Span    { return n.Op.Span.Extend(n.Operand.Span()) }
func (n *Call) Span() source.Span     { return n.Sp }

func (*Number) node()   {}
func (*Variable) node() {}
func (*Binary) node()   {}
func (*Unary) node()    {}
func (*Call) node()     {}

// Name returns the identifier of a variable leaf.
func (n *Variable) Name() string { return n.Tok.Name }

// Value returns the parsed literal value.
func (n *Number) Value() float64 { return n.Tok.Number }
