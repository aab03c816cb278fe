// Package expr holds the semantic expression tree: lowering from the syntax
// tree, the rational simplifier, and infix display.
//
// Expression values carry no spans and are never mutated; every rewrite
// builds a new tree.
package expr

// Expr is one of Integer, Decimal, Variable, Negation, Sum, Difference,
// Product, Ratio, Power, Root or Comparison.
type Expr interface {
	String() string
	expr()
}

// Integer is an exact integer. Arithmetic on it wraps at 64 bits.
type Integer struct{ Value int64 }

// Decimal is a floating value that did not lower to an integer.
type Decimal struct{ Value float64 }

type Variable struct{ Name string }

type Negation struct{ Operand Expr }

type Sum struct{ Left, Right Expr }

type Difference struct{ Left, Right Expr }

type Product struct{ Left, Right Expr }

// Ratio is Num / Den. After simplification an integer ratio is in lowest
// terms with the sign on Num, or has a zero Den.
type Ratio struct{ Num, Den Expr }

type Power struct{ Base, Exp Expr }

// Root is the Index-th root of Radicand.
type Root struct{ Index, Radicand Expr }

// Comparison is one of the six relations between Left and Right.
type Comparison struct {
	Op          CmpOp
	Left, Right Expr
}

func (Integer) expr()    {}
func (Decimal) expr()    {}
func (Variable) expr()   {}
func (Negation) expr()   {}
func (Sum) expr()        {}
func (Difference) expr() {}
func (Product) expr()    {}
func (Ratio) expr()      {}
func (Power) expr()      {}
func (Root) expr()       {}
func (Comparison) expr() {}

// CmpOp names a relational operator.
type CmpOp uint8

const (
	Equals CmpOp = iota
	NotEquals
	Greater
	Less
	GreaterEq
	LessEq
)

var cmpNames = [...]struct{ name, symbol string }{
	Equals:    {"Equals", "="},
	NotEquals: {"NotEquals", "!="},
	Greater:   {"Greater", ">"},
	Less:      {"Less", "<"},
	GreaterEq: {"GreaterEq", ">="},
	LessEq:    {"LessEq", "<="},
}

func (op CmpOp) String() string {
	if int(op) < len(cmpNames) {
		return cmpNames[op].name
	}
	return "CmpOp(?)"
}

// Symbol is the infix spelling of op.
func (op CmpOp) Symbol() string {
	if int(op) < len(cmpNames) {
		return cmpNames[op].symbol
	}
	return "?"
}

// Short constructors, mostly for tests and the simplifier.

func Int(v int64) Expr      { return Integer{Value: v} }
func Dec(v float64) Expr    { return Decimal{Value: v} }
func Var(name string) Expr  { return Variable{Name: name} }
func Neg(e Expr) Expr       { return Negation{Operand: e} }
func Add(l, r Expr) Expr    { return Sum{Left: l, Right: r} }
func Sub(l, r Expr) Expr    { return Difference{Left: l, Right: r} }
func Mul(l, r Expr) Expr    { return Product{Left: l, Right: r} }
func Div(n, d Expr) Expr    { return Ratio{Num: n, Den: d} }
func Pow(b, e Expr) Expr    { return Power{Base: b, Exp: e} }
func Rt(index, r Expr) Expr { return Root{Index: index, Radicand: r} }
func Cmp(op CmpOp, l, r Expr) Expr {
	return Comparison{Op: op, Left: l, Right: r}
}

// KindName is the variant name of e, used by dumps.
func KindName(e Expr) string {
	switch e := e.(type) {
	case Integer:
		return "Integer"
	case Decimal:
		return "Decimal"
	case Variable:
		return "Variable"
	case Negation:
		return "Negation"
	case Sum:
		return "Sum"
	case Difference:
		return "Difference"
	case Product:
		return "Product"
	case Ratio:
		return "Ratio"
	case Power:
		return "Power"
	case Root:
		return "Root"
	case Comparison:
		return e.Op.String()
	default:
		return "?"
	}
}

// Children returns the operands of e in display order.
func Children(e Expr) []Expr {
	switch e := e.(type) {
	case Negation:
		return []Expr{e.Operand}
	case Sum:
		return []Expr{e.Left, e.Right}
	case Difference:
		return []Expr{e.Left, e.Right}
	case Product:
		return []Expr{e.Left, e.Right}
	case Ratio:
		return []Expr{e.Num, e.Den}
	case Power:
		return []Expr{e.Base, e.Exp}
	case Root:
		return []Expr{e.Index, e.Radicand}
	case Comparison:
		return []Expr{e.Left, e.Right}
	default:
		return nil
	}
}
