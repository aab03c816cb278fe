package expr

import (
	"fmt"
	"math"

	"fortio.org/safecast"

	"symcalc/internal/ast"
	"symcalc/internal/diag"
	"symcalc/internal/token"
)

// integerEpsilon: literals whose fractional part is below it lower to Integer.
const integerEpsilon = 2e-6

// UnaryPlus selects how a prefix '+' lowers.
type UnaryPlus uint8

const (
	// UnaryPlusNegate lowers '+x' to Negation, like '-x'.
	UnaryPlusNegate UnaryPlus = iota
	// UnaryPlusIdentity lowers '+x' to x.
	UnaryPlusIdentity
)

// ParseUnaryPlus maps a config value ("negate" | "identity").
func ParseUnaryPlus(s string) (UnaryPlus, error) {
	switch s {
	case "", "negate":
		return UnaryPlusNegate, nil
	case "identity":
		return UnaryPlusIdentity, nil
	default:
		return UnaryPlusNegate, fmt.Errorf("unknown unary_plus mode %q (want negate|identity)", s)
	}
}

func (u UnaryPlus) String() string {
	if u == UnaryPlusIdentity {
		return "identity"
	}
	return "negate"
}

type LowerOptions struct {
	UnaryPlus UnaryPlus
	Reporter  diag.Reporter
}

type builtin struct {
	params int
	args   int
	// index of the produced root; nil means "take the single parameter"
	index Expr
}

var builtins = map[string]builtin{
	"sqrt": {params: 0, args: 1, index: Integer{Value: 2}},
	"cbrt": {params: 0, args: 1, index: Integer{Value: 3}},
	"root": {params: 1, args: 1},
}

// Lower converts a syntax tree into an expression tree. Only calls can fail:
// LowInvalidCall on an arity mismatch, LowUnknownFunction on a callee that is
// not a built-in.
func Lower(n ast.Node, opts LowerOptions) (Expr, error) {
	l := lowerer{opts: opts}
	e, err := l.lower(n)
	if err != nil {
		if d, ok := diag.FromError(err); ok {
			diag.Emit(opts.Reporter, d)
		}
		return nil, err
	}
	return e, nil
}

type lowerer struct {
	opts LowerOptions
}

func (l *lowerer) lower(n ast.Node) (Expr, error) {
	switch n := n.(type) {
	case *ast.Number:
		return lowerNumber(n.Value()), nil

	case *ast.Variable:
		return Variable{Name: n.Name()}, nil

	case *ast.Unary:
		operand, err := l.lower(n.Operand)
		if err != nil {
			return nil, err
		}
		if n.Op.Kind == token.Plus && l.opts.UnaryPlus == UnaryPlusIdentity {
			return operand, nil
		}
		return Negation{Operand: operand}, nil

	case *ast.Binary:
		left, err := l.lower(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := l.lower(n.Right)
		if err != nil {
			return nil, err
		}
		return binary(n.Op.Kind, left, right), nil

	case *ast.Call:
		return l.lowerCall(n)

	default:
		panic(fmt.Errorf("expr: cannot lower %T", n))
	}
}

func lowerNumber(v float64) Expr {
	if math.Abs(v-math.Trunc(v)) < integerEpsilon {
		if i, err := safecast.Round[int64](v); err == nil {
			return Integer{Value: i}
		}
	}
	return Decimal{Value: v}
}

func binary(k token.Kind, left, right Expr) Expr {
	switch k {
	case token.Plus:
		return Sum{Left: left, Right: right}
	case token.Minus:
		return Difference{Left: left, Right: right}
	case token.Star:
		return Product{Left: left, Right: right}
	case token.Slash:
		return Ratio{Num: left, Den: right}
	case token.Caret:
		return Power{Base: left, Exp: right}
	case token.Eq:
		return Comparison{Op: Equals, Left: left, Right: right}
	case token.BangEq:
		return Comparison{Op: NotEquals, Left: left, Right: right}
	case token.Gt:
		return Comparison{Op: Greater, Left: left, Right: right}
	case token.Lt:
		return Comparison{Op: Less, Left: left, Right: right}
	case token.GtEq:
		return Comparison{Op: GreaterEq, Left: left, Right: right}
	case token.LtEq:
		return Comparison{Op: LessEq, Left: left, Right: right}
	default:
		// парсер строит Binary только из этих видов
		panic(fmt.Errorf("expr: %s is not a binary operator", k))
	}
}

func (l *lowerer) lowerCall(c *ast.Call) (Expr, error) {
	name := c.Callee.Name
	b, ok := builtins[name]
	if !ok {
		return nil, diag.Errorf(diag.LowUnknownFunction, c.Callee.Span, "unknown function '%s'", name).
			WithNote(c.Span(), "only sqrt, cbrt and root are available")
	}
	if len(c.Args) != b.args {
		return nil, diag.Errorf(diag.LowInvalidCall, c.Span(), "'%s' expects %s, got %d", name, count(b.args, "argument"), len(c.Args))
	}
	if len(c.Params) != b.params {
		return nil, diag.Errorf(diag.LowInvalidCall, c.Span(), "'%s' expects %s, got %d", name, count(b.params, "parameter"), len(c.Params))
	}

	radicand, err := l.lower(c.Args[0])
	if err != nil {
		return nil, err
	}
	index := b.index
	if index == nil {
		if index, err = l.lower(c.Params[0]); err != nil {
			return nil, err
		}
	}
	return Root{Index: index, Radicand: radicand}, nil
}

func count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
