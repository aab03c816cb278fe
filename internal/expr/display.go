package expr

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Format renders e in infix notation. Sum, difference, ratio and power are
// parenthesized, products are written by adjacency, roots carry their
// index as a superscript.
func Format(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}

func (e Integer) String() string { return strconv.FormatInt(e.Value, 10) }

func (e Decimal) String() string {
	a := math.Abs(e.Value)
	if a != 0 && (a < 1e-6 || a >= 1e21) {
		return strconv.FormatFloat(e.Value, 'g', -1, 64)
	}
	return strconv.FormatFloat(e.Value, 'f', -1, 64)
}

func (e Variable) String() string { return e.Name }

func (e Negation) String() string { return "-" + Format(e.Operand) }

func (e Sum) String() string { return infix(e.Left, "+", e.Right) }

func (e Difference) String() string { return infix(e.Left, "-", e.Right) }

func (e Ratio) String() string { return infix(e.Num, "/", e.Den) }

func (e Power) String() string { return infix(e.Base, "^", e.Exp) }

func (e Comparison) String() string {
	return Format(e.Left) + " " + e.Op.Symbol() + " " + Format(e.Right)
}

func (e Root) String() string {
	return Superscript(Format(e.Index)) + "√" + Format(e.Radicand)
}

func (e Product) String() string {
	l, r := Format(e.Left), Format(e.Right)
	if needsDot(e.Left, l, e.Right, r) {
		return l + "·" + r
	}
	return l + r
}

func infix(l Expr, op string, r Expr) string {
	return "(" + Format(l) + " " + op + " " + Format(r) + ")"
}

// needsDot: при склейке множителей без точки "2" и "3" превратились бы в 23,
// а "x" и "y" в переменную xy. Decimal в экспоненциальной записи (1e-07)
// лексер читает как 1 и e, поэтому после него точка нужна всегда.
func needsDot(left Expr, l string, right Expr, r string) bool {
	if _, ok := right.(Root); ok {
		return true
	}
	if _, ok := left.(Decimal); ok && strings.ContainsAny(l, "eE") {
		return true
	}
	first, _ := utf8.DecodeRuneInString(r)
	switch {
	case first == '-' || first == '.' || unicode.IsDigit(first):
		return true
	case isWord(first):
		switch left.(type) {
		case Integer, Decimal:
			return false
		}
		last, _ := utf8.DecodeLastRuneInString(l)
		return isWord(last)
	}
	return false
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
