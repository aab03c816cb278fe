package expr

import "math"

// Simplify rewrites e toward its reduced form using exact integer and
// rational arithmetic. It never fails and never mutates e; power, root and
// comparison nodes are returned unchanged (see FindUnsupported).
func Simplify(e Expr) Expr {
	switch e := e.(type) {
	case Integer, Decimal, Variable:
		return e
	case Negation:
		return simplifyNegation(Simplify(e.Operand))
	case Sum:
		return simplifySum(Simplify(e.Left), Simplify(e.Right))
	case Difference:
		// a - b == a + (-b); отдельной логики для разности нет
		return Simplify(Sum{Left: e.Left, Right: Negation{Operand: e.Right}})
	case Product:
		return simplifyProduct(Simplify(e.Left), Simplify(e.Right))
	case Ratio:
		return simplifyRatio(Simplify(e.Num), Simplify(e.Den))
	case Power, Root, Comparison:
		return e
	case nil:
		panic("expr: simplify of nil expression")
	default:
		panic("expr: simplify of unknown expression " + KindName(e))
	}
}

func simplifyNegation(v Expr) Expr {
	switch v := v.(type) {
	case Integer:
		return Integer{Value: -v.Value}
	case Decimal:
		return Decimal{Value: -v.Value}
	default:
		return Negation{Operand: v}
	}
}

// simplifySum combines two already simplified operands.
func simplifySum(l, r Expr) Expr {
	switch a := l.(type) {
	case Integer:
		switch b := r.(type) {
		case Integer:
			return Integer{Value: a.Value + b.Value}
		case Decimal:
			return Decimal{Value: float64(a.Value) + b.Value}
		case Ratio:
			return addIntegerRatio(a, b)
		}
	case Decimal:
		switch b := r.(type) {
		case Decimal:
			return Decimal{Value: a.Value + b.Value}
		case Integer:
			return Decimal{Value: a.Value + float64(b.Value)}
		}
	case Ratio:
		switch b := r.(type) {
		case Integer:
			return addIntegerRatio(b, a)
		case Ratio:
			// n1/d1 + n2/d2 = (n1*d2 + n2*d1) / (d1*d2)
			num := simplifySum(
				simplifyProduct(a.Num, b.Den),
				simplifyProduct(b.Num, a.Den),
			)
			den := simplifyProduct(a.Den, b.Den)
			return simplifyRatio(num, den)
		}
	}
	return Sum{Left: l, Right: r}
}

// x + n/d = (n + x*d) / d
func addIntegerRatio(x Integer, q Ratio) Expr {
	num := simplifySum(q.Num, simplifyProduct(x, q.Den))
	return simplifyRatio(num, q.Den)
}

func simplifyProduct(l, r Expr) Expr {
	switch a := l.(type) {
	case Integer:
		switch b := r.(type) {
		case Integer:
			return Integer{Value: a.Value * b.Value}
		case Decimal:
			return Decimal{Value: float64(a.Value) * b.Value}
		case Ratio:
			return scaleRatio(a, b)
		}
	case Decimal:
		switch b := r.(type) {
		case Decimal:
			return Decimal{Value: a.Value * b.Value}
		case Integer:
			return Decimal{Value: a.Value * float64(b.Value)}
		}
	case Ratio:
		switch b := r.(type) {
		case Integer:
			return scaleRatio(b, a)
		case Ratio:
			num := simplifyProduct(a.Num, b.Num)
			den := simplifyProduct(a.Den, b.Den)
			return simplifyRatio(num, den)
		}
	}
	return Product{Left: l, Right: r}
}

// x * n/d = (x*n) / d
func scaleRatio(x Integer, q Ratio) Expr {
	return simplifyRatio(simplifyProduct(x, q.Num), q.Den)
}

func simplifyRatio(num, den Expr) Expr {
	n, nok := num.(Integer)
	d, dok := den.(Integer)
	if !nok || !dok {
		return Ratio{Num: num, Den: den}
	}
	switch {
	case d.Value == 0:
		// деление на ноль остаётся символьным
		return Ratio{Num: n, Den: d}
	case n.Value == 0:
		return Integer{Value: 0}
	case n.Value%d.Value == 0:
		return Integer{Value: n.Value / d.Value}
	}

	nv, dv := n.Value, d.Value
	if g := SignedGCD(nv, dv); g > 1 {
		nv, dv = nv/g, dv/g
	}
	// знак в числителе; -MinInt64 непредставим, такой знаменатель оставляем
	if dv < 0 && dv != math.MinInt64 {
		nv, dv = -nv, -dv
	}
	return Ratio{Num: Integer{Value: nv}, Den: Integer{Value: dv}}
}
