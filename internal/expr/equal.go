package expr

import "math"

// Equal reports whether a and b are the same tree. Decimals compare by value,
// with NaN equal to NaN so that Equal is reflexive.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case Integer:
		b, ok := b.(Integer)
		return ok && a.Value == b.Value
	case Decimal:
		b, ok := b.(Decimal)
		return ok && (a.Value == b.Value || math.IsNaN(a.Value) && math.IsNaN(b.Value))
	case Variable:
		b, ok := b.(Variable)
		return ok && a.Name == b.Name
	case Negation:
		b, ok := b.(Negation)
		return ok && Equal(a.Operand, b.Operand)
	case Sum:
		b, ok := b.(Sum)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case Difference:
		b, ok := b.(Difference)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case Product:
		b, ok := b.(Product)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case Ratio:
		b, ok := b.(Ratio)
		return ok && Equal(a.Num, b.Num) && Equal(a.Den, b.Den)
	case Power:
		b, ok := b.(Power)
		return ok && Equal(a.Base, b.Base) && Equal(a.Exp, b.Exp)
	case Root:
		b, ok := b.(Root)
		return ok && Equal(a.Index, b.Index) && Equal(a.Radicand, b.Radicand)
	case Comparison:
		b, ok := b.(Comparison)
		return ok && a.Op == b.Op && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case nil:
		return b == nil
	default:
		return false
	}
}
