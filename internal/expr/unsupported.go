package expr

// FindUnsupported returns the outermost power, root and comparison nodes of
// e in pre-order. Simplify leaves these subtrees untouched.
func FindUnsupported(e Expr) []Expr {
	var out []Expr
	var walk func(Expr)
	walk = func(e Expr) {
		switch e.(type) {
		case Power, Root, Comparison:
			out = append(out, e)
			return
		}
		for _, c := range Children(e) {
			walk(c)
		}
	}
	walk(e)
	return out
}
