package diagfmt

import (
	"io"
	"math"

	"symcalc/internal/expr"
)

type ExprOutput struct {
	Kind     string       `json:"kind"`
	Value    any          `json:"value,omitempty"`
	Display  string       `json:"display"`
	Children []ExprOutput `json:"children,omitempty"`
}

// FormatExprPretty prints an expression as a box-drawing outline of its
// variants.
func FormatExprPretty(w io.Writer, e expr.Expr) error {
	return writeOutline(w, buildExprTreeNode(e))
}

func FormatExprJSON(w io.Writer, e expr.Expr) error {
	return encode(w, BuildExprOutput(e))
}

func buildExprTreeNode(e expr.Expr) *treeNode {
	label := expr.KindName(e)
	switch e.(type) {
	case expr.Integer, expr.Decimal, expr.Variable:
		label += " " + expr.Format(e)
	}
	node := &treeNode{label: label}
	for _, c := range expr.Children(e) {
		node.children = append(node.children, buildExprTreeNode(c))
	}
	return node
}

// BuildExprOutput формирует JSON-представление выражения без сериализации.
func BuildExprOutput(e expr.Expr) ExprOutput {
	out := ExprOutput{
		Kind:    expr.KindName(e),
		Display: expr.Format(e),
	}
	switch e := e.(type) {
	case expr.Integer:
		out.Value = e.Value
	case expr.Decimal:
		// JSON не умеет NaN и бесконечности; их видно в display
		if !math.IsNaN(e.Value) && !math.IsInf(e.Value, 0) {
			out.Value = e.Value
		}
	case expr.Variable:
		out.Value = e.Name
	}
	for _, c := range expr.Children(e) {
		out.Children = append(out.Children, BuildExprOutput(c))
	}
	return out
}
