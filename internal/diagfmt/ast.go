package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"symcalc/internal/ast"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Op       string          `json:"op,omitempty"`
	Text     string          `json:"text,omitempty"`
	Implicit bool            `json:"implicit,omitempty"`
	Span     LocationJSON    `json:"span"`
	Params   []ASTNodeOutput `json:"params,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTPretty prints the syntax tree as a box-drawing outline with spans,
// followed by its compact infix form.
func FormatASTPretty(w io.Writer, n ast.Node) error {
	if err := writeOutline(w, buildASTTreeNode(n, true)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "infix: %s\n", ast.Infix(n))
	return err
}

// FormatASTDiagram prints the syntax tree top-down.
func FormatASTDiagram(w io.Writer, n ast.Node) error {
	return writeDiagram(w, buildASTTreeNode(n, false))
}

func FormatASTJSON(w io.Writer, n ast.Node) error {
	return encode(w, buildASTJSON(n))
}

func astLabel(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Number:
		return strconv.FormatFloat(n.Value(), 'g', -1, 64)
	case *ast.Variable:
		return n.Name()
	case *ast.Binary:
		if n.Implicit {
			return "·"
		}
		return n.Op.Kind.Symbol()
	case *ast.Unary:
		return n.Op.Kind.Symbol()
	case *ast.Call:
		return n.Callee.Name + "[]"
	default:
		return fmt.Sprintf("%T", n)
	}
}

func astType(n ast.Node) string {
	switch n.(type) {
	case *ast.Number:
		return "Number"
	case *ast.Variable:
		return "Variable"
	case *ast.Binary:
		return "Binary"
	case *ast.Unary:
		return "Unary"
	case *ast.Call:
		return "Call"
	default:
		return "?"
	}
}

func buildASTTreeNode(n ast.Node, withSpans bool) *treeNode {
	label := astLabel(n)
	if withSpans {
		label = fmt.Sprintf("%s %s (span: %s)", astType(n), label, n.Span())
		if b, ok := n.(*ast.Binary); ok && b.Implicit {
			label += " implicit"
		}
	}
	node := &treeNode{label: label}

	if c, ok := n.(*ast.Call); ok {
		if len(c.Params) > 0 {
			params := &treeNode{label: "params"}
			for _, p := range c.Params {
				params.children = append(params.children, buildASTTreeNode(p, withSpans))
			}
			node.children = append(node.children, params)
		}
		args := &treeNode{label: "args"}
		for _, a := range c.Args {
			args.children = append(args.children, buildASTTreeNode(a, withSpans))
		}
		node.children = append(node.children, args)
		return node
	}

	for _, child := range ast.Children(n) {
		node.children = append(node.children, buildASTTreeNode(child, withSpans))
	}
	return node
}

func buildASTJSON(n ast.Node) ASTNodeOutput {
	out := ASTNodeOutput{
		Type: astType(n),
		Span: makeLocation(n.Span(), true),
	}
	switch n := n.(type) {
	case *ast.Number:
		out.Text = n.Tok.Payload()
	case *ast.Variable:
		out.Text = n.Name()
	case *ast.Binary:
		out.Op = n.Op.Kind.Symbol()
		out.Implicit = n.Implicit
	case *ast.Unary:
		out.Op = n.Op.Kind.Symbol()
	case *ast.Call:
		out.Text = n.Callee.Name
		for _, p := range n.Params {
			out.Params = append(out.Params, buildASTJSON(p))
		}
		for _, a := range n.Args {
			out.Children = append(out.Children, buildASTJSON(a))
		}
		return out
	}
	for _, child := range ast.Children(n) {
		out.Children = append(out.Children, buildASTJSON(child))
	}
	return out
}
