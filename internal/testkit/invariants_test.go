package testkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"symcalc/internal/ast"
	"symcalc/internal/expr"
	"symcalc/internal/lexer"
	"symcalc/internal/parser"
	"symcalc/internal/source"
	"symcalc/internal/testkit"
	"symcalc/internal/token"
)

func TestCheckSpanInvariantsOnParsedLines(t *testing.T) {
	for _, src := range []string{
		"1",
		"2x + 3y",
		"root:3[8] * (a - b)",
		"-sqrt[4] ^ 2 = x",
		"  1.5 /  (x y z)  ",
	} {
		t.Run(src, func(t *testing.T) {
			toks, err := lexer.Tokenize(src)
			require.NoError(t, err)
			tree, err := parser.Parse(toks)
			require.NoError(t, err)
			require.NoError(t, testkit.CheckSpanInvariants(tree, src))

			low, err := expr.Lower(tree, expr.LowerOptions{})
			require.NoError(t, err)
			require.NoError(t, testkit.CheckSimplifyFixpoint(low))
		})
	}
}

func TestCheckSpanInvariantsRejectsBadSpans(t *testing.T) {
	at := func(start, end uint32) source.Span {
		return source.NewSpan(source.Position{Index: start, Line: 1, Column: start + 1}, source.Position{Index: end, Line: 1, Column: end + 1})
	}
	leaf := &ast.Variable{Tok: token.Token{Kind: token.Ident, Name: "x", Span: at(0, 1)}}

	require.Error(t, testkit.CheckSpanInvariants(nil, ""))
	require.Error(t, testkit.CheckSpanInvariants(leaf, ""), "beyond input")

	wrong := &ast.Variable{Tok: token.Token{Kind: token.Ident, Name: "y", Span: at(0, 1)}}
	require.Error(t, testkit.CheckSpanInvariants(wrong, "x"))

	empty := &ast.Number{Tok: token.Token{Kind: token.Number, Number: 1, Span: at(0, 0)}}
	require.Error(t, testkit.CheckSpanInvariants(empty, "1"))

	call := &ast.Call{Callee: leaf.Tok, Sp: at(0, 1), Args: []ast.Node{
		&ast.Number{Tok: token.Token{Kind: token.Number, Number: 2, Span: at(2, 3)}},
	}}
	require.Error(t, testkit.CheckSpanInvariants(call, "x[2]"), "argument outside call span")
}
