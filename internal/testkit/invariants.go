// Package testkit holds structural checks shared by parser, driver and fuzz
// tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"symcalc/internal/ast"
	"symcalc/internal/expr"
	"symcalc/internal/source"
	"symcalc/internal/token"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed line:
// 1) every span is ordered and lies within text
// 2) leaves are non-empty and their text matches the token
// 3) every child span is contained in its parent span
func CheckSpanInvariants(root ast.Node, text string) error {
	if root == nil {
		return fmt.Errorf("nil tree")
	}
	textLen, err := safecast.Conv[uint32](len(text))
	if err != nil {
		return fmt.Errorf("len text overflow: %w", err)
	}

	var firstErr error
	ast.Walk(root, func(n ast.Node) bool {
		if firstErr != nil {
			return false
		}
		firstErr = checkNode(n, text, textLen)
		return firstErr == nil
	})
	return firstErr
}

func checkNode(n ast.Node, text string, textLen uint32) error {
	sp := n.Span()
	if sp.End.Index < sp.Start.Index {
		return fmt.Errorf("span %v is reversed", sp)
	}
	if sp.End.Index > textLen {
		return fmt.Errorf("span %v ends beyond input (%d bytes)", sp, textLen)
	}

	switch n := n.(type) {
	case *ast.Number:
		if err := checkLeaf(n.Tok, text); err != nil {
			return err
		}
	case *ast.Variable:
		if err := checkLeaf(n.Tok, text); err != nil {
			return err
		}
		if got := slice(text, sp); got != n.Name() {
			return fmt.Errorf("variable %q covers %q", n.Name(), got)
		}
	}

	for _, c := range ast.Children(n) {
		if !contains(sp, c.Span()) {
			return fmt.Errorf("child span %v is outside parent span %v", c.Span(), sp)
		}
	}
	return nil
}

func checkLeaf(tok token.Token, text string) error {
	if tok.Span.Empty() {
		return fmt.Errorf("empty %s span at %v", tok.Kind.Label(), tok.Span)
	}
	if got := slice(text, tok.Span); got == "" {
		return fmt.Errorf("%s span %v covers no text", tok.Kind.Label(), tok.Span)
	}
	return nil
}

func contains(outer, inner source.Span) bool {
	return inner.Start.Index >= outer.Start.Index && inner.End.Index <= outer.End.Index
}

func slice(text string, sp source.Span) string {
	return text[sp.Start.Index:sp.End.Index]
}

// CheckSimplifyFixpoint verifies that simplifying e twice changes nothing.
func CheckSimplifyFixpoint(e expr.Expr) error {
	once := expr.Simplify(e)
	if twice := expr.Simplify(once); !expr.Equal(once, twice) {
		return fmt.Errorf("simplify is not idempotent: %s -> %s -> %s",
			expr.Format(e), expr.Format(once), expr.Format(twice))
	}
	return nil
}
