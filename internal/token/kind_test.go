package token_test

import (
	"regexp"
	"testing"

	"symcalc/internal/token"
)

func TestEveryMatchableKindHasValidPattern(t *testing.T) {
	for _, k := range token.Kinds() {
		p := k.Pattern()
		if k == token.EOF {
			if p != "" {
				t.Fatalf("EOF must not have a pattern, got %q", p)
			}
			continue
		}
		if p == "" {
			t.Fatalf("%v has no pattern", k)
		}
		if _, err := regexp.Compile(p); err != nil {
			t.Fatalf("%v pattern %q does not compile: %v", k, p, err)
		}
	}
}

func TestIsStructural(t *testing.T) {
	structural := []token.Kind{token.Whitespace, token.EOL, token.EOF}
	for _, k := range structural {
		if !k.IsStructural() {
			t.Fatalf("%v should be structural", k)
		}
	}
	non := []token.Kind{token.Number, token.Ident, token.Plus, token.LBracket, token.Colon}
	for _, k := range non {
		if k.IsStructural() {
			t.Fatalf("%v must NOT be structural", k)
		}
	}
}

func TestIsComparison(t *testing.T) {
	for _, k := range []token.Kind{token.Eq, token.BangEq, token.Gt, token.Lt, token.GtEq, token.LtEq} {
		if !k.IsComparison() {
			t.Fatalf("%v should be a comparison", k)
		}
	}
	if token.Bang.IsComparison() || token.Plus.IsComparison() {
		t.Fatal("Bang/Plus must not be comparisons")
	}
}

func TestKindStringAndLabel(t *testing.T) {
	if token.GtEq.String() != "GtEq" || token.GtEq.Label() != "'>='" {
		t.Fatalf("GtEq = %s / %s", token.GtEq, token.GtEq.Label())
	}
	if token.Kind(200).String() != "Unknown" {
		t.Fatalf("out of range kind = %s", token.Kind(200))
	}
}

func TestSymbol(t *testing.T) {
	if token.GtEq.Symbol() != ">=" || token.Tick.Symbol() != "'" {
		t.Fatalf("symbols: %q %q", token.GtEq.Symbol(), token.Tick.Symbol())
	}
	if token.Number.Symbol() != "" || token.EOF.Symbol() != "" {
		t.Fatal("non-punctuation kinds have no symbol")
	}
}
