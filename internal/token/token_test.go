package token_test

import (
	"testing"

	"symcalc/internal/token"
)

func TestEqualIgnoresPayload(t *testing.T) {
	a := token.Token{Kind: token.Number, Number: 1}
	b := token.Token{Kind: token.Number, Number: 2}
	if !a.Equal(b) {
		t.Fatal("numbers with different values must be equal")
	}
	x := token.Token{Kind: token.Ident, Name: "x"}
	y := token.Token{Kind: token.Ident, Name: "y"}
	if !x.Equal(y) {
		t.Fatal("identifiers with different names must be equal")
	}
	if a.Equal(x) {
		t.Fatal("number and identifier must differ")
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.Number, Number: 12.5}, "Number(12.5)"},
		{token.Token{Kind: token.Ident, Name: "sqrt"}, "Ident(sqrt)"},
		{token.Token{Kind: token.Plus}, "Plus"},
		{token.Token{Kind: token.EOF}, "EOF"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestHasPayload(t *testing.T) {
	if !(token.Token{Kind: token.Number}).HasPayload() || !(token.Token{Kind: token.Ident}).HasPayload() {
		t.Fatal("Number and Ident carry payloads")
	}
	if (token.Token{Kind: token.Star}).HasPayload() {
		t.Fatal("Star carries no payload")
	}
}
