package lexer

import (
	"testing"

	"symcalc/internal/token"
)

func TestMatchPrefersEarliestThenLongest(t *testing.T) {
	tests := []struct {
		suffix string
		kind   token.Kind
		length int
	}{
		{">=1", token.GtEq, 2},
		{"> =", token.Gt, 1},
		{"!=", token.BangEq, 2},
		{"!x", token.Bang, 1},
		{"12.5+1", token.Number, 4},
		{"abc def", token.Ident, 3},
		{"   x", token.Whitespace, 3},
		{"\nx", token.EOL, 1},
	}
	for _, tt := range tests {
		kind, n, ok := Match(tt.suffix)
		if !ok || kind != tt.kind || n != tt.length {
			t.Errorf("Match(%q) = %v,%d,%v; want %v,%d", tt.suffix, kind, n, ok, tt.kind, tt.length)
		}
	}
}

func TestMatchFailsWhenEarliestIsAhead(t *testing.T) {
	if _, _, ok := Match("@1"); ok {
		t.Fatal("Match must fail when no rule matches at offset 0")
	}
	if _, _, ok := Match("@"); ok {
		t.Fatal("Match must fail when no rule matches at all")
	}
}

func TestCandidatesDiscardNonMatching(t *testing.T) {
	cands := Candidates("+")
	if len(cands) != 1 || cands[0].Kind != token.Plus {
		t.Fatalf("Candidates(+) = %+v", cands)
	}
	for _, c := range Candidates("x >= 2") {
		if c.Len == 0 {
			t.Fatalf("zero-length candidate %+v", c)
		}
	}
}

func TestTieBreakPrefersLaterKind(t *testing.T) {
	early := Candidate{Kind: token.Gt, Start: 0, Len: 1}
	late := Candidate{Kind: token.Eq, Start: 0, Len: 1}
	if !late.better(early) {
		t.Fatal("on equal start and length the later-declared kind must win")
	}
	shorter := Candidate{Kind: token.RParen, Start: 0, Len: 1}
	longer := Candidate{Kind: token.Number, Start: 0, Len: 2}
	if shorter.better(longer) {
		t.Fatal("shorter match must not beat a longer one")
	}
	ahead := Candidate{Kind: token.RParen, Start: 2, Len: 5}
	if ahead.better(early) {
		t.Fatal("later start must not win")
	}
}

func TestEOFHasNoRule(t *testing.T) {
	for _, r := range rules {
		if r.kind == token.EOF {
			t.Fatal("EOF must not be matchable")
		}
	}
}
