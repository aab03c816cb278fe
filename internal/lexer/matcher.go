package lexer

import (
	"fmt"
	"regexp"

	"symcalc/internal/token"
)

type rule struct {
	kind token.Kind
	re   *regexp.Regexp
}

// rules follows token declaration order; kinds without a pattern (EOF) are absent.
var rules = compileRules()

func compileRules() []rule {
	out := make([]rule, 0, len(token.Kinds()))
	for _, k := range token.Kinds() {
		p := k.Pattern()
		if p == "" {
			continue
		}
		re, err := regexp.Compile(p)
		if err != nil {
			panic(fmt.Errorf("token %v: bad pattern %q: %w", k, p, err))
		}
		re.Longest()
		out = append(out, rule{kind: k, re: re})
	}
	return out
}

// Candidate is the first match of one rule inside a suffix.
type Candidate struct {
	Kind  token.Kind
	Start int
	Len   int
}

// better reports whether c wins over best.
// Earliest start wins; on equal start the longer match wins; on a full tie
// the later-declared kind wins (candidates arrive in declaration order).
func (c Candidate) better(best Candidate) bool {
	if c.Start != best.Start {
		return c.Start < best.Start
	}
	return c.Len >= best.Len
}

// Candidates returns the first match of every rule that matches anywhere in
// suffix, in declaration order. Zero-length matches are ignored.
func Candidates(suffix string) []Candidate {
	out := make([]Candidate, 0, 4)
	for _, r := range rules {
		loc := r.re.FindStringIndex(suffix)
		if loc == nil || loc[1] == loc[0] {
			continue
		}
		out = append(out, Candidate{Kind: r.kind, Start: loc[0], Len: loc[1] - loc[0]})
	}
	return out
}

// Match selects the winning kind for the start of suffix and the length of
// its match. ok is false when nothing matches or the earliest match does not
// begin at offset 0.
func Match(suffix string) (kind token.Kind, length int, ok bool) {
	cands := Candidates(suffix)
	if len(cands) == 0 {
		return token.EOF, 0, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.better(best) {
			best = c
		}
	}
	if best.Start != 0 {
		return token.EOF, 0, false
	}
	return best.Kind, best.Len, true
}
