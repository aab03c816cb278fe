package token

import (
	"strconv"

	"symcalc/internal/source"
)

// Token represents a single lexed token.
// Number and Name are the payloads; they are meaningful only for Number and
// Ident kinds respectively.
type Token struct {
	Kind   Kind
	Span   source.Span
	Number float64
	Name   string
}

// Equal compares kinds only: two numbers are equal whatever their values.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind
}

// HasPayload reports whether the token carries a value.
func (t Token) HasPayload() bool {
	return t.Kind == Number || t.Kind == Ident
}

// Is reports whether the token is one of kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// Payload renders the payload as text, "" for payload-less kinds.
func (t Token) Payload() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(t.Number, 'g', -1, 64)
	case Ident:
		return t.Name
	default:
		return ""
	}
}

func (t Token) String() string {
	if t.HasPayload() {
		return t.Kind.String() + "(" + t.Payload() + ")"
	}
	return t.Kind.String()
}
