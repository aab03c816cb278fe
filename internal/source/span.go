package source

import (
	"fmt"
)

// Span is a source range [Start, End).
type Span struct {
	Start Position
	End   Position
}

// NewSpan builds a span from two positions.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// Point returns a zero-width span located at pos.
func Point(pos Position) Span {
	return Span{Start: pos, End: pos}
}

func (s Span) Empty() bool {
	return s.Start.Index == s.End.Index
}

// Len is the byte length of the span.
func (s Span) Len() uint32 {
	return s.End.Index - s.Start.Index
}

// Extend keeps s.Start and takes other.End. Used to cover a syntactic unit
// built from left-to-right sub-spans.
func (s Span) Extend(other Span) Span {
	return Span{Start: s.Start, End: other.End}
}

// Between returns the zero-width span at the boundary of two adjacent spans.
func Between(left, right Span) Span {
	return Span{Start: left.End, End: right.Start}
}

// Columns is the width of the span on its first line, at least 1.
func (s Span) Columns() uint32 {
	if s.End.Line != s.Start.Line || s.End.Column <= s.Start.Column {
		return 1
	}
	return s.End.Column - s.Start.Column
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}
