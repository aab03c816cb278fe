package lexer

import "testing"

func TestCursorBumpAndSpan(t *testing.T) {
	c := NewCursor("ab\nc")
	m := c.Mark()
	if got := c.Bump(3); got != "ab\n" {
		t.Fatalf("Bump = %q", got)
	}
	if c.Pos.Line != 2 || c.Pos.Column != 1 || c.Rest() != "c" {
		t.Fatalf("after bump: %+v rest=%q", c.Pos, c.Rest())
	}
	sp := c.SpanFrom(m)
	if sp.Len() != 3 {
		t.Fatalf("SpanFrom len = %d", sp.Len())
	}
	if sp.Start.Index != 0 || sp.End.Line != 2 {
		t.Fatalf("SpanFrom = %+v", sp)
	}
	c.Bump(100)
	if !c.EOF() || c.Rest() != "" {
		t.Fatal("Bump past end must clamp to EOF")
	}
}
