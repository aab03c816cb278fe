package lexer

import (
	"symcalc/internal/source"
)

// Cursor представляет собой позицию во входной строке
type Cursor struct {
	Text string
	Pos  source.Position
}

// NewCursor creates a cursor at the start of text.
func NewCursor(text string) Cursor {
	return Cursor{Text: text, Pos: source.Start()}
}

// EOF проверяет, достигнут ли конец ввода
func (c *Cursor) EOF() bool {
	return int(c.Pos.Index) >= len(c.Text)
}

// Rest returns the unconsumed suffix.
func (c *Cursor) Rest() string {
	if c.EOF() {
		return ""
	}
	return c.Text[c.Pos.Index:]
}

// Bump consumes n bytes and returns the consumed text.
func (c *Cursor) Bump(n int) string {
	rest := c.Rest()
	if n > len(rest) {
		n = len(rest)
	}
	text := rest[:n]
	c.Pos = c.Pos.Advance(text)
	return text
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark source.Position

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Pos)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.NewSpan(source.Position(m), c.Pos)
}
