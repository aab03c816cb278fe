package source

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

// Position is a location inside a single line (or block) of input.
type Position struct {
	Index  uint32 // смещение в байтах от начала ввода
	Line   uint32 // 1-based
	Column uint32 // 1-based, в символах (runes)
}

// Start returns the position of the first byte of any input.
func Start() Position {
	return Position{Index: 0, Line: 1, Column: 1}
}

// Advance returns the position reached after consuming text.
// Index grows by the byte length of text. A newline in text moves to the next
// line(s) and resets Column to the rune count after the last newline plus one.
func (p Position) Advance(text string) Position {
	p.Index += mustU32(len(text))
	if nl := strings.Count(text, "\n"); nl > 0 {
		p.Line += mustU32(nl)
		tail := text[strings.LastIndexByte(text, '\n')+1:]
		p.Column = mustU32(utf8.RuneCountInString(tail)) + 1
		return p
	}
	p.Column += mustU32(utf8.RuneCountInString(text))
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func mustU32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("position overflow: %w", err))
	}
	return v
}
