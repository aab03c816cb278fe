package fix

import (
	"fmt"

	"symcalc/internal/diag"
	"symcalc/internal/source"
)

// Option tweaks a fix while it is built.
type Option func(*diag.Fix)

// Preferred sorts the fix ahead of others at the same place.
func Preferred() Option {
	return func(f *diag.Fix) { f.Preferred = true }
}

// WithID gives the fix a stable id for ApplyModeID; otherwise Apply derives
// one from the code and position.
func WithID(id string) Option {
	return func(f *diag.Fix) { f.ID = id }
}

func build(title string, edit diag.FixEdit, opts []Option) diag.Fix {
	f := diag.Fix{Title: title, Edits: []diag.FixEdit{edit}}
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	return f
}

// InsertText inserts text at pos; an insertion has no guard.
func InsertText(title string, pos source.Position, text string, opts ...Option) diag.Fix {
	return build(title, diag.FixEdit{Span: source.Point(pos), NewText: text}, opts)
}

// DeleteSpan removes span if it still reads expect.
func DeleteSpan(title string, span source.Span, expect string, opts ...Option) diag.Fix {
	return build(title, diag.FixEdit{Span: span, OldText: expect}, opts)
}

// ReplaceSpan swaps expect under span for newText.
func ReplaceSpan(title string, span source.Span, newText, expect string, opts ...Option) diag.Fix {
	return build(title, diag.FixEdit{Span: span, NewText: newText, OldText: expect}, opts)
}

// lookalikes: символы из отрендеренной математики (в том числе из нашего
// же вывода, где произведение пишется через '·') и операторы, которые они
// означают.
var lookalikes = map[string]string{
	"×": "*",
	"·": "*",
	"∙": "*",
	"÷": "/",
	"∕": "/",
	"−": "-",
	"–": "-",
	"＋": "+",
	"≠": "!=",
	"≤": "<=",
	"≥": ">=",
}

// Lookalike reports the operator a pasted character stands for.
func Lookalike(ch string) (string, bool) {
	op, ok := lookalikes[ch]
	return op, ok
}

// ForUnknownChar suggests what to do with a character no token matches:
// replace a known look-alike (preferred), otherwise or alternatively remove it.
func ForUnknownChar(span source.Span, ch string) []diag.Fix {
	remove := DeleteSpan(fmt.Sprintf("remove '%s'", ch), span, ch)
	op, ok := Lookalike(ch)
	if !ok {
		return []diag.Fix{remove}
	}
	return []diag.Fix{
		ReplaceSpan(fmt.Sprintf("replace '%s' with '%s'", ch, op), span, op, ch, Preferred()),
		remove,
	}
}

// CloseBracket inserts a missing closing bracket right after the last token
// that was consumed.
func CloseBracket(after source.Position, symbol string) diag.Fix {
	return InsertText(fmt.Sprintf("insert '%s'", symbol), after, symbol, Preferred())
}
