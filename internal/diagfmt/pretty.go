package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"symcalc/internal/diag"
	"symcalc/internal/source"
)

type palette struct {
	err, warn, info, gutter, bold func(a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.Sprint
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		gutter: mk(color.FgBlue, color.Bold),
		bold:   mk(color.Bold),
	}
}

func (p palette) severity(s diag.Severity) func(a ...any) string {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее); text is the input the
// spans point into. For each diagnostic:
//
//	error[LEX1001]: unknown character
//	 --> 1:3
//	  |
//	1 | 1 @ 2
//	  |   ^ '@' is not a valid character
func Pretty(w io.Writer, bag *diag.Bag, text string, opts PrettyOpts) {
	if bag == nil {
		return
	}
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		PrettyOne(w, d, text, opts)
	}
}

// PrettyOne renders a single diagnostic.
func PrettyOne(w io.Writer, d diag.Diagnostic, text string, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	sev := pal.severity(d.Severity)

	fmt.Fprintf(w, "%s%s\n",
		sev(fmt.Sprintf("%s[%s]", d.Severity.Label(), d.Code.ID())),
		pal.bold(": "+strings.ToLower(d.Code.Title())))

	start := d.Primary.Start
	lineNo := strconv.FormatUint(uint64(start.Line), 10)
	pad := strings.Repeat(" ", len(lineNo))

	fmt.Fprintf(w, "%s%s %s\n", pad, pal.gutter("-->"), start)
	fmt.Fprintf(w, "%s %s\n", pad, pal.gutter("|"))
	line := source.Line(text, start.Line)
	fmt.Fprintf(w, "%s %s %s\n", pal.gutter(lineNo), pal.gutter("|"), line)

	offset, width := caretGeometry(line, d.Primary)
	fmt.Fprintf(w, "%s %s %s%s %s\n",
		pad, pal.gutter("|"),
		strings.Repeat(" ", offset), sev(strings.Repeat("^", width)),
		sev(d.Message))

	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(w, "%s %s %s %s\n", pad, pal.gutter("="), pal.bold("note:"), fmt.Sprintf("%s (at %s)", n.Msg, n.Span.Start))
		}
	}
	for _, f := range d.Fixes {
		fmt.Fprintf(w, "%s %s %s %s\n", pad, pal.gutter("="), pal.bold("help:"), f.Title)
	}
}

// caretGeometry returns the display column offset and underline width of sp
// on line, counting wide runes as two cells. The width is at least 1.
func caretGeometry(line string, sp source.Span) (offset, width int) {
	runes := []rune(line)
	col := int(sp.Start.Column) - 1
	col = max(0, min(col, len(runes)))
	offset = runewidth.StringWidth(string(runes[:col]))

	end := col + int(sp.Columns())
	if sp.End.Line != sp.Start.Line {
		end = len(runes)
	}
	end = min(end, len(runes))
	width = runewidth.StringWidth(string(runes[col:end]))
	return offset, max(width, 1)
}
