package diagfmt

import (
	"encoding/json"
	"io"

	"symcalc/internal/diag"
	"symcalc/internal/source"
)

// LocationJSON представляет местоположение во входной строке для JSON
type LocationJSON struct {
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// FixJSON is a suggested correction: its edits as byte ranges plus text.
type FixJSON struct {
	ID    string        `json:"id,omitempty"`
	Title string        `json:"title"`
	Edits []FixEditJSON `json:"edits"`
}

type FixEditJSON struct {
	Location LocationJSON `json:"location"`
	NewText  string       `json:"new_text"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, includePositions bool) LocationJSON {
	loc := LocationJSON{
		StartByte: span.Start.Index,
		EndByte:   span.End.Index,
	}
	if includePositions {
		loc.StartLine = span.Start.Line
		loc.StartCol = span.Start.Column
		loc.EndLine = span.End.Line
		loc.EndCol = span.End.Column
	}
	return loc
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, opts JSONOpts) DiagnosticsOutput {
	var items []diag.Diagnostic
	if bag != nil {
		items = bag.Items()
	}
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for _, d := range items[:maxItems] {
		diagJSON := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, opts.IncludePositions),
		}

		includeNotes := opts.IncludeNotes || d.Code == diag.ObsTimings
		if includeNotes && len(d.Notes) > 0 {
			diagJSON.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				diagJSON.Notes[j] = NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, opts.IncludePositions),
				}
			}
		}
		for _, f := range d.Fixes {
			fj := FixJSON{ID: f.ID, Title: f.Title, Edits: make([]FixEditJSON, len(f.Edits))}
			for j, e := range f.Edits {
				fj.Edits[j] = FixEditJSON{Location: makeLocation(e.Span, opts.IncludePositions), NewText: e.NewText}
			}
			diagJSON.Fixes = append(diagJSON.Fixes, fj)
		}
		diagnostics = append(diagnostics, diagJSON)
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
	}
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	return encode(w, BuildDiagnosticsOutput(bag, opts))
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
