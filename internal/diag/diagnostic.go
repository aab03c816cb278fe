package diag

import (
	"fmt"

	"symcalc/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit replaces Span with NewText. OldText, when set, guards the edit:
// it is skipped unless the input under Span still reads OldText.
type FixEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// Fix is a suggested correction of the input line.
type Fix struct {
	ID        string
	Title     string
	Edits     []FixEdit
	Preferred bool
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

// Error makes a *Diagnostic usable as a Go error; stages return it directly.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s %s at %s: %s", d.Severity, d.Code.ID(), d.Primary.Start, d.Message)
}
