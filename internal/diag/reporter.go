package diag

import (
	"errors"

	"symcalc/internal/source"
)

// Reporter: минимальный контракт получения диагностик от фаз.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix)
}

// BagReporter: адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes, Fixes: fixes,
	})
}

// Emit forwards d to r. Nil reporters and nil diagnostics are ignored.
func Emit(r Reporter, d *Diagnostic) {
	if r == nil || d == nil {
		return
	}
	r.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes, d.Fixes)
}

// FromError extracts the diagnostic carried by err, if any.
func FromError(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
