package diag

import (
	"fmt"

	"symcalc/internal/source"
)

func New(sev Severity, code Code, primary source.Span, msg string) *Diagnostic {
	return &Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
		Notes:    nil,
	}
}

func NewError(code Code, primary source.Span, msg string) *Diagnostic {
	return New(SevError, code, primary, msg)
}

// Errorf is NewError with a formatted message.
func Errorf(code Code, primary source.Span, format string, args ...any) *Diagnostic {
	return New(SevError, code, primary, fmt.Sprintf(format, args...))
}

func (d *Diagnostic) WithNote(sp source.Span, msg string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

func (d *Diagnostic) WithFix(f Fix) *Diagnostic {
	d.Fixes = append(d.Fixes, f)
	return d
}
