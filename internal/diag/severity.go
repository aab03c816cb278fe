package diag

// Severity orders diagnostics; Bag and the renderers filter with >=.
type Severity uint8

const (
	// SevInfo marks notes the pipeline attaches to a successful line:
	// unsupported simplification, stage timings.
	SevInfo Severity = iota
	SevWarning
	// SevError is what every stage failure carries.
	SevError
)

var severityNames = [...]struct{ upper, lower string }{
	SevInfo:    {"INFO", "info"},
	SevWarning: {"WARNING", "warning"},
	SevError:   {"ERROR", "error"},
}

// String is the JSON form.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s].upper
	}
	return "UNKNOWN"
}

// Label is the lower-case word shown in the pretty header, e.g. error[LEX1001].
func (s Severity) Label() string {
	if int(s) < len(severityNames) {
		return severityNames[s].lower
	}
	return "unknown"
}
