package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd
	// KindPoint represents an instant event.
	KindPoint
	// KindFailure is an instant event for a stage that produced a diagnostic.
	KindFailure
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity level of the event.
// Lower numeric values represent higher-level/coarser events.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // batch / repl session
	ScopeLine                    // one input line
	ScopeStage                   // lex, parse, lower, simplify
	ScopeDebug                   // cache lookups and other internals
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopeLine:
		return "line"
	case ScopeStage:
		return "stage"
	case ScopeDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time         // wall-clock timestamp
	Seq      uint64            // global sequence number (monotonic)
	Kind     Kind              // event kind
	Scope    Scope             // granularity level
	SpanID   uint64            // unique span identifier
	ParentID uint64            // parent span (0 if root)
	GID      uint64            // goroutine ID (batch lines run concurrently)
	Name     string            // e.g. "parse", "line:3"
	Detail   string            // optional detail message
	Extra    map[string]string // extensible key-value pairs
}
