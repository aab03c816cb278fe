package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	// LevelOff disables tracing.
	LevelOff    Level = iota // no tracing
	LevelError               // only failures
	LevelPhase               // driver + line boundaries
	LevelDetail              // stage spans
	LevelDebug               // everything
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelPhase:
		return "phase"
	case LevelDetail:
		return "detail"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "phase":
		return LevelPhase, nil
	case "detail":
		return LevelDetail, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|detail|debug)", s)
	}
}

// ShouldEmit returns true if an event of the given scope and kind passes
// this level. Failure points pass every level except off.
func (l Level) ShouldEmit(scope Scope, kind Kind) bool {
	if l == LevelOff {
		return false
	}
	if kind == KindFailure {
		return true
	}
	switch l {
	case LevelPhase:
		return scope <= ScopeLine
	case LevelDetail:
		return scope <= ScopeStage
	case LevelDebug:
		return true
	}
	return false
}
