package observ

import (
	"errors"
	"strings"
	"testing"
	"time"

	"symcalc/internal/diag"
	"symcalc/internal/source"
)

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	cur := time.Unix(0, 0)
	return func() time.Time {
		cur = cur.Add(step)
		return cur
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)

	lex := tm.Begin("lex")
	tm.End(lex, "")
	err := tm.Measure("parse", func() error { return errors.New("boom") })
	if err == nil {
		t.Fatal("Measure must return fn's error")
	}

	r := tm.Report()
	if len(r.Stages) != 2 {
		t.Fatalf("stages: %+v", r.Stages)
	}
	if r.Stages[0].DurationMS != 1 || r.Stages[1].DurationMS != 1 {
		t.Fatalf("durations: %+v", r.Stages)
	}
	if r.TotalMS != 2 {
		t.Fatalf("total %v", r.TotalMS)
	}
	if r.Stages[1].Note != "failed" {
		t.Fatalf("note %q", r.Stages[1].Note)
	}
	if s := tm.Summary(); !strings.Contains(s, "parse") || !strings.Contains(s, "// failed") {
		t.Fatalf("summary:\n%s", s)
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	tm.End(3, "ignored")
	if len(tm.Report().Stages) != 0 {
		t.Fatal("End on unknown index must be a no-op")
	}
}

func TestReportDiagnostic(t *testing.T) {
	r := Report{TotalMS: 1.5, Stages: []StageReport{{Name: "lex", DurationMS: 0.5}, {Name: "parse", DurationMS: 1}}}
	d := r.Diagnostic(source.Point(source.Start()))
	if d.Code != diag.ObsTimings || d.Severity != diag.SevInfo {
		t.Fatalf("diag %+v", d)
	}
	if len(d.Notes) != 2 || d.Notes[1].Msg != "parse: 1.000 ms" {
		t.Fatalf("notes %+v", d.Notes)
	}
}
