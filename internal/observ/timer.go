package observ

import (
	"fmt"
	"strings"
	"time"

	"symcalc/internal/diag"
	"symcalc/internal/source"
)

// Stage records the duration of one pipeline stage.
type Stage struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks the execution time of the stages of one line. Not safe for
// concurrent use; batch runs keep one Timer per line.
type Timer struct {
	stages []Stage
	now    func() time.Time
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{stages: make([]Stage, 0, 4), now: time.Now} }

// Begin starts a new stage and returns its index.
func (t *Timer) Begin(name string) int {
	t.stages = append(t.stages, Stage{Name: name, Start: t.now()})
	return len(t.stages) - 1
}

// End finishes a stage by its index.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.stages) {
		return
	}
	s := &t.stages[idx]
	s.Dur = t.now().Sub(s.Start)
	s.Note = note
}

// Measure runs fn as stage name.
func (t *Timer) Measure(name string, fn func() error) error {
	idx := t.Begin(name)
	err := fn()
	note := ""
	if err != nil {
		note = "failed"
	}
	t.End(idx, note)
	return err
}

// Summary returns a human-readable string summarizing all tracked stages.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, s := range report.Stages {
		fmt.Fprintf(&sb, "  %-10s %8.3f ms", s.Name, s.DurationMS)
		if s.Note != "" {
			sb.WriteString("  // " + s.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-10s %8.3f ms\n", "total", report.TotalMS)
	return sb.String()
}

// StageReport представляет сжатую информацию о стадии для сериализации.
type StageReport struct {
	Name       string  `json:"name" msgpack:"name"`
	DurationMS float64 `json:"duration_ms" msgpack:"duration_ms"`
	Note       string  `json:"note,omitempty" msgpack:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms" msgpack:"total_ms"`
	Stages  []StageReport `json:"stages" msgpack:"stages"`
}

// Report формирует срез стадий и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if len(t.stages) == 0 {
		return Report{}
	}
	report := Report{
		Stages: make([]StageReport, len(t.stages)),
	}
	var total time.Duration
	for i, s := range t.stages {
		total += s.Dur
		report.Stages[i] = StageReport{
			Name:       s.Name,
			DurationMS: durationToMillis(s.Dur),
			Note:       s.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

// Diagnostic packs the report into an ObsTimings info diagnostic, one note
// per stage, located at sp.
func (r Report) Diagnostic(sp source.Span) diag.Diagnostic {
	d := diag.New(diag.SevInfo, diag.ObsTimings, sp, fmt.Sprintf("pipeline took %.3f ms", r.TotalMS))
	for _, s := range r.Stages {
		d.WithNote(sp, fmt.Sprintf("%s: %.3f ms", s.Name, s.DurationMS))
	}
	return *d
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
