package trace_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"symcalc/internal/trace"
)

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level trace.Level
		scope trace.Scope
		kind  trace.Kind
		want  bool
	}{
		{trace.LevelOff, trace.ScopeDriver, trace.KindFailure, false},
		{trace.LevelError, trace.ScopeDriver, trace.KindSpanBegin, false},
		{trace.LevelError, trace.ScopeStage, trace.KindFailure, true},
		{trace.LevelPhase, trace.ScopeLine, trace.KindSpanBegin, true},
		{trace.LevelPhase, trace.ScopeStage, trace.KindSpanBegin, false},
		{trace.LevelDetail, trace.ScopeStage, trace.KindSpanEnd, true},
		{trace.LevelDetail, trace.ScopeDebug, trace.KindPoint, false},
		{trace.LevelDebug, trace.ScopeDebug, trace.KindPoint, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope, tt.kind); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s, %s) = %v, want %v", tt.level, tt.scope, tt.kind, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		l, err := trace.ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if l.String() != s {
			t.Fatalf("round trip %q -> %q", s, l.String())
		}
	}
	if _, err := trace.ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestSpansNestThroughContext(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatNDJSON)
	ctx := trace.WithTracer(context.Background(), tr)

	line, ctx := trace.StartSpan(ctx, trace.ScopeLine, "line:1")
	stage, _ := trace.StartSpan(ctx, trace.ScopeStage, "parse")
	stage.WithExtra("tokens", "3").End("")
	// debug-точки отфильтрованы уровнем detail
	trace.Point(tr, trace.ScopeDebug, "cache", "miss", line.ID())
	line.End("ok")

	type ev struct {
		Kind     string            `json:"kind"`
		Name     string            `json:"name"`
		SpanID   uint64            `json:"span_id"`
		ParentID uint64            `json:"parent_id"`
		Detail   string            `json:"detail"`
		Extra    map[string]string `json:"extra"`
	}
	var events []ev
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var e ev
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("bad ndjson line %q: %v", sc.Text(), err)
		}
		events = append(events, e)
	}
	if len(events) != 4 {
		t.Fatalf("want 4 events, got %d: %+v", len(events), events)
	}
	if events[1].Name != "parse" || events[1].ParentID != events[0].SpanID {
		t.Fatalf("stage span not nested under line: %+v", events[:2])
	}
	if events[2].Extra["tokens"] != "3" {
		t.Fatalf("extra lost: %+v", events[2])
	}
	if events[3].Kind != "end" || events[3].Detail != "ok" {
		t.Fatalf("line end: %+v", events[3])
	}
}

func TestFilteredSpanPassesParentThrough(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatText)
	root := trace.Begin(tr, trace.ScopeDriver, "batch", 0)
	hidden := trace.Begin(tr, trace.ScopeDebug, "cache", root.ID())
	if hidden.ID() != root.ID() {
		t.Fatalf("filtered span ID %d, want parent %d", hidden.ID(), root.ID())
	}
	hidden.End("")
	root.End("")
	out := buf.String()
	if strings.Count(out, "\n") != 2 || strings.Contains(out, "cache") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "→ batch") || !strings.Contains(out, "← batch") {
		t.Fatalf("missing arrows:\n%s", out)
	}
}

func TestFailurePassesErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelError, trace.FormatText)
	trace.Failure(tr, trace.ScopeStage, "parse", "SYN2002", 0)
	trace.Begin(tr, trace.ScopeStage, "lower", 0).End("")
	out := buf.String()
	if !strings.Contains(out, "✗ parse (SYN2002)") || strings.Contains(out, "lower") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestNopContext(t *testing.T) {
	if trace.FromContext(context.Background()).Enabled() {
		t.Fatal("background context must carry the nop tracer")
	}
	span, ctx := trace.StartSpan(context.Background(), trace.ScopeStage, "lex")
	if span.End("") != 0 || trace.CurrentSpan(ctx) != 0 {
		t.Fatal("nop span must be inert")
	}
}

func TestNewRespectsOff(t *testing.T) {
	tr, err := trace.New(trace.Config{Level: trace.LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("tracer=%v err=%v", tr, err)
	}
}

func TestNewAppendKeepsEarlierRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.ndjson")
	for _, name := range []string{"first", "second"} {
		tr, err := trace.New(trace.Config{Level: trace.LevelPhase, OutputPath: path, Append: true})
		if err != nil {
			t.Fatal(err)
		}
		trace.Begin(tr, trace.ScopeDriver, name, 0).End("")
		if err := tr.Close(); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	// расширение .ndjson выбирает формат
	if !strings.HasPrefix(text, "{") || !strings.Contains(text, `"first"`) || !strings.Contains(text, `"second"`) {
		t.Fatalf("trace file:\n%s", text)
	}

	tr, err := trace.New(trace.Config{Level: trace.LevelPhase, OutputPath: path})
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	if data, _ := os.ReadFile(path); len(data) != 0 {
		t.Fatalf("without Append the file is truncated, got %q", data)
	}
}
