// Package trace is the leveled event log of symcalc.
//
// Every pipeline stage (lex, parse, lower, simplify) runs inside a span;
// batch runs add a driver span and one span per input line. Events go to a
// stream (stderr or a file) as text or NDJSON.
//
// # Usage
//
//	symcalc batch exprs.txt --trace=- --trace-level=detail
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only failures (diagnostic events)
//   - LevelPhase: Driver and per-line spans
//   - LevelDetail: Stage spans inside each line
//   - LevelDebug: Everything, including cache lookups
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.StartSpan(ctx, trace.ScopeStage, "parse")
//	defer span.End("")
package trace
