package driver

import (
	"context"
	"errors"

	"symcalc/internal/fix"
	"symcalc/internal/trace"
)

// DefaultRepairRounds bounds Repair; each round fixes one error.
const DefaultRepairRounds = 8

// RepairResult is the outcome of Repair: the final line, the fixes applied
// on the way and the result of the last run.
type RepairResult struct {
	Line    string
	Applied []fix.AppliedFix
	Result  *Result
}

// Changed reports whether any fix was applied.
func (r *RepairResult) Changed() bool { return len(r.Applied) > 0 }

// Repair runs line and, while it fails, applies the first suggested fix and
// runs it again. The stages stop at the first error, so every round can only
// see and fix one problem. It stops when the line succeeds, no fix applies
// or rounds are exhausted (rounds <= 0 means DefaultRepairRounds).
func Repair(ctx context.Context, line string, opts Options, rounds int) (*RepairResult, error) {
	if rounds <= 0 {
		rounds = DefaultRepairRounds
	}
	span, ctx := trace.StartSpan(ctx, trace.ScopeLine, "repair")
	tracer := trace.FromContext(ctx)

	out := &RepairResult{Line: normalizeLine(line)}
	for round := 0; ; round++ {
		out.Result = Run(ctx, out.Line, opts)
		if !out.Result.Failed() || round == rounds {
			break
		}
		res, err := fix.Apply(out.Result.Input, out.Result.Bag.Items(), fix.ApplyOptions{Mode: fix.ApplyModeOnce})
		if errors.Is(err, fix.ErrNoFixes) {
			break
		}
		if err != nil {
			span.End("error")
			return out, err
		}
		for _, a := range res.Applied {
			trace.Point(tracer, trace.ScopeLine, "fix", a.Title, span.ID())
		}
		out.Applied = append(out.Applied, res.Applied...)
		out.Line = res.Text
	}

	if out.Result.Failed() {
		span.End("unresolved")
	} else {
		span.End("ok")
	}
	return out, nil
}
