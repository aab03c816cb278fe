package fix

import (
	"errors"
	"fmt"
	"sort"

	"symcalc/internal/diag"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	// ApplyModeOnce applies the first fix, preferring Preferred ones at the
	// earliest diagnostic.
	ApplyModeOnce ApplyMode = iota
	ApplyModeAll
	ApplyModeID
)

// ApplyOptions configures how fixes are selected.
type ApplyOptions struct {
	Mode     ApplyMode
	TargetID string
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	ID        string
	Title     string
	Code      diag.Code
	EditCount int
}

// SkippedFix captures a skipped or failed fix with a reason.
type SkippedFix struct {
	ID     string
	Title  string
	Reason string
}

// ApplyResult holds the rewritten text and what happened to each fix.
type ApplyResult struct {
	Text    string
	Applied []AppliedFix
	Skipped []SkippedFix
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply collects fixes from diagnostics, selects a subset according to opts
// and applies them to text. Edits of one fix are applied together or not at
// all; a fix overlapping an already applied one is skipped.
func Apply(text string, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{Text: text}

	candidates, skips := gatherCandidates(diagnostics)
	result.Skipped = append(result.Skipped, skips...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	selected, skips := selectCandidates(candidates, opts)
	result.Skipped = append(result.Skipped, skips...)

	var done []diag.FixEdit
	for _, cand := range selected {
		if conflicts(done, cand.fix.Edits) {
			result.Skipped = append(result.Skipped, SkippedFix{
				ID: cand.fix.ID, Title: cand.fix.Title,
				Reason: "conflicts with previously applied edits",
			})
			continue
		}
		if reason := checkGuards(text, cand.fix.Edits); reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{ID: cand.fix.ID, Title: cand.fix.Title, Reason: reason})
			continue
		}
		done = append(done, cand.fix.Edits...)
		result.Applied = append(result.Applied, AppliedFix{
			ID:        cand.fix.ID,
			Title:     cand.fix.Title,
			Code:      cand.diag.Code,
			EditCount: len(cand.fix.Edits),
		})
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	result.Text = rewrite(text, done)
	return result, nil
}

// gatherCandidates flattens fixes of all diagnostics; fixes without edits
// are skipped and missing IDs are derived from the code and position.
func gatherCandidates(diagnostics []diag.Diagnostic) ([]candidate, []SkippedFix) {
	var cands []candidate
	var skips []SkippedFix
	order := 0
	for _, d := range diagnostics {
		for idx, f := range d.Fixes {
			if len(f.Edits) == 0 {
				skips = append(skips, SkippedFix{ID: f.ID, Title: f.Title, Reason: "fix has no edits"})
				continue
			}
			if f.ID == "" {
				f.ID = fmt.Sprintf("%s-%d-%d", d.Code.ID(), d.Primary.Start.Index, idx)
			}
			cands = append(cands, candidate{diag: d, fix: f, order: order})
			order++
		}
	}
	return cands, skips
}

// sortCandidates orders by span start, span end, insertion order and
// preference.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag.Primary, candidates[j].diag.Primary
		if di.Start.Index != dj.Start.Index {
			return di.Start.Index < dj.Start.Index
		}
		if di.End.Index != dj.End.Index {
			return di.End.Index < dj.End.Index
		}
		if candidates[i].fix.Preferred != candidates[j].fix.Preferred {
			return candidates[i].fix.Preferred
		}
		return candidates[i].order < candidates[j].order
	})
}

func selectCandidates(candidates []candidate, opts ApplyOptions) ([]candidate, []SkippedFix) {
	switch opts.Mode {
	case ApplyModeID:
		for _, cand := range candidates {
			if cand.fix.ID == opts.TargetID {
				return []candidate{cand}, nil
			}
		}
		return nil, []SkippedFix{{ID: opts.TargetID, Reason: "fix id not found"}}
	case ApplyModeAll:
		return candidates, nil
	default:
		return candidates[:1], nil
	}
}

func checkGuards(text string, edits []diag.FixEdit) string {
	for _, e := range edits {
		start, end := int(e.Span.Start.Index), int(e.Span.End.Index)
		if end < start || end > len(text) {
			return "edit span out of range"
		}
		if e.OldText != "" && text[start:end] != e.OldText {
			return "existing text does not match expected content"
		}
	}
	return ""
}

// conflicts reports overlap between edits; two insertions at the same point
// conflict as well, since their order would be ambiguous.
func conflicts(applied, edits []diag.FixEdit) bool {
	for _, a := range applied {
		for _, e := range edits {
			as, ae := a.Span.Start.Index, a.Span.End.Index
			es, ee := e.Span.Start.Index, e.Span.End.Index
			if (as < ee && es < ae) || as == es {
				return true
			}
		}
	}
	return false
}

// rewrite applies non-overlapping edits from the end so earlier offsets stay
// valid.
func rewrite(text string, edits []diag.FixEdit) string {
	sorted := append([]diag.FixEdit(nil), edits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Span.Start.Index > sorted[j].Span.Start.Index
	})
	out := text
	for _, e := range sorted {
		out = out[:e.Span.Start.Index] + e.NewText + out[e.Span.End.Index:]
	}
	return out
}
