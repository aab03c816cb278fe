package driver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"symcalc/internal/trace"
)

// BatchLine is one non-blank input line with its 1-based line number.
type BatchLine struct {
	Number int
	Text   string
}

// BatchItem is the rendered outcome for one line.
type BatchItem struct {
	Line   int
	Input  string
	Output string
	Failed bool
	Cached bool
}

// BatchResult keeps items in input order.
type BatchResult struct {
	Items  []BatchItem
	Failed int
	Cached int
}

type BatchOptions struct {
	Options
	Render RenderOptions
	// Jobs limits concurrent lines; <= 0 means GOMAXPROCS.
	Jobs  int
	Cache *DiskCache
	// Progress is called from worker goroutines as each line finishes.
	Progress func(BatchItem)
}

// ReadLines collects the non-blank lines of r, keeping their line numbers.
func ReadLines(r io.Reader) ([]BatchLine, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var lines []BatchLine
	for n := 1; sc.Scan(); n++ {
		text := sc.Text()
		if isBlank(text) {
			continue
		}
		lines = append(lines, BatchLine{Number: n, Text: text})
	}
	return lines, sc.Err()
}

func isBlank(s string) bool {
	for _, r := range normalizeLine(s) {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// Batch evaluates lines in parallel. A failing line is an ordinary result;
// only cancellation and cache I/O errors abort the batch.
func Batch(ctx context.Context, lines []BatchLine, opts BatchOptions) (*BatchResult, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "batch")
	span.WithExtra("lines", fmt.Sprint(len(lines)))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	items := make([]BatchItem, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(lines))))

	for i, line := range lines {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			item, err := runBatchLine(gctx, line, opts)
			if err != nil {
				return fmt.Errorf("line %d: %w", line.Number, err)
			}
			items[i] = item
			if opts.Progress != nil {
				opts.Progress(item)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.End("aborted")
		return nil, err
	}

	res := &BatchResult{Items: items}
	for _, it := range items {
		if it.Failed {
			res.Failed++
		}
		if it.Cached {
			res.Cached++
		}
	}
	span.End(fmt.Sprintf("%d failed, %d cached", res.Failed, res.Cached))
	return res, nil
}

func runBatchLine(ctx context.Context, line BatchLine, opts BatchOptions) (BatchItem, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopeLine, fmt.Sprintf("line:%d", line.Number))
	item := BatchItem{Line: line.Number, Input: normalizeLine(line.Text)}

	var key CacheKey
	if opts.Cache != nil && !opts.Timings {
		key = KeyFor(line.Text, opts.Options, opts.Render)
		var payload CachePayload
		hit, err := opts.Cache.Get(key, &payload)
		if err != nil {
			span.End("cache error")
			return item, err
		}
		if hit && payload.Input == item.Input {
			item.Output, item.Failed, item.Cached = payload.Output, payload.Failed, true
			span.End("cached")
			return item, nil
		}
	}

	r := Run(ctx, line.Text, opts.Options)
	out, err := RenderString(r, opts.Render)
	if err != nil {
		span.End("render error")
		return item, err
	}
	item.Output, item.Failed = out, r.Failed()

	// тайминги каждый раз разные, такие строки не кешируем
	if opts.Cache != nil && !opts.Timings {
		err = opts.Cache.Put(key, &CachePayload{
			Stage:  opts.Stage.String(),
			Input:  item.Input,
			Output: item.Output,
			Failed: item.Failed,
		})
		if err != nil {
			span.End("cache error")
			return item, err
		}
	}
	if item.Failed {
		span.End("failed")
	} else {
		span.End("ok")
	}
	return item, nil
}
