package ui

import (
	"context"

	"symcalc/internal/driver"
)

// EvalFunc runs one line through the pipeline and returns the rendered
// output.
type EvalFunc func(ctx context.Context, line string, stage driver.Stage) (output string, failed bool)

// REPLOptions configure both the interactive and the plain read loop.
type REPLOptions struct {
	Stage   driver.Stage
	Prompt  string
	History int
	Eval    EvalFunc
}

func (o REPLOptions) prompt() string {
	if o.Prompt == "" {
		return ">> "
	}
	return o.Prompt
}
