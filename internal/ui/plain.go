package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"symcalc/internal/driver"
)

// RunPlain is the read loop for non-terminal input. Besides expressions it
// understands ":stage <name>" and ":next" (the Tab key of the interactive
// loop) and ":q"; end of input exits.
func RunPlain(ctx context.Context, in io.Reader, out io.Writer, opts REPLOptions) error {
	stage := opts.Stage
	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(out, opts.prompt()); err != nil {
			return err
		}
		if !sc.Scan() {
			return sc.Err()
		}
		line := sc.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			continue
		case trimmed == ":q" || trimmed == ":quit":
			return nil
		case trimmed == ":next":
			stage = stage.Next()
			fmt.Fprintf(out, "stage: %s\n", stage)
			continue
		case strings.HasPrefix(trimmed, ":stage"):
			name := strings.TrimSpace(strings.TrimPrefix(trimmed, ":stage"))
			st, err := driver.ParseStage(name)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			stage = st
			fmt.Fprintf(out, "stage: %s\n", stage)
			continue
		}

		output, _ := opts.Eval(ctx, line, stage)
		if _, err := io.WriteString(out, output); err != nil {
			return err
		}
		if output != "" && !strings.HasSuffix(output, "\n") {
			fmt.Fprintln(out)
		}
	}
}
