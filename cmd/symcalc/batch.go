package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"symcalc/internal/driver"
	"symcalc/internal/ui"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file|->",
	Short: "Evaluate every non-blank line of a file in parallel",
	Long: `Batch runs each non-blank line through the selected stage, in parallel,
and prints the results in input order prefixed by their line numbers.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("stage", "simplify", "stage to show (simplify|ast|tokens)")
	batchCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	batchCmd.Flags().Bool("cache", false, "reuse rendered results from the disk cache")
	batchCmd.Flags().String("ui", "off", "show a progress view (auto|on|off)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	s := settingsFrom(cmd)
	flags := cmd.Flags()

	stageStr, err := flags.GetString("stage")
	if err != nil {
		return fmt.Errorf("failed to get stage flag: %w", err)
	}
	stage, err := driver.ParseStage(stageStr)
	if err != nil {
		return err
	}
	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := flags.GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	mode, err := uiModeFlag(cmd)
	if err != nil {
		return err
	}

	lines, title, err := readBatchInput(cmd, args[0])
	if err != nil {
		return err
	}

	opts := driver.BatchOptions{
		Options: s.runOptions(stage),
		Render:  s.renderOptions(s.useColor(os.Stdout)),
		Jobs:    jobs,
	}
	if useCache || (!flags.Changed("cache") && s.cfg.Cache.Enabled) {
		if opts.Cache, err = openCache(s); err != nil {
			return err
		}
	}

	var res *driver.BatchResult
	if mode.active(os.Stderr) && len(lines) > 0 {
		res, err = runBatchWithUI(cmd.Context(), title, lines, opts)
	} else {
		res, err = driver.Batch(cmd.Context(), lines, opts)
	}
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	if err := writeBatch(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if res.Failed > 0 {
		return errLineFailed
	}
	return nil
}

func readBatchInput(cmd *cobra.Command, path string) ([]driver.BatchLine, string, error) {
	if path == "-" {
		lines, err := driver.ReadLines(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return lines, "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	lines, err := driver.ReadLines(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, filepath.Base(path), nil
}

func writeBatch(w io.Writer, res *driver.BatchResult) error {
	for _, it := range res.Items {
		if _, err := fmt.Fprintf(w, "-- line %d: %s\n%s", it.Line, it.Input, it.Output); err != nil {
			return err
		}
	}
	return nil
}

type batchOutcome struct {
	result *driver.BatchResult
	err    error
}

// runBatchWithUI runs the batch in the background and draws progress on
// stderr until every line is done.
func runBatchWithUI(ctx context.Context, title string, lines []driver.BatchLine, opts driver.BatchOptions) (*driver.BatchResult, error) {
	events := make(chan driver.BatchItem, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		withProgress := opts
		withProgress.Progress = func(it driver.BatchItem) { events <- it }
		res, err := driver.Batch(ctx, lines, withProgress)
		outcomeCh <- batchOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, lines, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// дочитываем события, если UI вышел раньше
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
