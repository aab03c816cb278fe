package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"symcalc/internal/driver"
	"symcalc/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive read loop",
	Long: `The REPL evaluates one line at a time. Tab cycles the shown stage
(simplify, ast, tokens), up/down walk the history, Esc or Ctrl+D exits.
Without a terminal it reads plain lines; ":stage <name>" and ":next" switch
the stage there.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, replCmd} {
		c.Flags().String("stage", "", "initial stage (simplify|ast|tokens; default from config)")
		c.Flags().String("ui", "auto", "use the interactive terminal UI (auto|on|off)")
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	s := settingsFrom(cmd)
	flags := cmd.Flags()

	stageStr, err := flags.GetString("stage")
	if err != nil {
		return fmt.Errorf("failed to get stage flag: %w", err)
	}
	if stageStr == "" {
		stageStr = s.cfg.REPL.Stage
	}
	stage, err := driver.ParseStage(stageStr)
	if err != nil {
		return err
	}
	mode, err := uiModeFlag(cmd)
	if err != nil {
		return err
	}

	tui := mode.active(os.Stdin, os.Stdout)
	color := s.useColor(os.Stdout)
	opts := ui.REPLOptions{
		Stage:   stage,
		Prompt:  s.cfg.REPL.Prompt,
		History: s.cfg.REPL.History,
		Eval: func(ctx context.Context, line string, stage driver.Stage) (string, bool) {
			res := driver.Run(ctx, line, s.runOptions(stage))
			out, err := driver.RenderString(res, s.renderOptions(color))
			if err != nil {
				return "render: " + err.Error() + "\n", true
			}
			return out, res.Failed()
		},
	}

	if tui {
		return ui.RunREPL(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	}
	return ui.RunPlain(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
}
