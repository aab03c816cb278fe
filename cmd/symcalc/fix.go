package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"symcalc/internal/driver"
)

var fixCmd = &cobra.Command{
	Use:   "fix <expression>...",
	Short: "Apply suggested fixes until the expression simplifies",
	Long: `Fix runs the expression and, while it fails, applies the first fix the
error suggests (a missing bracket, a stray character). The repaired line goes
to stdout followed by the result; each applied fix is listed on stderr.`,
	Example: `  symcalc fix "(1 + 2"
  symcalc fix --stage ast "sqrt[4"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().String("stage", "simplify", "stage to repair for (tokens|ast|simplify)")
	fixCmd.Flags().Int("rounds", driver.DefaultRepairRounds, "maximum number of fixes to apply")
}

func runFix(cmd *cobra.Command, args []string) error {
	s := settingsFrom(cmd)
	stageName, err := cmd.Flags().GetString("stage")
	if err != nil {
		return fmt.Errorf("failed to get stage flag: %w", err)
	}
	stage, err := driver.ParseStage(stageName)
	if err != nil {
		return err
	}
	rounds, err := cmd.Flags().GetInt("rounds")
	if err != nil {
		return fmt.Errorf("failed to get rounds flag: %w", err)
	}

	res, err := driver.Repair(cmd.Context(), strings.Join(args, " "), s.runOptions(stage), rounds)
	if err != nil {
		return fmt.Errorf("repair: %w", err)
	}
	for _, a := range res.Applied {
		fmt.Fprintf(cmd.ErrOrStderr(), "fixed: %s (%s)\n", a.Title, a.Code.ID())
	}

	out, f := cmd.OutOrStdout(), os.Stdout
	if res.Result.Failed() {
		out, f = cmd.ErrOrStderr(), os.Stderr
	} else {
		fmt.Fprintln(out, res.Line)
	}
	if err := driver.Render(out, res.Result, s.renderOptions(s.useColor(f))); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if res.Result.Failed() {
		return errLineFailed
	}
	return nil
}
