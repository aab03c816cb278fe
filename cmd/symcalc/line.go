package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"symcalc/internal/driver"
)

// errLineFailed signals that a line produced error diagnostics which were
// already rendered.
var errLineFailed = errors.New("input line failed")

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <expression>...",
	Short: "Print the token stream of an expression",
	Args:  cobra.MinimumNArgs(1),
	RunE:  lineRunner(driver.StageTokens),
}

var parseCmd = &cobra.Command{
	Use:   "parse <expression>...",
	Short: "Print the syntax tree of an expression",
	Long: `Parse prints the syntax tree as an outline with spans followed by its
infix form; --format=tree draws it top-down, --format=json dumps it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: lineRunner(driver.StageAST),
}

var simplifyCmd = &cobra.Command{
	Use:     "simplify <expression>...",
	Aliases: []string{"eval"},
	Short:   "Simplify an expression",
	Example: `  symcalc simplify "1/2 + 1/3"
  symcalc simplify --format=json 2x + 4/6`,
	Args: cobra.MinimumNArgs(1),
	RunE: lineRunner(driver.StageSimplify),
}

// lineRunner joins the arguments into one input line, so unquoted
// expressions with spaces work too.
func lineRunner(stage driver.Stage) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s := settingsFrom(cmd)
		line := strings.Join(args, " ")

		res := driver.Run(cmd.Context(), line, s.runOptions(stage))
		// ошибки в stderr, результат в stdout
		out, f := cmd.OutOrStdout(), os.Stdout
		if res.Failed() {
			out, f = cmd.ErrOrStderr(), os.Stderr
		}
		if err := driver.Render(out, res, s.renderOptions(s.useColor(f))); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if res.Failed() {
			return errLineFailed
		}
		return nil
	}
}
