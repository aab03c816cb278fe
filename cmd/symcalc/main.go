package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"symcalc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "symcalc",
	Short: "Symbolic arithmetic calculator",
	Long: `symcalc lexes, parses and simplifies arithmetic expressions with exact
integer and rational arithmetic. Without a subcommand it starts the REPL.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runREPL,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(simplifyCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "path to symcalc.toml (default: search upwards from the working directory)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.String("format", "pretty", "output format (pretty|json|tree)")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to collect per line")
	pf.String("unary-plus", "negate", "lowering of unary '+' (negate|identity)")
	pf.Bool("timings", false, "show per-stage timing information")
	pf.Bool("info", false, "show info diagnostics (unsupported simplifications, timings)")
	pf.String("trace", "", "write trace events to a file ('-' for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Bool("trace-append", false, "append to the trace file instead of truncating it")
	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")
}

// main executes the root command. A failed command or a failing input line
// exits with status 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Get().Version

	err := rootCmd.Execute()
	runCleanups()
	if err != nil {
		// диагностики строки уже напечатаны
		if !errors.Is(err, errLineFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
