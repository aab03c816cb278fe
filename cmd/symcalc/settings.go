package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"symcalc/internal/config"
	"symcalc/internal/driver"
	"symcalc/internal/expr"
)

// settings is the merged view of symcalc.toml and the command line; flags
// that were set explicitly win over the file.
type settings struct {
	cfg       config.Config
	format    driver.Format
	colorMode string
	unaryPlus expr.UnaryPlus
	maxDiag   int
	timings   bool
	info      bool
}

type settingsKey struct{}

// cleanups run once, after the command; PersistentPostRunE is skipped when
// RunE fails, so main calls runCleanups as well.
var cleanups []func()

func setup(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, settingsKey{}, s))

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopProfiling)

	stopTracing, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopTracing)
	return nil
}

func teardown(*cobra.Command, []string) error {
	runCleanups()
	return nil
}

func runCleanups() {
	// в обратном порядке: трасса закрывается раньше профилей
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
}

func settingsFrom(cmd *cobra.Command) *settings {
	if s, ok := cmd.Context().Value(settingsKey{}).(*settings); ok {
		return s
	}
	s := &settings{cfg: config.Default(), colorMode: "auto", maxDiag: 100}
	return s
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		var wd string
		if wd, err = os.Getwd(); err == nil {
			cfg, err = config.Load(wd)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// флаг побеждает файл только если задан явно
	pick := func(name, fromConfig string) (string, error) {
		v, err := flags.GetString(name)
		if err != nil {
			return "", fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		if !flags.Changed(name) && fromConfig != "" {
			return fromConfig, nil
		}
		return v, nil
	}

	s := &settings{cfg: cfg}

	formatStr, err := pick("format", cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	if s.format, err = driver.ParseFormat(formatStr); err != nil {
		return nil, err
	}

	if s.colorMode, err = pick("color", cfg.Output.Color); err != nil {
		return nil, err
	}
	switch s.colorMode = strings.ToLower(s.colorMode); s.colorMode {
	case "auto", "on", "off":
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", s.colorMode)
	}

	unaryStr, err := pick("unary-plus", cfg.Lowering.UnaryPlus)
	if err != nil {
		return nil, err
	}
	if s.unaryPlus, err = expr.ParseUnaryPlus(unaryStr); err != nil {
		return nil, err
	}

	if s.maxDiag, err = flags.GetInt("max-diagnostics"); err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if !flags.Changed("max-diagnostics") && cfg.Output.MaxDiagnostics > 0 {
		s.maxDiag = cfg.Output.MaxDiagnostics
	}

	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.info, err = flags.GetBool("info"); err != nil {
		return nil, fmt.Errorf("failed to get info flag: %w", err)
	}
	return s, nil
}

func (s *settings) useColor(f *os.File) bool {
	return s.colorMode == "on" || (s.colorMode == "auto" && isTerminal(f))
}

func (s *settings) runOptions(stage driver.Stage) driver.Options {
	return driver.Options{
		Stage:          stage,
		UnaryPlus:      s.unaryPlus,
		MaxDiagnostics: s.maxDiag,
		Timings:        s.timings,
	}
}

func (s *settings) renderOptions(color bool) driver.RenderOptions {
	return driver.RenderOptions{
		Format:   s.format,
		Color:    color,
		ShowInfo: s.info || s.timings,
	}
}
