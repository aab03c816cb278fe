package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"symcalc/internal/trace"
)

// traceConfig turns the persistent --trace* flags into a tracer config.
func traceConfig(cmd *cobra.Command) (trace.Config, error) {
	flags := cmd.Flags()
	var cfg trace.Config

	output, err := flags.GetString("trace")
	if err != nil {
		return cfg, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return cfg, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return cfg, fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	appendOut, err := flags.GetBool("trace-append")
	if err != nil {
		return cfg, fmt.Errorf("failed to get trace-append flag: %w", err)
	}

	if cfg.Level, err = trace.ParseLevel(levelStr); err != nil {
		return cfg, fmt.Errorf("invalid trace level: %w", err)
	}
	// --trace без уровня означает phase
	if cfg.Level == trace.LevelOff && output != "" && !flags.Changed("trace-level") {
		cfg.Level = trace.LevelPhase
	}
	if cfg.Format, err = trace.ParseFormat(formatStr); err != nil {
		return cfg, fmt.Errorf("invalid trace format: %w", err)
	}
	cfg.OutputPath = output
	cfg.Append = appendOut
	return cfg, nil
}

// setupTracing attaches the tracer to the command context and opens a
// driver span named after the command; every line and stage nests under it.
func setupTracing(cmd *cobra.Command) (func(), error) {
	cfg, err := traceConfig(cmd)
	if err != nil {
		return nil, err
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	if !tracer.Enabled() {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, cmd.CommandPath())
	cmd.SetContext(ctx)

	return func() {
		span.End("")
		if err := errors.Join(tracer.Flush(), tracer.Close()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: %v\n", err)
		}
	}, nil
}
