package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Tracer receives events from every stage of a run. Emit must be safe for
// concurrent use: batch lines trace from their own goroutines.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	// Enabled is Level() > LevelOff.
	Enabled() bool
}

// Config selects where and how much to trace.
type Config struct {
	Level  Level
	Format Format // FormatAuto picks by OutputPath extension
	// Output wins over OutputPath when set.
	Output     io.Writer
	OutputPath string // "-" or "" is stderr
	// Append keeps earlier runs in OutputPath, so a sequence of batch or
	// simplify invocations can share one trace file.
	Append bool
}

// New returns Nop for LevelOff and a StreamTracer otherwise.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	w, err := openOutput(cfg)
	if err != nil {
		return nil, err
	}
	return NewStreamTracer(w, cfg.Level, resolveFormat(cfg.Format, cfg.OutputPath)), nil
}

// resolveFormat: .ndjson и .jsonl пишутся построчным JSON, всё остальное текстом.
func resolveFormat(f Format, path string) Format {
	if f != FormatAuto {
		return f
	}
	switch filepath.Ext(path) {
	case ".ndjson", ".jsonl":
		return FormatNDJSON
	}
	return FormatText
}

func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		return nopCloser{os.Stderr}, nil
	}

	mode := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if cfg.Append {
		mode = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	f, err := os.OpenFile(cfg.OutputPath, mode, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}

// nopCloser не даёт Close() закрыть stderr.
type nopCloser struct{ io.Writer }
