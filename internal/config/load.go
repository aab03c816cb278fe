package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	stages     = []string{"simplify", "ast", "tokens"}
	colorModes = []string{"auto", "on", "off"}
	formats    = []string{"pretty", "json", "tree"}
	unaryPlus  = []string{"negate", "identity"}
)

// Find walks up from startDir to locate symcalc.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds symcalc.toml from startDir and reads it; no file means Default().
func Load(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults: keys missing from the file keep
// their default values.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enum values and limits.
func (c Config) Validate() error {
	checks := []struct {
		key, value string
		allowed    []string
	}{
		{"[repl].stage", c.REPL.Stage, stages},
		{"[output].color", c.Output.Color, colorModes},
		{"[output].format", c.Output.Format, formats},
		{"[lowering].unary_plus", c.Lowering.UnaryPlus, unaryPlus},
	}
	for _, ch := range checks {
		if !slices.Contains(ch.allowed, ch.value) {
			return fmt.Errorf("%s: invalid value %q (expected: %s)", ch.key, ch.value, strings.Join(ch.allowed, "|"))
		}
	}
	if c.REPL.History < 0 {
		return fmt.Errorf("[repl].history must be >= 0, got %d", c.REPL.History)
	}
	if c.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("[output].max_diagnostics must be >= 0, got %d", c.Output.MaxDiagnostics)
	}
	return nil
}
