// Package config loads symcalc.toml.
package config

import (
	"os"
	"path/filepath"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "symcalc.toml"

type Config struct {
	// Path is the file the config was read from, "" for defaults.
	Path string `toml:"-"`

	REPL     REPLConfig     `toml:"repl"`
	Output   OutputConfig   `toml:"output"`
	Lowering LoweringConfig `toml:"lowering"`
	Cache    CacheConfig    `toml:"cache"`
}

type REPLConfig struct {
	Stage   string `toml:"stage"`   // simplify | ast | tokens
	History int    `toml:"history"` // remembered lines
	Prompt  string `toml:"prompt"`
}

type OutputConfig struct {
	Color          string `toml:"color"`  // auto | on | off
	Format         string `toml:"format"` // pretty | json
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type LoweringConfig struct {
	UnaryPlus string `toml:"unary_plus"` // negate | identity
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		REPL: REPLConfig{
			Stage:   "simplify",
			History: 100,
			Prompt:  ">> ",
		},
		Output: OutputConfig{
			Color:          "auto",
			Format:         "pretty",
			MaxDiagnostics: 100,
		},
		Lowering: LoweringConfig{UnaryPlus: "negate"},
	}
}

// CacheDir resolves the cache directory: [cache].dir, or the user cache
// directory with a "symcalc" suffix.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		if filepath.IsAbs(c.Cache.Dir) || c.Path == "" {
			return c.Cache.Dir, nil
		}
		// относительный путь считается от файла конфигурации
		return filepath.Join(filepath.Dir(c.Path), c.Cache.Dir), nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "symcalc"), nil
}
