// Package config builds a Logger from a TOML file and the environment.
//
//	levels = "error,warn,notice,debug"
//	color = "auto"
//	output = "stderr"
//	full_path = false
//	full_function = false
package config

import (
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/formatter"
	"github.com/philipp01105/dbglog/handler"
	"github.com/philipp01105/dbglog/logger"
)

// ColorEnv names the environment variable that overrides Config.Color
const ColorEnv = "DBGLOG_COLOR"

// Config holds the startup configuration of a Logger
type Config struct {
	// Levels is a mask in any form ParseMask accepts. Empty keeps the
	// process-wide gate.
	Levels string `toml:"levels"`
	// Color is auto, always or never
	Color string `toml:"color" default:"auto"`
	// Output is stderr, stdout or discard
	Output       string `toml:"output" default:"stderr"`
	FullPath     bool   `toml:"full_path"`
	FullFunction bool   `toml:"full_function"`
}

// Default returns the configuration of the package-level default logger
func Default() Config {
	return Config{
		Color:  "auto",
		Output: "stderr",
	}
}

// Parse decodes TOML data over the defaults
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	return cfg, cfg.Validate()
}

// Load reads and parses a TOML file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load %s", path)
	}
	return cfg, nil
}

// ApplyEnv overlays DBGLOG_LEVEL and DBGLOG_COLOR when they are set
func (c *Config) ApplyEnv() {
	if s, ok := os.LookupEnv(core.LevelEnv); ok {
		c.Levels = s
	}
	if s, ok := os.LookupEnv(ColorEnv); ok {
		c.Color = s
	}
}

// Validate checks every field without building anything
func (c Config) Validate() error {
	if c.Levels != "" {
		if _, err := core.ParseMask(c.Levels); err != nil {
			return errors.Wrap(err, "levels")
		}
	}
	if _, err := handler.ParseColorMode(c.Color); err != nil {
		return errors.Wrap(err, "color")
	}
	if _, err := c.writer(); err != nil {
		return err
	}
	return nil
}

func (c Config) writer() (io.Writer, error) {
	switch strings.ToLower(strings.TrimSpace(c.Output)) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	case "discard":
		return io.Discard, nil
	default:
		return nil, errors.Errorf("unknown output %q", c.Output)
	}
}

// Build creates a Logger writing to the configured output. When Levels is
// set the logger gets a private gate; otherwise it shares the process-wide
// one.
func (c Config) Build() (*logger.Logger, error) {
	w, err := c.writer()
	if err != nil {
		return nil, err
	}
	mode, err := handler.ParseColorMode(c.Color)
	if err != nil {
		return nil, errors.Wrap(err, "color")
	}

	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer: w,
		Color:  mode,
		Formatter: formatter.NewTextFormatter(formatter.Config{
			FullPath:     c.FullPath,
			FullFunction: c.FullFunction,
		}),
	})

	b := logger.NewBuilder().WithHandler(h)
	if c.Levels != "" {
		mask, err := core.ParseMask(c.Levels)
		if err != nil {
			return nil, errors.Wrap(err, "levels")
		}
		b.WithMask(mask)
	}
	return b.Build(), nil
}
