package handler

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/formatter"
)

// ColorMode controls ANSI styling of severity-tagged calls
type ColorMode int

const (
	// ColorAuto styles output when the writer is a terminal
	ColorAuto ColorMode = iota
	// ColorAlways styles output unconditionally
	ColorAlways
	// ColorNever disables styling
	ColorNever
)

// EndMarker terminates every styled, severity-tagged call
const EndMarker = "\033[0m"

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode converts a string to a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on", "true":
		return ColorAlways, nil
	case "never", "off", "false":
		return ColorNever, nil
	default:
		return ColorAuto, errors.Errorf("unknown color mode %q", s)
	}
}

// DefaultLevelColors returns the default color per severity
func DefaultLevelColors() map[core.Level]*color.Color {
	return map[core.Level]*color.Color{
		core.ErrorLevel:  color.New(color.FgRed, color.Bold),
		core.WarnLevel:   color.New(color.FgYellow),
		core.NoticeLevel: color.New(color.FgCyan),
		core.InfoLevel:   color.New(color.FgGreen),
		core.DebugLevel:  color.New(color.FgHiBlack),
	}
}

// ConsoleHandler writes calls to a terminal or any io.Writer
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	colors          map[core.Level]*color.Color
	mu              sync.Mutex
	stats           *Stats
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Color selects when severity-tagged calls are styled (default: ColorAuto)
	Color ColorMode
	// LevelColors overrides the per-severity colors (default: DefaultLevelColors)
	LevelColors map[core.Level]*color.Color
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.LevelColors == nil {
		cfg.LevelColors = DefaultLevelColors()
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     NewStats(),
	}

	// Cache BufferFormatter so color and text share one buffer
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	if useColor(cfg.Color, cfg.Writer) {
		h.colors = cfg.LevelColors
		for _, c := range h.colors {
			c.EnableColor()
		}
	}

	return h
}

// useColor resolves mode against the writer
func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Colored reports whether the handler styles its output
func (h *ConsoleHandler) Colored() bool {
	return h.colors != nil
}

// Handle formats the whole call into one buffer and writes it with a
// single Write, so concurrent calls never interleave.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	buf := formatter.GetBuffer()
	defer formatter.PutBuffer(buf)

	var c *color.Color
	if h.colors != nil && entry.Level != core.NoLevel {
		c = h.colors[entry.Level]
	}

	if c != nil {
		c.SetWriter(buf)
	}
	if h.bufferFormatter != nil {
		h.bufferFormatter.FormatEntry(entry, buf)
	} else {
		data, err := h.formatter.Format(entry)
		if err != nil {
			h.stats.IncrementFailed()
			return errors.Wrap(err, "console handler: format")
		}
		buf.Write(data)
	}
	if c != nil {
		buf.WriteString(EndMarker)
	}

	h.mu.Lock()
	_, err := h.writer.Write(buf.Bytes())
	h.mu.Unlock()

	if err != nil {
		h.stats.IncrementFailed()
		return errors.Wrap(err, "console handler: write")
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes the writer when it supports Sync
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if f, ok := h.writer.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		return errors.Wrap(f.Sync(), "console handler: sync")
	}
	return nil
}
