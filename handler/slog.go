package handler

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/formatter"
)

// LevelNotice sits between slog's info and warn levels
const LevelNotice = slog.Level(2)

// SlogHandler forwards each rendered call to a slog.Logger, letting dbglog
// output flow through an application's existing slog pipeline.
type SlogHandler struct {
	logger    *slog.Logger
	formatter formatter.Formatter
	stats     *Stats
}

// NewSlogHandler creates a handler writing to l. A nil formatter selects
// the TextFormatter.
func NewSlogHandler(l *slog.Logger, f formatter.Formatter) *SlogHandler {
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	return &SlogHandler{
		logger:    l,
		formatter: f,
		stats:     NewStats(),
	}
}

// SlogLevel maps a severity to a slog.Level. Ungated calls log at debug.
func SlogLevel(level core.Level) slog.Level {
	switch level {
	case core.ErrorLevel:
		return slog.LevelError
	case core.WarnLevel:
		return slog.LevelWarn
	case core.NoticeLevel:
		return LevelNotice
	case core.InfoLevel:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Handle processes a logging call
func (h *SlogHandler) Handle(entry *core.Entry) error {
	ctx := context.Background()
	lvl := SlogLevel(entry.Level)
	if !h.logger.Enabled(ctx, lvl) {
		return nil
	}
	msg, err := message(h.formatter, entry)
	if err != nil {
		h.stats.IncrementFailed()
		return errors.Wrap(err, "slog handler: format")
	}
	h.logger.Log(ctx, lvl, msg)
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *SlogHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op; slog loggers own no resources
func (h *SlogHandler) Close() error {
	return nil
}
