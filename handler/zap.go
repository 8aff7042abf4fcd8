package handler

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/formatter"
)

// ZapHandler forwards each rendered call to a zap.Logger. The call text
// becomes the message; zap's encoder adds its own time and level.
type ZapHandler struct {
	logger    *zap.Logger
	formatter formatter.Formatter
	stats     *Stats
}

// NewZapHandler creates a handler writing to z. A nil formatter selects
// the TextFormatter.
func NewZapHandler(z *zap.Logger, f formatter.Formatter) *ZapHandler {
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	return &ZapHandler{
		logger:    z.WithOptions(zap.AddCallerSkip(3)),
		formatter: f,
		stats:     NewStats(),
	}
}

// ZapLevel maps a severity to a zap level. Ungated calls log at debug.
func ZapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.NoticeLevel, core.InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Handle processes a logging call
func (h *ZapHandler) Handle(entry *core.Entry) error {
	ce := h.logger.Check(ZapLevel(entry.Level), "")
	if ce == nil {
		return nil
	}
	msg, err := message(h.formatter, entry)
	if err != nil {
		h.stats.IncrementFailed()
		return errors.Wrap(err, "zap handler: format")
	}
	ce.Message = msg
	ce.Write()
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ZapHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes the zap logger
func (h *ZapHandler) Close() error {
	return errors.Wrap(h.logger.Sync(), "zap handler: sync")
}
