package handler

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/formatter"
)

// HclogHandler forwards each rendered call to a hclog.Logger
type HclogHandler struct {
	logger    hclog.Logger
	formatter formatter.Formatter
	stats     *Stats
}

// NewHclogHandler creates a handler writing to l. A nil formatter selects
// the TextFormatter.
func NewHclogHandler(l hclog.Logger, f formatter.Formatter) *HclogHandler {
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	return &HclogHandler{
		logger:    l,
		formatter: f,
		stats:     NewStats(),
	}
}

// HclogLevel maps a severity to a hclog level. Ungated calls log at trace.
func HclogLevel(level core.Level) hclog.Level {
	switch level {
	case core.ErrorLevel:
		return hclog.Error
	case core.WarnLevel:
		return hclog.Warn
	case core.NoticeLevel, core.InfoLevel:
		return hclog.Info
	case core.DebugLevel:
		return hclog.Debug
	default:
		return hclog.Trace
	}
}

// Handle processes a logging call
func (h *HclogHandler) Handle(entry *core.Entry) error {
	lvl := HclogLevel(entry.Level)
	if h.logger.GetLevel() > lvl {
		return nil
	}
	msg, err := message(h.formatter, entry)
	if err != nil {
		h.stats.IncrementFailed()
		return errors.Wrap(err, "hclog handler: format")
	}
	h.logger.Log(lvl, msg)
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *HclogHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op; hclog loggers own no resources
func (h *HclogHandler) Close() error {
	return nil
}
