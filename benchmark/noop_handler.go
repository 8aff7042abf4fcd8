package benchmark

import (
	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/handler"
)

// noopHandler renders nothing; it measures the gate, argument capture and
// label recovery in isolation.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Args)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
