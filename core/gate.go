package core

import "sync/atomic"

// Gate holds a severity mask. Reads and writes are atomic, so a Gate may be
// shared between goroutines without further locking.
type Gate struct {
	mask atomic.Int64
}

var processGate = NewGate(DefaultMask)

// NewGate creates a gate with the given mask
func NewGate(mask int) *Gate {
	g := &Gate{}
	g.mask.Store(int64(mask))
	return g
}

// ProcessGate returns the process-wide gate used by loggers that were not
// given a gate of their own.
func ProcessGate() *Gate {
	return processGate
}

// SetLevel replaces the mask. Any int is stored unchanged; bits that do
// not correspond to a defined level have no effect.
func (g *Gate) SetLevel(mask int) {
	g.mask.Store(int64(mask))
}

// Mask returns the current mask
func (g *Gate) Mask() int {
	return int(g.mask.Load())
}

// Enabled reports whether level's bit is set in the current mask
func (g *Gate) Enabled(level Level) bool {
	return level != NoLevel && g.mask.Load()&int64(level) != 0
}
