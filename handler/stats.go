package handler

import (
	"sync/atomic"

	"github.com/philipp01105/dbglog/core"
)

// Stats tracks handler statistics
type Stats struct {
	// Separate atomic counters per level; index 0 counts ungated calls
	processed [core.LevelCount + 1]uint64
	// FailedTotal counts calls the sink could not write
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// levelIndex maps a level flag to its counter slot
func levelIndex(level core.Level) int {
	for i, lvl := range core.Levels {
		if lvl == level {
			return i + 1
		}
	}
	return 0
}

// IncrementProcessed atomically increments the processed counter for a level
func (s *Stats) IncrementProcessed(level core.Level) {
	atomic.AddUint64(&s.processed[levelIndex(level)], 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetProcessed returns the processed count for a level. NoLevel returns
// the count of ungated calls.
func (s *Stats) GetProcessed(level core.Level) uint64 {
	return atomic.LoadUint64(&s.processed[levelIndex(level)])
}

// GetTotalProcessed returns the processed count across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	var total uint64
	for i := range s.processed {
		total += atomic.LoadUint64(&s.processed[i])
	}
	return total
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		atomic.StoreUint64(&s.processed[i], 0)
	}
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	processed := make(map[core.Level]uint64, len(core.Levels)+1)
	processed[core.NoLevel] = s.GetProcessed(core.NoLevel)
	for _, lvl := range core.Levels {
		processed[lvl] = s.GetProcessed(lvl)
	}
	return Snapshot{
		Processed:      processed,
		ProcessedTotal: s.GetTotalProcessed(),
		FailedTotal:    s.GetFailed(),
	}
}
