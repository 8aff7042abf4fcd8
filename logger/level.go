package logger

import "github.com/philipp01105/dbglog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NoLevel     = core.NoLevel
	ErrorLevel  = core.ErrorLevel
	WarnLevel   = core.WarnLevel
	NoticeLevel = core.NoticeLevel
	InfoLevel   = core.InfoLevel
	DebugLevel  = core.DebugLevel

	AllLevels   = core.AllLevels
	DefaultMask = core.DefaultMask
)

// ParseLevel converts a level name to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

// ParseMask converts "error,warn", "all", "0x1f" and similar to a mask
func ParseMask(s string) (int, error) {
	return core.ParseMask(s)
}
