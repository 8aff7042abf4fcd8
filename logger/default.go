package logger

import (
	"os"
	"sync"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Seed the process-wide mask; a malformed value keeps the default
	if s, ok := os.LookupEnv(core.LevelEnv); ok {
		if mask, err := core.ParseMask(s); err == nil {
			core.ProcessGate().SetLevel(mask)
		}
	}

	h := handler.NewConsoleHandler(handler.ConsoleConfig{Writer: os.Stderr})

	defaultLogger = NewBuilder().
		WithHandler(h).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. A nil logger silences the
// package-level functions.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger. Each one
// calls log directly so the reported call site is the caller's.

// Dump prints "expr = value" lines using the default logger
func Dump(arg any, more ...any) {
	Default().log(core.NoLevel, core.FamilyDump, "Dump", arg, more)
}

// Trace prints the call site and "expr = value" using the default logger
func Trace(arg any, more ...any) {
	Default().log(core.NoLevel, core.FamilyTrace, "Trace", arg, more)
}

// DumpRaw prints the values using the default logger
func DumpRaw(arg any, more ...any) {
	Default().log(core.NoLevel, core.FamilyDumpRaw, "DumpRaw", arg, more)
}

// TraceRaw prints the call site and values using the default logger
func TraceRaw(arg any, more ...any) {
	Default().log(core.NoLevel, core.FamilyTraceRaw, "TraceRaw", arg, more)
}

// Error traces the arguments at ErrorLevel using the default logger
func Error(arg any, more ...any) {
	Default().log(core.ErrorLevel, core.FamilyTrace, "Error", arg, more)
}

// Warn traces the arguments at WarnLevel using the default logger
func Warn(arg any, more ...any) {
	Default().log(core.WarnLevel, core.FamilyTrace, "Warn", arg, more)
}

// Notice traces the arguments at NoticeLevel using the default logger
func Notice(arg any, more ...any) {
	Default().log(core.NoticeLevel, core.FamilyTrace, "Notice", arg, more)
}

// Info traces the arguments at InfoLevel using the default logger
func Info(arg any, more ...any) {
	Default().log(core.InfoLevel, core.FamilyTrace, "Info", arg, more)
}

// Debug traces the arguments at DebugLevel using the default logger
func Debug(arg any, more ...any) {
	Default().log(core.DebugLevel, core.FamilyTrace, "Debug", arg, more)
}

// ErrorRaw prints the call site and values at ErrorLevel
func ErrorRaw(arg any, more ...any) {
	Default().log(core.ErrorLevel, core.FamilyTraceRaw, "ErrorRaw", arg, more)
}

// WarnRaw prints the call site and values at WarnLevel
func WarnRaw(arg any, more ...any) {
	Default().log(core.WarnLevel, core.FamilyTraceRaw, "WarnRaw", arg, more)
}

// NoticeRaw prints the call site and values at NoticeLevel
func NoticeRaw(arg any, more ...any) {
	Default().log(core.NoticeLevel, core.FamilyTraceRaw, "NoticeRaw", arg, more)
}

// InfoRaw prints the call site and values at InfoLevel
func InfoRaw(arg any, more ...any) {
	Default().log(core.InfoLevel, core.FamilyTraceRaw, "InfoRaw", arg, more)
}

// DebugRaw prints the call site and values at DebugLevel
func DebugRaw(arg any, more ...any) {
	Default().log(core.DebugLevel, core.FamilyTraceRaw, "DebugRaw", arg, more)
}

// At returns the default logger's entry points gated by level
func At(level Level) Leveled {
	return Default().At(level)
}

// SetLevel replaces the process-wide mask
func SetLevel(mask int) {
	core.ProcessGate().SetLevel(mask)
}

// IsEnabled reports whether the process-wide mask enables level
func IsEnabled(level Level) bool {
	if level == core.NoLevel {
		return Enabled
	}
	return Enabled && LevelsEnabled && core.ProcessGate().Enabled(level)
}
