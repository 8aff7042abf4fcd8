//go:build nodebug || nolevels

package logger

// LevelsEnabled is false when built with the nodebug or nolevels tag.
// Severity-tagged calls are then no-ops; Dump, Trace, DumpRaw and
// TraceRaw are unaffected by nolevels.
const LevelsEnabled = false
