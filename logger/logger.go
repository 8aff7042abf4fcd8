package logger

import (
	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/handler"
	"github.com/philipp01105/dbglog/internal/source"
)

// Logger writes debug dumps and traces to a handler (immutable)
type Logger struct {
	handler    handler.Handler
	gate       *core.Gate
	sources    *source.Resolver
	callerSkip int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler    handler.Handler
	gate       *core.Gate
	mask       *int
	sources    *source.Resolver
	callerSkip int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		callerSkip: 2, // log -> entry point -> user code
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithGate makes the logger consult g instead of the process-wide gate.
// Loggers sharing a gate see each other's SetLevel calls.
func (b *Builder) WithGate(g *core.Gate) *Builder {
	b.gate = g
	return b
}

// WithMask gives the logger a private gate initialized to mask
func (b *Builder) WithMask(mask int) *Builder {
	b.mask = &mask
	return b
}

// WithCallerSkip adds n frames to the caller lookup, for wrappers that
// call the logger on behalf of their own callers.
func (b *Builder) WithCallerSkip(n int) *Builder {
	b.callerSkip = 2 + n
	return b
}

// WithSources sets the resolver used to recover argument expressions
func (b *Builder) WithSources(r *source.Resolver) *Builder {
	b.sources = r
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	gate := b.gate
	switch {
	case b.mask != nil:
		gate = core.NewGate(*b.mask)
	case gate == nil:
		gate = core.ProcessGate()
	}
	sources := b.sources
	if sources == nil {
		sources = source.Shared()
	}
	return &Logger{
		handler:    b.handler,
		gate:       gate,
		sources:    sources,
		callerSkip: b.callerSkip,
	}
}

// Dump prints each argument as "expr = value" on its own line
func (l *Logger) Dump(arg any, more ...any) {
	l.log(core.NoLevel, core.FamilyDump, "Dump", arg, more)
}

// Trace prints the call site followed by "expr = value" for each argument.
// A single argument shares the header line; more are listed below it,
// one per indented line.
func (l *Logger) Trace(arg any, more ...any) {
	l.log(core.NoLevel, core.FamilyTrace, "Trace", arg, more)
}

// DumpRaw prints the values only, separated by spaces
func (l *Logger) DumpRaw(arg any, more ...any) {
	l.log(core.NoLevel, core.FamilyDumpRaw, "DumpRaw", arg, more)
}

// TraceRaw prints the call site followed by the values
func (l *Logger) TraceRaw(arg any, more ...any) {
	l.log(core.NoLevel, core.FamilyTraceRaw, "TraceRaw", arg, more)
}

// Error traces the arguments when ErrorLevel is enabled
func (l *Logger) Error(arg any, more ...any) {
	l.log(core.ErrorLevel, core.FamilyTrace, "Error", arg, more)
}

// Warn traces the arguments when WarnLevel is enabled
func (l *Logger) Warn(arg any, more ...any) {
	l.log(core.WarnLevel, core.FamilyTrace, "Warn", arg, more)
}

// Notice traces the arguments when NoticeLevel is enabled
func (l *Logger) Notice(arg any, more ...any) {
	l.log(core.NoticeLevel, core.FamilyTrace, "Notice", arg, more)
}

// Info traces the arguments when InfoLevel is enabled
func (l *Logger) Info(arg any, more ...any) {
	l.log(core.InfoLevel, core.FamilyTrace, "Info", arg, more)
}

// Debug traces the arguments when DebugLevel is enabled
func (l *Logger) Debug(arg any, more ...any) {
	l.log(core.DebugLevel, core.FamilyTrace, "Debug", arg, more)
}

// ErrorRaw prints the call site and values when ErrorLevel is enabled
func (l *Logger) ErrorRaw(arg any, more ...any) {
	l.log(core.ErrorLevel, core.FamilyTraceRaw, "ErrorRaw", arg, more)
}

// WarnRaw prints the call site and values when WarnLevel is enabled
func (l *Logger) WarnRaw(arg any, more ...any) {
	l.log(core.WarnLevel, core.FamilyTraceRaw, "WarnRaw", arg, more)
}

// NoticeRaw prints the call site and values when NoticeLevel is enabled
func (l *Logger) NoticeRaw(arg any, more ...any) {
	l.log(core.NoticeLevel, core.FamilyTraceRaw, "NoticeRaw", arg, more)
}

// InfoRaw prints the call site and values when InfoLevel is enabled
func (l *Logger) InfoRaw(arg any, more ...any) {
	l.log(core.InfoLevel, core.FamilyTraceRaw, "InfoRaw", arg, more)
}

// DebugRaw prints the call site and values when DebugLevel is enabled
func (l *Logger) DebugRaw(arg any, more ...any) {
	l.log(core.DebugLevel, core.FamilyTraceRaw, "DebugRaw", arg, more)
}

// At returns the entry points gated by level. At(NoLevel) is ungated.
func (l *Logger) At(level core.Level) Leveled {
	return Leveled{l: l, level: level}
}

// SetLevel replaces the mask of the logger's gate
func (l *Logger) SetLevel(mask int) {
	l.gate.SetLevel(mask)
}

// IsEnabled reports whether a call at level would be emitted
func (l *Logger) IsEnabled(level core.Level) bool {
	if l == nil {
		return false
	}
	if level == core.NoLevel {
		return Enabled
	}
	return Enabled && LevelsEnabled && l.gate.Enabled(level)
}

// Gate returns the gate the logger consults
func (l *Logger) Gate() *core.Gate {
	return l.gate
}

// log is the single path behind every entry point. It must be called
// directly by the exported method so callerSkip lands on user code.
func (l *Logger) log(level core.Level, family core.Family, name string, first any, rest []any) {
	// Exit before touching any argument
	if !Enabled || l == nil {
		return
	}
	if level != core.NoLevel && (!LevelsEnabled || !l.gate.Enabled(level)) {
		return
	}
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.Family = family
	entry.Args = append(entry.Args, core.ArgOf(first))
	for _, v := range rest {
		entry.Args = append(entry.Args, core.ArgOf(v))
	}

	unlabeled := false
	for i := range entry.Args {
		entry.Args[i].Resolve()
		if entry.Args[i].Source == "" {
			unlabeled = true
		}
	}

	entry.Caller = core.GetCaller(l.callerSkip)

	if family.Labeled() && unlabeled {
		l.label(entry, name)
	}

	// Errors are dropped: a debug statement never fails its caller
	_ = l.handler.Handle(entry)

	core.PutEntry(entry)
}

// label fills in the source text of arguments that have none
func (l *Logger) label(entry *core.Entry, name string) {
	var labels []string
	if entry.Caller.Defined {
		labels, _ = l.sources.Labels(entry.Caller.File, entry.Caller.Line, name, len(entry.Args))
	}
	for i := range entry.Args {
		if entry.Args[i].Source != "" {
			continue
		}
		if i < len(labels) && labels[i] != "" {
			entry.Args[i].Source = labels[i]
		} else {
			entry.Args[i].Source = core.FallbackLabel(i)
		}
	}
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
