package logger

import "github.com/philipp01105/dbglog/core"

// Leveled exposes the four families at a fixed severity. It is a small
// value; create it where it is used.
//
//	log.At(logger.DebugLevel).Dump(req, resp)
type Leveled struct {
	l     *Logger
	level core.Level
}

// Level returns the severity the calls are tagged with
func (lv Leveled) Level() core.Level {
	return lv.level
}

// Enabled reports whether calls made through lv would be emitted
func (lv Leveled) Enabled() bool {
	return lv.l.IsEnabled(lv.level)
}

// Dump prints "expr = value" lines when the level is enabled
func (lv Leveled) Dump(arg any, more ...any) {
	lv.l.log(lv.level, core.FamilyDump, "Dump", arg, more)
}

// Trace prints the call site and "expr = value" when the level is enabled
func (lv Leveled) Trace(arg any, more ...any) {
	lv.l.log(lv.level, core.FamilyTrace, "Trace", arg, more)
}

// DumpRaw prints the values when the level is enabled
func (lv Leveled) DumpRaw(arg any, more ...any) {
	lv.l.log(lv.level, core.FamilyDumpRaw, "DumpRaw", arg, more)
}

// TraceRaw prints the call site and values when the level is enabled
func (lv Leveled) TraceRaw(arg any, more ...any) {
	lv.l.log(lv.level, core.FamilyTraceRaw, "TraceRaw", arg, more)
}
