// Package logger is the public API of dbglog. Most users only need to
// import this package.
//
// Every entry point takes one or more values of any type and prints each
// one next to the text of the expression that produced it:
//
//	x, name := 5, "hi"
//	logger.Dump(x, name)    // x = 5
//	                        // name = hi
//	logger.Trace(x)         // [main.go:12][main.run] x = 5
//	logger.DumpRaw(x, name) // 5 hi
//
// Trace and TraceRaw prefix the call site. Calling with no arguments does
// not compile.
//
// Error, Warn, Notice, Info and Debug are Trace calls tagged with a
// severity; their Raw forms are TraceRaw calls. At gives all four
// families at any severity. A tagged call is emitted only when its
// level's bit is set in the gate's mask, and the check happens before
// any argument is examined, so a disabled call costs one atomic load.
// Values computed by ordinary expressions are still evaluated by Go
// before the call; wrap expensive ones in Lazy.
//
// A deferred call ("defer log.Trace(x)") runs at function exit, and the Go
// runtime reports the line of the function's closing brace as its call
// site. The header shows that line and the labels fall back to arg1, arg2,
// ...; use Named to keep them readable.
//
// The process-wide mask starts as error|warn|notice and is seeded from
// the DBGLOG_LEVEL environment variable ("all", "error,warn", "0x1f").
// SetLevel changes it at runtime.
//
// Expression text is recovered by parsing the calling source file once.
// When the file is unavailable, labels fall back to arg1, arg2, ...; use
// Named to label a value explicitly.
//
// Building with -tags nodebug turns every entry point into a no-op and
// sets Enabled to false; -tags nolevels disables only the severity-tagged
// calls.
//
// The package initializes a default Logger writing to stderr in init().
// For custom sinks, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithMask(logger.AllLevels).
//	    Build()
package logger
