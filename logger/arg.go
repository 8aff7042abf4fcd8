package logger

import "github.com/philipp01105/dbglog/core"

// Arg is one logged expression
type Arg = core.Arg

// Named labels v explicitly, for values whose expression text is not
// wanted or cannot be recovered.
//
//	log.Dump(logger.Named("user", u.Name))
func Named[T any](label string, v T) Arg {
	return core.Named(label, v)
}

// Lazy defers evaluation of fn until the call has passed its gate. The
// label is taken from fn's return expression.
//
//	log.Debug(logger.Lazy(func() int { return expensive() }))
//
// prints "expensive() = ..." and never calls expensive when DebugLevel
// is disabled.
func Lazy[T any](fn func() T) Arg {
	return core.Lazy(fn)
}
