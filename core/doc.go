// Package core defines the shared types used across dbglog.
//
// It provides the Level flags and the Gate that filters severity-tagged
// calls, the Rule set that maps every Go type to one rendering strategy,
// the Arg type that pairs an expression's source text with its value, and
// the Entry type that represents one logging call.
//
// Rules are resolved once per reflect.Type and cached. Named types resolve
// by their underlying kind, so a type declared as "type Port uint16"
// renders like a uint16. Aggregates, maps, channels, funcs and interfaces
// without a concrete value render as "<unknown>"; rendering never fails.
//
// The Gate stores its mask in an atomic integer. ProcessGate returns the
// gate shared by every logger that was not given one explicitly.
//
// Entry objects are pooled via sync.Pool. The pool pre-allocates room for
// 16 arguments, which covers most calls without growing the slice.
package core
