package core

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Family selects how a call is laid out
type Family uint8

const (
	// FamilyDump prints "expr = value" lines
	FamilyDump Family = iota
	// FamilyTrace prints a call-site header followed by "expr = value"
	FamilyTrace
	// FamilyDumpRaw prints the values only, space separated
	FamilyDumpRaw
	// FamilyTraceRaw prints a call-site header followed by the values
	FamilyTraceRaw
)

// String returns the string representation of the family
func (f Family) String() string {
	switch f {
	case FamilyDump:
		return "dump"
	case FamilyTrace:
		return "trace"
	case FamilyDumpRaw:
		return "dump_raw"
	case FamilyTraceRaw:
		return "trace_raw"
	default:
		return "unknown"
	}
}

// Labeled reports whether arguments are prefixed with their source text
func (f Family) Labeled() bool {
	return f == FamilyDump || f == FamilyTrace
}

// Annotated reports whether the call-site header is emitted
func (f Family) Annotated() bool {
	return f == FamilyTrace || f == FamilyTraceRaw
}

// Entry is a single logging call
type Entry struct {
	// Level is NoLevel for calls that bypass the severity gate
	Level  Level
	Family Family
	Args   []Arg
	Caller CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File          string
	ShortFile     string
	Line          int
	Function      string
	ShortFunction string
	Defined       bool
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Args: make([]Arg, 0, 16),
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Level = NoLevel
	e.Family = FamilyDump
	e.Args = e.Args[:0]
	e.Caller = CallerInfo{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	clear(e.Args)
	e.Args = e.Args[:0]
	e.Caller = CallerInfo{}
	entryPool.Put(e)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:          file,
		ShortFile:     filepath.Base(file),
		Line:          line,
		Function:      funcName,
		ShortFunction: ShortFunction(funcName),
		Defined:       true,
	}
}

// ShortFunction strips the import path from a qualified function name:
// "github.com/a/b/pkg.(*T).M" becomes "pkg.(*T).M".
func ShortFunction(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}
