package handler

import (
	"strings"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/formatter"
)

// Handler defines the interface for output sinks
type Handler interface {
	// Handle writes one logging call. The entry must not be retained
	// after Handle returns.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// message renders entry with f and drops the trailing newline, for sinks
// that terminate records themselves.
func message(f formatter.Formatter, entry *core.Entry) (string, error) {
	if bf, ok := f.(formatter.BufferFormatter); ok {
		buf := formatter.GetBuffer()
		bf.FormatEntry(entry, buf)
		msg := strings.TrimSuffix(buf.String(), "\n")
		formatter.PutBuffer(buf)
		return msg, nil
	}
	data, err := f.Format(entry)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
