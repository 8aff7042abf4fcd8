package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/philipp01105/dbglog/core"
)

// TextFormatter renders a call as the plain text debug layout:
//
//	Dump      x = 5\ny = hi\n
//	Trace     [file.go:10][pkg.Fn]\n\tx = 5\n\ty = hi\n
//	DumpRaw   5 hi\n
//	TraceRaw  [file.go:10][pkg.Fn] 5 hi\n
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.Indent == "" {
		cfg.Indent = "\t"
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := GetBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	PutBuffer(buf)
	return err
}

// FormatEntry writes the formatted entry into the given buffer
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	layout := SelectLayout(len(entry.Args))
	labeled := entry.Family.Labeled()
	stacked := labeled && layout == LayoutStacked

	if entry.Family.Annotated() {
		sep := byte(' ')
		if stacked {
			sep = '\n'
		}
		f.annotate(entry.Caller, sep, buf)
	}

	indent := ""
	if stacked && entry.Family.Annotated() {
		indent = f.Indent
	}
	f.expand(entry.Args, labeled, indent, buf)
	buf.WriteByte('\n')
}

// annotate writes the call-site header "[file:line][function]" and sep
func (f *TextFormatter) annotate(caller core.CallerInfo, sep byte, buf *bytes.Buffer) {
	file, function := caller.ShortFile, caller.ShortFunction
	if f.FullPath {
		file = caller.File
	}
	if f.FullFunction {
		function = caller.Function
	}
	if !caller.Defined {
		file, function = "???", "???"
	}

	buf.WriteByte('[')
	buf.WriteString(file)
	buf.WriteByte(':')
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(caller.Line), 10))
	buf.WriteString("][")
	buf.WriteString(function)
	buf.WriteByte(']')
	buf.WriteByte(sep)
}

// expand renders each argument in call order. Labeled arguments are
// separated by newlines, bare ones by a single space; the caller writes
// the final newline.
func (f *TextFormatter) expand(args []core.Arg, labeled bool, indent string, buf *bytes.Buffer) {
	for i := range args {
		if i > 0 {
			if labeled {
				buf.WriteByte('\n')
			} else {
				buf.WriteByte(' ')
			}
		}
		if labeled {
			buf.WriteString(indent)
			if args[i].Source != "" {
				buf.WriteString(args[i].Source)
			} else {
				buf.WriteString(core.FallbackLabel(i))
			}
			buf.WriteString(" = ")
		}
		buf.Write(args[i].AppendValue(buf.AvailableBuffer()))
	}
}
