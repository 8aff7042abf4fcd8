// Package formatter turns a logging call into text.
//
// SelectLayout chooses between the inline layout (one argument, kept on
// the header line) and the stacked layout (two or more labeled arguments,
// one per line). TextFormatter writes the optional call-site header, then
// expands every argument in call order, labeled ("x = 5") or bare ("5").
//
// Formatters implement Formatter, which returns a []byte, and usually
// BufferFormatter, which appends into a caller-provided bytes.Buffer so a
// handler can wrap the text (colors, end-of-message marker) and still
// issue a single Write per call. Values are appended with Go's
// Append-style functions through AvailableBuffer to avoid per-argument
// allocations.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large call from permanently inflating memory usage.
package formatter
