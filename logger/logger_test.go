package logger

import (
	"bytes"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/handler"
)

func newTestLogger(mask int) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer: &buf,
		Color:  handler.ColorNever,
	})
	log := NewBuilder().
		WithHandler(h).
		WithMask(mask).
		Build()
	return log, &buf
}

// callerLine returns the line it is called from
func callerLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

func header(line int, fn string) string {
	return "[logger_test.go:" + strconv.Itoa(line) + "][logger." + fn + "]"
}

func TestLogger_Dump(t *testing.T) {
	log, buf := newTestLogger(AllLevels)
	x := 5
	y := "hi"

	log.At(DebugLevel).Dump(x, y)

	if want := "x = 5\ny = hi\n"; buf.String() != want {
		t.Errorf("Dump() = %q, want %q", buf.String(), want)
	}
}

func TestLogger_Families(t *testing.T) {
	log, buf := newTestLogger(DefaultMask)
	x := 5
	y := "hi"

	log.Dump(x)
	log.DumpRaw(x)
	log.DumpRaw(x, y)

	if want := "x = 5\n5\n5 hi\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_Trace(t *testing.T) {
	log, buf := newTestLogger(DefaultMask)
	x := 5
	y := "hi"

	line := callerLine() + 1
	log.Trace(x)
	want := header(line, "TestLogger_Trace") + " x = 5\n"
	if buf.String() != want {
		t.Errorf("Trace(x) = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	line = callerLine() + 1
	log.Trace(x, y)
	want = header(line, "TestLogger_Trace") + "\n\tx = 5\n\ty = hi\n"
	if buf.String() != want {
		t.Errorf("Trace(x, y) = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	line = callerLine() + 1
	log.TraceRaw(x, y)
	want = header(line, "TestLogger_Trace") + " 5 hi\n"
	if buf.String() != want {
		t.Errorf("TraceRaw(x, y) = %q, want %q", buf.String(), want)
	}
}

func TestLogger_SeverityGate(t *testing.T) {
	log, buf := newTestLogger(int(InfoLevel))
	z := 1.5

	log.Debug(z)
	log.DebugRaw(z)
	log.At(DebugLevel).Dump(z)
	log.Error(z)
	if buf.Len() > 0 {
		t.Errorf("disabled levels produced output: %q", buf.String())
	}

	line := callerLine() + 1
	log.Info(z)
	if want := header(line, "TestLogger_SeverityGate") + " z = 1.5\n"; buf.String() != want {
		t.Errorf("Info(z) = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	line = callerLine() + 1
	log.InfoRaw(z)
	if want := header(line, "TestLogger_SeverityGate") + " 1.5\n"; buf.String() != want {
		t.Errorf("InfoRaw(z) = %q, want %q", buf.String(), want)
	}
}

func TestLogger_EveryLevel(t *testing.T) {
	log, buf := newTestLogger(AllLevels)
	v := 1

	log.Error(v)
	log.Warn(v)
	log.Notice(v)
	log.Info(v)
	log.Debug(v)
	log.ErrorRaw(v)
	log.WarnRaw(v)
	log.NoticeRaw(v)
	log.InfoRaw(v)
	log.DebugRaw(v)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10: %q", len(lines), buf.String())
	}
	for i, l := range lines {
		want := " v = 1"
		if i >= 5 {
			want = " 1"
		}
		if !strings.HasSuffix(l, want) {
			t.Errorf("line %d = %q, want suffix %q", i, l, want)
		}
	}
}

func TestLogger_LazySkippedWhenDisabled(t *testing.T) {
	log, buf := newTestLogger(int(InfoLevel))

	calls := 0
	count := func() int {
		calls++
		return calls
	}

	log.Debug(Lazy(func() int { return count() }))
	if calls != 0 {
		t.Errorf("Lazy value evaluated %d times on a disabled call", calls)
	}
	if buf.Len() > 0 {
		t.Errorf("disabled call produced output: %q", buf.String())
	}

	log.Info(Lazy(func() int { return count() }))
	if calls != 1 {
		t.Errorf("Lazy value evaluated %d times, want 1", calls)
	}
	if !strings.HasSuffix(buf.String(), "] count() = 1\n") {
		t.Errorf("Info(Lazy) = %q", buf.String())
	}
}

// Plain arguments are ordinary Go expressions and run before the gate is
// consulted. Only Lazy values are deferred.
func TestLogger_PlainArgumentsEvaluatedEagerly(t *testing.T) {
	log, buf := newTestLogger(int(InfoLevel))

	calls := 0
	count := func() int {
		calls++
		return calls
	}

	log.Debug(count())
	if calls != 1 {
		t.Errorf("plain argument evaluated %d times, want 1", calls)
	}
	if buf.Len() > 0 {
		t.Errorf("disabled call produced output: %q", buf.String())
	}
}

func TestLogger_Named(t *testing.T) {
	log, buf := newTestLogger(DefaultMask)
	x := 5

	log.Dump(Named("retries", x), x)

	if want := "retries = 5\nx = 5\n"; buf.String() != want {
		t.Errorf("Dump() = %q, want %q", buf.String(), want)
	}
}

type validator struct{}

func (validator) Warn(n int) int { return n }

func TestLogger_ArgumentCallSharesName(t *testing.T) {
	log, buf := newTestLogger(AllLevels)
	v := validator{}
	cfg := 42

	line := callerLine() + 1
	log.Warn(v.Warn(cfg))
	want := header(line, "TestLogger_ArgumentCallSharesName") + " v.Warn(cfg) = 42\n"
	if buf.String() != want {
		t.Errorf("Warn() = %q, want %q", buf.String(), want)
	}
}

func traceDeferred(log *Logger, x int) {
	defer log.Trace(x)
}

func TestLogger_DeferredCallFallsBack(t *testing.T) {
	log, buf := newTestLogger(DefaultMask)

	traceDeferred(log, 5)
	if !strings.HasSuffix(buf.String(), "][logger.traceDeferred] arg1 = 5\n") {
		t.Errorf("deferred Trace() = %q", buf.String())
	}

	buf.Reset()
	func() {
		defer log.Trace(Named("x", 5))
	}()
	if !strings.HasSuffix(buf.String(), "] x = 5\n") {
		t.Errorf("deferred Trace(Named) = %q", buf.String())
	}
}

func TestPackageLevel_NilDefault(t *testing.T) {
	prev := Default()
	SetDefault(nil)
	defer SetDefault(prev)

	x := 5
	Dump(x)
	Error(x)
	At(DebugLevel).TraceRaw(x)
	if Default().IsEnabled(ErrorLevel) {
		t.Error("IsEnabled() = true on a nil logger")
	}
}

func TestLogger_FallbackLabels(t *testing.T) {
	log, buf := newTestLogger(DefaultMask)
	vals := []any{1, "two"}

	log.Dump(vals[0], vals[1:]...)

	if want := "arg1 = 1\narg2 = two\n"; buf.String() != want {
		t.Errorf("Dump() = %q, want %q", buf.String(), want)
	}
}

func TestLogger_ExpressionText(t *testing.T) {
	log, buf := newTestLogger(DefaultMask)
	a, b := 2, 3
	m := map[string]int{"k": 7}

	log.Dump(a+b, m["k"], len("abc"))
	log.Dump(
		a*
			b,
	)

	want := "a+b = 5\nm[\"k\"] = 7\nlen(\"abc\") = 3\na* b = 6\n"
	if buf.String() != want {
		t.Errorf("Dump() = %q, want %q", buf.String(), want)
	}
}

func TestLogger_ValueRendering(t *testing.T) {
	type port uint16
	log, buf := newTestLogger(DefaultMask)

	p := port(8080)
	ok := true
	f := float32(0.1)
	c := complex(1.5, -2)
	raw := []byte("bytes")
	var np *int
	s := struct{ A int }{1}

	log.DumpRaw(p, ok, f, c, raw, np, s)

	if want := "8080 1 0.1 1.5 + -2i bytes 0x0 <unknown>\n"; buf.String() != want {
		t.Errorf("DumpRaw() = %q, want %q", buf.String(), want)
	}
}

func TestLogger_ManyArguments(t *testing.T) {
	log, buf := newTestLogger(DefaultMask)

	log.DumpRaw(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20)
	if want := "1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20\n"; buf.String() != want {
		t.Errorf("DumpRaw() = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	log.Dump(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 17 {
		t.Fatalf("got %d lines, want 17", len(lines))
	}
	for i, l := range lines {
		n := strconv.Itoa(i + 1)
		if want := n + " = " + n; l != want {
			t.Errorf("line %d = %q, want %q", i, l, want)
		}
	}
}

func TestLogger_SetLevel(t *testing.T) {
	log, buf := newTestLogger(0)
	v := 1

	log.Error(v)
	if buf.Len() > 0 {
		t.Fatal("Error() emitted with an empty mask")
	}
	if log.IsEnabled(ErrorLevel) {
		t.Error("IsEnabled(ErrorLevel) = true with an empty mask")
	}
	if !log.IsEnabled(NoLevel) {
		t.Error("IsEnabled(NoLevel) = false")
	}

	log.SetLevel(int(ErrorLevel | DebugLevel))
	if !log.At(DebugLevel).Enabled() || log.At(WarnLevel).Enabled() {
		t.Errorf("mask %s not applied", core.FormatMask(log.Gate().Mask()))
	}
	log.Error(v)
	if buf.Len() == 0 {
		t.Error("Error() did not emit after SetLevel")
	}
}

func TestLogger_SharedGate(t *testing.T) {
	g := core.NewGate(0)
	var buf bytes.Buffer
	h := handler.NewConsoleHandler(handler.ConsoleConfig{Writer: &buf, Color: handler.ColorNever})
	a := NewBuilder().WithHandler(h).WithGate(g).Build()
	b := NewBuilder().WithHandler(h).WithGate(g).Build()
	v := 1

	a.SetLevel(int(WarnLevel))
	b.Warn(v)
	if buf.Len() == 0 {
		t.Error("logger sharing a gate did not see SetLevel")
	}
}

func TestLogger_DefaultsToProcessGate(t *testing.T) {
	log := NewBuilder().Build()
	if log.Gate() != core.ProcessGate() {
		t.Error("Build() without a gate did not use the process-wide gate")
	}
}

func TestLogger_NoHandler(t *testing.T) {
	log := NewBuilder().WithMask(AllLevels).Build()
	v := 1
	log.Dump(v)
	log.Debug(v)
	if err := log.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestLogger_CallerSkip(t *testing.T) {
	var buf bytes.Buffer
	h := handler.NewConsoleHandler(handler.ConsoleConfig{Writer: &buf, Color: handler.ColorNever})
	log := NewBuilder().WithHandler(h).WithCallerSkip(1).Build()

	trace := func(v any) {
		log.TraceRaw(v)
	}

	line := callerLine() + 1
	trace(3)
	if want := header(line, "TestLogger_CallerSkip") + " 3\n"; buf.String() != want {
		t.Errorf("TraceRaw() = %q, want %q", buf.String(), want)
	}
}

func TestLogger_Concurrent(t *testing.T) {
	log, buf := newTestLogger(AllLevels)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				log.DumpRaw("a", "b")
			}
		}()
	}
	wg.Wait()

	if want := strings.Repeat("a b\n", 800); buf.String() != want {
		t.Error("concurrent calls interleaved")
	}
}

func TestPackageLevel(t *testing.T) {
	log, buf := newTestLogger(DefaultMask)
	prev := Default()
	SetDefault(log)
	defer SetDefault(prev)

	x := 5
	Dump(x)
	DumpRaw(x)
	line := callerLine() + 1
	Trace(x)
	TraceRaw(x)

	want := "x = 5\n5\n" +
		header(line, "TestPackageLevel") + " x = 5\n" +
		header(line+1, "TestPackageLevel") + " 5\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPackageLevel_Gated(t *testing.T) {
	log, buf := newTestLogger(0)
	prev := Default()
	SetDefault(log)
	defer SetDefault(prev)

	mask := core.ProcessGate().Mask()
	defer SetLevel(mask)

	x := 5
	SetLevel(int(NoticeLevel))
	Error(x)
	Warn(x)
	Info(x)
	Debug(x)
	if buf.Len() > 0 {
		t.Errorf("private gate was bypassed: %q", buf.String())
	}

	if !IsEnabled(NoticeLevel) || IsEnabled(DebugLevel) {
		t.Error("IsEnabled() does not follow SetLevel")
	}

	log.SetLevel(AllLevels)
	line := callerLine() + 1
	Notice(x)
	NoticeRaw(x)
	At(ErrorLevel).DumpRaw(x)
	want := header(line, "TestPackageLevel_Gated") + " x = 5\n" +
		header(line+1, "TestPackageLevel_Gated") + " 5\n" +
		"5\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestParseMask(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"all", AllLevels},
		{"error,warn", int(ErrorLevel | WarnLevel)},
		{"0x10", int(DebugLevel)},
		{"none", 0},
	}
	for _, tt := range tests {
		got, err := ParseMask(tt.input)
		if err != nil {
			t.Errorf("ParseMask(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMask(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
