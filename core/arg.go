package core

import "strconv"

// Arg is one logged expression: its source text, the rule chosen for its
// type, and its value. An Arg lives for the duration of one logging call.
type Arg struct {
	// Source is the expression text. Empty means the logger fills it in.
	Source string
	Value  any

	rule  Rule
	thunk func() any
}

// ArgOf wraps v. An Arg passed through ArgOf is returned unchanged, which
// lets Named and Lazy values travel through variadic ...any parameters.
func ArgOf(v any) Arg {
	switch a := v.(type) {
	case Arg:
		return a
	case *Arg:
		if a != nil {
			return *a
		}
	}
	return Arg{Value: v}
}

// Named creates an Arg with an explicit label. The rule is chosen from the
// static type T.
func Named[T any](source string, v T) Arg {
	return Arg{Source: source, Value: v, rule: StaticRule[T]()}
}

// Lazy creates an Arg whose value is produced by fn. fn runs only when the
// call passes its severity gate, so expensive or side-effecting
// expressions cost nothing on a disabled call.
func Lazy[T any](fn func() T) Arg {
	a := Arg{rule: StaticRule[T]()}
	if fn != nil {
		a.thunk = func() any { return fn() }
	}
	return a
}

// Resolve evaluates a pending Lazy value and settles the rule. It is safe
// to call more than once.
func (a *Arg) Resolve() {
	if a.thunk != nil {
		a.Value = a.thunk()
		a.thunk = nil
	}
	if a.rule == RuleUnresolved {
		a.rule = ruleOfValue(a.Value)
	}
}

// Pending reports whether the value is still an unevaluated thunk
func (a Arg) Pending() bool {
	return a.thunk != nil
}

// Rule returns the resolved rule, or RuleUnresolved before Resolve
func (a Arg) Rule() Rule {
	return a.rule
}

// AppendValue appends the rendered value to buf
func (a Arg) AppendValue(buf []byte) []byte {
	if a.thunk != nil {
		a.Resolve()
	}
	return appendRule(buf, a.rule, a.Value)
}

// StringValue returns the rendered value
func (a Arg) StringValue() string {
	return string(a.AppendValue(nil))
}

// FallbackLabel is the label used when the source text of the i-th
// argument (zero based) cannot be recovered.
func FallbackLabel(i int) string {
	return "arg" + strconv.Itoa(i+1)
}
