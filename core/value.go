package core

import (
	"math/big"
	"reflect"
	"strconv"
	"unsafe"
)

// Unknown is rendered for values no rule covers
const Unknown = "<unknown>"

// Render returns the text form of v, chosen by v's dynamic type
func Render(v any) string {
	return string(AppendValue(nil, v))
}

// RenderOf returns the text form of v, chosen by the static type T. For
// interface type arguments the dynamic type decides.
func RenderOf[T any](v T) string {
	return string(appendRule(nil, StaticRule[T](), v))
}

// AppendValue appends the text form of v to buf
func AppendValue(buf []byte, v any) []byte {
	return appendRule(buf, ruleOfValue(v), v)
}

// appendRule renders v with rule. A rule that does not match v's kind
// falls back to the placeholder instead of reading v as something else.
func appendRule(buf []byte, rule Rule, v any) []byte {
	if rule == RuleUnresolved {
		rule = ruleOfValue(v)
	}
	if v == nil {
		// Only a pointer-like or untyped nil is an address
		if rule != RulePointer {
			return append(buf, Unknown...)
		}
		return appendPointer(buf, nil)
	}
	if rule != RuleUnknown && ruleOfValue(v) != rule {
		return append(buf, Unknown...)
	}

	switch {
	case rule.Signed():
		return strconv.AppendInt(buf, intValue(v), 10)
	case rule.Unsigned():
		return strconv.AppendUint(buf, uintValue(v), 10)
	}

	switch rule {
	case RuleBool:
		if boolValue(v) {
			return append(buf, '1')
		}
		return append(buf, '0')
	case RuleFloat32:
		return strconv.AppendFloat(buf, floatValue(v), 'g', -1, 32)
	case RuleFloat64:
		return strconv.AppendFloat(buf, floatValue(v), 'g', -1, 64)
	case RuleBigFloat:
		f := v.(*big.Float)
		if f == nil {
			return append(buf, "0x0"...)
		}
		return f.Append(buf, 'g', -1)
	case RuleComplex64:
		c := complexValue(v)
		buf = strconv.AppendFloat(buf, real(c), 'g', -1, 32)
		buf = append(buf, " + "...)
		buf = strconv.AppendFloat(buf, imag(c), 'g', -1, 32)
		return append(buf, 'i')
	case RuleComplex128:
		c := complexValue(v)
		buf = strconv.AppendFloat(buf, real(c), 'g', -1, 64)
		buf = append(buf, " + "...)
		buf = strconv.AppendFloat(buf, imag(c), 'g', -1, 64)
		return append(buf, 'i')
	case RuleString:
		if s, ok := v.(string); ok {
			return append(buf, s...)
		}
		return append(buf, reflect.ValueOf(v).String()...)
	case RuleBytes:
		if b, ok := v.([]byte); ok {
			return append(buf, b...)
		}
		return append(buf, reflect.ValueOf(v).Bytes()...)
	case RulePointer:
		return appendPointer(buf, v)
	default:
		return append(buf, Unknown...)
	}
}

func appendPointer(buf []byte, v any) []byte {
	var addr uintptr
	switch p := v.(type) {
	case nil:
	case unsafe.Pointer:
		addr = uintptr(p)
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Pointer, reflect.UnsafePointer:
			addr = rv.Pointer()
		default:
			return append(buf, Unknown...)
		}
	}
	buf = append(buf, "0x"...)
	return strconv.AppendUint(buf, uint64(addr), 16)
}

func intValue(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	}
	return reflect.ValueOf(v).Int()
}

func uintValue(v any) uint64 {
	switch x := v.(type) {
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case uintptr:
		return uint64(x)
	}
	return reflect.ValueOf(v).Uint()
}

func boolValue(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return reflect.ValueOf(v).Bool()
}

func floatValue(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	}
	return reflect.ValueOf(v).Float()
}

func complexValue(v any) complex128 {
	switch x := v.(type) {
	case complex64:
		return complex128(x)
	case complex128:
		return x
	}
	return reflect.ValueOf(v).Complex()
}
