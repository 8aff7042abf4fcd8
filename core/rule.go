package core

import (
	"math/big"
	"reflect"
	"sync"
)

// Rule selects how a value is rendered. The set is closed: every Go type
// maps to exactly one rule, and RuleUnknown catches whatever the others
// do not cover.
type Rule uint8

const (
	// RuleUnresolved defers the choice to the value's dynamic type
	RuleUnresolved Rule = iota
	RuleBool
	RuleInt
	RuleInt8
	RuleInt16
	RuleInt32
	RuleInt64
	RuleUint
	RuleUint8
	RuleUint16
	RuleUint32
	RuleUint64
	RuleUintptr
	RuleFloat32
	RuleFloat64
	// RuleBigFloat is the extended precision rule (*big.Float)
	RuleBigFloat
	RuleComplex64
	RuleComplex128
	RuleString
	// RuleBytes renders a []byte as text
	RuleBytes
	// RulePointer renders an address
	RulePointer
	// RuleUnknown renders the fixed placeholder
	RuleUnknown
)

var ruleNames = [...]string{
	RuleUnresolved: "unresolved",
	RuleBool:       "bool",
	RuleInt:        "int",
	RuleInt8:       "int8",
	RuleInt16:      "int16",
	RuleInt32:      "int32",
	RuleInt64:      "int64",
	RuleUint:       "uint",
	RuleUint8:      "uint8",
	RuleUint16:     "uint16",
	RuleUint32:     "uint32",
	RuleUint64:     "uint64",
	RuleUintptr:    "uintptr",
	RuleFloat32:    "float32",
	RuleFloat64:    "float64",
	RuleBigFloat:   "bigfloat",
	RuleComplex64:  "complex64",
	RuleComplex128: "complex128",
	RuleString:     "string",
	RuleBytes:      "bytes",
	RulePointer:    "pointer",
	RuleUnknown:    "unknown",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "unknown"
}

// Signed reports whether the rule renders a signed integer
func (r Rule) Signed() bool {
	return r >= RuleInt && r <= RuleInt64
}

// Unsigned reports whether the rule renders an unsigned integer
func (r Rule) Unsigned() bool {
	return r >= RuleUint && r <= RuleUintptr
}

var (
	bigFloatType = reflect.TypeFor[*big.Float]()

	// ruleCache maps reflect.Type to Rule
	ruleCache sync.Map
)

var kindRules = [...]Rule{
	reflect.Bool:          RuleBool,
	reflect.Int:           RuleInt,
	reflect.Int8:          RuleInt8,
	reflect.Int16:         RuleInt16,
	reflect.Int32:         RuleInt32,
	reflect.Int64:         RuleInt64,
	reflect.Uint:          RuleUint,
	reflect.Uint8:         RuleUint8,
	reflect.Uint16:        RuleUint16,
	reflect.Uint32:        RuleUint32,
	reflect.Uint64:        RuleUint64,
	reflect.Uintptr:       RuleUintptr,
	reflect.Float32:       RuleFloat32,
	reflect.Float64:       RuleFloat64,
	reflect.Complex64:     RuleComplex64,
	reflect.Complex128:    RuleComplex128,
	reflect.String:        RuleString,
	reflect.Pointer:       RulePointer,
	reflect.UnsafePointer: RulePointer,
}

// RuleOf returns the rule for t. A nil type is the type of an untyped nil
// and renders as a null pointer.
func RuleOf(t reflect.Type) Rule {
	if t == nil {
		return RulePointer
	}
	if r, ok := ruleCache.Load(t); ok {
		return r.(Rule)
	}
	r := resolveRule(t)
	ruleCache.Store(t, r)
	return r
}

func resolveRule(t reflect.Type) Rule {
	if t == bigFloatType {
		return RuleBigFloat
	}
	k := t.Kind()
	if k == reflect.Slice && t.Elem().Kind() == reflect.Uint8 && t.Elem().PkgPath() == "" {
		return RuleBytes
	}
	if int(k) < len(kindRules) {
		if r := kindRules[k]; r != RuleUnresolved {
			return r
		}
	}
	return RuleUnknown
}

// StaticRule returns the rule for the static type T, or RuleUnresolved when
// T is an interface and only the dynamic type can decide.
func StaticRule[T any]() Rule {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		return RuleUnresolved
	}
	return RuleOf(t)
}

// ruleOfValue returns the rule for v's dynamic type
func ruleOfValue(v any) Rule {
	switch v.(type) {
	case int:
		return RuleInt
	case string:
		return RuleString
	case bool:
		return RuleBool
	case float64:
		return RuleFloat64
	case int64:
		return RuleInt64
	case uint64:
		return RuleUint64
	case []byte:
		return RuleBytes
	case nil:
		return RulePointer
	}
	return RuleOf(reflect.TypeOf(v))
}
