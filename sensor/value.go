package sensor

import (
	"fmt"
	"strconv"
)

// Kind is the CBOR type a Value is written as.
type Kind uint8

const (
	KindUint Kind = iota
	KindInt
	KindFloat
	KindText
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a single sensor value.
type Value struct {
	kind Kind
	u    uint64
	i    int64
	f    float64
	s    string
	b    bool
}

// Uint returns an unsigned integer value, e.g. a raw temperature reading.
func Uint(v uint64) Value { return Value{kind: KindUint, u: v} }

// Int returns a signed integer value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a floating-point value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Text returns a text value. Text longer than 31 bytes only fits when it already
// ends with a NUL byte.
func Text(v string) Value { return Value{kind: KindText, s: v} }

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) String() string {
	switch v.kind {
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return strconv.Quote(v.s)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.kind.String()
	}
}

// Reading is one keyed sensor value.
type Reading struct {
	Key   string
	Value Value
}

// NewReading returns a Reading of key and v.
func NewReading(key string, v Value) Reading {
	return Reading{Key: key, Value: v}
}
