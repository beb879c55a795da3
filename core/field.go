package core

import (
	"fmt"
	"strconv"
	"time"
)

// Kind discriminates the value stored in a Field.
type Kind uint8

const (
	StringKind Kind = iota
	IntKind
	Int64Kind
	Uint64Kind
	Float64Kind
	BoolKind
	TimeKind
	DurationKind
	ErrorKind
	AnyKind
)

// Field is a key-value pair attached to an Entry. Values are encoded
// into the fixed-size Int64/Float64 slots wherever possible so common
// types never escape to the heap; Any is the allocating fallback.
// Uint64 values (hardware counter ticks and similar) are bit-cast into
// the Int64 slot.
type Field struct {
	Key     string
	Kind    Kind
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// StringValue renders the field's value as text.
func (f Field) StringValue() string {
	switch f.Kind {
	case StringKind:
		return f.Str
	case IntKind, Int64Kind:
		return strconv.FormatInt(f.Int64, 10)
	case Uint64Kind:
		return strconv.FormatUint(uint64(f.Int64), 10)
	case Float64Kind:
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case BoolKind:
		return strconv.FormatBool(f.Int64 == 1)
	case TimeKind:
		return time.Unix(0, f.Int64).Format(time.RFC3339)
	case DurationKind:
		return time.Duration(f.Int64).String()
	case ErrorKind:
		return f.Str
	case AnyKind:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}
