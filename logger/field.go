package logger

import (
	"time"

	"github.com/ticklog/ticklog/core"
)

// Field constructors for call sites.

// String creates a string field.
func String(key, val string) core.Field {
	return core.Field{Key: key, Kind: core.StringKind, Str: val}
}

// Int creates an int field.
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Kind: core.IntKind, Int64: int64(val)}
}

// Int64 creates an int64 field.
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Kind: core.Int64Kind, Int64: val}
}

// Uint64 creates a uint64 field. Counter tick values belong here.
func Uint64(key string, val uint64) core.Field {
	return core.Field{Key: key, Kind: core.Uint64Kind, Int64: int64(val)}
}

// Float64 creates a float64 field.
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Kind: core.Float64Kind, Float64: val}
}

// Bool creates a bool field.
func Bool(key string, val bool) core.Field {
	var v int64
	if val {
		v = 1
	}
	return core.Field{Key: key, Kind: core.BoolKind, Int64: v}
}

// Time creates a time field.
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Kind: core.TimeKind, Int64: val.UnixNano()}
}

// Duration creates a duration field.
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Kind: core.DurationKind, Int64: int64(val)}
}

// Err creates an error field keyed "error".
func Err(err error) core.Field {
	if err == nil {
		return core.Field{Key: "error", Kind: core.ErrorKind, Str: ""}
	}
	return core.Field{Key: "error", Kind: core.ErrorKind, Str: err.Error()}
}

// Any creates a field holding an arbitrary value. It allocates.
func Any(key string, val interface{}) core.Field {
	return core.Field{Key: key, Kind: core.AnyKind, Any: val}
}
