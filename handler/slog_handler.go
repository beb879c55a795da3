package handler

import (
	"context"
	"log/slog"

	"github.com/ticklog/ticklog/core"
)

// SlogHandler adapts a ticklog Handler to the slog.Handler interface,
// letting ticklog serve as a backend for the standard library logger.
type SlogHandler struct {
	handler Handler
	level   core.Level
	attrs   []core.Field
	group   string
}

// NewSlogHandler creates a slog.Handler wrapping the given Handler.
func NewSlogHandler(h Handler, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// Enabled reports whether records at the given level are handled.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle converts the record to a core.Entry and passes it on.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	entry.Time = record.Time
	entry.Level = slogLevelToCore(record.Level)
	entry.Message = record.Message

	if len(s.attrs) > 0 {
		entry.Fields = append(entry.Fields, s.attrs...)
	}
	record.Attrs(func(a slog.Attr) bool {
		entry.Fields = append(entry.Fields, slogAttrToField(s.group, a))
		return true
	})

	return s.handler.Handle(entry)
}

// WithAttrs returns a handler carrying additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = append(newAttrs, slogAttrToField(s.group, a))
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   newAttrs,
		group:   s.group,
	}
}

// WithGroup returns a handler with the given group name; nested
// groups become dot-joined key prefixes.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	group := name
	if s.group != "" {
		group = s.group + "." + name
	}
	newAttrs := make([]core.Field, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   newAttrs,
		group:   group,
	}
}

func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// slogAttrToField converts a slog.Attr, prepending the group prefix.
func slogAttrToField(group string, a slog.Attr) core.Field {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindString:
		return core.Field{Key: key, Kind: core.StringKind, Str: a.Value.String()}
	case slog.KindInt64:
		return core.Field{Key: key, Kind: core.Int64Kind, Int64: a.Value.Int64()}
	case slog.KindUint64:
		return core.Field{Key: key, Kind: core.Uint64Kind, Int64: int64(a.Value.Uint64())}
	case slog.KindFloat64:
		return core.Field{Key: key, Kind: core.Float64Kind, Float64: a.Value.Float64()}
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return core.Field{Key: key, Kind: core.BoolKind, Int64: val}
	case slog.KindTime:
		return core.Field{Key: key, Kind: core.TimeKind, Int64: a.Value.Time().UnixNano()}
	case slog.KindDuration:
		return core.Field{Key: key, Kind: core.DurationKind, Int64: int64(a.Value.Duration())}
	case slog.KindGroup:
		// Group attrs flatten into prefixed fields.
		attrs := a.Value.Group()
		if len(attrs) > 0 {
			return slogAttrToField(key, attrs[0])
		}
		return core.Field{Key: key, Kind: core.AnyKind, Any: a.Value.Any()}
	default:
		return core.Field{Key: key, Kind: core.AnyKind, Any: a.Value.Any()}
	}
}
