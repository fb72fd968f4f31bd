// Package logging builds the zerolog loggers used across the service.
//
// Every event is a single JSON object per line with the fields:
//   - ts        RFC3339Nano timestamp in the configured time zone
//   - level     zerolog level
//   - msg       event name
//   - component emitting package, when scoped with Component
package logging

import (
	"io"
	"log"
	"time"

	"github.com/rs/zerolog"
)

// Standard field names.
const (
	TimestampField = "ts"
	MessageField   = "msg"
	ComponentField = "component"
)

// Configure applies the standard field names to zerolog.
// It mutates zerolog globals and should be called once at startup, before New.
func Configure() {
	zerolog.MessageFieldName = MessageField
	zerolog.TimestampFieldName = TimestampField
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldUnit = time.Millisecond
}

// New constructs a JSON logger writing to w.
// Unknown levels fall back to info.
func New(w io.Writer, level string, loc *time.Location) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if loc == nil {
		loc = time.UTC
	}
	return zerolog.New(w).Level(lvl).Hook(timestampHook{loc: loc})
}

// Component scopes a logger to the named component.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str(ComponentField, name).Logger()
}

// UseAsStandardLoggerOutput routes the go std log output through logger.
func UseAsStandardLoggerOutput(logger zerolog.Logger) {
	log.SetFlags(0)
	log.SetOutput(logger)
}

type timestampHook struct {
	loc *time.Location
}

func (h timestampHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str(TimestampField, time.Now().In(h.loc).Format(time.RFC3339Nano))
}
