package logger

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// ZerologAdapter implements Logger on zerolog. Every entry carries a
// "component" field ahead of the caller's fields.
type ZerologAdapter struct {
	zl zerolog.Logger
}

func NewZerolog(w io.Writer, level zerolog.Level) *ZerologAdapter {
	return &ZerologAdapter{
		zl: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

// NewConsoleLogger writes human-readable lines to stderr when it is a
// terminal and JSON otherwise.
func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return NewZerolog(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}, level)
	}
	return NewZerolog(os.Stderr, level)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	emit(z.zl.Debug(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	emit(z.zl.Info(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	emit(z.zl.Warn(), component, fields).Msg(message)
}

// Error logs err under the "error" key; the message names the component.
func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	emit(z.zl.Error().Err(err), component, fields).Msg(component + " failed")
}

// emit is a no-op for levels the logger discards, since zerolog returns a nil
// event for them.
func emit(e *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	if e == nil {
		return nil
	}
	return e.Str("component", component).Fields(fields)
}
