// Package diag defines the diagnostic messages a processing context
// reports and the consumer callback that receives them.
package diag

import (
	"fmt"

	"go.uber.org/zap"
)

// Level is the severity of a diagnostic.
type Level uint8

const (
	LevelFatal Level = iota
	LevelInternalError
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelFatal:         "fatal",
	LevelInternalError: "internal error",
	LevelError:         "error",
	LevelWarning:       "warning",
	LevelInfo:          "info",
	LevelDebug:         "debug",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("level(%d)", uint8(l))
}

// Position locates a diagnostic in the input. Index is the word or byte
// offset, Line and Column are zero when unknown.
type Position struct {
	Line   int
	Column int
	Index  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Line, p.Column, p.Index)
}

// Message is one diagnostic.
type Message struct {
	Source   string
	Text     string
	Position Position
	Level    Level
}

func (m Message) String() string {
	if m.Source == "" {
		return fmt.Sprintf("%s: %s: %s", m.Position, m.Level, m.Text)
	}
	return fmt.Sprintf("%s:%s: %s: %s", m.Source, m.Position, m.Level, m.Text)
}

// Consumer receives diagnostics. Implementations must not panic and
// should return promptly; messages are delivered synchronously on the
// reporting goroutine.
type Consumer func(Message)

// ZapConsumer forwards diagnostics to l, mapping levels onto zap levels.
// Fatal diagnostics are logged at error level; the consumer never exits
// the process.
func ZapConsumer(l *zap.Logger) Consumer {
	return func(m Message) {
		fields := []zap.Field{
			zap.String("level", m.Level.String()),
			zap.Int("line", m.Position.Line),
			zap.Int("column", m.Position.Column),
			zap.Int("index", m.Position.Index),
		}
		if m.Source != "" {
			fields = append(fields, zap.String("source", m.Source))
		}

		switch m.Level {
		case LevelFatal, LevelInternalError, LevelError:
			l.Error(m.Text, fields...)
		case LevelWarning:
			l.Warn(m.Text, fields...)
		case LevelInfo:
			l.Info(m.Text, fields...)
		default:
			l.Debug(m.Text, fields...)
		}
	}
}

// Collect returns a consumer appending every message to *dst.
// It is not safe for concurrent use.
func Collect(dst *[]Message) Consumer {
	return func(m Message) {
		*dst = append(*dst, m)
	}
}
