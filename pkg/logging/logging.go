// Package logging adapts logrus to the types.Logger interface so hosts can
// hand kitutil helpers a real leveled sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cecil-the-coder/kitutil/pkg/types"
)

// Options configures a logger created by New.
type Options struct {
	// Level is one of debug, info, warn, error. Unknown values fall back to info.
	Level string
	// Format is "json" or "text" (default).
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// ParseLevel maps a level name to a logrus level, falling back to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// New creates an isolated logrus logger wrapped as a types.Logger. It never
// touches the logrus standard logger.
func New(opts Options) types.Logger {
	l := logrus.New()
	l.SetLevel(ParseLevel(opts.Level))

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{entry: logrus.NewEntry(l)}
}

// Wrap adapts an existing logrus logger.
func Wrap(l *logrus.Logger) types.Logger {
	return &Logger{entry: logrus.NewEntry(l)}
}

// Logger implements types.Logger on top of a logrus entry.
type Logger struct {
	entry *logrus.Entry
}

func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.with(fields).Debug(msg)
}

func (l *Logger) Info(msg string, fields ...interface{}) {
	l.with(fields).Info(msg)
}

func (l *Logger) Warn(msg string, fields ...interface{}) {
	l.with(fields).Warn(msg)
}

func (l *Logger) Error(msg string, fields ...interface{}) {
	l.with(fields).Error(msg)
}

func (l *Logger) WithField(key string, value interface{}) types.Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) WithFields(fields map[string]interface{}) types.Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *Logger) with(fields []interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	return l.entry.WithFields(pairsToFields(fields))
}

// pairsToFields turns alternating key/value pairs into logrus fields. A
// trailing key without a value is kept under "extra".
func pairsToFields(pairs []interface{}) logrus.Fields {
	fields := make(logrus.Fields, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		if i+1 >= len(pairs) {
			fields["extra"] = pairs[i]
			break
		}
		key, ok := pairs[i].(string)
		if !ok {
			key = fmt.Sprint(pairs[i])
		}
		fields[key] = pairs[i+1]
	}
	return fields
}
