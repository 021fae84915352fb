// Package testutil provides shared testing utilities and fixtures for use
// across the kitutil test suite.
package testutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cecil-the-coder/kitutil/pkg/types"
)

// LogEntry is one message captured by a RecordingLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// RecordingLogger is a types.Logger that keeps every entry in memory.
// Loggers derived through WithField/WithFields share the same record.
type RecordingLogger struct {
	rec    *record
	fields map[string]interface{}
}

type record struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{rec: &record{}}
}

func (l *RecordingLogger) Debug(msg string, fields ...interface{}) { l.add("debug", msg, fields) }
func (l *RecordingLogger) Info(msg string, fields ...interface{}) { l.add("info", msg, fields) }
func (l *RecordingLogger) Warn(msg string, fields ...interface{}) { l.add("warn", msg, fields) }
func (l *RecordingLogger) Error(msg string, fields ...interface{}) { l.add("error", msg, fields) }

func (l *RecordingLogger) WithField(key string, value interface{}) types.Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

func (l *RecordingLogger) WithFields(fields map[string]interface{}) types.Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &RecordingLogger{rec: l.rec, fields: merged}
}

func (l *RecordingLogger) add(level, msg string, pairs []interface{}) {
	fields := make(map[string]interface{}, len(l.fields)+len(pairs)/2)
	for k, v := range l.fields {
		fields[k] = v
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		fields[fmt.Sprint(pairs[i])] = pairs[i+1]
	}

	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()
	l.rec.entries = append(l.rec.entries, LogEntry{Level: level, Message: msg, Fields: fields})
}

// Entries returns a copy of all captured entries.
func (l *RecordingLogger) Entries() []LogEntry {
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()
	out := make([]LogEntry, len(l.rec.entries))
	copy(out, l.rec.entries)
	return out
}

// EntriesAt returns the captured entries with the given level.
func (l *RecordingLogger) EntriesAt(level string) []LogEntry {
	var out []LogEntry
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether any entry at level has a message containing substr.
func (l *RecordingLogger) Contains(level, substr string) bool {
	for _, e := range l.EntriesAt(level) {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// Reset drops all captured entries.
func (l *RecordingLogger) Reset() {
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()
	l.rec.entries = nil
}
