package logging

import (
	"fmt"
	"sync"
)

// Level identifies the method a message was logged with.
type Level string

const (
	LevelVerbose Level = "verbose"
	LevelInfo    Level = "info"
	LevelWarn    Level = "warn"
	LevelError   Level = "error"
)

// Entry is one recorded log message.
type Entry struct {
	Level   Level
	Message string
}

// BufferLogger records every message in memory, verbose ones included.
// Safe for concurrent use by multiple goroutines.
type BufferLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewBufferLogger creates an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) Verbose(format string, args ...interface{}) {
	l.record(LevelVerbose, format, args)
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.record(LevelInfo, format, args)
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.record(LevelWarn, format, args)
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.record(LevelError, format, args)
}

// Entries returns a copy of all recorded entries in logging order.
func (l *BufferLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Messages returns the messages recorded at the given level.
func (l *BufferLogger) Messages(level Level) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func (l *BufferLogger) record(level Level, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Message: msg})
}
