package logger

import (
	"fmt"
	"strings"
	"sync"
)

// LogEntry is a single buffered message.
type LogEntry struct {
	Level   string
	Message string
}

// NoopLogger prints nothing and buffers every message for test assertions.
// It is safe for concurrent use.
type NoopLogger struct {
	mu      sync.RWMutex
	entries []LogEntry
}

func NewNoopLogger() *NoopLogger {
	return &NoopLogger{entries: make([]LogEntry, 0)}
}

func (l *NoopLogger) Title(msg string, args ...any) { l.add("TITLE", msg, args...) }
func (l *NoopLogger) Info(msg string, args ...any)  { l.add("INFO", msg, args...) }
func (l *NoopLogger) Warn(msg string, args ...any)  { l.add("WARN", msg, args...) }
func (l *NoopLogger) Error(msg string, args ...any) { l.add("ERROR", msg, args...) }
func (l *NoopLogger) Debug(msg string, args ...any) { l.add("DEBUG", msg, args...) }

func (l *NoopLogger) add(level, msg string, args ...any) {
	msg = strings.Trim(msg, "\n")
	if msg == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: fmt.Sprintf(msg, args...)})
}

// GetEntries returns a copy of the buffered entries.
func (l *NoopLogger) GetEntries() []LogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// GetMessagesByLevel returns the messages logged at level.
func (l *NoopLogger) GetMessagesByLevel(level string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []string
	for _, e := range l.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func (l *NoopLogger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

func (l *NoopLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

// Contains reports whether any message contains text.
func (l *NoopLogger) Contains(text string) bool {
	return l.ContainsLevel("", text)
}

// ContainsLevel is Contains restricted to one level; an empty level matches all.
func (l *NoopLogger) ContainsLevel(level, text string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.entries {
		if (level == "" || e.Level == level) && strings.Contains(e.Message, text) {
			return true
		}
	}
	return false
}
