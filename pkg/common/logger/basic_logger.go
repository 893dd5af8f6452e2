package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// BasicLogger prints plain lines for interactive terminals.
type BasicLogger struct {
	verbose bool
	out     *log.Logger
}

func NewLogger(verbose bool) *BasicLogger {
	return NewLoggerTo(os.Stderr, verbose)
}

func NewLoggerTo(w io.Writer, verbose bool) *BasicLogger {
	return &BasicLogger{
		verbose: verbose,
		out:     log.New(w, "", 0),
	}
}

func (l *BasicLogger) Title(msg string, args ...any) {
	l.out.Printf("")
	l.lines("", msg, args...)
	l.out.Printf("")
}

func (l *BasicLogger) Info(msg string, args ...any) {
	l.lines("", msg, args...)
}

func (l *BasicLogger) Warn(msg string, args ...any) {
	l.lines("Warning: ", msg, args...)
}

func (l *BasicLogger) Error(msg string, args ...any) {
	l.lines("Error: ", msg, args...)
}

func (l *BasicLogger) Debug(msg string, args ...any) {
	if !l.verbose {
		return
	}
	l.lines("Debug: ", msg, args...)
}

// lines formats once and prefixes every resulting line
func (l *BasicLogger) lines(prefix, msg string, args ...any) {
	formatted := strings.TrimSuffix(fmt.Sprintf(msg, args...), "\n")
	for _, line := range strings.Split(formatted, "\n") {
		l.out.Printf("%s%s", prefix, line)
	}
}
