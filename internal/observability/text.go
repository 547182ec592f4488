package observability

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// TextLogger writes "level=... msg=... key=value" lines to a single writer.
// Debug lines are dropped unless verbose is set.
type TextLogger struct {
	mu      sync.Mutex
	w       io.Writer
	verbose bool
}

// NewTextLogger constructs a TextLogger over w.
func NewTextLogger(w io.Writer, verbose bool) *TextLogger {
	return &TextLogger{w: w, verbose: verbose}
}

// Debug writes a debug line when verbose logging is enabled.
func (l *TextLogger) Debug(msg string, fields ...Field) {
	if !l.verbose {
		return
	}
	l.write("debug", msg, fields)
}

// Info writes an informational line.
func (l *TextLogger) Info(msg string, fields ...Field) {
	l.write("info", msg, fields)
}

// Error writes an error line.
func (l *TextLogger) Error(msg string, fields ...Field) {
	l.write("error", msg, fields)
}

func (l *TextLogger) write(level, msg string, fields []Field) {
	parts := make([]string, 0, len(fields)+2)
	parts = append(parts, "level="+level, fmt.Sprintf("msg=%q", msg))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%v", f.Key, f.Value))
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, strings.Join(parts, " "))
}
