// Package logger provides the progress logger used by the kitsu client.
//
// Output is discarded until a writer or hook is set, so the library
// stays silent by default.
package logger

import (
	"io"
	"log"
)

// Logger reports request progress lines.
type Logger struct {
	logger *log.Logger
	onLog  func(format string, a ...any)
	prefix string
}

// NewLogger constructs a logger that discards everything.
func NewLogger() *Logger {
	return &Logger{
		logger: log.New(io.Discard, "", log.Default().Flags()),
	}
}

// SetPrefix sets the prefix prepended to every line.
func (l *Logger) SetPrefix(prefix string) {
	l.logger.SetPrefix(prefix)
	if prefix != "" {
		prefix += ": "
	}
	l.prefix = prefix
}

// Prefix returns the set prefix.
func (l *Logger) Prefix() string {
	return l.logger.Prefix()
}

// Writer returns the destination writer.
func (l *Logger) Writer() io.Writer {
	return l.logger.Writer()
}

// SetOutput sets the destination writer.
func (l *Logger) SetOutput(writer io.Writer) {
	l.logger.SetOutput(writer)
}

// SetOnLog sets a hook called with every line, regardless of the
// destination writer.
func (l *Logger) SetOnLog(hook func(format string, a ...any)) {
	l.onLog = hook
}

// Log writes one formatted line.
func (l *Logger) Log(format string, a ...any) {
	format = l.prefix + format
	if l.onLog != nil {
		l.onLog(format, a...)
	}
	l.logger.Printf(format+"\n", a...)
}
