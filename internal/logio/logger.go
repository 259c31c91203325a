// Package logio provides a small leveled logger that remembers whether an
// error was logged, and an io.Writer that feeds complete lines to a logging
// function.
package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Logger writes lines like "name: level: message" to an output stream.
type Logger struct {
	Name string

	mu       sync.Mutex
	output   io.Writer
	buf      bytes.Buffer
	exitCode int
}

// New creates a logger writing to out, prefixing every line with name.
func New(name string, out io.Writer) *Logger {
	return &Logger{Name: name, output: out}
}

// ExitCode returns a code to pass to os.Exit: 0 unless an error was logged.
func (log *Logger) ExitCode() int {
	log.mu.Lock()
	defer log.mu.Unlock()
	return log.exitCode
}

// Leveledf returns a printf-style function that logs at the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs any non-nil error through Errorf.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Errorf("%v", err)
	}
}

// Errorf logs an unleveled message and makes ExitCode return 1, unless a
// higher code was already recorded.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.printf("", mess, args...)
	if log.exitCode < 1 {
		log.exitCode = 1
	}
}

// Printf logs a message at level; an empty level is omitted.
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.printf(level, mess, args...)
}

func (log *Logger) printf(level, mess string, args ...interface{}) {
	if log.output == nil {
		return
	}
	if log.Name != "" {
		log.buf.WriteString(log.Name)
		log.buf.WriteString(": ")
	}
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	if _, err := log.buf.WriteTo(log.output); err != nil {
		log.buf.Reset()
		log.exitCode = 2
	}
}
