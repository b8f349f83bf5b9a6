package logger

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

// NewTestLogger returns a logger that writes through t.Log so package logs
// show up attached to the failing test.
func NewTestLogger(t *testing.T) *Logger {
	return &Logger{Logger: zaptest.NewLogger(t).Named("azman"), verbose: true}
}

// SetGlobalLogger swaps the process-wide logger. Intended for tests.
func SetGlobalLogger(l *Logger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	globalLogger = l.Logger
}
