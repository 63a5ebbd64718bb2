package utils

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Level is the minimum severity a Logger writes
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// ParseLevel maps a config string onto a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger represents a logger instance.
type Logger struct {
	*log.Logger
	level Level
}

// NewLogger creates a new logger instance.
func NewLogger(w io.Writer, prefix string, level Level) *Logger {
	return &Logger{
		Logger: log.New(w, prefix, log.LstdFlags),
		level:  level,
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.logAt(LevelDebug, "DEBUG", format, v...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, v ...interface{}) {
	l.logAt(LevelInfo, "INFO", format, v...)
}

// Error logs an error message.
func (l *Logger) Error(format string, v ...interface{}) {
	l.logAt(LevelError, "ERROR", format, v...)
}

func (l *Logger) logAt(level Level, tag, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.Printf(fmt.Sprintf("[%s] %s", tag, format), v...)
}
