package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fadedpez/onexrace/internal/types"
	"github.com/sirupsen/logrus"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var logrusLevels = map[Level]logrus.Level{
	DEBUG: logrus.DebugLevel,
	INFO:  logrus.InfoLevel,
	WARN:  logrus.WarnLevel,
	ERROR: logrus.ErrorLevel,
}

// String returns the level name
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a level name such as "debug" or "WARN" to a Level
func ParseLevel(s string) (Level, error) {
	for level, name := range levelNames {
		if strings.EqualFold(name, s) {
			return level, nil
		}
	}
	if strings.EqualFold(s, "warning") {
		return WARN, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Options configures a Logger
type Options struct {
	Level  Level
	JSON   bool
	Output io.Writer
}

// Logger is a levelled printf-style logger on top of logrus
type Logger struct {
	entry *logrus.Entry
	level Level
}

// NewLogger creates a new text logger writing to stdout
func NewLogger(level Level) *Logger {
	return New(Options{Level: level})
}

// New creates a logger from options
func New(opts Options) *Logger {
	base := logrus.New()
	if opts.Output != nil {
		base.SetOutput(opts.Output)
	} else {
		base.SetOutput(os.Stdout)
	}
	if opts.JSON {
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	}
	base.SetLevel(logrusLevels[opts.Level])

	return &Logger{
		entry: logrus.NewEntry(base),
		level: opts.Level,
	}
}

// WithField returns a child logger that adds key=value to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		entry: l.entry.WithField(key, value),
		level: l.level,
	}
}

// Level returns the minimum level this logger emits
func (l *Logger) Level() Level {
	return l.level
}

// caller reports the file:line skip frames above itself
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func (l *Logger) log(level Level, format string, v ...interface{}) {
	if l.level > level {
		return
	}
	l.entry.WithField("caller", caller(3)).Log(logrusLevels[level], fmt.Sprintf(format, v...))
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(DEBUG, format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.log(INFO, format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(WARN, format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.log(ERROR, format, v...)
}

// LogError logs a GameError with its code and cause as structured fields
func (l *Logger) LogError(err error) {
	if err == nil || l.level > ERROR {
		return
	}

	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		fields := logrus.Fields{
			"caller": caller(2),
			"code":   string(gameErr.Code),
		}
		if gameErr.Err != nil {
			fields["cause"] = gameErr.Err.Error()
		}
		l.entry.WithFields(fields).Error(gameErr.Message)
		return
	}

	l.entry.WithField("caller", caller(2)).Errorf("Unexpected error: %v", err)
}

// Default logger instance
var Default = NewLogger(INFO)

// Discard returns a logger that drops everything, for tests
func Discard() *Logger {
	return New(Options{Level: ERROR, Output: io.Discard})
}
