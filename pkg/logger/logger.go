package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the logging level
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

var (
	currentLevel = INFO
	base         *logrus.Logger
)

func init() {
	base = logrus.New()
	base.SetOutput(os.Stdout)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	SetLogLevel(INFO)
}

// Options configures formatter and output of the global logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	Output string // stdout, stderr or a file path
	MaxAge int    // days to keep rotated files, file output only
}

// Configure applies opts to the global logger. LOG_LEVEL still wins over opts.Level.
func Configure(opts Options) error {
	level := opts.Level
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	if level != "" {
		lvl, ok := parseLevel(level)
		if !ok {
			return fmt.Errorf("invalid log level '%s'", level)
		}
		SetLogLevel(lvl)
	}

	switch opts.Format {
	case "", "text":
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	default:
		return fmt.Errorf("invalid log format '%s'", opts.Format)
	}

	switch opts.Output {
	case "", "stdout":
		base.SetOutput(os.Stdout)
	case "stderr":
		base.SetOutput(os.Stderr)
	default:
		// 文件输出，按大小和天数轮转
		base.SetOutput(&lumberjack.Logger{
			Filename: opts.Output,
			MaxAge:   opts.MaxAge,
			MaxSize:  100,
			Compress: true,
		})
	}
	return nil
}

// SetOutput redirects the global logger, mainly for tests.
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	currentLevel = level
	switch level {
	case DEBUG:
		base.SetLevel(logrus.DebugLevel)
	case WARN:
		base.SetLevel(logrus.WarnLevel)
	case ERROR:
		base.SetLevel(logrus.ErrorLevel)
	default:
		base.SetLevel(logrus.InfoLevel)
	}
}

// SetLogLevelFromString sets the global log level from a string
func SetLogLevelFromString(levelStr string) {
	if lvl, ok := parseLevel(levelStr); ok {
		SetLogLevel(lvl)
		return
	}
	SetLogLevel(INFO)
}

func parseLevel(levelStr string) (LogLevel, bool) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return DEBUG, true
	case "INFO":
		return INFO, true
	case "WARN", "WARNING":
		return WARN, true
	case "ERROR":
		return ERROR, true
	default:
		return INFO, false
	}
}

// GetLogLevel returns the current log level
func GetLogLevel() LogLevel {
	return currentLevel
}

// WithField returns a logrus entry carrying one structured field.
func WithField(key string, value interface{}) *logrus.Entry {
	return base.WithField(key, value)
}

// Debug logs a debug message if debug level is enabled
func Debug(format string, v ...interface{}) {
	base.Debugf(format, v...)
}

// Info logs an info message if info level is enabled
func Info(format string, v ...interface{}) {
	base.Infof(format, v...)
}

// Warn logs a warning message if warn level is enabled
func Warn(format string, v ...interface{}) {
	base.Warnf(format, v...)
}

// Error logs an error message if error level is enabled
func Error(format string, v ...interface{}) {
	base.Errorf(format, v...)
}

// Debugf is an alias for Debug for consistency
func Debugf(format string, v ...interface{}) {
	Debug(format, v...)
}

// Infof is an alias for Info for consistency
func Infof(format string, v ...interface{}) {
	Info(format, v...)
}

// Warnf is an alias for Warn for consistency
func Warnf(format string, v ...interface{}) {
	Warn(format, v...)
}

// Errorf is an alias for Error for consistency
func Errorf(format string, v ...interface{}) {
	Error(format, v...)
}
