package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init initializes the global logger with default settings
func Init() {
	// Check if LOG_LEVEL environment variable is set
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		SetLogLevelFromString(logLevel)
	} else {
		// Default to INFO level
		SetLogLevel(INFO)
	}
}

// InitWithLevel initializes the global logger with a specific level
func InitWithLevel(level LogLevel) {
	SetLogLevel(level)
}

// InitWithString initializes the global logger with a string level
func InitWithString(levelStr string) {
	SetLogLevelFromString(levelStr)
}

// IsDebugEnabled returns true if debug logging is enabled
func IsDebugEnabled() bool {
	return base.IsLevelEnabled(logrus.DebugLevel)
}

// IsInfoEnabled returns true if info logging is enabled
func IsInfoEnabled() bool {
	return base.IsLevelEnabled(logrus.InfoLevel)
}

// IsWarnEnabled returns true if warn logging is enabled
func IsWarnEnabled() bool {
	return base.IsLevelEnabled(logrus.WarnLevel)
}

// IsErrorEnabled returns true if error logging is enabled
func IsErrorEnabled() bool {
	return base.IsLevelEnabled(logrus.ErrorLevel)
}
