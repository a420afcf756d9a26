package terminal

import (
	"fmt"

	"github.com/fatih/color"
)

// LogLevel is the level of a terminal log
type LogLevel string

// set of supported log levels
const (
	LogLevelInfo    LogLevel = "info"
	LogLevelSuccess LogLevel = "success"
	LogLevelWarn    LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

// Log is a terminal log
type Log struct {
	Level   LogLevel
	Message string
}

// NewTextLog creates a new log with a text message
func NewTextLog(format string, args ...interface{}) Log {
	return Log{LogLevelInfo, fmt.Sprintf(format, args...)}
}

// NewSuccessLog creates a new log confirming a completed operation
func NewSuccessLog(format string, args ...interface{}) Log {
	return Log{LogLevelSuccess, fmt.Sprintf(format, args...)}
}

// NewWarningLog creates a new warning log
func NewWarningLog(format string, args ...interface{}) Log {
	return Log{LogLevelWarn, fmt.Sprintf(format, args...)}
}

// NewErrorLog creates a new error log
func NewErrorLog(err error) Log {
	return Log{LogLevelError, err.Error()}
}

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func (l Log) text() string {
	switch l.Level {
	case LogLevelSuccess:
		return successColor.Sprint(l.Message)
	case LogLevelWarn:
		return warnColor.Sprintf("warning: %s", l.Message)
	case LogLevelError:
		return errorColor.Sprintf("error: %s", l.Message)
	default:
		return l.Message
	}
}
