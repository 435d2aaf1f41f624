package logger

import (
	"fmt"
	"time"

	"github.com/ConserveLee/mgbuy/internal/constants"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
)

// LogLevel defines the severity of the log
type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelError
	LevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelDebug:
		return "DEBUG"
	default:
		return "INFO"
	}
}

// AppLogger mirrors every message to the UI log pane and to stdout.
type AppLogger struct {
	dataBinding binding.StringList
	limit       int
}

// NewAppLogger creates a new logger instance
func NewAppLogger(data binding.StringList) *AppLogger {
	return &AppLogger{
		dataBinding: data,
		limit:       constants.LogHistory,
	}
}

// Info logs an informational message
func (l *AppLogger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Error logs an error message
func (l *AppLogger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Debug logs a debug message to stdout only (to keep UI clean)
func (l *AppLogger) Debug(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("[%s] [%s] %s\n", LevelDebug, timestamp, msg)
}

// Line is a plain func(string) adapter for callback-style consumers.
func (l *AppLogger) Line(msg string) {
	l.log(LevelInfo, "%s", msg)
}

func (l *AppLogger) log(level LogLevel, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("15:04:05")
	formattedMsg := fmt.Sprintf("[%s] %s: %s", timestamp, level, msg)

	fmt.Println(formattedMsg)

	// Bindings are touched on the UI goroutine; the control loop logs from its own.
	fyne.Do(func() {
		l.dataBinding.Append(formattedMsg)

		list, _ := l.dataBinding.Get()
		if len(list) > l.limit {
			l.dataBinding.Set(list[len(list)-l.limit:])
		}
	})
}
