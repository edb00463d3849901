package pterm

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

// Logger provides leveled console logging with PTerm, degrading to plain
// prefixed lines when styling is disabled (CI, piped output).
type Logger struct {
	debugEnabled bool
	disabled     bool
}

// NewLogger creates a new logger instance. Debug output is gated on
// FLEXSCAN_DEBUG=true.
func NewLogger(disabled bool) *Logger {
	if disabled {
		pterm.DisableColor()
		pterm.DisableStyling()
	}
	debugEnabled := os.Getenv("FLEXSCAN_DEBUG") == "true"
	if debugEnabled {
		pterm.EnableDebugMessages()
	}
	return &Logger{
		debugEnabled: debugEnabled,
		disabled:     disabled,
	}
}

// Debug logs a debug message (only if FLEXSCAN_DEBUG=true)
func (l *Logger) Debug(message string, args ...interface{}) {
	if !l.debugEnabled {
		return
	}

	formatted := l.formatMessage(message, args...)

	if l.disabled {
		fmt.Printf("[DEBUG] %s\n", formatted)
	} else {
		pterm.Debug.Println(formatted)
	}
}

// Info logs an informational message
func (l *Logger) Info(message string, args ...interface{}) {
	formatted := l.formatMessage(message, args...)

	if l.disabled {
		fmt.Printf("[INFO] %s\n", formatted)
	} else {
		pterm.Info.Println(formatted)
	}
}

// Success logs a success message
func (l *Logger) Success(message string, args ...interface{}) {
	formatted := l.formatMessage(message, args...)

	if l.disabled {
		fmt.Printf("[SUCCESS] ✓ %s\n", formatted)
	} else {
		pterm.Success.Println(formatted)
	}
}

// Warning logs a warning message
func (l *Logger) Warning(message string, args ...interface{}) {
	formatted := l.formatMessage(message, args...)

	if l.disabled {
		fmt.Printf("[WARNING] %s\n", formatted)
	} else {
		pterm.Warning.Println(formatted)
	}
}

// Error logs an error message
func (l *Logger) Error(message string, args ...interface{}) {
	formatted := l.formatMessage(message, args...)

	if l.disabled {
		fmt.Fprintf(os.Stderr, "[ERROR] %s\n", formatted)
	} else {
		pterm.Error.Println(formatted)
	}
}

func (l *Logger) formatMessage(message string, args ...interface{}) string {
	if len(args) > 0 {
		return fmt.Sprintf(message, args...)
	}
	return message
}
