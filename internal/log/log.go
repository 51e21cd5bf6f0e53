//nolint:revive // Package name kept as "log" for stable internal imports.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	mu        sync.Mutex
	debugMode bool
	stdout    io.Writer = os.Stdout
	stderr    io.Writer = os.Stderr
)

var (
	infoPrefix    = color.New(color.FgBlue).Sprint("[x] ")
	infoH2Prefix  = color.New(color.FgGreen).Sprint("  [x] ")
	infoH3Prefix  = color.New(color.FgYellow).Sprint("    [x] ")
	successPrefix = color.New(color.FgGreen, color.Bold).Sprint("[✓] ")
	warnPrefix    = color.New(color.FgYellow).Sprint("[!] ")
	errorPrefix   = color.New(color.FgRed).Sprint("[x] ")
	debugPrefix   = color.New(color.FgCyan).Sprint("[DEBUG] ")
)

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	mu.Lock()
	debugMode = enabled
	mu.Unlock()
}

// DebugEnabled reports whether debug output is on
func DebugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return debugMode
}

// SetOutput redirects regular and error output. A nil writer keeps the current one.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

func write(w func() io.Writer, prefix, format string, elem ...any) {
	msg := fmt.Sprintf(format, elem...)
	mu.Lock()
	defer mu.Unlock()
	_, _ = fmt.Fprintln(w(), prefix+msg)
}

func out() io.Writer { return stdout }
func errOut() io.Writer { return stderr }

// Debug logs debug messages when debug mode is enabled
func Debug(format string, elem ...any) {
	if DebugEnabled() {
		write(out, debugPrefix, format, elem...)
	}
}

// DebugH2 logs indented debug messages when debug mode is enabled
func DebugH2(format string, elem ...any) {
	if DebugEnabled() {
		write(out, "  "+debugPrefix, format, elem...)
	}
}

// DebugH3 logs more indented debug messages when debug mode is enabled
func DebugH3(format string, elem ...any) {
	if DebugEnabled() {
		write(out, "    "+debugPrefix, format, elem...)
	}
}

// Info logs an informational message
func Info(format string, elem ...any) {
	write(out, infoPrefix, format, elem...)
}

// InfoH2 logs an indented informational message
func InfoH2(format string, elem ...any) {
	write(out, infoH2Prefix, format, elem...)
}

// InfoH3 logs a double-indented informational message
func InfoH3(format string, elem ...any) {
	write(out, infoH3Prefix, format, elem...)
}

// Success logs a completed user action
func Success(format string, elem ...any) {
	write(out, successPrefix, format, elem...)
}

// Warn logs a recoverable problem to stderr
func Warn(format string, elem ...any) {
	write(errOut, warnPrefix, format, elem...)
}

// Error logs an error message to stderr
func Error(format string, elem ...any) {
	write(errOut, errorPrefix, format, elem...)
}

// ErrorH2 logs an indented error message to stderr
func ErrorH2(format string, elem ...any) {
	write(errOut, "  "+errorPrefix, format, elem...)
}

// exit is replaced in tests
var exit = os.Exit

// Fatal logs an error message and exits the program. With more than one
// argument the first is a format string for the rest.
func Fatal(args ...any) {
	for _, line := range strings.Split(strings.TrimSpace(fatalMessage(args...)), "\n") {
		write(errOut, errorPrefix, "%s", line)
	}
	exit(1)
}

func fatalMessage(args ...any) string {
	switch len(args) {
	case 0:
		return "fatal error occurred"
	case 1:
		switch v := args[0].(type) {
		case error:
			return v.Error()
		case string:
			return v
		default:
			return fmt.Sprintf("%v", v)
		}
	}
	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}
	return fmt.Sprint(args...)
}
