package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// DiagnosticLevel represents the level of diagnostic output
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticWarn
	DiagnosticInfo
	DiagnosticVerbose
	DiagnosticDebug
)

// DiagnosticSystem provides structured, user-friendly output
type DiagnosticSystem struct {
	level     DiagnosticLevel
	useColors bool
	showTime  bool
	output    io.Writer
	errorOut  io.Writer
}

// NewDiagnosticSystem creates a new diagnostic system
func NewDiagnosticSystem(level DiagnosticLevel) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:     level,
		useColors: shouldUseColors(),
		showTime:  level >= DiagnosticVerbose,
		output:    os.Stdout,
		errorOut:  os.Stderr,
	}
}

// NewQuietDiagnostics creates a diagnostic system that only shows errors
func NewQuietDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticError)
}

// NewVerboseDiagnostics creates a diagnostic system with full output
func NewVerboseDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticVerbose)
}

// SetOutput redirects both streams, used by tests to capture output
func (d *DiagnosticSystem) SetOutput(w io.Writer) {
	d.output = w
	d.errorOut = w
}

// Color constants for terminal output
const (
	ColorReset   = "\033[0m"
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorGray    = "\033[90m"
)

// Error outputs error messages (always shown unless silent)
func (d *DiagnosticSystem) Error(format string, args ...interface{}) {
	if d.level >= DiagnosticError {
		d.writeMessage(d.errorOut, "ERROR", ColorRed, format, args...)
	}
}

// Warn outputs warning messages
func (d *DiagnosticSystem) Warn(format string, args ...interface{}) {
	if d.level >= DiagnosticWarn {
		d.writeMessage(d.output, "WARN", ColorYellow, format, args...)
	}
}

// Info outputs informational messages
func (d *DiagnosticSystem) Info(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage(d.output, "INFO", ColorBlue, format, args...)
	}
}

// Success outputs success messages with emphasis
func (d *DiagnosticSystem) Success(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage(d.output, "SUCCESS", ColorGreen, format, args...)
	}
}

// Verbose outputs detailed messages (verbose mode only)
func (d *DiagnosticSystem) Verbose(format string, args ...interface{}) {
	if d.level >= DiagnosticVerbose {
		d.writeMessage(d.output, "VERBOSE", ColorGray, format, args...)
	}
}

// Debug outputs debug messages (highest verbosity)
func (d *DiagnosticSystem) Debug(format string, args ...interface{}) {
	if d.level >= DiagnosticDebug {
		d.writeMessage(d.output, "DEBUG", ColorMagenta, format, args...)
	}
}

// Section creates a prominent section header
func (d *DiagnosticSystem) Section(title string) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "%s\n", title)
	}
}

// FileItem outputs a per-file progress line with a checkmark
func (d *DiagnosticSystem) FileItem(message string) {
	if d.level >= DiagnosticInfo {
		green := color.New(color.FgGreen)
		green.Fprint(d.output, "✓ ")
		fmt.Fprintf(d.output, "%s\n", message)
	}
}

// FileProblem outputs a per-file problem line with a cross mark
func (d *DiagnosticSystem) FileProblem(message string) {
	if d.level >= DiagnosticInfo {
		red := color.New(color.FgRed)
		red.Fprint(d.output, "✗ ")
		fmt.Fprintf(d.output, "%s\n", message)
	}
}

// Summary outputs a final summary with statistics
func (d *DiagnosticSystem) Summary(title string, stats map[string]interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "\n%s\n", title)

		for key, value := range stats {
			fmt.Fprintf(d.output, "   %s: %v\n", key, value)
		}
		fmt.Fprintln(d.output)
	}
}

// writeMessage is the internal message writing function
func (d *DiagnosticSystem) writeMessage(writer io.Writer, level, levelColor, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	var output strings.Builder

	if d.showTime {
		output.WriteString(time.Now().Format("15:04:05 "))
	}

	if d.useColors {
		output.WriteString(fmt.Sprintf("%s[%s]%s ", levelColor, level, ColorReset))
	} else {
		output.WriteString(fmt.Sprintf("[%s] ", level))
	}

	output.WriteString(message)
	output.WriteString("\n")

	fmt.Fprint(writer, output.String())
}

// shouldUseColors determines whether colored output is appropriate
func shouldUseColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if fileInfo, err := os.Stdout.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
	return false
}
