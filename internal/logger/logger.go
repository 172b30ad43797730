// Package logger provides leveled logging with verbosity control.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Level represents logging verbosity.
type Level int

// Log levels.
const (
	LevelInfo Level = iota
	LevelDebug
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// Logger provides leveled logging with verbosity control.
type Logger struct {
	out     io.Writer
	errOut  io.Writer
	level   Level
	noColor bool
}

// Options configures the logger.
type Options struct {
	Verbose bool
	NoColor bool
}

// New creates a new logger with options.
func New(opts Options) *Logger {
	level := LevelInfo
	if opts.Verbose {
		level = LevelDebug
	}
	return &Logger{
		out:     os.Stdout,
		errOut:  os.Stderr,
		level:   level,
		noColor: opts.NoColor,
	}
}

// SetOutput redirects all log output to w. The interactive UI owns the
// terminal while it runs, so logs go to a file instead of stdout/stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
	l.errOut = w
}

// Info logs informational messages (always shown).
func (l *Logger) Info(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "%s\n", fmt.Sprintf(format, args...))
}

// Debug logs debug messages (only in verbose mode).
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LevelDebug {
		msg := l.colorize(colorGray, fmt.Sprintf(format, args...))
		fmt.Fprintf(l.out, "%s\n", msg)
	}
}

// Warn logs warning messages.
func (l *Logger) Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "%s\n", l.colorize(colorYellow, "! "+msg))
}

// Error logs error messages to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.errOut, "%s %s\n", l.colorize(colorRed, "ERROR"), msg)
}

// HTTPRequest logs an HTTP request (debug level).
func (l *Logger) HTTPRequest(method, url string) {
	if l.level < LevelDebug {
		return
	}
	label := l.colorize(colorCyan, "REQUEST")
	methodColored := l.colorize(colorBold, method)
	fmt.Fprintf(l.out, "%s %s %s\n", label, methodColored, url)
}

// HTTPResponse logs an HTTP response (debug level).
func (l *Logger) HTTPResponse(method, url string, statusCode int) {
	if l.level < LevelDebug {
		return
	}
	label := l.colorize(colorCyan, "RESPONSE")
	methodColored := l.colorize(colorBold, method)
	statusColored := l.colorizeStatus(statusCode)
	fmt.Fprintf(l.out, "%s %s %s -> %s\n", label, methodColored, url, statusColored)
}

func (l *Logger) colorize(color, text string) string {
	if l.noColor {
		return text
	}
	return color + text + colorReset
}

func (l *Logger) colorizeStatus(statusCode int) string {
	status := fmt.Sprintf("%d", statusCode)
	switch {
	case statusCode >= 200 && statusCode < 300:
		return l.colorize(colorGreen, status)
	case statusCode >= 300 && statusCode < 400:
		return l.colorize(colorYellow, status)
	default:
		return l.colorize(colorRed, status)
	}
}

// MaskSecret masks sensitive data, showing only first and last 2 chars.
func MaskSecret(secret string) string {
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:2] + strings.Repeat("*", len(secret)-4) + secret[len(secret)-2:]
}
