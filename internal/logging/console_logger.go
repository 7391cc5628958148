package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ConsoleLogger writes progress lines to stdout and warnings, errors and
// verbose diagnostics to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	out     io.Writer
	errOut  io.Writer
	mu      sync.Mutex

	warnStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	verboseStyle lipgloss.Style
}

// NewConsoleLogger creates a ConsoleLogger writing to os.Stdout and os.Stderr.
// If verbose is true, Verbose() calls will produce output.
// Colour is used only when ColorEnabled reports true for stderr.
func NewConsoleLogger(verbose bool, noColor bool) *ConsoleLogger {
	return NewConsoleLoggerWithWriters(verbose, os.Stdout, os.Stderr, ColorEnabled(noColor, os.Stderr))
}

// NewConsoleLoggerWithWriters creates a ConsoleLogger with explicit writers.
// Progress lines go to out, everything else to errOut.
func NewConsoleLoggerWithWriters(verbose bool, out, errOut io.Writer, color bool) *ConsoleLogger {
	errRenderer := lipgloss.NewRenderer(errOut)
	if !color {
		errRenderer.SetColorProfile(termenv.Ascii)
	}

	return &ConsoleLogger{
		verbose:      verbose,
		out:          out,
		errOut:       errOut,
		warnStyle:    errRenderer.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		errorStyle:   errRenderer.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		verboseStyle: errRenderer.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// ColorEnabled reports whether styled output should be written to f.
// It returns false when noColor is set, when NO_COLOR is present in the
// environment, or when f is not a terminal.
func ColorEnabled(noColor bool, f *os.File) bool {
	if noColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.errOut, l.verboseStyle.Render("[VERBOSE]")+" ", format, args)
}

// Info logs a progress line.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write(l.out, "", format, args)
}

// Warn logs an advisory finding.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.write(l.errOut, l.warnStyle.Render("[WARN]")+" ", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.errOut, l.errorStyle.Render("[ERROR]")+" ", format, args)
}

func (l *ConsoleLogger) write(w io.Writer, prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	fmt.Fprintln(w, prefix+msg)
}
