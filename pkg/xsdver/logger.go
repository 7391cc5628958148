package xsdver

// Logger provides a pluggable logging interface for xsdver operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs progress lines: extracted values and the final verdict.
	// Always logged regardless of verbose mode.
	Info(format string, args ...interface{})

	// Warn logs advisory findings that do not fail the run.
	Warn(format string, args ...interface{})

	// Error logs error messages.
	// Always logged regardless of verbose mode.
	Error(format string, args ...interface{})
}
