package xsdver

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure classes of a validation run.
// Callers distinguish them with errors.Is().
//
// Example usage:
//
//	report, err := c.Run(ctx, path, version)
//	if errors.Is(err, xsdver.ErrVersionMismatch) {
//	    // two version tokens disagree
//	}
var (
	// ErrSchemaNotFound indicates the schema path does not reference an existing regular file.
	ErrSchemaNotFound = errors.New("schema file not found")

	// ErrMalformedInput indicates an expected pattern or attribute is absent
	// from the schema file or shaped unexpectedly.
	ErrMalformedInput = errors.New("malformed schema input")

	// ErrVersionMismatch indicates two version tokens that must agree do not,
	// or a version token fails its required shape.
	ErrVersionMismatch = errors.New("version mismatch")

	// ErrInvalidConfig indicates the project configuration file is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// usageErrorPatterns are fragments of the error strings cobra and pflag
// produce for command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"invalid argument",
	"flag needs an argument",
	"required flag",
	"usage error",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrSchemaNotFound):
		return ExitSchemaNotFound
	case errors.Is(err, ErrMalformedInput):
		return ExitMalformedInput
	case errors.Is(err, ErrVersionMismatch):
		return ExitVersionMismatch
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
