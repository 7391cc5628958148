package schema

import (
	"encoding/xml"
	"fmt"

	"github.com/vvka-141/xsdver/pkg/xsdver"
)

// Error represents a structured extraction error with context and a hint.
// It wraps xsdver.ErrMalformedInput.
type Error struct {
	FilePath string // Path to the schema file
	Line     int    // Line number (0 if unknown)
	Field    string // Token or attribute name (e.g., "id", "targetNamespace")
	Message  string // Primary error message
	Hint     string // Actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *Error) Error() string {
	location := e.FilePath
	if location == "" {
		location = "schema"
	}
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", location, e.Line)
	}

	msg := fmt.Sprintf("malformed schema %s: %s", location, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("malformed schema %s [field: %s]: %s", location, e.Field, e.Message)
	}

	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}

	return msg
}

// Unwrap lets errors.Is match xsdver.ErrMalformedInput.
func (e *Error) Unwrap() error {
	return xsdver.ErrMalformedInput
}

// wrapXMLError converts xml package errors to *Error with line numbers.
func wrapXMLError(err error, filePath string) error {
	if syntaxErr, ok := err.(*xml.SyntaxError); ok {
		return &Error{
			FilePath: filePath,
			Line:     syntaxErr.Line,
			Message:  syntaxErr.Msg,
			Hint:     "Check that all XML tags are properly closed and attributes are quoted.",
		}
	}

	return &Error{
		FilePath: filePath,
		Message:  err.Error(),
		Hint:     "Verify the file is a well-formed XSD document.",
	}
}
