// Package logging provides concrete implementations of the xsdver.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes progress to stdout and diagnostics to stderr, styled with lipgloss
//   - NullLogger: Discards all messages
//   - BufferLogger: Records messages in memory (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
