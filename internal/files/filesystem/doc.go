// Package filesystem provides the file access abstraction used to read schema files.
//
// Implementations are backed by github.com/spf13/afero:
//   - NewOSFileSystem: Production implementation using the OS filesystem
//   - NewMemoryFileSystem: In-memory implementation for testing
//
// Reads are scoped: ReadFile opens, reads fully and closes the file on every
// path, including errors.
package filesystem
