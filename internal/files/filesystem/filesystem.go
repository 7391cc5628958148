package filesystem

import (
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileSystemProvider reads files for the checker.
type FileSystemProvider interface {
	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// ReadFile reads the whole file at the given path
	ReadFile(path string) ([]byte, error)
}

// AferoFileSystem implements FileSystemProvider on top of an afero.Fs.
type AferoFileSystem struct {
	fs afero.Fs
}

// NewOSFileSystem returns a provider backed by the OS filesystem.
func NewOSFileSystem() *AferoFileSystem {
	return NewAferoFileSystem(afero.NewOsFs())
}

// NewMemoryFileSystem returns a provider backed by an empty in-memory filesystem.
func NewMemoryFileSystem() *AferoFileSystem {
	return NewAferoFileSystem(afero.NewMemMapFs())
}

// NewAferoFileSystem wraps an existing afero.Fs.
func NewAferoFileSystem(fs afero.Fs) *AferoFileSystem {
	return &AferoFileSystem{fs: fs}
}

// Stat returns file information for the given path.
func (a *AferoFileSystem) Stat(path string) (FileInfo, error) {
	return a.fs.Stat(path)
}

// ReadFile reads the whole file at the given path.
func (a *AferoFileSystem) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

// WriteFile creates or truncates path and writes data to it, creating
// parent directories as needed.
func (a *AferoFileSystem) WriteFile(path string, data []byte) error {
	if dir := parentDir(path); dir != "" {
		if err := a.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return afero.WriteFile(a.fs, path, data, 0o644)
}

// Mkdir creates a directory and any missing parents.
func (a *AferoFileSystem) Mkdir(path string) error {
	return a.fs.MkdirAll(path, 0o755)
}

// IsRegularFile reports whether path exists and is a regular file.
// A missing path is reported as (false, nil); other stat failures are returned.
func IsRegularFile(provider FileSystemProvider, path string) (bool, error) {
	info, err := provider.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

func parentDir(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if os.IsPathSeparator(path[i]) {
			return path[:i]
		}
	}
	return ""
}
