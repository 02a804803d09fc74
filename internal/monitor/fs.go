package monitor

import (
	"io"
	"os"
)

// FileSystem is an interface for file system operations to allow mocking
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
}

// OSFileSystem implements FileSystem using os package
type OSFileSystem struct{}

// Stat calls os.Stat
func (OSFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Open calls os.Open
func (OSFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}
