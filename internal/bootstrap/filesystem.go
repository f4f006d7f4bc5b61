package bootstrap

import (
	"io/fs"
	"os"
	"os/exec"
)

// FileSystem exposes the filesystem operations required by the bootstrap service.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	MkdirAll(path string, permissions fs.FileMode) error
	WriteFile(path string, data []byte, permissions fs.FileMode) error
}

// OSFileSystem implements FileSystem using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// MkdirAll ensures a directory hierarchy exists with the provided permissions.
func (OSFileSystem) MkdirAll(path string, permissions fs.FileMode) error {
	return os.MkdirAll(path, permissions)
}

// WriteFile writes data to a file with the supplied permissions.
func (OSFileSystem) WriteFile(path string, data []byte, permissions fs.FileMode) error {
	return os.WriteFile(path, data, permissions)
}

// ExecutableResolver locates executables on the process search path.
type ExecutableResolver interface {
	Resolve(executableName string) (string, error)
}

// OSExecutableResolver implements ExecutableResolver using exec.LookPath.
type OSExecutableResolver struct{}

// Resolve returns the absolute path of the named executable.
func (OSExecutableResolver) Resolve(executableName string) (string, error) {
	return exec.LookPath(executableName)
}
