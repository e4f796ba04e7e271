package filesystem

import (
	"io/fs"
)

// FileSystem is the slice of file operations the scaffolder needs. The walker
// only reads directories; the writer is the only caller that mutates.
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(path string) ([]fs.DirEntry, error)

	// Path operations
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool
	Getwd() (string, error)
}
