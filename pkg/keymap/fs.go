package keymap

import (
	"os"
	"path/filepath"
)

// DirEntry is one name returned by FileSystem.ListDir.
type DirEntry struct {
	Name  string
	IsDir bool
}

// FileSystem is the read-only file access a Scanner needs.
type FileSystem interface {
	// ListDir returns the entries of a directory in listing order.
	ListDir(path string) ([]DirEntry, error)
	// Exists reports whether path exists.
	Exists(path string) bool
	// ReadText returns the contents of a file.
	ReadText(path string) (string, error)
}

// OSFileSystem reads from the local disk.
type OSFileSystem struct{}

// ListDir lists path with os.ReadDir. Symbolic links are followed, so a link to a
// package directory counts as a directory.
func (OSFileSystem) ListDir(path string) ([]DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	result := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(path, e.Name())); err == nil {
				isDir = info.IsDir()
			}
		}
		result = append(result, DirEntry{Name: e.Name(), IsDir: isDir})
	}
	return result, nil
}

// Exists reports whether path can be stat'ed.
func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadText reads the whole file at path.
func (OSFileSystem) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
