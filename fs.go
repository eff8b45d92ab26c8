package drops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem is the storage the Store reads and writes ledger and settings
// files through.
type FileSystem interface {
	Exists(path string) (bool, error)
	ReadAll(path string) (string, error)
	WriteAll(path, text string) error
}

// OSFileSystem is the FileSystem of the operating system.
type OSFileSystem struct{}

func (OSFileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cannot stat %q: %w", path, err)
	}
	return true, nil
}

func (OSFileSystem) ReadAll(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %q: %w", path, err)
	}
	return string(data), nil
}

// WriteAll writes text to path, creating parent directories as needed.
func (OSFileSystem) WriteAll(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}

// MemoryFileSystem is a FileSystem held in memory.
type MemoryFileSystem struct {
	Files map[string]string
	// WriteErr, when set, is returned by every WriteAll.
	WriteErr error
}

// NewMemoryFileSystem returns an empty MemoryFileSystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{Files: make(map[string]string)}
}

func (m *MemoryFileSystem) Exists(path string) (bool, error) {
	_, ok := m.Files[path]
	return ok, nil
}

func (m *MemoryFileSystem) ReadAll(path string) (string, error) {
	text, ok := m.Files[path]
	if !ok {
		return "", fmt.Errorf("cannot read %q: %w", path, fs.ErrNotExist)
	}
	return text, nil
}

func (m *MemoryFileSystem) WriteAll(path, text string) error {
	if m.WriteErr != nil {
		return fmt.Errorf("cannot write %q: %w", path, m.WriteErr)
	}
	m.Files[path] = text
	return nil
}
