package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Slot is a single named blob in local storage.
type Slot interface {
	// Read returns the stored blob. The boolean is false when nothing has
	// been written yet.
	Read() ([]byte, bool, error)

	// Write replaces the stored blob entirely.
	Write(data []byte) error

	// Close releases any resources held by the slot.
	Close() error
}

// FileSlot stores the blob as a JSON file, replacing it atomically on write.
type FileSlot struct {
	dir string
	key string
}

// NewFileSlot returns a slot stored at dir/<key>.json.
func NewFileSlot(dir, key string) *FileSlot {
	return &FileSlot{dir: dir, key: key}
}

// Path returns the file backing the slot.
func (s *FileSlot) Path() string {
	return filepath.Join(s.dir, sanitizeKey(s.key)+".json")
}

// Read returns the file contents, or false if the file does not exist.
func (s *FileSlot) Read() ([]byte, bool, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Write stores data via a temp file and rename so readers never observe a
// partially written blob.
func (s *FileSlot) Write(data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, sanitizeKey(s.key)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, s.Path())
}

// Close is a no-op for file slots.
func (s *FileSlot) Close() error { return nil }

// MemorySlot keeps the blob in memory. Used by tests and throwaway sessions.
type MemorySlot struct {
	data    []byte
	written bool

	// WriteErr, when set, is returned by every Write.
	WriteErr error

	// Writes counts successful writes.
	Writes int
}

// NewMemorySlot returns a slot pre-populated with data. Passing nil yields
// an empty slot.
func NewMemorySlot(data []byte) *MemorySlot {
	if data == nil {
		return &MemorySlot{}
	}
	return &MemorySlot{data: append([]byte(nil), data...), written: true}
}

func (s *MemorySlot) Read() ([]byte, bool, error) {
	if !s.written {
		return nil, false, nil
	}
	return append([]byte(nil), s.data...), true, nil
}

func (s *MemorySlot) Write(data []byte) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.data = append([]byte(nil), data...)
	s.written = true
	s.Writes++
	return nil
}

func (s *MemorySlot) Close() error { return nil }

// Bytes returns the last written blob.
func (s *MemorySlot) Bytes() []byte {
	return append([]byte(nil), s.data...)
}

func sanitizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "state"
	}

	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		ch := key[i]
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}
