// Package storage persists the palette state as a single blob in one named
// local slot.
//
// The slot lives under ~/.config/hue (or the platform-equivalent path
// returned by os.UserConfigDir) and is backed either by a JSON file
// (the default) or by a row in a local SQLite database.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nathanbeddoewebdev/hue/internal/database"
	"nathanbeddoewebdev/hue/internal/palette/domain"
)

const (
	appDir = "hue"

	// SlotKey is the fixed name of the slot holding the palette state.
	SlotKey = "colorPaletteMaker"

	// BackendFile stores the slot as <dir>/<key>.json.
	BackendFile = "file"

	// BackendSQLite stores the slot as a row in <dir>/hue.db.
	BackendSQLite = "sqlite"
)

// dirOverride, when non-empty, replaces the default data directory.
// Intended for testing. Use SetDir / ResetDir to manage.
var dirOverride string

// SetDir overrides the data directory. Intended for testing.
func SetDir(d string) { dirOverride = d }

// ResetDir clears the directory override. Intended for testing.
func ResetDir() { dirOverride = "" }

// DefaultDir returns the directory holding the persisted slot.
func DefaultDir() (string, error) {
	if dirOverride != "" {
		return dirOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("storage: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir), nil
}

// Backends returns the names of all supported storage backends.
func Backends() []string {
	return []string{BackendFile, BackendSQLite}
}

// Open returns the state slot for the named backend rooted at dir.
// An empty backend name selects the file backend.
func Open(backend, dir string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewFileSlot(dir, SlotKey), nil
	case BackendSQLite:
		return OpenSQLiteSlot(filepath.Join(dir, database.FileName), SlotKey)
	default:
		return nil, fmt.Errorf("storage: %q (valid: %s): %w",
			backend, strings.Join(Backends(), ", "), domain.ErrUnknownBackend)
	}
}
