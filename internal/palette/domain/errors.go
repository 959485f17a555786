package domain

import "errors"

// Sentinel errors used at the CLI/TUI boundary. The engine itself never
// returns errors; its no-op cases are silent.
//
//	return fmt.Errorf("saved palette %d: %w", n, domain.ErrIndexOutOfRange)
var (
	// ErrInvalidHex indicates input that is not '#' followed by six hex digits.
	ErrInvalidHex = errors.New("invalid hex color")

	// ErrColorNotFound indicates no color in the current palette matches
	// the given ID or position.
	ErrColorNotFound = errors.New("color not found")

	// ErrIndexOutOfRange indicates a saved-palette index outside the collection.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyPalette indicates an operation that needs at least one color.
	ErrEmptyPalette = errors.New("palette is empty")

	// ErrUnknownBackend indicates an unsupported storage backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrUnknownFormat indicates an unsupported export format name.
	ErrUnknownFormat = errors.New("unknown export format")
)
