package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"nathanbeddoewebdev/hue/internal/palette/domain"
)

// LoadStatus tags the outcome of reading persisted state.
type LoadStatus int

const (
	// StatusLoaded means the blob was present and decoded.
	StatusLoaded LoadStatus = iota

	// StatusMissing means nothing has been persisted yet.
	StatusMissing

	// StatusMalformed means a blob exists but could not be decoded or
	// failed validation. Err explains why.
	StatusMalformed
)

func (s LoadStatus) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusMissing:
		return "missing"
	case StatusMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// LoadResult is what Store.Load returns. State is only meaningful when
// Status is StatusLoaded. A loaded state may still have an empty current
// palette; callers decide how to fill it.
type LoadResult struct {
	Status LoadStatus
	State  domain.State
	Err    error
}

// Store encodes and decodes the palette state to and from a Slot.
type Store struct {
	slot Slot
}

// NewStore returns a store backed by slot.
func NewStore(slot Slot) *Store {
	return &Store{slot: slot}
}

// Load reads and decodes the persisted state. Read failures and bad data
// both come back as StatusMalformed; Load never returns a Go error.
func (s *Store) Load() LoadResult {
	data, ok, err := s.slot.Read()
	if err != nil {
		return LoadResult{Status: StatusMalformed, Err: fmt.Errorf("storage: read failed: %w", err)}
	}
	if !ok || len(bytes.TrimSpace(data)) == 0 {
		return LoadResult{Status: StatusMissing}
	}

	state, err := Decode(data)
	if err != nil {
		return LoadResult{Status: StatusMalformed, Err: err}
	}
	return LoadResult{Status: StatusLoaded, State: state}
}

// Save encodes state and overwrites the slot. A state whose current palette
// is empty is not written.
func (s *Store) Save(state domain.State) error {
	if state.CurrentPalette.IsEmpty() {
		return nil
	}

	data, err := Encode(state)
	if err != nil {
		return err
	}
	if err := s.slot.Write(data); err != nil {
		return fmt.Errorf("storage: write failed: %w", err)
	}
	return nil
}

// Close releases the underlying slot.
func (s *Store) Close() error {
	return s.slot.Close()
}

// Encode serializes state to the persisted document layout. Nil slices are
// written as empty arrays.
func Encode(state domain.State) ([]byte, error) {
	doc := document{
		CurrentPalette: normalize(state.CurrentPalette),
		SavedPalettes:  make([]domain.Palette, len(state.SavedPalettes)),
	}
	for i, p := range state.SavedPalettes {
		doc.SavedPalettes[i] = normalize(p)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to marshal state: %w", err)
	}
	return data, nil
}

// Decode parses and validates a persisted document.
//
// A missing currentPalette, or one without colors, decodes to an empty
// current palette. A missing or null savedPalettes decodes to an empty
// collection. Type mismatches, colors without an id, hex or locked flag, and
// duplicate ids within a palette are rejected.
func Decode(data []byte) (domain.State, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.State{}, fmt.Errorf("storage: failed to parse state: %w", err)
	}
	if raw == nil {
		return domain.State{}, errors.New("storage: state document is null")
	}

	var state domain.State

	if msg, ok := raw["currentPalette"]; ok && !isNull(msg) {
		p, err := decodePalette(msg, true)
		if err != nil {
			return domain.State{}, fmt.Errorf("storage: currentPalette: %w", err)
		}
		state.CurrentPalette = p
	}

	state.SavedPalettes = []domain.Palette{}
	if msg, ok := raw["savedPalettes"]; ok && !isNull(msg) {
		var list []json.RawMessage
		if err := json.Unmarshal(msg, &list); err != nil {
			return domain.State{}, fmt.Errorf("storage: savedPalettes: %w", err)
		}
		for i, item := range list {
			p, err := decodePalette(item, false)
			if err != nil {
				return domain.State{}, fmt.Errorf("storage: savedPalettes[%d]: %w", i, err)
			}
			state.SavedPalettes = append(state.SavedPalettes, p)
		}
	}

	return state, nil
}

type document struct {
	CurrentPalette domain.Palette   `json:"currentPalette"`
	SavedPalettes  []domain.Palette `json:"savedPalettes"`
}

type wireColor struct {
	ID     *string `json:"id"`
	Hex    *string `json:"hex"`
	Locked *bool   `json:"locked"`
}

type wirePalette struct {
	Colors *[]wireColor `json:"colors"`
}

// decodePalette validates one palette object. When colorsOptional is set a
// missing colors field yields an empty palette instead of an error.
func decodePalette(msg json.RawMessage, colorsOptional bool) (domain.Palette, error) {
	if isNull(msg) {
		return domain.Palette{}, errors.New("palette is null")
	}

	var wp wirePalette
	if err := json.Unmarshal(msg, &wp); err != nil {
		return domain.Palette{}, err
	}
	if wp.Colors == nil {
		if colorsOptional {
			return domain.Palette{Colors: []domain.Color{}}, nil
		}
		return domain.Palette{}, errors.New("missing colors")
	}

	colors := make([]domain.Color, 0, len(*wp.Colors))
	seen := make(map[string]struct{}, len(*wp.Colors))
	for i, wc := range *wp.Colors {
		if wc.ID == nil || *wc.ID == "" {
			return domain.Palette{}, fmt.Errorf("colors[%d]: missing id", i)
		}
		if wc.Hex == nil {
			return domain.Palette{}, fmt.Errorf("colors[%d]: missing hex", i)
		}
		if wc.Locked == nil {
			return domain.Palette{}, fmt.Errorf("colors[%d]: missing locked", i)
		}
		if _, dup := seen[*wc.ID]; dup {
			return domain.Palette{}, fmt.Errorf("colors[%d]: duplicate id %q", i, *wc.ID)
		}
		seen[*wc.ID] = struct{}{}

		colors = append(colors, domain.Color{ID: *wc.ID, Hex: *wc.Hex, Locked: *wc.Locked})
	}
	return domain.Palette{Colors: colors}, nil
}

func normalize(p domain.Palette) domain.Palette {
	if p.Colors == nil {
		return domain.Palette{Colors: []domain.Color{}}
	}
	return p
}

func isNull(msg json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(msg), []byte("null"))
}
