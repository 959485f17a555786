// Package session holds the application's palette state for the lifetime of
// one process. It applies engine operations, persists after every mutation,
// and flushes on teardown.
//
// A Session is not safe for concurrent use. All calls are expected to come
// from a single event loop (one CLI invocation or the bubbletea program).
package session

import (
	"log/slog"

	"nathanbeddoewebdev/hue/internal/palette/domain"
	"nathanbeddoewebdev/hue/internal/palette/engine"
	"nathanbeddoewebdev/hue/internal/palette/storage"
)

// Store is the persistence surface a Session needs.
type Store interface {
	Load() storage.LoadResult
	Save(state domain.State) error
	Close() error
}

// Session owns the current and saved palettes.
type Session struct {
	engine *engine.Engine
	store  Store
	logger *slog.Logger

	state domain.State
}

// New returns a session. A nil logger falls back to slog.Default().
// Call Init before any other method.
func New(eng *engine.Engine, store Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{engine: eng, store: store, logger: logger}
}

// Init loads persisted state, or generates a fresh palette when nothing
// usable was stored, and returns the resulting state.
func (s *Session) Init() domain.State {
	res := s.store.Load()
	switch res.Status {
	case storage.StatusLoaded:
		s.state = res.State
		if s.state.CurrentPalette.IsEmpty() {
			s.logger.Debug("stored state has no current palette, generating one",
				"saved", len(s.state.SavedPalettes))
			s.state = s.engine.Generate(s.state)
		}
	case storage.StatusMalformed:
		s.logger.Warn("ignoring unreadable palette state", "error", res.Err)
		s.state = s.engine.Generate(domain.State{SavedPalettes: []domain.Palette{}})
	default:
		s.logger.Debug("no stored palette state, generating one")
		s.state = s.engine.Generate(domain.State{SavedPalettes: []domain.Palette{}})
	}

	s.persist()
	return s.State()
}

// State returns a copy of the current state.
func (s *Session) State() domain.State {
	return s.state.Clone()
}

// Generate replaces the current palette with a fresh one.
func (s *Session) Generate() domain.State {
	return s.apply("generate", s.engine.Generate(s.state))
}

// Regenerate re-rolls every unlocked color.
func (s *Session) Regenerate() domain.State {
	return s.apply("regenerate", s.engine.Regenerate(s.state))
}

// ToggleLock flips the lock on the color with the given ID.
func (s *Session) ToggleLock(id string) domain.State {
	return s.apply("toggle-lock", s.engine.ToggleLock(s.state, id))
}

// UpdateColor sets the hex of the color with the given ID. hex is not
// validated here.
func (s *Session) UpdateColor(id, hex string) domain.State {
	return s.apply("update-color", s.engine.UpdateColor(s.state, id, hex))
}

// Save appends the current palette to the saved collection.
func (s *Session) Save() domain.State {
	return s.apply("save", s.engine.Save(s.state))
}

// Load makes the saved palette at index current.
func (s *Session) Load(index int) domain.State {
	return s.apply("load", s.engine.Load(s.state, index))
}

// Delete removes the saved palette at index.
func (s *Session) Delete(index int) domain.State {
	return s.apply("delete", s.engine.Delete(s.state, index))
}

// Close flushes the state one last time and releases the store.
func (s *Session) Close() error {
	s.persist()
	return s.store.Close()
}

func (s *Session) apply(op string, next domain.State) domain.State {
	s.state = next
	s.logger.Debug("palette operation applied",
		"op", op,
		"colors", len(s.state.CurrentPalette.Colors),
		"saved", len(s.state.SavedPalettes),
	)
	s.persist()
	return s.State()
}

// persist writes the state, logging and swallowing any failure.
func (s *Session) persist() {
	if s.state.CurrentPalette.IsEmpty() {
		return
	}
	if err := s.store.Save(s.state); err != nil {
		s.logger.Warn("failed to persist palette state", "error", err)
	}
}
