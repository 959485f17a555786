// Package engine implements the palette state transitions: generating,
// regenerating around locks, editing, and moving palettes between the
// current slot and the saved collection.
//
// Every operation takes a domain.State and returns a new one. Inputs are
// never modified, so callers may keep old states around safely.
package engine

import (
	"math/rand/v2"

	"nathanbeddoewebdev/hue/internal/colormath"
	"nathanbeddoewebdev/hue/internal/palette/domain"

	"github.com/google/uuid"
)

// DefaultCount is the number of colors in a freshly generated palette.
const DefaultCount = 5

// Engine applies palette operations using an injectable random source and
// ID minter.
type Engine struct {
	rng   colormath.Rand
	newID func() string
	count int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for color generation.
func WithRand(r colormath.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithIDFunc sets the function that mints color IDs.
func WithIDFunc(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// New returns an Engine. Without options it uses the auto-seeded
// math/rand/v2 source and random UUIDs.
func New(opts ...Option) *Engine {
	e := &Engine{
		rng:   globalRand{},
		newID: uuid.NewString,
		count: DefaultCount,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate replaces the current palette with a fresh harmonious one.
// Locks are not carried over; saved palettes are untouched.
func (e *Engine) Generate(s domain.State) domain.State {
	hexes := colormath.HarmoniousPalette(e.rng, colormath.RandomColor(e.rng), e.count)
	colors := make([]domain.Color, len(hexes))
	for i, hex := range hexes {
		colors[i] = domain.Color{ID: e.newID(), Hex: hex, Locked: false}
	}

	next := s.Clone()
	next.CurrentPalette = domain.Palette{Colors: colors}
	return next
}

// Regenerate gives every unlocked color a new random hex. Locked colors,
// IDs and palette length are preserved.
func (e *Engine) Regenerate(s domain.State) domain.State {
	next := s.Clone()
	for i, c := range next.CurrentPalette.Colors {
		if c.Locked {
			continue
		}
		next.CurrentPalette.Colors[i] = domain.Color{
			ID:     c.ID,
			Hex:    colormath.RandomColor(e.rng),
			Locked: false,
		}
	}
	return next
}

// ToggleLock flips the lock on the color with the given ID. Unknown IDs
// leave the state unchanged.
func (e *Engine) ToggleLock(s domain.State, id string) domain.State {
	next := s.Clone()
	if i := next.CurrentPalette.IndexOf(id); i >= 0 {
		next.CurrentPalette.Colors[i].Locked = !next.CurrentPalette.Colors[i].Locked
	}
	return next
}

// UpdateColor sets the hex of the color with the given ID. The value is
// stored verbatim; validating it is the caller's job. Unknown IDs leave the
// state unchanged.
func (e *Engine) UpdateColor(s domain.State, id, hex string) domain.State {
	next := s.Clone()
	if i := next.CurrentPalette.IndexOf(id); i >= 0 {
		next.CurrentPalette.Colors[i].Hex = hex
	}
	return next
}

// Save appends a copy of the current palette to the saved collection.
// Duplicates are allowed.
func (e *Engine) Save(s domain.State) domain.State {
	next := s.Clone()
	next.SavedPalettes = append(next.SavedPalettes, next.CurrentPalette.Clone())
	return next
}

// Load makes a copy of the saved palette at index the current palette.
// Out-of-range indexes leave the state unchanged.
func (e *Engine) Load(s domain.State, index int) domain.State {
	next := s.Clone()
	if index < 0 || index >= len(next.SavedPalettes) {
		return next
	}
	next.CurrentPalette = next.SavedPalettes[index].Clone()
	return next
}

// Delete removes the saved palette at index. Out-of-range indexes leave the
// state unchanged; the current palette is never affected.
func (e *Engine) Delete(s domain.State, index int) domain.State {
	next := s.Clone()
	if index < 0 || index >= len(next.SavedPalettes) {
		return next
	}
	next.SavedPalettes = append(next.SavedPalettes[:index], next.SavedPalettes[index+1:]...)
	return next
}

// IsPristine reports whether no color in p is locked. It is informational
// only; nothing in the engine branches on it.
func IsPristine(p domain.Palette) bool {
	for _, c := range p.Colors {
		if c.Locked {
			return false
		}
	}
	return true
}

// globalRand adapts the math/rand/v2 top-level functions to colormath.Rand.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }
