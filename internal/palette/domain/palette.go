// Package domain defines the palette data model shared by the engine,
// storage, export and presentation layers.
package domain

// Color is a single swatch. ID is its identity within a palette; Hex and
// Locked change over its lifetime.
type Color struct {
	ID     string `json:"id"`
	Hex    string `json:"hex"`
	Locked bool   `json:"locked"`
}

// Palette is an ordered set of colors. Order is display order, left to
// right, and drives hue rotation when the palette is generated.
type Palette struct {
	Colors []Color `json:"colors"`
}

// State is everything the application persists: the palette being edited
// and the collection of saved palettes.
type State struct {
	CurrentPalette Palette   `json:"currentPalette"`
	SavedPalettes  []Palette `json:"savedPalettes"`
}

// Clone returns a palette that shares no memory with p.
func (p Palette) Clone() Palette {
	if p.Colors == nil {
		return Palette{}
	}
	colors := make([]Color, len(p.Colors))
	copy(colors, p.Colors)
	return Palette{Colors: colors}
}

// Hexes returns the hex value of every color in display order.
func (p Palette) Hexes() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.Hex
	}
	return out
}

// IndexOf returns the position of the color with the given ID, or -1.
func (p Palette) IndexOf(id string) int {
	for i, c := range p.Colors {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether the palette has no colors.
func (p Palette) IsEmpty() bool {
	return len(p.Colors) == 0
}

// Clone returns a state that shares no memory with s.
func (s State) Clone() State {
	var saved []Palette
	if s.SavedPalettes != nil {
		saved = make([]Palette, len(s.SavedPalettes))
		for i, p := range s.SavedPalettes {
			saved[i] = p.Clone()
		}
	}
	return State{
		CurrentPalette: s.CurrentPalette.Clone(),
		SavedPalettes:  saved,
	}
}
