package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/hue/internal/palette/domain"
	"nathanbeddoewebdev/hue/internal/util"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when a user cancels an interactive form.
var ErrAborted = errors.New("aborted by user")

// ColorEdit is the result of EditColorForm.
type ColorEdit struct {
	ID  string
	Hex string
}

// EditColorForm asks which color of p to change and its new hex value.
// The returned hex is normalized and valid.
func EditColorForm(p domain.Palette) (*ColorEdit, error) {
	if p.IsEmpty() {
		return nil, domain.ErrEmptyPalette
	}
	accessible := os.Getenv("ACCESSIBLE") != ""

	edit := ColorEdit{ID: p.Colors[0].ID}
	var raw string

	selectField := huh.NewSelect[string]().
		Title("Select color to edit").
		Options(buildColorOptions(p.Colors)...).
		Value(&edit.ID).
		Height(min(len(p.Colors)+2, 12))

	hexField := huh.NewInput().
		Title("New hex value").
		Placeholder("#rrggbb").
		CharLimit(7).
		Value(&raw).
		Validate(func(s string) error {
			return util.ValidateHex(util.NormalizeHex(s))
		})

	if err := runForm(accessible,
		huh.NewGroup(selectField),
		huh.NewGroup(hexField),
	); err != nil {
		return nil, err
	}

	edit.Hex = util.NormalizeHex(raw)
	return &edit, nil
}

// ConfirmDeleteForm asks before removing saved palette index (0-based).
func ConfirmDeleteForm(index int, p domain.Palette) (bool, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	summary := huh.NewNote().
		Title(fmt.Sprintf("Saved palette %d", index+1)).
		Description(strings.Join(p.Hexes(), "  "))

	confirm := false
	confirmField := huh.NewConfirm().
		Title("Delete this palette? This action cannot be undone.").
		Affirmative("Yes, delete").
		Negative("Cancel").
		Value(&confirm)

	if err := runForm(accessible, huh.NewGroup(summary, confirmField)); err != nil {
		return false, err
	}
	return confirm, nil
}

// buildColorOptions builds huh select options keyed by color ID.
func buildColorOptions(colors []domain.Color) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(colors))
	for i, c := range colors {
		options = append(options, huh.NewOption(colorOptionLabel(i, c), c.ID))
	}
	return options
}

// colorOptionLabel formats a color for the selection list.
func colorOptionLabel(i int, c domain.Color) string {
	label := fmt.Sprintf("%d. %s", i+1, c.Hex)
	if c.Locked {
		label += " (locked)"
	}
	return label
}

// runForm runs a huh form and maps user abort to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
