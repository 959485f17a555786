package tui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"nathanbeddoewebdev/hue/internal/palette/engine"
	"nathanbeddoewebdev/hue/internal/palette/services/session"
	"nathanbeddoewebdev/hue/internal/palette/storage"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T, copyFn func(string) error, logs io.Writer) (paletteAppModel, *storage.MemorySlot) {
	t.Helper()
	if logs == nil {
		logs = io.Discard
	}
	n := 0
	eng := engine.New(
		engine.WithRand(rand.New(rand.NewPCG(1, 2))),
		engine.WithIDFunc(func() string {
			n++
			return fmt.Sprintf("c%d", n)
		}),
	)
	slot := storage.NewMemorySlot(nil)
	logger := slog.New(slog.NewTextHandler(logs, nil))
	s := session.New(eng, storage.NewStore(slot), logger)
	s.Init()
	return newPaletteAppModel(s, "memory", logger, copyFn), slot
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m paletteAppModel, msg tea.Msg) (paletteAppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(paletteAppModel), cmd
}

func TestPaletteApp_LockThenRegenerateKeepsLockedColor(t *testing.T) {
	m, _ := newTestApp(t, nil, nil)
	first := m.state.CurrentPalette.Colors[0]

	m, _ = send(t, m, keyRunes("l"))
	if !m.state.CurrentPalette.Colors[0].Locked {
		t.Fatal("expected first color to be locked")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	got := m.state.CurrentPalette.Colors[0]
	if got.Hex != first.Hex || got.ID != first.ID {
		t.Errorf("locked color changed: %+v -> %+v", first, got)
	}
	if m.status == "" || m.isError {
		t.Errorf("expected success status, got %q (error=%v)", m.status, m.isError)
	}
}

func TestPaletteApp_ArrowsAndDigitsMoveCursor(t *testing.T) {
	m, _ := newTestApp(t, nil, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
	m, _ = send(t, m, keyRunes("5"))
	if m.cursor != 4 {
		t.Errorf("cursor = %d, want 4", m.cursor)
	}
	m, _ = send(t, m, keyRunes("9"))
	if m.cursor != 4 {
		t.Errorf("out-of-range digit moved cursor to %d", m.cursor)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.cursor != 4 {
		t.Errorf("cursor moved past the last color: %d", m.cursor)
	}
}

func TestPaletteApp_EditColor(t *testing.T) {
	m, slot := newTestApp(t, nil, nil)

	m, _ = send(t, m, keyRunes("e"))
	if !m.editing {
		t.Fatal("expected edit mode")
	}
	m.editor.SetValue("ABCDEF")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.editing {
		t.Error("expected edit mode to end")
	}
	if got := m.state.CurrentPalette.Colors[0].Hex; got != "#abcdef" {
		t.Errorf("hex = %q, want #abcdef", got)
	}
	persisted, err := storage.Decode(slot.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := persisted.CurrentPalette.Colors[0].Hex; got != "#abcdef" {
		t.Errorf("persisted hex = %q, want #abcdef", got)
	}
}

func TestPaletteApp_EditRejectsInvalidHex(t *testing.T) {
	m, _ := newTestApp(t, nil, nil)
	before := m.state.CurrentPalette.Colors[0].Hex

	m, _ = send(t, m, keyRunes("e"))
	m.editor.SetValue("#12zz56")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.editing {
		t.Error("expected to stay in edit mode after invalid input")
	}
	if !m.isError || !strings.Contains(m.status, "non-hexadecimal") {
		t.Errorf("status = %q (error=%v)", m.status, m.isError)
	}
	if got := m.state.CurrentPalette.Colors[0].Hex; got != before {
		t.Errorf("hex changed to %q on invalid input", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.editing {
		t.Error("esc should cancel editing")
	}
}

func TestPaletteApp_SaveLoadDelete(t *testing.T) {
	m, _ := newTestApp(t, nil, nil)
	original := m.state.CurrentPalette.Hexes()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(m.state.SavedPalettes) != 1 {
		t.Fatalf("saved = %d, want 1", len(m.state.SavedPalettes))
	}

	m, _ = send(t, m, keyRunes("n"))
	if strings.Join(m.state.CurrentPalette.Hexes(), ",") == strings.Join(original, ",") {
		t.Fatal("generate produced the same palette")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.pane != paneSaved {
		t.Fatal("tab should focus the saved pane")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.pane != panePalette {
		t.Error("loading should return focus to the palette")
	}
	if got := m.state.CurrentPalette.Hexes(); strings.Join(got, ",") != strings.Join(original, ",") {
		t.Errorf("loaded palette = %v, want %v", got, original)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = send(t, m, keyRunes("d"))
	if len(m.state.SavedPalettes) != 0 {
		t.Errorf("saved = %d after delete, want 0", len(m.state.SavedPalettes))
	}
	if m.savedCursor != 0 {
		t.Errorf("savedCursor = %d, want 0", m.savedCursor)
	}

	// Delete with nothing saved is a no-op.
	m, _ = send(t, m, keyRunes("d"))
	if len(m.state.SavedPalettes) != 0 {
		t.Errorf("saved = %d, want 0", len(m.state.SavedPalettes))
	}
}

func TestPaletteApp_CopyCSS(t *testing.T) {
	var copied string
	m, _ := newTestApp(t, func(s string) error {
		copied = s
		return nil
	}, nil)

	m, cmd := send(t, m, keyRunes("c"))
	if cmd == nil {
		t.Fatal("expected a copy command")
	}
	m, _ = send(t, m, cmd())

	if !strings.HasPrefix(copied, ":root {") {
		t.Errorf("clipboard = %q, want CSS", copied)
	}
	if !strings.Contains(m.status, "Copied css") {
		t.Errorf("status = %q", m.status)
	}
}

func TestPaletteApp_CopySelectedHex(t *testing.T) {
	var copied string
	m, _ := newTestApp(t, func(s string) error {
		copied = s
		return nil
	}, nil)

	m, _ = send(t, m, keyRunes("3"))
	want := m.state.CurrentPalette.Colors[2].Hex

	m, cmd := send(t, m, keyRunes("y"))
	if cmd == nil {
		t.Fatal("expected a copy command")
	}
	m, _ = send(t, m, cmd())

	if copied != want {
		t.Errorf("clipboard = %q, want %q", copied, want)
	}
	if !strings.Contains(m.status, "Copied "+want) {
		t.Errorf("status = %q", m.status)
	}
}

func TestPaletteApp_BrightnessKeys(t *testing.T) {
	m, slot := newTestApp(t, nil, nil)
	id := m.state.CurrentPalette.Colors[0].ID
	m.setState(m.session.UpdateColor(id, "#808080"))

	m, _ = send(t, m, keyRunes("+"))
	if got := m.state.CurrentPalette.Colors[0].Hex; got != "#909090" {
		t.Errorf("after + hex = %q, want #909090", got)
	}
	m, _ = send(t, m, keyRunes("-"))
	m, _ = send(t, m, keyRunes("-"))
	if got := m.state.CurrentPalette.Colors[0].Hex; got != "#707070" {
		t.Errorf("after - - hex = %q, want #707070", got)
	}
	if !strings.Contains(string(slot.Bytes()), "#707070") {
		t.Error("brightness change was not persisted")
	}

	m.setState(m.session.UpdateColor(id, "#ffffff"))
	m.status = ""
	m, _ = send(t, m, keyRunes("+"))
	if got := m.state.CurrentPalette.Colors[0].Hex; got != "#ffffff" {
		t.Errorf("lightening white gave %q", got)
	}
	if m.status != "" {
		t.Errorf("expected no status for a clamped change, got %q", m.status)
	}
}

func TestPaletteApp_RegenerateStatusReportsLocks(t *testing.T) {
	m, _ := newTestApp(t, nil, nil)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	m, _ = send(t, m, space)
	if !strings.Contains(m.status, "every color") {
		t.Errorf("unlocked palette status = %q", m.status)
	}

	m, _ = send(t, m, keyRunes("l"))
	m, _ = send(t, m, space)
	if !strings.Contains(m.status, "unlocked colors") {
		t.Errorf("locked palette status = %q", m.status)
	}
}

func TestPaletteApp_CopyFailureIsLogged(t *testing.T) {
	var logs bytes.Buffer
	m, _ := newTestApp(t, func(string) error {
		return errors.New("no clipboard utility")
	}, &logs)

	m, cmd := send(t, m, keyRunes("c"))
	m, _ = send(t, m, cmd())

	if !m.isError {
		t.Error("expected error status")
	}
	if !strings.Contains(logs.String(), "no clipboard utility") {
		t.Errorf("expected failure in logs, got:\n%s", logs.String())
	}
}

func TestPaletteApp_View(t *testing.T) {
	m, _ := newTestApp(t, nil, nil)
	if got := m.View(); got != "" {
		t.Errorf("expected empty view before sizing, got %q", got)
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = send(t, m, keyRunes("s"))
	view := m.View()

	for _, hex := range m.state.CurrentPalette.Hexes() {
		if !strings.Contains(view, hex) {
			t.Errorf("view missing %s", hex)
		}
	}
	if !strings.Contains(view, "Saved palettes (1)") {
		t.Errorf("view missing saved count:\n%s", view)
	}
}

func TestPaletteApp_Quit(t *testing.T) {
	m, _ := newTestApp(t, nil, nil)
	_, cmd := send(t, m, keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
