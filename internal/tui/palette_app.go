package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"nathanbeddoewebdev/hue/internal/colormath"
	"nathanbeddoewebdev/hue/internal/palette/domain"
	"nathanbeddoewebdev/hue/internal/palette/engine"
	"nathanbeddoewebdev/hue/internal/palette/export"
	"nathanbeddoewebdev/hue/internal/palette/services/session"
	"nathanbeddoewebdev/hue/internal/tui/components"
	"nathanbeddoewebdev/hue/internal/tui/styles"
	"nathanbeddoewebdev/hue/internal/util"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// --- Clipboard messages ---

type copiedMsg struct {
	label string
}

type copyErrorMsg struct {
	err error
}

// --- Panes ---

type pane int

const (
	panePalette pane = iota
	paneSaved
)

const (
	// chartHeight is the height of the lightness chart below the swatches.
	chartHeight = 8

	// brightnessStep is how far + and - move every channel of a color.
	brightnessStep = 16
)

// --- App model ---

// paletteAppModel drives a session from the keyboard. Every state change
// goes through the session, which persists it before the next render.
type paletteAppModel struct {
	session *session.Session
	logger  *slog.Logger
	copy    func(string) error
	backend string

	state domain.State

	pane        pane
	cursor      int
	savedCursor int

	editing bool
	editor  textinput.Model

	width  int
	height int

	status  string
	isError bool
}

// RunPaletteApp starts the interactive palette editor on s. The caller owns
// s and must Close it after this returns.
func RunPaletteApp(s *session.Session, backend string, logger *slog.Logger) error {
	m := newPaletteAppModel(s, backend, logger, clipboard.WriteAll)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run palette app: %w", err)
	}
	return nil
}

func newPaletteAppModel(s *session.Session, backend string, logger *slog.Logger, copyFn func(string) error) paletteAppModel {
	if logger == nil {
		logger = slog.Default()
	}
	return paletteAppModel{
		session: s,
		logger:  logger,
		copy:    copyFn,
		backend: backend,
		state:   s.State(),
	}
}

func (m paletteAppModel) Init() tea.Cmd {
	return nil
}

func (m paletteAppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case copiedMsg:
		m.setStatus(fmt.Sprintf("Copied %s to clipboard", msg.label), false)
		return m, nil

	case copyErrorMsg:
		m.logger.Warn("clipboard write failed", "error", msg.err)
		m.setStatus("Error: "+msg.err.Error(), true)
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m paletteAppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		if m.pane == panePalette {
			m.pane = paneSaved
		} else {
			m.pane = panePalette
		}
		m.status = ""
		return m, nil
	}

	if m.pane == paneSaved {
		return m.handleSavedKey(msg)
	}
	return m.handlePaletteKey(msg)
}

func (m paletteAppModel) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case " ":
		status := "Regenerated unlocked colors"
		if engine.IsPristine(m.state.CurrentPalette) {
			status = "Regenerated every color (none locked)"
		}
		m.setState(m.session.Regenerate())
		m.setStatus(status, false)
	case "n", "ctrl+n":
		m.setState(m.session.Generate())
		m.cursor = 0
		m.setStatus("Generated a new palette", false)
	case "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right":
		if m.cursor < len(m.state.CurrentPalette.Colors)-1 {
			m.cursor++
		}
	case "l", "enter":
		if c, ok := m.selected(); ok {
			m.setState(m.session.ToggleLock(c.ID))
		}
	case "e":
		if c, ok := m.selected(); ok {
			ti := textinput.New()
			ti.SetValue(c.Hex)
			ti.CharLimit = 7
			ti.Width = 10
			ti.Placeholder = "#rrggbb"
			ti.Focus()
			m.editor = ti
			m.editing = true
			m.status = ""
			return m, textinput.Blink
		}
	case "+", "=":
		return m.shiftBrightness(brightnessStep), nil
	case "-":
		return m.shiftBrightness(-brightnessStep), nil
	case "s", "ctrl+s":
		m.setState(m.session.Save())
		m.savedCursor = len(m.state.SavedPalettes) - 1
		m.setStatus(fmt.Sprintf("Saved as palette %d", len(m.state.SavedPalettes)), false)
	case "c":
		return m, m.copyPalette("css")
	case "J":
		return m, m.copyPalette("json")
	case "t":
		return m, m.copyPalette("tailwind")
	case "y":
		if c, ok := m.selected(); ok {
			return m, m.copyText(c.Hex, c.Hex)
		}
	default:
		// 1-9 jump to a color.
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.state.CurrentPalette.Colors) {
			m.cursor = n - 1
		}
	}
	return m, nil
}

func (m paletteAppModel) handleSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pane = panePalette
	case "up", "k":
		if m.savedCursor > 0 {
			m.savedCursor--
		}
	case "down", "j":
		if m.savedCursor < len(m.state.SavedPalettes)-1 {
			m.savedCursor++
		}
	case "enter":
		if m.savedCursor < len(m.state.SavedPalettes) {
			m.setState(m.session.Load(m.savedCursor))
			m.setStatus(fmt.Sprintf("Loaded palette %d", m.savedCursor+1), false)
			m.pane = panePalette
			m.cursor = 0
		}
	case "d":
		if m.savedCursor < len(m.state.SavedPalettes) {
			n := m.savedCursor + 1
			m.setState(m.session.Delete(m.savedCursor))
			m.savedCursor = max(min(m.savedCursor, len(m.state.SavedPalettes)-1), 0)
			m.setStatus(fmt.Sprintf("Deleted palette %d", n), false)
		}
	}
	return m, nil
}

func (m paletteAppModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "enter":
		hex := util.NormalizeHex(m.editor.Value())
		if err := util.ValidateHex(hex); err != nil {
			m.setStatus("Error: "+err.Error(), true)
			return m, nil
		}
		if c, ok := m.selected(); ok {
			m.setState(m.session.UpdateColor(c.ID, hex))
			m.setStatus(fmt.Sprintf("Color %d set to %s", m.cursor+1, hex), false)
		}
		m.editing = false
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// shiftBrightness lightens (amount > 0) or darkens the selected color.
func (m paletteAppModel) shiftBrightness(amount int) paletteAppModel {
	c, ok := m.selected()
	if !ok {
		return m
	}
	hex := colormath.AdjustBrightness(c.Hex, amount)
	if hex == c.Hex {
		return m
	}
	m.setState(m.session.UpdateColor(c.ID, hex))
	m.setStatus(fmt.Sprintf("Color %d set to %s", m.cursor+1, hex), false)
	return m
}

// copyPalette renders the current palette and writes it to the clipboard
// off the event loop.
func (m paletteAppModel) copyPalette(format string) tea.Cmd {
	text, err := export.Render(format, m.state.CurrentPalette)
	if err != nil {
		return func() tea.Msg { return copyErrorMsg{err: err} }
	}
	return m.copyText(text, format)
}

// copyText writes text to the clipboard off the event loop. label names what
// was copied in the status bar.
func (m paletteAppModel) copyText(text, label string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copyErrorMsg{err: fmt.Errorf("failed to copy to clipboard: %w", err)}
		}
		return copiedMsg{label: label}
	}
}

func (m *paletteAppModel) setState(s domain.State) {
	m.state = s
	if n := len(s.CurrentPalette.Colors); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *paletteAppModel) setStatus(msg string, isError bool) {
	m.status = msg
	m.isError = isError
}

func (m paletteAppModel) selected() (domain.Color, bool) {
	colors := m.state.CurrentPalette.Colors
	if m.cursor < 0 || m.cursor >= len(colors) {
		return domain.Color{}, false
	}
	return colors[m.cursor], true
}

// --- View ---

func (m paletteAppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "palette", m.state.CurrentPalette.Hexes())
	footer := components.Footer(m.width, m.footerBindings())
	statusBar := components.StatusBar(m.width, m.status, m.isError)

	sections := []string{header, m.renderPalette(), m.renderSaved()}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m paletteAppModel) footerBindings() []components.KeyBinding {
	switch {
	case m.editing:
		return []components.KeyBinding{
			{Key: "enter", Desc: "apply"},
			{Key: "esc", Desc: "cancel"},
		}
	case m.pane == paneSaved:
		return []components.KeyBinding{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "load"},
			{Key: "d", Desc: "delete"},
			{Key: "tab", Desc: "palette"},
			{Key: "q", Desc: "quit"},
		}
	default:
		return []components.KeyBinding{
			{Key: "space", Desc: "regenerate"},
			{Key: "n", Desc: "new"},
			{Key: "←/→", Desc: "select"},
			{Key: "l", Desc: "lock"},
			{Key: "e", Desc: "edit"},
			{Key: "+/-", Desc: "lighter/darker"},
			{Key: "y", Desc: "copy hex"},
			{Key: "s", Desc: "save"},
			{Key: "c", Desc: "copy css"},
			{Key: "tab", Desc: "saved"},
			{Key: "q", Desc: "quit"},
		}
	}
}

func (m paletteAppModel) renderPalette() string {
	colors := m.state.CurrentPalette.Colors
	cards := make([]components.SwatchCard, len(colors))
	for i, c := range colors {
		cards[i] = components.SwatchCard{
			Hex:      c.Hex,
			Locked:   c.Locked,
			Selected: m.pane == panePalette && i == m.cursor,
		}
	}

	rows := []string{components.Swatches(cards, m.width)}

	if c, ok := m.selected(); ok {
		detail := styles.Label.Render(fmt.Sprintf("Color %d ", m.cursor+1))
		if m.editing {
			detail += m.editor.View()
		} else {
			detail += styles.Value.Render(c.Hex) + "  " + styles.LockIndicator(c.Locked)
		}
		rows = append(rows, " "+detail)
	}

	if pair, ok := colormath.MinDistance(m.state.CurrentPalette.Hexes()); ok && pair.Distance < colormath.NearDuplicateThreshold {
		rows = append(rows, " "+styles.WarningText.Render(
			fmt.Sprintf("Colors %d and %d look alike (ΔE %.1f)", pair.I+1, pair.J+1, pair.Distance)))
	}

	rows = append(rows, components.LightnessChart(m.state.CurrentPalette.Hexes(), m.width-2, chartHeight))
	return strings.Join(rows, "\n")
}

func (m paletteAppModel) renderSaved() string {
	title := styles.Subtitle.Render(fmt.Sprintf("Saved palettes (%d)", len(m.state.SavedPalettes)))
	if m.backend != "" {
		title += styles.MutedText.Render("  stored in " + m.backend)
	}
	if len(m.state.SavedPalettes) == 0 {
		return title + "\n" + styles.MutedText.Render("  none yet, press s to save the current palette")
	}

	rowWidth := max(m.width-4, 10)
	rows := []string{title}
	for i, p := range m.state.SavedPalettes {
		prefix := "  "
		if m.pane == paneSaved && i == m.savedCursor {
			prefix = styles.AccentText.Render("> ")
		}
		rows = append(rows, prefix+ansi.Truncate(savedRow(i, p), rowWidth, "…"))
	}

	style := styles.Card
	if m.pane == paneSaved {
		style = styles.CardActive
	}
	return style.Padding(0, 1).Render(strings.Join(rows, "\n"))
}

// savedRow formats one saved palette as "N. ■■■ #aaaaaa #bbbbbb ...".
func savedRow(i int, p domain.Palette) string {
	var blocks strings.Builder
	for _, c := range p.Colors {
		blocks.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex)).Render("■"))
	}
	return fmt.Sprintf("%d. %s %s", i+1, blocks.String(), strings.Join(p.Hexes(), " "))
}
