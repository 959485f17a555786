package tui

import (
	"fmt"
	"slices"
	"strings"

	"nathanbeddoewebdev/hue/internal/config"
	"nathanbeddoewebdev/hue/internal/tui/components"
	"nathanbeddoewebdev/hue/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type configSavedMsg struct {
	key, value string
}

type configSaveErrorMsg struct {
	err error
}

// ChoicesFunc returns the values a config key accepts. An empty result
// means the key has no fixed set and is shown read-only.
type ChoicesFunc func(key string) []string

// configViewModel lists every config key and cycles its value through the
// accepted choices. The empty value, shown as "default", is always first.
type configViewModel struct {
	cfg     *config.Config
	keys    []config.KeySpec
	choices ChoicesFunc

	cursor int

	width  int
	height int

	status  string
	isError bool
}

// RunConfigView opens the config editor. choices may be nil.
func RunConfigView(choices ChoicesFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p := tea.NewProgram(newConfigViewModel(cfg, choices), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newConfigViewModel(cfg *config.Config, choices ChoicesFunc) configViewModel {
	if choices == nil {
		choices = func(string) []string { return nil }
	}
	return configViewModel{cfg: cfg, keys: config.Keys, choices: choices}
}

func (m configViewModel) Init() tea.Cmd {
	return nil
}

func (m configViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	case configSavedMsg:
		value := msg.value
		if value == "" {
			value = "default"
		}
		m.status, m.isError = fmt.Sprintf("%s set to %s", msg.key, value), false
	case configSaveErrorMsg:
		m.status, m.isError = "Error: "+msg.err.Error(), true
	}
	return m, nil
}

func (m configViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.cursor = max(m.cursor-1, 0)
	case "down", "j":
		m.cursor = min(m.cursor+1, len(m.keys)-1)
	case "right", "l", "enter", " ":
		return m.cycle(1)
	case "left", "h":
		return m.cycle(-1)
	case "r", "backspace":
		return m.set("")
	}
	return m, nil
}

// options returns the selectable values for the key under the cursor,
// starting with "" for the default.
func (m configViewModel) options() []string {
	return append([]string{""}, m.choices(m.keys[m.cursor].Name)...)
}

func (m configViewModel) cycle(step int) (tea.Model, tea.Cmd) {
	if len(m.keys) == 0 {
		return m, nil
	}
	opts := m.options()
	if len(opts) == 1 {
		m.status, m.isError = m.keys[m.cursor].Name+" has no fixed choices; use 'hue config set'", true
		return m, nil
	}
	// An unknown stored value starts from the default.
	i := max(slices.Index(opts, m.keys[m.cursor].Get(m.cfg)), 0)
	next := (i + step + len(opts)) % len(opts)
	return m.set(opts[next])
}

func (m configViewModel) set(value string) (tea.Model, tea.Cmd) {
	if len(m.keys) == 0 {
		return m, nil
	}
	spec := m.keys[m.cursor]
	spec.Set(m.cfg, value)
	cfg := m.cfg
	return m, func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return configSaveErrorMsg{err: err}
		}
		return configSavedMsg{key: spec.Name, value: value}
	}
}

func (m configViewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "config", nil)
	footer := components.Footer(m.width, []components.KeyBinding{
		{Key: "j/k", Desc: "navigate"},
		{Key: "←/→", Desc: "change"},
		{Key: "r", Desc: "reset"},
		{Key: "q", Desc: "quit"},
	})
	statusBar := components.StatusBar(m.width, m.status, m.isError)

	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer)-lipgloss.Height(statusBar), 1)
	body := lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.renderKeys())

	sections := []string{header, body}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, append(sections, footer)...)
}

func (m configViewModel) renderKeys() string {
	rows := make([]string, 0, 2*len(m.keys))
	for i, spec := range m.keys {
		prefix, name := "  ", styles.MutedText.Width(18).Render(spec.Name)
		if i == m.cursor {
			prefix, name = styles.AccentText.Render("> "), styles.Label.Width(18).Render(spec.Name)
		}
		rows = append(rows, prefix+name+m.renderChoices(spec, i == m.cursor))
		if i == m.cursor {
			rows = append(rows, "    "+styles.MutedText.Italic(true).Render(spec.Description))
		}
	}
	card := styles.Card.Width(60).Render(strings.Join(rows, "\n"))
	return lipgloss.JoinVertical(lipgloss.Center, styles.Title.Render("Configuration"), "", card)
}

// renderChoices draws "default file sqlite" with the current value
// highlighted. A stored value outside the choices is shown on its own.
func (m configViewModel) renderChoices(spec config.KeySpec, selected bool) string {
	current := spec.Get(m.cfg)
	opts := append([]string{""}, m.choices(spec.Name)...)
	if !slices.Contains(opts, current) {
		opts = []string{current}
	}

	parts := make([]string, len(opts))
	for i, o := range opts {
		label := o
		if label == "" {
			label = "default"
		}
		switch {
		case o == current && selected:
			parts[i] = styles.Value.Bold(true).Underline(true).Render(label)
		case o == current:
			parts[i] = styles.Value.Render(label)
		default:
			parts[i] = styles.MutedText.Render(label)
		}
	}
	return strings.Join(parts, " ")
}
