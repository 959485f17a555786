// Package components provides reusable Bubbletea UI building blocks for
// the hue TUI. These are render-only helpers (not tea.Model) used by
// the main TUI models to compose views.
package components

import (
	"strings"

	"nathanbeddoewebdev/hue/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Header renders the application header bar. The right side shows a
// miniature of the given colors, one block each.
//
//	┌──────────────────────────────────────────┐
//	│  hue > palette                 ■■■■■     │
//	└──────────────────────────────────────────┘
func Header(width int, breadcrumb string, hexes []string) string {
	if width < 10 {
		return ""
	}

	left := styles.Title.Foreground(styles.Blue).Render("hue")
	if breadcrumb != "" {
		left += styles.MutedText.Render(" > ") + styles.Title.Render(breadcrumb)
	}

	var right strings.Builder
	for _, h := range hexes {
		right.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(h)).Render("■"))
	}

	innerWidth := width - 4 // padding
	gap := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(right.String()), 1)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(left + strings.Repeat(" ", gap) + right.String())
}
