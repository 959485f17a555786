package components

import (
	"strings"

	"nathanbeddoewebdev/hue/internal/colormath"
	"nathanbeddoewebdev/hue/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// swatchHeight is the number of painted rows in each swatch card.
const swatchHeight = 7

// SwatchCard is one color in a swatch strip.
type SwatchCard struct {
	Hex      string
	Locked   bool
	Selected bool
}

// Swatches renders the cards side by side, sharing width evenly.
//
//	┌────────┐┌────────┐┌────────┐
//	│#3a6fa0 ││#ffd787 ││#1a2f40 │
//	│ locked ││        ││        │
//	└────────┘└────────┘└────────┘
func Swatches(cards []SwatchCard, width int) string {
	if len(cards) == 0 || width < 10 {
		return ""
	}

	// Each card has a 1-cell border on both sides.
	cardWidth := max(width/len(cards)-2, 7)

	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = swatch(c, cardWidth)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func swatch(c SwatchCard, width int) string {
	fg := colormath.ContrastColor(c.Hex)
	paint := styles.Swatch(c.Hex, fg).Width(width)

	lock := ""
	if c.Locked {
		lock = "locked"
	}

	lines := make([]string, swatchHeight)
	lines[swatchHeight/2-1] = c.Hex
	lines[swatchHeight/2+1] = lock

	body := paint.Render(strings.Join(lines, "\n"))

	border := styles.DimGray
	if c.Selected {
		border = styles.Blue
	}
	return lipgloss.NewStyle().
		Border(styles.Border).
		BorderForeground(border).
		Render(body)
}
