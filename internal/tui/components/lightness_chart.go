package components

import (
	"math"
	"strconv"

	"nathanbeddoewebdev/hue/internal/colormath"
	"nathanbeddoewebdev/hue/internal/tui/styles"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// Lightness returns the HSL lightness of each hex as a percentage (0-100).
// Unparseable entries count as 0.
func Lightness(hexes []string) []float64 {
	out := make([]float64, len(hexes))
	for i, h := range hexes {
		rgb, ok := colormath.HexToRGB(h)
		if !ok {
			continue
		}
		out[i] = math.Round(colormath.RGBToHSL(rgb.R, rgb.G, rgb.B).L * 100)
	}
	return out
}

// LightnessChart renders one bar per color, painted in that color, whose
// height is the color's lightness. Bars are labelled by 1-based position.
func LightnessChart(hexes []string, width, height int) string {
	if len(hexes) == 0 {
		return styles.MutedText.Render("lightness: no data")
	}

	values := Lightness(hexes)
	data := make([]barchart.BarData, len(hexes))
	for i, h := range hexes {
		data[i] = barchart.BarData{
			Label: strconv.Itoa(i + 1),
			Values: []barchart.BarValue{{
				Name:  h,
				Value: values[i],
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color(h)),
			}},
		}
	}

	chart := barchart.New(max(width, 10), max(height, 3))
	chart.PushAll(data)
	chart.Draw()

	header := styles.Label.Render("Lightness")
	return lipgloss.JoinVertical(lipgloss.Left, header, chart.View())
}
