package palette

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/hue/internal/colormath"
	"nathanbeddoewebdev/hue/internal/palette/domain"
	"nathanbeddoewebdev/hue/internal/tui/components"

	"github.com/spf13/cobra"
)

const (
	inspectChartWidth  = 40
	inspectChartHeight = 8
)

// printPalette writes p in the format selected by the --output flag.
func printPalette(cmd *cobra.Command, p domain.Palette) error {
	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "json":
		printPaletteJSON(cmd, p)
	case "table", "":
		printPaletteTable(cmd, p)
	default:
		return fmt.Errorf("unsupported output format %q (valid: table, json)", output)
	}
	return nil
}

// printPaletteJSON encodes a palette as indented JSON to stdout.
func printPaletteJSON(cmd *cobra.Command, p domain.Palette) {
	if p.Colors == nil {
		p.Colors = []domain.Color{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.Encode(p)
}

// printPaletteTable prints one row per color.
func printPaletteTable(cmd *cobra.Command, p domain.Palette) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)

	fmt.Fprintln(w, "#\tHEX\tLOCKED\tID")
	fmt.Fprintln(w, "-\t---\t------\t--")
	for i, c := range p.Colors {
		locked := "no"
		if c.Locked {
			locked = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, c.Hex, locked, c.ID)
	}

	w.Flush()
}

// printPaletteDetail prints the color space breakdown of every color, the
// closest pair with a warning when it is nearly indistinguishable, and a
// lightness chart.
func printPaletteDetail(cmd *cobra.Command, p domain.Palette) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)

	fmt.Fprintln(w, "#\tHEX\tRGB\tHSL\tTEXT\tLOCKED")
	fmt.Fprintln(w, "-\t---\t---\t---\t----\t------")
	for i, c := range p.Colors {
		rgb, ok := colormath.HexToRGB(c.Hex)
		rgbText, hslText := "invalid", "invalid"
		if ok {
			hsl := colormath.RGBToHSL(rgb.R, rgb.G, rgb.B)
			rgbText = fmt.Sprintf("%d, %d, %d", rgb.R, rgb.G, rgb.B)
			hslText = fmt.Sprintf("%.0f°, %.0f%%, %.0f%%", hsl.H*360, hsl.S*100, hsl.L*100)
		}
		locked := "no"
		if c.Locked {
			locked = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, c.Hex, rgbText, hslText, colormath.ContrastColor(c.Hex), locked)
	}

	w.Flush()

	if pair, ok := colormath.MinDistance(p.Hexes()); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "\nClosest pair: %d and %d (ΔE %.1f)\n", pair.I+1, pair.J+1, pair.Distance)
		if pair.Distance < colormath.NearDuplicateThreshold {
			fmt.Fprintln(cmd.OutOrStdout(), "Warning: these colors are nearly indistinguishable.")
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", components.LightnessChart(p.Hexes(), inspectChartWidth, inspectChartHeight))
}
