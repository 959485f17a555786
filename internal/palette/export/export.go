// Package export renders a palette into shareable formats: JSON, CSS custom
// properties, a Tailwind theme snippet and a PNG swatch strip.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"nathanbeddoewebdev/hue/internal/palette/domain"
)

// Format describes a single export format.
type Format struct {
	// Name is the CLI-facing format name (e.g. "css").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Ext is the file extension used when writing to a file.
	Ext string

	// Binary marks formats that must not be written to a terminal or the
	// clipboard.
	Binary bool

	// Write renders p to w.
	Write func(w io.Writer, p domain.Palette) error
}

// Formats is the authoritative list of supported export formats.
var Formats = []Format{
	{
		Name:        "json",
		Description: "Array of {\"hex\": ...} objects",
		Ext:         ".json",
		Write:       WriteJSON,
	},
	{
		Name:        "css",
		Description: "CSS custom properties on :root (--color-1, --color-2, ...)",
		Ext:         ".css",
		Write:       WriteCSS,
	},
	{
		Name:        "tailwind",
		Description: "tailwind.config.js theme snippet (palette1, palette2, ...)",
		Ext:         ".js",
		Write:       WriteTailwind,
	},
	{
		Name:        "png",
		Description: "PNG image with one vertical band per color",
		Ext:         ".png",
		Binary:      true,
		Write:       WritePNG,
	},
}

// Lookup returns the Format for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *Format {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Formats {
		if Formats[i].Name == normalized {
			return &Formats[i]
		}
	}
	return nil
}

// Names returns the names of all registered formats.
func Names() []string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = f.Name
	}
	return names
}

// FormatsHelp builds a formatted block listing all formats, suitable for
// inclusion in Cobra Long help text.
func FormatsHelp() string {
	maxLen := 0
	for _, f := range Formats {
		maxLen = max(maxLen, len(f.Name))
	}

	var b strings.Builder
	b.WriteString("Available formats:\n")
	for _, f := range Formats {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, f.Name, f.Description)
	}
	return b.String()
}

// Render returns the named format as a string. Unknown names wrap
// domain.ErrUnknownFormat.
func Render(name string, p domain.Palette) (string, error) {
	f := Lookup(name)
	if f == nil {
		return "", fmt.Errorf("export: %q (valid: %s): %w", name, strings.Join(Names(), ", "), domain.ErrUnknownFormat)
	}
	var buf bytes.Buffer
	if err := f.Write(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type jsonColor struct {
	Hex string `json:"hex"`
}

// WriteJSON writes the palette as a 2-space indented array of {hex} objects.
func WriteJSON(w io.Writer, p domain.Palette) error {
	items := make([]jsonColor, len(p.Colors))
	for i, c := range p.Colors {
		items[i] = jsonColor{Hex: c.Hex}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("export: failed to marshal palette: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteCSS writes the palette as 1-indexed custom properties on :root.
func WriteCSS(w io.Writer, p domain.Palette) error {
	lines := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		lines[i] = fmt.Sprintf("  --color-%d: %s;", i+1, c.Hex)
	}
	_, err := fmt.Fprintf(w, ":root {\n%s\n}", strings.Join(lines, "\n"))
	return err
}

// WriteTailwind writes a tailwind.config.js snippet extending the theme with
// palette1..paletteN.
func WriteTailwind(w io.Writer, p domain.Palette) error {
	lines := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		lines[i] = fmt.Sprintf("        palette%d: '%s',", i+1, c.Hex)
	}
	_, err := fmt.Fprintf(w,
		"// tailwind.config.js\nmodule.exports = {\n  theme: {\n    extend: {\n      colors: {\n%s\n      }\n    }\n  }\n}",
		strings.Join(lines, "\n"))
	return err
}
