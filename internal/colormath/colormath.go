// Package colormath holds the pure color functions used by the palette
// engine: hex parsing, RGB/HSL conversion, contrast selection, random colors
// and harmonious palette derivation.
//
// Nothing here keeps state. Functions that need randomness take a Rand so
// callers (and tests) control the source.
package colormath

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Rand is the subset of *math/rand/v2.Rand used for color generation.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B int
}

// HSL is a color with hue, saturation and lightness each in [0,1].
type HSL struct {
	H, S, L float64
}

var (
	// parseable accepts an optional '#' and is used for conversion.
	parseable = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)

	// strictHex is what user input must look like.
	strictHex = regexp.MustCompile(`(?i)^#[0-9a-f]{6}$`)
)

const (
	black = "#000000"
	white = "#ffffff"

	// brightnessThreshold splits dark from light backgrounds.
	brightnessThreshold = 128.0
)

// Hex formats the color as lowercase #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// HexToRGB parses a 3-byte hex color with an optional '#' prefix.
// The second return value is false when s is not parseable.
func HexToRGB(s string) (RGB, bool) {
	m := parseable.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}
	r, _ := strconv.ParseUint(m[1], 16, 8)
	g, _ := strconv.ParseUint(m[2], 16, 8)
	b, _ := strconv.ParseUint(m[3], 16, 8)
	return RGB{R: int(r), G: int(g), B: int(b)}, true
}

// IsValidHex reports whether s is exactly '#' followed by six hex digits.
func IsValidHex(s string) bool {
	return strictHex.MatchString(s)
}

// RGBToHSL converts 8-bit channels to normalized HSL.
func RGBToHSL(r, g, b int) HSL {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: l}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h /= 6

	return HSL{H: h, S: s, L: l}
}

// HSLToRGB converts normalized HSL to 8-bit channels, rounding to nearest.
func HSLToRGB(h, s, l float64) RGB {
	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToChannel(p, q, h+1.0/3)
		g = hueToChannel(p, q, h)
		b = hueToChannel(p, q, h-1.0/3)
	}

	return RGB{
		R: int(math.Round(r * 255)),
		G: int(math.Round(g * 255)),
		B: int(math.Round(b * 255)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// ContrastColor returns the text color (black or white) that reads best on
// the given background. Unparseable input yields black.
func ContrastColor(hex string) string {
	c, ok := HexToRGB(hex)
	if !ok {
		return black
	}
	// 0.299r + 0.587g + 0.114b, kept in integers until the final divide.
	brightness := float64(299*c.R+587*c.G+114*c.B) / 1000
	if brightness > brightnessThreshold {
		return black
	}
	return white
}

// AdjustBrightness shifts every channel by amount, clamped to [0,255].
// Unparseable input is returned unchanged.
func AdjustBrightness(hex string, amount int) string {
	c, ok := HexToRGB(hex)
	if !ok {
		return hex
	}
	return RGB{R: c.R + amount, G: c.G + amount, B: c.B + amount}.Hex()
}

func clampChannel(v int) int {
	return min(max(v, 0), 255)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
