package colormath

import "math"

const (
	// goldenAngle is the hue step between neighbouring colors, as a
	// fraction of the full 360° turn.
	goldenAngle = 137.5 / 360

	jitter = 0.1

	minLightness = 0.2
	maxLightness = 0.8
)

// RandomColor returns a #rrggbb color with each channel uniform over [0,255].
func RandomColor(r Rand) string {
	return RGB{R: r.IntN(256), G: r.IntN(256), B: r.IntN(256)}.Hex()
}

// RandomPalette returns count independent random colors.
func RandomPalette(r Rand, count int) []string {
	if count <= 0 {
		return []string{}
	}
	out := make([]string, count)
	for i := range out {
		out[i] = RandomColor(r)
	}
	return out
}

// HarmoniousPalette derives count colors from seed. The first element is
// seed itself; each following color rotates the seed hue by the golden angle
// and jitters saturation and lightness by up to ±0.1. Lightness stays within
// [0.2, 0.8] so no entry collapses to near-black or near-white.
//
// An unparseable seed falls back to count independent random colors.
func HarmoniousPalette(r Rand, seed string, count int) []string {
	if count <= 0 {
		return []string{}
	}

	base, ok := HexToRGB(seed)
	if !ok {
		return RandomPalette(r, count)
	}
	hsl := RGBToHSL(base.R, base.G, base.B)

	out := make([]string, 0, count)
	out = append(out, seed)
	for i := 1; i < count; i++ {
		h := math.Mod(hsl.H+float64(i)*goldenAngle, 1)
		s := clamp(hsl.S+signedJitter(r), 0, 1)
		l := clamp(hsl.L+signedJitter(r), minLightness, maxLightness)
		out = append(out, HSLToRGB(h, s, l).Hex())
	}
	return out
}

// signedJitter returns a value in [-jitter, +jitter).
func signedJitter(r Rand) float64 {
	return r.Float64()*2*jitter - jitter
}
