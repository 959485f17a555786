package colormath

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// NearDuplicateThreshold is the CIEDE2000 distance under which two colors
// are hard to tell apart side by side.
const NearDuplicateThreshold = 5.0

// Distance returns the CIEDE2000 perceptual distance between two hex colors.
func Distance(a, b string) (float64, error) {
	ca, err := colorful.Hex(normalizeForColorful(a))
	if err != nil {
		return 0, fmt.Errorf("colormath: invalid color %q: %w", a, err)
	}
	cb, err := colorful.Hex(normalizeForColorful(b))
	if err != nil {
		return 0, fmt.Errorf("colormath: invalid color %q: %w", b, err)
	}
	// go-colorful keeps L in [0,1]; scale to the conventional 0-100 range.
	return ca.DistanceCIEDE2000(cb) * 100, nil
}

// Pair identifies two positions in a palette.
type Pair struct {
	I, J     int
	Distance float64
}

// MinDistance returns the closest pair of parseable colors in hexes.
// The boolean is false when fewer than two colors can be compared.
func MinDistance(hexes []string) (Pair, bool) {
	best := Pair{I: -1, J: -1}
	found := false
	for i := 0; i < len(hexes); i++ {
		for j := i + 1; j < len(hexes); j++ {
			d, err := Distance(hexes[i], hexes[j])
			if err != nil {
				continue
			}
			if !found || d < best.Distance {
				best = Pair{I: i, J: j, Distance: d}
				found = true
			}
		}
	}
	return best, found
}

// colorful.Hex requires the '#' prefix.
func normalizeForColorful(s string) string {
	if c, ok := HexToRGB(s); ok {
		return c.Hex()
	}
	return s
}
