package util

import (
	"fmt"
	"regexp"
	"strings"

	"nathanbeddoewebdev/hue/internal/colormath"
	"nathanbeddoewebdev/hue/internal/palette/domain"
)

var shortHex = regexp.MustCompile(`^#([0-9a-f])([0-9a-f])([0-9a-f])$`)

// NormalizeHex trims whitespace, lowercases, adds a leading '#' when it is
// missing and expands "#rgb" shorthand to "#rrggbb". It does not validate.
func NormalizeHex(s string) string {
	s = NormalizeKey(s)
	if s != "" && !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if m := shortHex.FindStringSubmatch(s); m != nil {
		s = "#" + m[1] + m[1] + m[2] + m[2] + m[3] + m[3]
	}
	return s
}

// ValidateHex checks that s is a strict "#rrggbb" color string:
//   - Exactly 7 characters
//   - Leading '#'
//   - Six hexadecimal digits (case-insensitive)
func ValidateHex(s string) error {
	if len(s) != 7 {
		return fmt.Errorf("%w: %q must be 7 characters (#rrggbb), got %d", domain.ErrInvalidHex, s, len(s))
	}
	if s[0] != '#' {
		return fmt.Errorf("%w: %q must start with '#'", domain.ErrInvalidHex, s)
	}
	if !colormath.IsValidHex(s) {
		return fmt.Errorf("%w: %q contains non-hexadecimal digits", domain.ErrInvalidHex, s)
	}
	return nil
}
