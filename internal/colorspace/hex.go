package colorspace

import (
	"fmt"
	"regexp"
)

// RGB represents a color with 8-bit components stored as ints.
//
// Each component ranges from 0 to 255. Construction through the conversion
// functions in this package always yields in-range components.
type RGB struct {
	R int `json:"r"` // Red component (0-255)
	G int `json:"g"` // Green component (0-255)
	B int `json:"b"` // Blue component (0-255)
}

// hexPattern matches "#RGB", "RGB", "#RRGGBB" or "RRGGBB", case-insensitive.
var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseHex parses a hex color string into RGB.
//
// Accepted forms are 6-digit ("#1A2B3C") and 3-digit shorthand ("#1AF",
// expanded by doubling each digit), with or without the leading "#",
// case-insensitive.
//
// Malformed input is coerced to black (0,0,0) rather than rejected. This
// leniency is deliberate and matches the behavior callers depend on when
// displaying user-supplied colors, but it can mask upstream bugs; use
// ValidHex first when a strict check is needed.
func ParseHex(s string) RGB {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}
	}
	digits := m[1]
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	var r, g, b int
	fmt.Sscanf(digits, "%02x%02x%02x", &r, &g, &b)
	return RGB{R: r, G: g, B: b}
}

// ValidHex reports whether s is a well-formed 3- or 6-digit hex color.
func ValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Hex formats an RGB color as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", clamp255(c.R), clamp255(c.G), clamp255(c.B))
}

// Brightness returns the perceived brightness of a color on a 0-255 scale
// using the ITU-R BT.601 integer weighting (299R + 587G + 114B) / 1000.
func (c RGB) Brightness() int {
	return (299*clamp255(c.R) + 587*clamp255(c.G) + 114*clamp255(c.B)) / 1000
}

// ContrastText returns the hex color ("#000000" or "#FFFFFF") that reads
// best as text over this background: black for bright backgrounds
// (brightness >= 128), white otherwise.
func (c RGB) ContrastText() string {
	if c.Brightness() >= 128 {
		return "#000000"
	}
	return "#FFFFFF"
}

func clamp255(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
