package colorspace

import "math"

// RYB represents a color on the traditional red/yellow/blue artist wheel.
// Components are 0-255.
type RYB struct {
	R int `json:"r"`
	Y int `json:"y"`
	B int `json:"b"`
}

// RGBToRYB approximates an RGB color on the artist color wheel.
//
// The transform removes the shared white component (the minimum channel),
// folds the green channel into yellow and blue, renormalizes by the ratio of
// chromatic maxima so the remapped color keeps its intensity, and re-adds
// the white component.
//
// This is a known-approximate mapping, not a colorimetric standard:
// RYBToRGB does not exactly invert it, and round trips may drift.
func RGBToRYB(c RGB) RYB {
	r := float64(clamp255(c.R))
	g := float64(clamp255(c.G))
	b := float64(clamp255(c.B))

	// Shared white component.
	w := math.Min(r, math.Min(g, b))
	r -= w
	g -= w
	b -= w

	maxGreen := math.Max(r, math.Max(g, b))

	// The portion shared by red and green becomes yellow.
	y := math.Min(r, g)
	r -= y
	g -= y

	// Blue and the remaining green mix; halve both to keep the sum stable.
	if b > 0 && g > 0 {
		b /= 2
		g /= 2
	}
	y += g
	b += g

	// Normalize so the chromatic magnitude is preserved.
	maxYellow := math.Max(r, math.Max(y, b))
	if maxYellow > 0 {
		n := maxGreen / maxYellow
		r *= n
		y *= n
		b *= n
	}

	return RYB{
		R: clamp255(int(math.Round(r + w))),
		Y: clamp255(int(math.Round(y + w))),
		B: clamp255(int(math.Round(b + w))),
	}
}

// RYBToRGB maps an artist-wheel color back to RGB using the mirrored
// redistribution. See RGBToRYB for the approximation caveats.
func RYBToRGB(c RYB) RGB {
	r := float64(clamp255(c.R))
	y := float64(clamp255(c.Y))
	b := float64(clamp255(c.B))

	w := math.Min(r, math.Min(y, b))
	r -= w
	y -= w
	b -= w

	maxYellow := math.Max(r, math.Max(y, b))

	// The portion shared by yellow and blue becomes green.
	g := math.Min(y, b)
	y -= g
	b -= g

	if b > 0 && g > 0 {
		b *= 2
		g *= 2
	}
	r += y
	g += y

	maxGreen := math.Max(r, math.Max(g, b))
	if maxGreen > 0 {
		n := maxYellow / maxGreen
		r *= n
		g *= n
		b *= n
	}

	return RGB{
		R: clamp255(int(math.Round(r + w))),
		G: clamp255(int(math.Round(g + w))),
		B: clamp255(int(math.Round(b + w))),
	}
}
