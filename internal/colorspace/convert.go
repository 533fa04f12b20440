package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL represents a color in HSL (Hue, Saturation, Lightness) space.
type HSL struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// HSV represents a color in HSV (Hue, Saturation, Value) space.
type HSV struct {
	H int `json:"h"` // Hue: 0-359 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	V int `json:"v"` // Value: 0-100 percent (0=black, 100=full intensity)
}

// CMYK represents a color in the subtractive CMYK model.
// Components are in [0,1], rounded to two decimals.
type CMYK struct {
	C float64 `json:"c"` // Cyan
	M float64 `json:"m"` // Magenta
	Y float64 `json:"y"` // Yellow
	K float64 `json:"k"` // Key (black)
}

// YUV represents a color as BT.709 luma plus two chroma components.
// Y is in [0,1], U and V in [-0.5,0.5], all rounded to two decimals.
type YUV struct {
	Y float64 `json:"y"`
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// Lab represents a color in CIELAB space relative to the D65 white point.
// L is in [0,100]; A and B are roughly in [-128,127].
type Lab struct {
	L int `json:"l"`
	A int `json:"a"`
	B int `json:"b"`
}

// RGBToHSL converts RGB to HSL.
//
// Uses the standard max/min decomposition: lightness is the midpoint of the
// extremes, saturation depends on which side of 50% lightness the color
// falls, and hue is selected by the maximal channel. Achromatic colors
// (max == min) short-circuit to hue 0, saturation 0.
func RGBToHSL(c RGB) HSL {
	rf := float64(clamp255(c.R)) / 255.0
	gf := float64(clamp255(c.G)) / 255.0
	bf := float64(clamp255(c.B)) / 255.0

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	l := (max + min) / 2.0

	if max == min {
		return HSL{H: 0, S: 0, L: int(math.Round(l * 100))}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2.0 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	case bf:
		h = (rf-gf)/d + 4
	}
	h *= 60

	return HSL{
		H: wrapHue(int(math.Round(h))),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToRGB converts HSL to RGB using the piecewise hue-to-channel helper.
// Hue is wrapped modulo 360; saturation and lightness are clamped to
// [0,100] before use.
func HSLToRGB(c HSL) RGB {
	h := float64(wrapHue(c.H)) / 360.0
	s := float64(clampPct(c.S)) / 100.0
	l := float64(clampPct(c.L)) / 100.0

	if s == 0 {
		v := int(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: int(math.Round(hueToChannel(p, q, h+1.0/3.0) * 255)),
		G: int(math.Round(hueToChannel(p, q, h) * 255)),
		B: int(math.Round(hueToChannel(p, q, h-1.0/3.0) * 255)),
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
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// RGBToHSV converts RGB to HSV. The hue computation is shared with HSL;
// saturation is d/max and value is the maximal channel.
func RGBToHSV(c RGB) HSV {
	rf := float64(clamp255(c.R)) / 255.0
	gf := float64(clamp255(c.G)) / 255.0
	bf := float64(clamp255(c.B)) / 255.0

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	d := max - min

	if d == 0 {
		return HSV{H: 0, S: 0, V: int(math.Round(max * 100))}
	}

	var h float64
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	case bf:
		h = (rf-gf)/d + 4
	}
	h *= 60

	s := d / max

	return HSV{
		H: wrapHue(int(math.Round(h))),
		S: int(math.Round(s * 100)),
		V: int(math.Round(max * 100)),
	}
}

// HSVToRGB converts HSV to RGB via the six-sector chroma decomposition.
// Hue is wrapped modulo 360; saturation and value are clamped to [0,100].
func HSVToRGB(c HSV) RGB {
	h := float64(wrapHue(c.H))
	s := float64(clampPct(c.S)) / 100.0
	v := float64(clampPct(c.V)) / 100.0

	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - chroma

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = chroma, x, 0
	case h < 120:
		rf, gf, bf = x, chroma, 0
	case h < 180:
		rf, gf, bf = 0, chroma, x
	case h < 240:
		rf, gf, bf = 0, x, chroma
	case h < 300:
		rf, gf, bf = x, 0, chroma
	default:
		rf, gf, bf = chroma, 0, x
	}

	return RGB{
		R: int(math.Round((rf + m) * 255)),
		G: int(math.Round((gf + m) * 255)),
		B: int(math.Round((bf + m) * 255)),
	}
}

// RGBToCMYK converts RGB to CMYK. Pure black (k == 1) returns zero for the
// chromatic components to avoid the divide-by-zero in the general formula.
func RGBToCMYK(c RGB) CMYK {
	rf := float64(clamp255(c.R)) / 255.0
	gf := float64(clamp255(c.G)) / 255.0
	bf := float64(clamp255(c.B)) / 255.0

	k := 1 - math.Max(rf, math.Max(gf, bf))
	if k == 1 {
		return CMYK{C: 0, M: 0, Y: 0, K: 1}
	}

	return CMYK{
		C: round2((1 - rf - k) / (1 - k)),
		M: round2((1 - gf - k) / (1 - k)),
		Y: round2((1 - bf - k) / (1 - k)),
		K: round2(k),
	}
}

// CMYKToRGB converts CMYK to RGB. Components are clamped to [0,1] before use.
func CMYKToRGB(c CMYK) RGB {
	cc := clamp01(c.C)
	mm := clamp01(c.M)
	yy := clamp01(c.Y)
	kk := clamp01(c.K)

	return RGB{
		R: int(math.Round(255 * (1 - cc) * (1 - kk))),
		G: int(math.Round(255 * (1 - mm) * (1 - kk))),
		B: int(math.Round(255 * (1 - yy) * (1 - kk))),
	}
}

// RGBToYUV converts RGB to YUV using the BT.709 luma/chroma matrix.
func RGBToYUV(c RGB) YUV {
	rf := float64(clamp255(c.R)) / 255.0
	gf := float64(clamp255(c.G)) / 255.0
	bf := float64(clamp255(c.B)) / 255.0

	y := 0.2126*rf + 0.7152*gf + 0.0722*bf
	u := -0.09991*rf - 0.33609*gf + 0.436*bf
	v := 0.615*rf - 0.55861*gf - 0.05639*bf

	return YUV{Y: round2(y), U: round2(u), V: round2(v)}
}

// YUVToRGB converts YUV back to RGB. Channel results are clamped to [0,1]
// before scaling to 255, so out-of-gamut chroma never wraps.
func YUVToRGB(c YUV) RGB {
	rf := c.Y + 1.13983*c.V
	gf := c.Y - 0.39465*c.U - 0.5806*c.V
	bf := c.Y + 2.03211*c.U

	return RGB{
		R: int(math.Round(clamp01(rf) * 255)),
		G: int(math.Round(clamp01(gf) * 255)),
		B: int(math.Round(clamp01(bf) * 255)),
	}
}

// RGBToLab converts RGB to CIELAB relative to the D65 white point: sRGB
// gamma linearization, linear RGB to XYZ through the sRGB matrix, then the
// standard cube-root piecewise into Lab. Components are rounded to integers.
//
// There is intentionally no LabToRGB inverse in this package.
func RGBToLab(c RGB) Lab {
	cf := colorful.Color{
		R: float64(clamp255(c.R)) / 255.0,
		G: float64(clamp255(c.G)) / 255.0,
		B: float64(clamp255(c.B)) / 255.0,
	}
	// go-colorful reports Lab on a 0-1 scale for L and ~(-1,1) for a/b.
	l, a, b := cf.Lab()
	return Lab{
		L: int(math.Round(l * 100)),
		A: int(math.Round(a * 100)),
		B: int(math.Round(b * 100)),
	}
}

// wrapHue wraps a hue in degrees into [0,360). The +360 offset keeps small
// negative inputs non-negative before the modulo.
func wrapHue(h int) int {
	return ((h % 360) + 360) % 360
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
