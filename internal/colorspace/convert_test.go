package colorspace

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{"six digit with hash", "#FF8040", RGB{255, 128, 64}},
		{"six digit without hash", "FF8040", RGB{255, 128, 64}},
		{"lowercase", "#ff8040", RGB{255, 128, 64}},
		{"three digit shorthand", "#F80", RGB{255, 136, 0}},
		{"three digit without hash", "f80", RGB{255, 136, 0}},
		{"white", "#FFFFFF", RGB{255, 255, 255}},
		{"black", "#000000", RGB{0, 0, 0}},
		{"malformed falls back to black", "not-a-color", RGB{0, 0, 0}},
		{"wrong length falls back to black", "#FFFF", RGB{0, 0, 0}},
		{"empty falls back to black", "", RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHex(tt.input))
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	// Exact round trip must hold for every channel combination; a stepped
	// sweep plus the extremes covers the formatting and parsing paths.
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				c := RGB{R: r, G: g, B: b}
				require.Equal(t, c, ParseHex(c.Hex()), "round trip for %v", c)
			}
		}
	}
	require.Equal(t, RGB{255, 255, 255}, ParseHex(RGB{255, 255, 255}.Hex()))
}

func TestRGBToHSL_KnownColors(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSL
	}{
		{"red", RGB{255, 0, 0}, HSL{0, 100, 50}},
		{"green", RGB{0, 255, 0}, HSL{120, 100, 50}},
		{"blue", RGB{0, 0, 255}, HSL{240, 100, 50}},
		{"white", RGB{255, 255, 255}, HSL{0, 0, 100}},
		{"black", RGB{0, 0, 0}, HSL{0, 0, 0}},
		{"gray", RGB{128, 128, 128}, HSL{0, 0, 50}},
		{"yellow", RGB{255, 255, 0}, HSL{60, 100, 50}},
		{"cyan", RGB{0, 255, 255}, HSL{180, 100, 50}},
		{"magenta", RGB{255, 0, 255}, HSL{300, 100, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBToHSL(tt.in))
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	// Integer quantization of H/S/L loses a little precision; canonical
	// colors must come back within one unit per channel.
	colors := []RGB{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{255, 255, 0}, {0, 255, 255}, {255, 0, 255},
		{255, 255, 255}, {0, 0, 0}, {128, 128, 128},
		{250, 128, 114}, {70, 130, 180}, {154, 205, 50},
	}
	for _, c := range colors {
		got := HSLToRGB(RGBToHSL(c))
		assert.InDelta(t, c.R, got.R, 1, "R for %v", c)
		assert.InDelta(t, c.G, got.G, 1, "G for %v", c)
		assert.InDelta(t, c.B, got.B, 1, "B for %v", c)
	}

	// Across the full cube the hue rounding can cost one more unit.
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				c := RGB{R: r, G: g, B: b}
				got := HSLToRGB(RGBToHSL(c))
				require.InDelta(t, c.R, got.R, 2, "R for %v", c)
				require.InDelta(t, c.G, got.G, 2, "G for %v", c)
				require.InDelta(t, c.B, got.B, 2, "B for %v", c)
			}
		}
	}
}

func TestHSLToRGB_AchromaticGray(t *testing.T) {
	// Zero saturation must yield a pure gray derived from lightness alone,
	// regardless of hue.
	for _, h := range []int{0, 45, 120, 300, 359, 720, -90} {
		for _, l := range []int{0, 10, 37, 50, 83, 100} {
			got := HSLToRGB(HSL{H: h, S: 0, L: l})
			want := int(float64(l)/100.0*255 + 0.5)
			assert.Equal(t, RGB{want, want, want}, got, "h=%d l=%d", h, l)
		}
	}
}

func TestRGBToHSV_KnownColors(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSV
	}{
		{"red", RGB{255, 0, 0}, HSV{0, 100, 100}},
		{"green", RGB{0, 255, 0}, HSV{120, 100, 100}},
		{"blue", RGB{0, 0, 255}, HSV{240, 100, 100}},
		{"white", RGB{255, 255, 255}, HSV{0, 0, 100}},
		{"black", RGB{0, 0, 0}, HSV{0, 0, 0}},
		{"half red", RGB{128, 0, 0}, HSV{0, 100, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBToHSV(tt.in))
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				c := RGB{R: r, G: g, B: b}
				got := HSVToRGB(RGBToHSV(c))
				require.InDelta(t, c.R, got.R, 2, "R for %v", c)
				require.InDelta(t, c.G, got.G, 2, "G for %v", c)
				require.InDelta(t, c.B, got.B, 2, "B for %v", c)
			}
		}
	}
}

func TestRGBToCMYK(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want CMYK
	}{
		{"pure black avoids divide by zero", RGB{0, 0, 0}, CMYK{0, 0, 0, 1}},
		{"white", RGB{255, 255, 255}, CMYK{0, 0, 0, 0}},
		{"red", RGB{255, 0, 0}, CMYK{0, 1, 1, 0}},
		{"green", RGB{0, 255, 0}, CMYK{1, 0, 1, 0}},
		{"blue", RGB{0, 0, 255}, CMYK{1, 1, 0, 0}},
		{"mid gray", RGB{128, 128, 128}, CMYK{0, 0, 0, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBToCMYK(tt.in))
		})
	}
}

func TestCMYKToRGB(t *testing.T) {
	assert.Equal(t, RGB{255, 255, 255}, CMYKToRGB(CMYK{0, 0, 0, 0}))
	assert.Equal(t, RGB{0, 0, 0}, CMYKToRGB(CMYK{0, 0, 0, 1}))
	assert.Equal(t, RGB{255, 0, 0}, CMYKToRGB(CMYK{0, 1, 1, 0}))
	// Out-of-range components are clamped, not rejected.
	assert.Equal(t, RGB{255, 255, 255}, CMYKToRGB(CMYK{-1, -1, -1, -0.5}))
}

func TestRGBToYUV(t *testing.T) {
	// BT.709 luma weights: white is full luma with zero chroma.
	assert.Equal(t, YUV{1, 0, 0}, RGBToYUV(RGB{255, 255, 255}))
	assert.Equal(t, YUV{0, 0, 0}, RGBToYUV(RGB{0, 0, 0}))

	red := RGBToYUV(RGB{255, 0, 0})
	assert.InDelta(t, 0.21, red.Y, 0.001)
	assert.InDelta(t, -0.10, red.U, 0.001)
	assert.InDelta(t, 0.62, red.V, 0.001)
}

func TestYUVToRGB_Clamped(t *testing.T) {
	// Out-of-gamut chroma clamps to the RGB cube instead of wrapping.
	c := YUVToRGB(YUV{Y: 1, U: 0.5, V: 0.5})
	assert.Equal(t, 255, c.R)
	assert.Equal(t, 255, c.B)
	assert.GreaterOrEqual(t, c.G, 0)

	assert.Equal(t, RGB{0, 0, 0}, YUVToRGB(YUV{Y: 0, U: 0, V: 0}))
	assert.Equal(t, RGB{255, 255, 255}, YUVToRGB(YUV{Y: 1, U: 0, V: 0}))
}

func TestRGBToLab(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want Lab
	}{
		{"white", RGB{255, 255, 255}, Lab{100, 0, 0}},
		{"black", RGB{0, 0, 0}, Lab{0, 0, 0}},
		{"red", RGB{255, 0, 0}, Lab{53, 80, 67}},
		{"green", RGB{0, 255, 0}, Lab{88, -86, 83}},
		{"blue", RGB{0, 0, 255}, Lab{32, 79, -108}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToLab(tt.in)
			assert.InDelta(t, tt.want.L, got.L, 1)
			assert.InDelta(t, tt.want.A, got.A, 1)
			assert.InDelta(t, tt.want.B, got.B, 1)
		})
	}
}

func TestRGBToRYB(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want RYB
	}{
		{"red stays red", RGB{255, 0, 0}, RYB{255, 0, 0}},
		{"green becomes yellow plus blue", RGB{0, 255, 0}, RYB{0, 255, 255}},
		{"blue stays blue", RGB{0, 0, 255}, RYB{0, 0, 255}},
		{"white is preserved", RGB{255, 255, 255}, RYB{255, 255, 255}},
		{"black is preserved", RGB{0, 0, 0}, RYB{0, 0, 0}},
		{"yellow", RGB{255, 255, 0}, RYB{0, 255, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBToRYB(tt.in))
		})
	}
}

func TestRYBToRGB_Primaries(t *testing.T) {
	assert.Equal(t, RGB{255, 0, 0}, RYBToRGB(RYB{255, 0, 0}))
	assert.Equal(t, RGB{0, 0, 255}, RYBToRGB(RYB{0, 0, 255}))
	// Yellow on the artist wheel maps back to RGB yellow.
	assert.Equal(t, RGB{255, 255, 0}, RYBToRGB(RYB{0, 255, 0}))
	assert.Equal(t, RGB{255, 255, 255}, RYBToRGB(RYB{255, 255, 255}))
}

func TestBrightness(t *testing.T) {
	assert.Equal(t, 0, RGB{0, 0, 0}.Brightness())
	assert.Equal(t, 255, RGB{255, 255, 255}.Brightness())
	assert.Equal(t, 76, RGB{255, 0, 0}.Brightness())
	assert.Equal(t, 149, RGB{0, 255, 0}.Brightness())
	assert.Equal(t, 29, RGB{0, 0, 255}.Brightness())
}

func TestContrastText(t *testing.T) {
	assert.Equal(t, "#FFFFFF", RGB{0, 0, 0}.ContrastText())
	assert.Equal(t, "#000000", RGB{255, 255, 255}.ContrastText())
	assert.Equal(t, "#FFFFFF", RGB{255, 0, 0}.ContrastText())
	assert.Equal(t, "#000000", RGB{0, 255, 0}.ContrastText())
}

func TestHueWrapping(t *testing.T) {
	// Hue wraps modulo 360 with a +360 offset so negatives stay valid.
	a := HSLToRGB(HSL{H: -120, S: 100, L: 50})
	b := HSLToRGB(HSL{H: 240, S: 100, L: 50})
	assert.Equal(t, b, a)

	c := HSVToRGB(HSV{H: 420, S: 100, V: 100})
	d := HSVToRGB(HSV{H: 60, S: 100, V: 100})
	assert.Equal(t, d, c)
}

func ExampleRGB_Hex() {
	fmt.Println(RGB{R: 255, G: 128, B: 64}.Hex())
	// Output: #FF8040
}
