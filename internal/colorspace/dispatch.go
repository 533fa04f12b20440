package colorspace

import (
	"errors"
	"fmt"
)

// Format identifies a color model for the generic Convert dispatcher.
type Format string

// Recognized format tags.
const (
	FormatHex  Format = "hex"
	FormatRGB  Format = "rgb"
	FormatHSL  Format = "hsl"
	FormatHSV  Format = "hsv"
	FormatCMYK Format = "cmyk"
	FormatYUV  Format = "yuv"
	FormatLab  Format = "lab"
	FormatRYB  Format = "ryb"
)

// ErrUnsupportedFormat is returned by Convert when asked to convert from or
// to a format tag it does not recognize, or when the value's type does not
// match its declared format. This indicates a programming error in the
// caller, not bad runtime data.
var ErrUnsupportedFormat = errors.New("unsupported color format")

// Convert converts value from one color model to another, routing through
// RGB as the hub representation.
//
// The value's dynamic type must match the from tag: string for hex, RGB for
// rgb, HSL for hsl, HSV for hsv, CMYK for cmyk, YUV for yuv, RYB for ryb.
// Lab is a valid target but not a valid source (the Lab conversion is
// one-directional).
//
// Unknown tags and mismatched value types fail with an error wrapping
// ErrUnsupportedFormat; in-range conversions never fail.
func Convert(value any, from, to Format) (any, error) {
	rgb, err := toRGB(value, from)
	if err != nil {
		return nil, err
	}
	return fromRGB(rgb, to)
}

func toRGB(value any, from Format) (RGB, error) {
	switch from {
	case FormatHex:
		s, ok := value.(string)
		if !ok {
			return RGB{}, fmt.Errorf("%w: hex value must be a string, got %T", ErrUnsupportedFormat, value)
		}
		return ParseHex(s), nil
	case FormatRGB:
		c, ok := value.(RGB)
		if !ok {
			return RGB{}, fmt.Errorf("%w: rgb value must be colorspace.RGB, got %T", ErrUnsupportedFormat, value)
		}
		return c, nil
	case FormatHSL:
		c, ok := value.(HSL)
		if !ok {
			return RGB{}, fmt.Errorf("%w: hsl value must be colorspace.HSL, got %T", ErrUnsupportedFormat, value)
		}
		return HSLToRGB(c), nil
	case FormatHSV:
		c, ok := value.(HSV)
		if !ok {
			return RGB{}, fmt.Errorf("%w: hsv value must be colorspace.HSV, got %T", ErrUnsupportedFormat, value)
		}
		return HSVToRGB(c), nil
	case FormatCMYK:
		c, ok := value.(CMYK)
		if !ok {
			return RGB{}, fmt.Errorf("%w: cmyk value must be colorspace.CMYK, got %T", ErrUnsupportedFormat, value)
		}
		return CMYKToRGB(c), nil
	case FormatYUV:
		c, ok := value.(YUV)
		if !ok {
			return RGB{}, fmt.Errorf("%w: yuv value must be colorspace.YUV, got %T", ErrUnsupportedFormat, value)
		}
		return YUVToRGB(c), nil
	case FormatRYB:
		c, ok := value.(RYB)
		if !ok {
			return RGB{}, fmt.Errorf("%w: ryb value must be colorspace.RYB, got %T", ErrUnsupportedFormat, value)
		}
		return RYBToRGB(c), nil
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, from)
	}
}

func fromRGB(c RGB, to Format) (any, error) {
	switch to {
	case FormatHex:
		return c.Hex(), nil
	case FormatRGB:
		return c, nil
	case FormatHSL:
		return RGBToHSL(c), nil
	case FormatHSV:
		return RGBToHSV(c), nil
	case FormatCMYK:
		return RGBToCMYK(c), nil
	case FormatYUV:
		return RGBToYUV(c), nil
	case FormatLab:
		return RGBToLab(c), nil
	case FormatRYB:
		return RGBToRYB(c), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, to)
	}
}

// Expansion holds one color in every representation this package supports.
// It is the payload handed back to tool callers after a sampling or
// conversion operation.
type Expansion struct {
	Hex  string `json:"hex"`
	RGB  RGB    `json:"rgb"`
	HSL  HSL    `json:"hsl"`
	HSV  HSV    `json:"hsv"`
	CMYK CMYK   `json:"cmyk"`
	YUV  YUV    `json:"yuv"`
	Lab  Lab    `json:"lab"`
	RYB  RYB    `json:"ryb"`
}

// Expand converts an RGB color into all supported representations.
func Expand(c RGB) Expansion {
	return Expansion{
		Hex:  c.Hex(),
		RGB:  c,
		HSL:  RGBToHSL(c),
		HSV:  RGBToHSV(c),
		CMYK: RGBToCMYK(c),
		YUV:  RGBToYUV(c),
		Lab:  RGBToLab(c),
		RYB:  RGBToRYB(c),
	}
}
