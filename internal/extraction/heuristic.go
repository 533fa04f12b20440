package extraction

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"strings"

	"github.com/anthonynsimon/bild/transform"

	"github.com/tdhoang/color-tools-mcp/internal/imaging"
)

const (
	// cropRadius gives the 3x3 micro-region read around the target point.
	cropRadius = 1

	// upscaleSize is the canvas the micro-region is stretched to before
	// re-encoding, so the sampled color survives lossy compression.
	upscaleSize = 96

	// maxAcceptedTriplets caps how many candidate samples are averaged.
	maxAcceptedTriplets = 100
)

// Heuristic is the degraded-accuracy extractor used when direct pixel
// decoding is unavailable.
//
// It crops a 3x3 micro-region around the requested point, upscales it to a
// larger canvas, re-encodes it as JPEG, and scans the encoded byte stream
// for plausible RGB triplets, averaging what it finds. Compressed bytes are
// not pixels, so this is an estimate: expect the result to be near the true
// color, not equal to it. Prefer Direct whenever the source decodes.
type Heuristic struct{}

// NewHeuristic creates the fallback extractor.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// ColorAt approximates the color at (x, y).
//
// When even the crop source cannot be decoded, the raw file bytes are
// scanned directly, trading more accuracy for still answering. If no byte
// triplet passes the plausibility filters, a neutral gray (128,128,128) is
// returned rather than failing.
func (h *Heuristic) ColorAt(uri string, x, y int) (*imaging.Sample, error) {
	path := strings.TrimPrefix(uri, "file://")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", imaging.ErrNotFound, err)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		// No decode path at all: scan the original byte stream.
		return scanTriplets(raw), nil
	}

	encoded, err := encodeMicroRegion(src, x, y)
	if err != nil {
		return scanTriplets(raw), nil
	}
	return scanTriplets(encoded), nil
}

// encodeMicroRegion crops the 3x3 region around (x, y), clamped to the
// image, upscales it with nearest-neighbor so one source pixel spans many
// output pixels, and re-encodes the result as JPEG.
func encodeMicroRegion(src image.Image, x, y int) ([]byte, error) {
	bounds := src.Bounds()
	x = clampInt(x, bounds.Min.X, bounds.Max.X-1)
	y = clampInt(y, bounds.Min.Y, bounds.Max.Y-1)

	x1 := clampInt(x-cropRadius, bounds.Min.X, bounds.Max.X-1)
	y1 := clampInt(y-cropRadius, bounds.Min.Y, bounds.Max.Y-1)
	x2 := clampInt(x+cropRadius+1, x1+1, bounds.Max.X)
	y2 := clampInt(y+cropRadius+1, y1+1, bounds.Max.Y)

	crop := transform.Crop(src, image.Rect(x1, y1, x2, y2))
	big := transform.Resize(crop, upscaleSize, upscaleSize, transform.NearestNeighbor)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, big, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// scanTriplets walks a byte stream three bytes at a time, keeps triplets
// that look like color data, and averages them.
//
// Rejected triplets: pure black and pure white (padding), near-extreme
// grays (structure bytes), and ASCII-range triplets whose channel spread is
// 30 or less (metadata text masquerading as muted color).
func scanTriplets(data []byte) *imaging.Sample {
	var sumR, sumG, sumB, count int

	for i := 0; i+2 < len(data) && count < maxAcceptedTriplets; i += 3 {
		r, g, b := int(data[i]), int(data[i+1]), int(data[i+2])

		if plausibleTriplet(r, g, b) {
			sumR += r
			sumG += g
			sumB += b
			count++
		}
	}

	if count == 0 {
		return &imaging.Sample{R: 128, G: 128, B: 128, A: 255}
	}
	return &imaging.Sample{
		R: uint8(sumR / count),
		G: uint8(sumG / count),
		B: uint8(sumB / count),
		A: 255,
	}
}

func plausibleTriplet(r, g, b int) bool {
	// Padding and marker runs.
	if r == 0 && g == 0 && b == 0 {
		return false
	}
	if r == 255 && g == 255 && b == 255 {
		return false
	}
	// Near-extreme grays are overwhelmingly structural bytes.
	if r == g && g == b && (r < 16 || r > 239) {
		return false
	}
	// ASCII text: all printable with a small channel spread.
	spread := max(r, g, b) - min(r, g, b)
	if spread <= 30 && inASCIIRange(r) && inASCIIRange(g) && inASCIIRange(b) {
		return false
	}
	return true
}

func inASCIIRange(v int) bool { return v >= 32 && v <= 126 }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
