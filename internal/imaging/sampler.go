package imaging

import "fmt"

// Sample is a single sampled color with 8-bit RGBA components.
//
// Alpha is 255 (fully opaque) unless the source pixel carried transparency.
type Sample struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// Hex formats the sample as "#RRGGBB" (alpha excluded).
func (s Sample) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", s.R, s.G, s.B)
}

// PointColor returns the color at an exact pixel coordinate.
//
// Out-of-bounds coordinates, a nil buffer, or a pixel offset past the end
// of the byte slice fail with ErrNotFound rather than panicking.
func PointColor(buf *PixelBuffer, x, y int) (*Sample, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: no pixel buffer", ErrNotFound)
	}
	if !buf.Contains(x, y) {
		return nil, fmt.Errorf("%w: coordinates (%d,%d) outside %dx%d buffer",
			ErrNotFound, x, y, buf.Width, buf.Height)
	}
	i := (y*buf.Width + x) * 4
	if i+3 >= len(buf.Pix) {
		return nil, fmt.Errorf("%w: pixel offset %d beyond buffer", ErrNotFound, i)
	}
	return &Sample{
		R: buf.Pix[i],
		G: buf.Pix[i+1],
		B: buf.Pix[i+2],
		A: buf.Pix[i+3],
	}, nil
}

// CenterColor returns the color at the buffer's center pixel
// (width/2, height/2, integer floor).
func CenterColor(buf *PixelBuffer) (*Sample, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: no pixel buffer", ErrNotFound)
	}
	return PointColor(buf, buf.Width/2, buf.Height/2)
}

// RegionAverage returns the arithmetic mean color of the square region
// [cx-radius, cx+radius] x [cy-radius, cy+radius], clipped to the buffer.
//
// Only a fully out-of-bounds center (empty clipped region) fails with
// ErrNotFound; a region partially off the edge averages what remains.
func RegionAverage(buf *PixelBuffer, cx, cy, radius int) (*Sample, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: no pixel buffer", ErrNotFound)
	}
	if !buf.Contains(cx, cy) {
		return nil, fmt.Errorf("%w: center (%d,%d) outside %dx%d buffer",
			ErrNotFound, cx, cy, buf.Width, buf.Height)
	}
	if radius < 0 {
		radius = 0
	}

	x1 := max(0, cx-radius)
	y1 := max(0, cy-radius)
	x2 := min(buf.Width-1, cx+radius)
	y2 := min(buf.Height-1, cy+radius)

	var sumR, sumG, sumB, sumA, count uint64
	for y := y1; y <= y2; y++ {
		row := y * buf.Width * 4
		for x := x1; x <= x2; x++ {
			i := row + x*4
			sumR += uint64(buf.Pix[i])
			sumG += uint64(buf.Pix[i+1])
			sumB += uint64(buf.Pix[i+2])
			sumA += uint64(buf.Pix[i+3])
			count++
		}
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: empty region", ErrNotFound)
	}
	return &Sample{
		R: uint8(sumR / count),
		G: uint8(sumG / count),
		B: uint8(sumB / count),
		A: uint8(sumA / count),
	}, nil
}

// GridSample returns colors at gridSize x gridSize evenly spaced interior
// points. The step is dimension/(gridSize+1) on each axis, so the grid sits
// inside the image rather than on its edges. Computed points that fall
// outside the buffer are skipped, so the result may hold fewer than
// gridSize*gridSize samples. A nil buffer or non-positive grid size yields
// an empty slice.
func GridSample(buf *PixelBuffer, gridSize int) []Sample {
	if buf == nil || gridSize <= 0 || buf.Width == 0 || buf.Height == 0 {
		return nil
	}

	stepX := buf.Width / (gridSize + 1)
	stepY := buf.Height / (gridSize + 1)

	samples := make([]Sample, 0, gridSize*gridSize)
	for gy := 1; gy <= gridSize; gy++ {
		for gx := 1; gx <= gridSize; gx++ {
			s, err := PointColor(buf, gx*stepX, gy*stepY)
			if err != nil {
				continue
			}
			samples = append(samples, *s)
		}
	}
	return samples
}

// LabeledPoint is a pixel coordinate with an optional descriptive label,
// used when sampling several points in one call.
type LabeledPoint struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// LabeledSample pairs a sampled color with the point it came from.
type LabeledSample struct {
	Label string `json:"label,omitempty"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color Sample `json:"color"`
}

// SamplePointsMulti samples several coordinates in one pass, returning
// results in input order. Any out-of-bounds point fails the whole call with
// ErrNotFound; no partial results are returned.
func SamplePointsMulti(buf *PixelBuffer, points []LabeledPoint) ([]LabeledSample, error) {
	results := make([]LabeledSample, 0, len(points))
	for _, p := range points {
		s, err := PointColor(buf, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledSample{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *s,
		})
	}
	return results, nil
}
