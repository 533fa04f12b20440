package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// PreviewResult contains a cropped region of a pixel buffer re-encoded as
// base64 PNG, for callers that want to show the area around a sampled point.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Preview extracts the rectangle (x1,y1)-(x2,y2) from a buffer, optionally
// scales it, and returns it as base64-encoded PNG.
//
// The region must be non-empty and inside the buffer; violations fail with
// ErrNotFound. A scale of 1.0 (or any non-positive value) leaves the crop
// at its natural size.
func Preview(buf *PixelBuffer, x1, y1, x2, y2 int, scale float64) (*PreviewResult, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: no pixel buffer", ErrNotFound)
	}
	if x1 < 0 || y1 < 0 || x2 > buf.Width || y2 > buf.Height {
		return nil, fmt.Errorf("%w: region (%d,%d)-(%d,%d) outside %dx%d buffer",
			ErrNotFound, x1, y1, x2, y2, buf.Width, buf.Height)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("%w: invalid region: x1 must be < x2, y1 must be < y2", ErrNotFound)
	}

	cropped := imaging.Crop(buf.Image(), image.Rect(x1, y1, x2, y2))

	if scale > 0 && scale != 1.0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	var out bytes.Buffer
	if err := png.Encode(&out, cropped); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(out.Bytes()),
		MimeType:    "image/png",
	}, nil
}
