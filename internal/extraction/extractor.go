// Package extraction selects between the two ways of reading a color at a
// point: the exact direct-pixel path over a decoded buffer, and a degraded
// heuristic path for sources where direct pixel access is unavailable.
package extraction

import (
	"github.com/tdhoang/color-tools-mcp/internal/imaging"
)

// PointExtractor reads the color at a pixel coordinate of an image URI.
//
// Implementations differ in accuracy: Direct reads the exact pixel from a
// decoded buffer, Heuristic approximates it from re-encoded bytes. Callers
// pick an implementation with Select and should not assume both produce
// identical results.
type PointExtractor interface {
	ColorAt(uri string, x, y int) (*imaging.Sample, error)
}

// Direct is the exact extractor: it decodes the source into a cached pixel
// buffer and reads the addressed pixel.
type Direct struct {
	cache *imaging.BufferCache
}

// NewDirect creates a Direct extractor backed by the given cache.
func NewDirect(cache *imaging.BufferCache) *Direct {
	return &Direct{cache: cache}
}

// ColorAt returns the exact color at (x, y). Failures wrap
// imaging.ErrNotFound (undecodable source or out-of-bounds coordinate).
func (d *Direct) ColorAt(uri string, x, y int) (*imaging.Sample, error) {
	buf, err := d.cache.Load(uri)
	if err != nil {
		return nil, err
	}
	return imaging.PointColor(buf, x, y)
}

// Select returns the extractor to use for a URI: Direct when the source
// decodes into a pixel buffer, the Heuristic fallback otherwise.
//
// The probe is a cache load, so selecting Direct also warms the cache for
// the sampling call that follows.
func Select(cache *imaging.BufferCache, uri string) PointExtractor {
	if _, err := cache.Load(uri); err == nil {
		return NewDirect(cache)
	}
	return NewHeuristic()
}
