package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"log"
	"os"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WEBP format decoder
)

// ErrNotFound marks recoverable lookup failures: coordinates outside a
// buffer, sources that cannot be decoded, or empty sampling regions.
// Callers check it with errors.Is and degrade instead of aborting.
var ErrNotFound = errors.New("not found")

// DefaultCacheCapacity is the buffer count a cache holds unless the caller
// asks for a different capacity.
const DefaultCacheCapacity = 10

// PixelBuffer is a decoded image as raw RGBA8888 bytes.
//
// Pix holds width*height*4 bytes in R, G, B, A order, row-major from the
// top-left. Buffers are immutable once produced; samplers and clusterers
// borrow them read-only. The owning BufferCache drops references on
// eviction, and the buffer is reclaimed once borrowers finish.
type PixelBuffer struct {
	Pix    []uint8 // RGBA8888, length = Width*Height*4
	Width  int
	Height int
}

// Contains reports whether (x, y) is inside the buffer.
func (b *PixelBuffer) Contains(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Image reconstructs a standard library image view over the pixel data.
// The returned image shares Pix and must be treated as read-only.
func (b *PixelBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// FromImage converts a decoded image into a PixelBuffer, normalizing any
// source color model to non-premultiplied RGBA8888.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return &PixelBuffer{
		Pix:    dst.Pix,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
}

// BufferCache caches decoded pixel buffers keyed by image URI.
//
// The cache is bounded: once it holds its capacity of buffers, inserting a
// new one evicts the entry that was inserted first. Hits deliberately do not
// refresh an entry's insertion position (FIFO, not LRU), so a frequently
// read buffer still ages out on schedule.
//
// Methods are safe for concurrent use. Two goroutines loading the same
// uncached URI may both decode it; that is wasteful but harmless, since both
// decodes yield identical bytes and the last insert wins.
type BufferCache struct {
	mu       sync.RWMutex
	buffers  map[string]*PixelBuffer
	order    []string // insertion order, oldest first
	capacity int
}

// NewBufferCache creates a cache holding at most capacity buffers.
// Non-positive capacities fall back to DefaultCacheCapacity.
func NewBufferCache(capacity int) *BufferCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &BufferCache{
		buffers:  make(map[string]*PixelBuffer),
		capacity: capacity,
	}
}

// Load returns the pixel buffer for an image URI, decoding and caching it
// on first use.
//
// The URI is a filesystem path, optionally prefixed with the file:// scheme
// that camera and gallery handles commonly carry. Supported formats are
// PNG, JPEG, GIF, WEBP, BMP, and TIFF.
//
// A source that cannot be read or decoded fails with an error wrapping
// ErrNotFound (and is logged); callers may retry with a different source.
func (c *BufferCache) Load(uri string) (*PixelBuffer, error) {
	c.mu.RLock()
	if buf, ok := c.buffers[uri]; ok {
		c.mu.RUnlock()
		return buf, nil
	}
	c.mu.RUnlock()

	buf, err := decodeURI(uri)
	if err != nil {
		log.Printf("decode failed for %q: %v", uri, err)
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	c.mu.Lock()
	if _, exists := c.buffers[uri]; !exists {
		if len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.buffers, oldest)
		}
		c.order = append(c.order, uri)
	}
	c.buffers[uri] = buf
	c.mu.Unlock()

	return buf, nil
}

// Dimensions returns the width and height of the image at uri, loading it
// into the cache if needed.
func (c *BufferCache) Dimensions(uri string) (width, height int, err error) {
	buf, err := c.Load(uri)
	if err != nil {
		return 0, 0, err
	}
	return buf.Width, buf.Height, nil
}

// Contains reports whether uri is currently cached, without loading it.
func (c *BufferCache) Contains(uri string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.buffers[uri]
	return ok
}

// Len returns the number of cached buffers.
func (c *BufferCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.buffers)
}

// Evict removes a single URI from the cache. Unknown URIs are ignored.
func (c *BufferCache) Evict(uri string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.buffers[uri]; !ok {
		return
	}
	delete(c.buffers, uri)
	for i, u := range c.order {
		if u == uri {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cache. Callers invoke this at teardown points (screen
// unmount, end of a batch) to bound memory.
func (c *BufferCache) Clear() {
	c.mu.Lock()
	c.buffers = make(map[string]*PixelBuffer)
	c.order = nil
	c.mu.Unlock()
}

func decodeURI(uri string) (*PixelBuffer, error) {
	path := strings.TrimPrefix(uri, "file://")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}
