// Package imaging owns decoded pixel data: it loads image URIs into raw
// RGBA8888 buffers, caches them under a bounded FIFO policy, and samples
// colors from them at points, over regions, and across grids.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// A pixel's bytes live at offset (y*width+x)*4 in a buffer, in R, G, B, A
// order.
//
// # Caching
//
// BufferCache holds at most a fixed number of decoded buffers (default 10)
// and evicts the oldest-inserted entry when full. Eviction is strictly FIFO:
// a cache hit does not refresh an entry's position. Callers own the cache
// lifecycle and should call Clear at teardown to bound memory.
//
// # Error Handling
//
// Lookups that can simply miss — out-of-bounds coordinates, undecodable
// sources, empty regions — fail with errors wrapping ErrNotFound so callers
// can degrade to a "no color" state instead of aborting. Nothing in this
// package panics on bad input.
package imaging
