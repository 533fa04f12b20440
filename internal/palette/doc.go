// Package palette derives ranked lists of representative colors from whole
// pixel buffers.
//
// Three strategies are provided:
//
//   - Dominant: frequency quantization. Channels are bucketed to 32-wide
//     ranges and tallied in a histogram; the most populated buckets win.
//   - Adaptive: grid-seeded clustering with a single assignment pass. This
//     is deliberately not iterative k-means — there is no convergence loop,
//     and the single-pass output distribution is part of the contract.
//   - Perceptual: luminance-weighted quantization with channel-specific
//     bucket widths (finer for green, where human sensitivity is highest).
//
// All strategies skip pixels the caller would not see (alpha below 128,
// where stated), return at most the requested number of colors ranked by
// descending significance, and yield an empty slice — never an error — for
// a nil or empty buffer.
package palette
