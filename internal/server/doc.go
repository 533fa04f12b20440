// Package server implements the MCP (Model Context Protocol) server for the
// color extraction tools.
//
// This package provides a JSON-RPC 2.0 server that exposes color sampling and
// colorimetry capabilities through the MCP protocol. It's designed to work
// with Claude and other MCP-compatible clients, enabling AI systems to inspect
// image colors with precision.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// The server provides 12 color tools organized into categories:
//
// Basic Image Information:
//   - image_load: Decode an image into the buffer cache
//   - image_dimensions: Get width and height
//
// Color Sampling:
//   - image_sample_color: Get color at a pixel, with heuristic fallback
//   - image_sample_colors_multi: Sample multiple points
//   - image_center_color: Sample the image center
//   - image_region_average: Average a square region
//   - image_grid_sample: Sample evenly spaced interior points
//
// Palette Extraction:
//   - image_palette: Extract a palette (dominant, adaptive or perceptual)
//
// Region Preview:
//   - image_preview: Crop and scale a region to base64 PNG
//
// Color Utilities:
//   - color_convert: Convert between color models
//   - color_name: Find the nearest named color (English and Vietnamese)
//
// Cache Management:
//   - cache_clear: Evict all cached pixel buffers
//
// Sampled colors are returned expanded to every supported model (hex, RGB,
// HSL, HSV, CMYK, YUV, Lab, RYB) together with the nearest color name, a
// brightness estimate, and a suggested contrasting text color.
//
// # Buffer Caching
//
// The server maintains an in-memory cache of decoded pixel buffers. Buffers
// are cached by URI and reused across multiple tool calls, avoiding redundant
// decoding. The cache holds a bounded number of buffers and evicts the oldest
// entry first when full.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv, err := server.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
