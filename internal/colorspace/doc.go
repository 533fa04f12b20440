// Package colorspace converts colors between the models used by the color
// tools: hex strings, RGB, HSL, HSV, CMYK, YUV, CIELAB, and the RYB artist
// color wheel.
//
// All conversion functions are pure: they take numeric inputs, return a value
// in the target model, and never perform I/O. Out-of-range inputs are clamped
// (saturation, lightness, CMYK components) or wrapped (hue, modulo 360)
// rather than rejected, so every function is total over its input type.
//
// # Value Domains
//
//   - RGB: components 0-255.
//   - HSL/HSV: hue 0-359 degrees, saturation/lightness/value 0-100 percent.
//   - CMYK: components 0-1, rounded to two decimals.
//   - YUV: luma 0-1, chroma -0.5 to 0.5, rounded to two decimals (BT.709 luma).
//   - Lab: L 0-100, a/b roughly -128 to 127, D65 white point.
//   - RYB: components 0-255.
//
// # Asymmetries
//
// RGB→Lab is one-directional; no Lab→RGB conversion is provided. The RYB
// transform is an approximation of the artist color wheel, not a colorimetric
// standard, and RGB→RYB→RGB round trips are not guaranteed to be lossless.
package colorspace
