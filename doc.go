// Package reshape adapts client-supplied pixel data to the channel layout
// and component type a graphics device accepts.
//
// # Overview
//
// Clients commonly submit 3-channel (RGB) image data while device backends
// want 4-channel (RGBA) data, often with a different component type on each
// side. reshape performs the bridging transform: channel padding and
// truncation, optional BGRA↔RGBA swizzling, and proportional numeric
// rescaling between component types, row by row with independent source and
// destination strides.
//
// # Quick Start
//
//	import "github.com/gogpu/reshape"
//
//	// Widen packed RGB bytes to RGBA (alpha filled with 255):
//	reshape.Reshape[uint8](rgba, rgb, 3, 4)
//
//	// Convert a 4-channel 8-bit image to 4-channel float:
//	dst, _ := reshape.NewBuffer(w, h, reshape.PixelFormatRGBA, reshape.DataTypeFloat)
//	ok := reshape.ReshapeImage(dst, reshape.DataTypeUByte, src, srcRowBytes, h, false)
//
// # Conversion Model
//
// Each component type has a fixed "fully on" maximum value (255 for 8-bit,
// 1.0 for float, and so on). Conversion rescales every channel as
// value × dstMax / srcMax, and fills padded channels with dstMax. Same-type
// conversions are byte-exact copies.
//
// # Safety Model
//
// The conversion kernels trust the caller's geometry: strides and heights
// inconsistent with the supplied byte slices cause out-of-range slice
// indexing. The Buffer constructors form the validating boundary; use them
// rather than hand-assembled Buffer values unless the geometry is known
// consistent.
package reshape

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
