package reshape

import (
	"math"
	"unsafe"
)

// imageChannels is the interleaved channel count every source image carries.
// Callers with 3-channel data widen it with Reshape before handing it in.
const imageChannels = 4

// kernelFunc is the uniform shape of one typed image-conversion kernel.
// dst and src are raw bytes; the kernel reinterprets them at its own
// component types. Kernels never validate geometry (see package doc).
type kernelFunc func(dst, src []byte, srcRowBytes, dstRowBytes, dstChannels, height int, swizzle bool)

// channelOrder returns the source channel read order: identity, or with
// channels 0 and 2 exchanged for BGRA-style interchange. The order applies
// only to reads; destination channels are always written in sequence.
func channelOrder(swizzle bool) [imageChannels]int {
	if swizzle {
		return [imageChannels]int{2, 1, 0, 3}
	}
	return [imageChannels]int{0, 1, 2, 3}
}

// row reinterprets len components of T starting at byte off.
func row[T Component](buf []byte, off, n int) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[off])), n) //nolint:gosec // raw pixel rows
}

// convertImage walks a 2D image row by row, reading 4 interleaved S
// components per source pixel and writing dstChannels D components per
// destination pixel. conv carries the numeric rescale; fill pads any
// destination channel beyond the source's 4 (structurally present for
// wider future layouts, unreachable with the current 3/4 channel set).
func convertImage[S, D Component](dst, src []byte, srcRowBytes, dstRowBytes, dstChannels, height int, swizzle bool, conv func(S) D, fill D) {
	var s S
	width := srcRowBytes / (int(unsafe.Sizeof(s)) * imageChannels)
	if width == 0 || height == 0 {
		return
	}
	minChannels := min(imageChannels, dstChannels)
	inds := channelOrder(swizzle)
	for y := 0; y < height; y++ {
		in := row[S](src, y*srcRowBytes, width*imageChannels)
		out := row[D](dst, y*dstRowBytes, width*dstChannels)
		si, di := 0, 0
		for x := 0; x < width; x++ {
			for c := 0; c < minChannels; c++ {
				out[di+c] = conv(in[si+inds[c]])
			}
			for c := imageChannels; c < dstChannels; c++ {
				out[di+c] = fill
			}
			si += imageChannels
			di += dstChannels
		}
	}
}

// copyImage is the same-type fast path: no arithmetic, so identity
// conversions stay byte-exact for every component type.
func copyImage[T Component](dst, src []byte, srcRowBytes, dstRowBytes, dstChannels, height int, swizzle bool) {
	var t T
	width := srcRowBytes / (int(unsafe.Sizeof(t)) * imageChannels)
	if width == 0 || height == 0 {
		return
	}
	minChannels := min(imageChannels, dstChannels)
	fill := MaxValue[T]()
	inds := channelOrder(swizzle)
	for y := 0; y < height; y++ {
		in := row[T](src, y*srcRowBytes, width*imageChannels)
		out := row[T](dst, y*dstRowBytes, width*dstChannels)
		si, di := 0, 0
		for x := 0; x < width; x++ {
			for c := 0; c < minChannels; c++ {
				out[di+c] = in[si+inds[c]]
			}
			for c := imageChannels; c < dstChannels; c++ {
				out[di+c] = fill
			}
			si += imageChannels
			di += dstChannels
		}
	}
}

// rescaleTo builds the proportional rescale from S's value range into D's:
// v × dstMax / srcMax, computed in float64 so no intermediate overflows.
// Integer destinations round to nearest; float destinations keep the
// quotient. float64 holds every 32-bit component value exactly, so the scale
// error is bounded well below one destination unit.
func rescaleTo[S, D Component](srcMax, dstMax float64) func(S) D {
	var d D
	if _, isFloat := any(d).(float32); isFloat {
		return func(v S) D {
			return D(float64(v) * dstMax / srcMax)
		}
	}
	return func(v S) D {
		return D(math.Round(float64(v) * dstMax / srcMax))
	}
}

// imageKernel monomorphizes convertImage for one (source, destination) type
// pair into the uniform kernelFunc shape used by the dispatch table.
func imageKernel[S, D Component](srcType, dstType DataType) kernelFunc {
	conv := rescaleTo[S, D](maxValueTable[srcType], maxValueTable[dstType])
	fill := MaxValue[D]()
	return func(dst, src []byte, srcRowBytes, dstRowBytes, dstChannels, height int, swizzle bool) {
		convertImage(dst, src, srcRowBytes, dstRowBytes, dstChannels, height, swizzle, conv, fill)
	}
}
