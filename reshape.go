package reshape

import "unsafe"

// Reshape repacks interleaved component data from srcChannels to dstChannels
// per pixel without changing the component type. The overlapping channels are
// copied verbatim; destination channels beyond srcChannels are filled with
// the type's maximum value, which stands in as fully-opaque alpha when
// widening RGB data to RGBA. Trailing source channels are discarded when
// narrowing.
//
// The pixel count is derived from len(src), so dst must hold at least
// pixels×dstChannels components. No swizzling or rescaling happens here; use
// ReshapeImage for conversions that change the component type or need
// per-row strides.
func Reshape[T Component](dst, src []byte, srcChannels, dstChannels int) {
	var t T
	size := int(unsafe.Sizeof(t))
	pixels := len(src) / size / srcChannels
	if pixels == 0 {
		return
	}
	in := row[T](src, 0, pixels*srcChannels)
	out := row[T](dst, 0, pixels*dstChannels)
	fill := MaxValue[T]()
	minChannels := min(srcChannels, dstChannels)
	si, di := 0, 0
	for p := 0; p < pixels; p++ {
		for c := 0; c < minChannels; c++ {
			out[di+c] = in[si+c]
		}
		for c := srcChannels; c < dstChannels; c++ {
			out[di+c] = fill
		}
		si += srcChannels
		di += dstChannels
	}
}
