package reshape

import "github.com/ajroetker/go-highway/hwy"

// The rescale kernels treat DataTypeHalf as an integer bit pattern, which is
// what GPU upload paths want. The helpers below are for callers that need the
// actual numeric values of a half-coded buffer, e.g. to inspect readback data
// on the CPU. They are IEEE 754 binary16 conversions, not rescales.

// HalfToFloatBuffer converts half-float bit patterns to float32 values.
// dst must hold at least len(src) elements.
func HalfToFloatBuffer(dst []float32, src []uint16) {
	for i, v := range src {
		dst[i] = hwy.Float16ToFloat32(hwy.Float16FromBits(v))
	}
}

// FloatToHalfBuffer converts float32 values to half-float bit patterns with
// round-to-nearest-even. dst must hold at least len(src) elements.
func FloatToHalfBuffer(dst []uint16, src []float32) {
	for i, v := range src {
		dst[i] = hwy.Float32ToFloat16(v).Bits()
	}
}
