package reshape

// kernels is the dense dispatch table over every (source type, destination
// type) pair, built once at package init. Same-type pairs route to the
// arithmetic-free copy kernel so identity conversions are byte-exact; every
// other pair gets a rescaling kernel monomorphized for its component types.
var kernels = [dataTypeCount][dataTypeCount]kernelFunc{
	DataTypeUByte: {
		DataTypeUByte: copyImage[uint8],
		DataTypeHalf:  imageKernel[uint8, uint16](DataTypeUByte, DataTypeHalf),
		DataTypeFloat: imageKernel[uint8, float32](DataTypeUByte, DataTypeFloat),
		DataTypeInt:   imageKernel[uint8, int32](DataTypeUByte, DataTypeInt),
		DataTypeUInt:  imageKernel[uint8, uint32](DataTypeUByte, DataTypeUInt),
	},
	DataTypeHalf: {
		DataTypeUByte: imageKernel[uint16, uint8](DataTypeHalf, DataTypeUByte),
		DataTypeHalf:  copyImage[uint16],
		DataTypeFloat: imageKernel[uint16, float32](DataTypeHalf, DataTypeFloat),
		DataTypeInt:   imageKernel[uint16, int32](DataTypeHalf, DataTypeInt),
		DataTypeUInt:  imageKernel[uint16, uint32](DataTypeHalf, DataTypeUInt),
	},
	DataTypeFloat: {
		DataTypeUByte: imageKernel[float32, uint8](DataTypeFloat, DataTypeUByte),
		DataTypeHalf:  imageKernel[float32, uint16](DataTypeFloat, DataTypeHalf),
		DataTypeFloat: copyImage[float32],
		DataTypeInt:   imageKernel[float32, int32](DataTypeFloat, DataTypeInt),
		DataTypeUInt:  imageKernel[float32, uint32](DataTypeFloat, DataTypeUInt),
	},
	DataTypeInt: {
		DataTypeUByte: imageKernel[int32, uint8](DataTypeInt, DataTypeUByte),
		DataTypeHalf:  imageKernel[int32, uint16](DataTypeInt, DataTypeHalf),
		DataTypeFloat: imageKernel[int32, float32](DataTypeInt, DataTypeFloat),
		DataTypeInt:   copyImage[int32],
		DataTypeUInt:  imageKernel[int32, uint32](DataTypeInt, DataTypeUInt),
	},
	DataTypeUInt: {
		DataTypeUByte: imageKernel[uint32, uint8](DataTypeUInt, DataTypeUByte),
		DataTypeHalf:  imageKernel[uint32, uint16](DataTypeUInt, DataTypeHalf),
		DataTypeFloat: imageKernel[uint32, float32](DataTypeUInt, DataTypeFloat),
		DataTypeInt:   imageKernel[uint32, int32](DataTypeUInt, DataTypeInt),
		DataTypeUInt:  copyImage[uint32],
	},
}

// ReshapeImage converts a 2D image of 4-channel srcType pixels into dst,
// honoring dst's channel layout, component type, and row stride, with an
// optional 0↔2 channel swizzle applied on the read side.
//
// src holds height rows of srcRowBytes bytes each; the pixel width is
// derived from srcRowBytes, so stride and geometry must be consistent (the
// kernel does not check). The destination stride is dst.Stride when set,
// otherwise computed from the derived width, dst's layout, and
// dst.Alignment.
//
// ReshapeImage reports false, without touching dst.Data, when dst's format
// or either component type falls outside the supported set. A height of
// zero is a valid no-op that reports true.
func ReshapeImage(dst *Buffer, srcType DataType, src []byte, srcRowBytes, height int, swizzle bool) bool {
	dstChannels := dst.Format.Channels()
	if dstChannels == 0 || !srcType.IsValid() || !dst.Type.IsValid() {
		logger().Debug("reshape: no kernel for conversion",
			"srcType", srcType, "dstType", dst.Type, "dstFormat", dst.Format)
		return false
	}
	kernel := kernels[srcType][dst.Type]
	if kernel == nil {
		return false
	}

	width := srcRowBytes / (srcType.Size() * imageChannels)
	kernel(dst.Data, src, srcRowBytes, dst.rowBytes(width), dstChannels, height, swizzle)
	return true
}
