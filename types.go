package reshape

// DataType identifies the numeric representation of a single channel value.
type DataType uint8

const (
	// DataTypeUByte is an 8-bit unsigned integer component.
	DataTypeUByte DataType = iota

	// DataTypeHalf is a 16-bit half-float-coded component. It is stored and
	// rescaled as a uint16 bit pattern; the pattern 0x3c00 (half-float 1.0)
	// is treated as the "fully on" value. Rescaling never interprets the
	// pattern as a floating-point number.
	DataTypeHalf

	// DataTypeFloat is a 32-bit IEEE 754 float component.
	DataTypeFloat

	// DataTypeInt is a 32-bit signed integer component.
	DataTypeInt

	// DataTypeUInt is a 32-bit unsigned integer component.
	DataTypeUInt

	// dataTypeCount is the number of data types (for internal use).
	dataTypeCount
)

// PixelFormat identifies the interleaved channel layout of a destination
// pixel. Sources handed to ReshapeImage always carry 4 interleaved channels.
type PixelFormat uint8

const (
	// PixelFormatRGB stores 3 interleaved channels per pixel.
	PixelFormatRGB PixelFormat = iota

	// PixelFormatRGBA stores 4 interleaved channels per pixel.
	PixelFormatRGBA

	// pixelFormatCount is the number of pixel formats (for internal use).
	pixelFormatCount
)

// Component is the closed set of Go types a channel value may have.
// DataTypeHalf components are carried as uint16 bit patterns.
type Component interface {
	uint8 | uint16 | uint32 | int32 | float32
}

// Size returns the storage size of one component in bytes.
// Returns 0 for an unknown type.
func (t DataType) Size() int {
	switch t {
	case DataTypeUByte:
		return 1
	case DataTypeHalf:
		return 2
	case DataTypeFloat, DataTypeInt, DataTypeUInt:
		return 4
	}
	return 0
}

// IsValid reports whether t is a supported data type.
func (t DataType) IsValid() bool {
	return t < dataTypeCount
}

// String returns the name of the data type.
func (t DataType) String() string {
	switch t {
	case DataTypeUByte:
		return "UByte"
	case DataTypeHalf:
		return "Half"
	case DataTypeFloat:
		return "Float"
	case DataTypeInt:
		return "Int"
	case DataTypeUInt:
		return "UInt"
	}
	return "Unknown"
}

// Channels returns the number of interleaved channels per pixel.
// Returns 0 for an unknown format.
func (f PixelFormat) Channels() int {
	switch f {
	case PixelFormatRGB:
		return 3
	case PixelFormatRGBA:
		return 4
	}
	return 0
}

// IsValid reports whether f is a supported destination layout.
func (f PixelFormat) IsValid() bool {
	return f < pixelFormatCount
}

// String returns the name of the pixel format.
func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGB:
		return "RGB"
	case PixelFormatRGBA:
		return "RGBA"
	}
	return "Unknown"
}

// MaxValue returns the "fully on" value for a component type: the rescale
// reference point and the fill value when expanding channel count.
//
// The mapping is fixed by the conversion contract, not by the type's numeric
// range: 255 for uint8, 1.0 for float32, 0x7fffffff for int32, 0xffffffff
// for uint32, and 0x3c00 (the half-float bit pattern of 1.0) for uint16.
func MaxValue[T Component]() T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = 0xff
	case *uint16:
		*p = 0x3c00
	case *float32:
		*p = 1.0
	case *int32:
		*p = 0x7fffffff
	case *uint32:
		*p = 0xffffffff
	}
	return v
}

// maxValueTable carries each type's maximum value widened to float64 for the
// rescale arithmetic. float64 represents every entry exactly.
var maxValueTable = [dataTypeCount]float64{
	DataTypeUByte: 0xff,
	DataTypeHalf:  0x3c00,
	DataTypeFloat: 1.0,
	DataTypeInt:   0x7fffffff,
	DataTypeUInt:  0xffffffff,
}
