package reshape

// Buffer describes a block of interleaved pixel data owned by the caller.
//
// A Buffer is a borrowed view: the conversion routines read or write Data for
// the duration of a single call and retain nothing afterwards. Geometry
// (stride versus width, height versus len(Data)) is validated only by the
// constructors below; callers assembling a Buffer by hand take on the
// responsibility of keeping it consistent, as the conversion kernels do not
// re-check it.
type Buffer struct {
	// Data is the raw pixel storage, row-major.
	Data []byte

	// Format is the interleaved channel layout.
	Format PixelFormat

	// Type is the numeric representation of each channel.
	Type DataType

	// Stride is the number of bytes from one row to the next. Zero means
	// "computed": the packed row size rounded up to Alignment.
	Stride int

	// Alignment is the byte alignment each row must start at when Stride
	// is computed. Zero or one means tightly packed.
	Alignment int
}

// RowBytes returns the size in bytes of one row of width pixels in the given
// format and type, padded so the next row starts at a multiple of align.
// An align of zero or one adds no padding.
func RowBytes(format PixelFormat, typ DataType, width, align int) int {
	packed := width * format.Channels() * typ.Size()
	if align > 1 {
		packed = (packed + align - 1) / align * align
	}
	return packed
}

// NewBuffer allocates a zeroed buffer for a width×height image.
func NewBuffer(width, height int, format PixelFormat, typ DataType) (*Buffer, error) {
	return NewBufferAligned(width, height, format, typ, 1)
}

// NewBufferAligned allocates a zeroed buffer whose rows are padded to the
// given byte alignment.
func NewBufferAligned(width, height int, format PixelFormat, typ DataType, align int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if !typ.IsValid() {
		return nil, ErrInvalidType
	}

	stride := RowBytes(format, typ, width, align)
	return &Buffer{
		Data:      make([]byte, stride*height),
		Format:    format,
		Type:      typ,
		Stride:    stride,
		Alignment: align,
	}, nil
}

// FromRaw wraps existing pixel data without copying. The caller must keep
// data valid while the Buffer is in use. Stride must be at least the packed
// row size; pass 0 for tightly packed.
func FromRaw(data []byte, width, height int, format PixelFormat, typ DataType, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if !typ.IsValid() {
		return nil, ErrInvalidType
	}

	minStride := RowBytes(format, typ, width, 1)
	if stride == 0 {
		stride = minStride
	}
	if stride < minStride {
		return nil, ErrInvalidStride
	}
	if len(data) < stride*height {
		return nil, ErrDataTooSmall
	}

	return &Buffer{
		Data:   data[:stride*height],
		Format: format,
		Type:   typ,
		Stride: stride,
	}, nil
}

// rowBytes resolves the effective destination stride for a row of width
// pixels: an explicit Stride wins, otherwise the packed size padded to
// Alignment.
func (b *Buffer) rowBytes(width int) int {
	if b.Stride > 0 {
		return b.Stride
	}
	return RowBytes(b.Format, b.Type, width, b.Alignment)
}
