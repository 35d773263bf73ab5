// Package texture bridges reshape conversions to GPU texture uploads.
//
// It maps gputypes texture formats onto reshape conversion targets and lays
// converted pixel data out with the row alignment CopyBufferToTexture
// requires, so a client-supplied buffer can be turned into a ready staging
// buffer in one call.
package texture

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/reshape"
)

// Package errors.
var (
	// ErrUnsupportedFormat is returned for texture formats with no
	// conversion target (compressed, depth/stencil, packed formats).
	ErrUnsupportedFormat = errors.New("texture: unsupported texture format")

	// ErrConversionFailed is returned when the reshape dispatcher rejects
	// the source/destination type combination.
	ErrConversionFailed = errors.New("texture: pixel conversion failed")
)

// CopyBytesPerRowAlignment is the WebGPU bytesPerRow alignment for
// buffer-to-texture copies.
const CopyBytesPerRowAlignment = 256

// Target describes how uploads for a texture format are produced: the
// destination layout and component type, and whether the source's channels
// 0 and 2 must be exchanged on the way in (BGRA-layout textures).
type Target struct {
	Format  reshape.PixelFormat
	Type    reshape.DataType
	Swizzle bool
}

// Resolve maps a texture format to its upload conversion target.
func Resolve(f gputypes.TextureFormat) (Target, error) {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm:
		return Target{reshape.PixelFormatRGBA, reshape.DataTypeUByte, false}, nil
	case gputypes.TextureFormatBGRA8Unorm:
		return Target{reshape.PixelFormatRGBA, reshape.DataTypeUByte, true}, nil
	case gputypes.TextureFormatRGBA8Uint:
		return Target{reshape.PixelFormatRGBA, reshape.DataTypeUByte, false}, nil
	case gputypes.TextureFormatRGBA16Float:
		return Target{reshape.PixelFormatRGBA, reshape.DataTypeHalf, false}, nil
	case gputypes.TextureFormatRGBA32Float:
		return Target{reshape.PixelFormatRGBA, reshape.DataTypeFloat, false}, nil
	case gputypes.TextureFormatRGBA32Uint:
		return Target{reshape.PixelFormatRGBA, reshape.DataTypeUInt, false}, nil
	case gputypes.TextureFormatRGBA32Sint:
		return Target{reshape.PixelFormatRGBA, reshape.DataTypeInt, false}, nil
	}
	return Target{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
}

// UploadStride returns the bytesPerRow for uploading a width-pixel row to a
// texture of the given format, padded to CopyBytesPerRowAlignment.
func UploadStride(f gputypes.TextureFormat, width int) (int, error) {
	t, err := Resolve(f)
	if err != nil {
		return 0, err
	}
	return reshape.RowBytes(t.Format, t.Type, width, CopyBytesPerRowAlignment), nil
}

// PrepareUpload converts a 4-channel source image into a freshly allocated
// staging buffer laid out for CopyBufferToTexture against the given texture
// format. It returns the staging bytes and their bytesPerRow.
//
// src holds height rows of srcRowBytes bytes, 4 interleaved srcType
// components per pixel; the texture width is derived from srcRowBytes.
func PrepareUpload(f gputypes.TextureFormat, src []byte, srcType reshape.DataType, srcRowBytes, height int) ([]byte, int, error) {
	target, err := Resolve(f)
	if err != nil {
		return nil, 0, err
	}

	srcPixelBytes := srcType.Size() * 4
	if srcPixelBytes == 0 {
		return nil, 0, ErrConversionFailed
	}
	width := srcRowBytes / srcPixelBytes
	stride := reshape.RowBytes(target.Format, target.Type, width, CopyBytesPerRowAlignment)
	dst := &reshape.Buffer{
		Data:   make([]byte, stride*height),
		Format: target.Format,
		Type:   target.Type,
		Stride: stride,
	}

	if !reshape.ReshapeImage(dst, srcType, src, srcRowBytes, height, target.Swizzle) {
		reshape.Logger().Debug("texture: dispatcher rejected conversion",
			"srcType", srcType, "dstType", target.Type)
		return nil, 0, ErrConversionFailed
	}
	return dst.Data, stride, nil
}
