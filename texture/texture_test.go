package texture

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/reshape"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		format  gputypes.TextureFormat
		want    Target
		wantErr bool
	}{
		{"rgba8", gputypes.TextureFormatRGBA8Unorm, Target{reshape.PixelFormatRGBA, reshape.DataTypeUByte, false}, false},
		{"bgra8 swizzles", gputypes.TextureFormatBGRA8Unorm, Target{reshape.PixelFormatRGBA, reshape.DataTypeUByte, true}, false},
		{"rgba16f", gputypes.TextureFormatRGBA16Float, Target{reshape.PixelFormatRGBA, reshape.DataTypeHalf, false}, false},
		{"rgba32f", gputypes.TextureFormatRGBA32Float, Target{reshape.PixelFormatRGBA, reshape.DataTypeFloat, false}, false},
		{"rgba32ui", gputypes.TextureFormatRGBA32Uint, Target{reshape.PixelFormatRGBA, reshape.DataTypeUInt, false}, false},
		{"rgba32si", gputypes.TextureFormatRGBA32Sint, Target{reshape.PixelFormatRGBA, reshape.DataTypeInt, false}, false},
		{"depth unsupported", gputypes.TextureFormatDepth24PlusStencil8, Target{}, true},
		{"undefined unsupported", gputypes.TextureFormatUndefined, Target{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Fatalf("Resolve() error = %v, want ErrUnsupportedFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUploadStride(t *testing.T) {
	tests := []struct {
		name   string
		format gputypes.TextureFormat
		width  int
		want   int
	}{
		{"rgba8 narrow row pads to 256", gputypes.TextureFormatRGBA8Unorm, 10, 256},
		{"rgba8 exact row", gputypes.TextureFormatRGBA8Unorm, 64, 256},
		{"rgba32f", gputypes.TextureFormatRGBA32Float, 20, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UploadStride(tt.format, tt.width)
			if err != nil {
				t.Fatalf("UploadStride() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("UploadStride() = %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := UploadStride(gputypes.TextureFormatUndefined, 4); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("UploadStride(undefined) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestPrepareUpload_RGBA8(t *testing.T) {
	src := []byte{10, 20, 30, 255, 40, 50, 60, 255}

	staging, stride, err := PrepareUpload(gputypes.TextureFormatRGBA8Unorm, src, reshape.DataTypeUByte, 8, 1)
	if err != nil {
		t.Fatalf("PrepareUpload() error = %v", err)
	}
	if stride != 256 {
		t.Errorf("stride = %d, want 256", stride)
	}
	if len(staging) != 256 {
		t.Errorf("len(staging) = %d, want 256", len(staging))
	}
	for i, want := range src {
		if staging[i] != want {
			t.Errorf("staging[%d] = %d, want %d", i, staging[i], want)
		}
	}
}

func TestPrepareUpload_BGRA8Swizzles(t *testing.T) {
	src := []byte{10, 20, 30, 255}

	staging, _, err := PrepareUpload(gputypes.TextureFormatBGRA8Unorm, src, reshape.DataTypeUByte, 4, 1)
	if err != nil {
		t.Fatalf("PrepareUpload() error = %v", err)
	}
	want := []byte{30, 20, 10, 255}
	for i := range want {
		if staging[i] != want[i] {
			t.Errorf("staging[%d] = %d, want %d", i, staging[i], want[i])
		}
	}
}

func TestPrepareUpload_ConvertsType(t *testing.T) {
	src := []byte{255, 0, 255, 255}

	staging, stride, err := PrepareUpload(gputypes.TextureFormatRGBA32Uint, src, reshape.DataTypeUByte, 4, 1)
	if err != nil {
		t.Fatalf("PrepareUpload() error = %v", err)
	}
	if stride != 256 {
		t.Errorf("stride = %d, want 256", stride)
	}
	// First channel: fully-on 8-bit maps to fully-on 32-bit unsigned.
	got := binary.NativeEndian.Uint32(staging[:4])
	if got != 0xffffffff {
		t.Errorf("channel 0 = %#x, want 0xffffffff", got)
	}
}

func TestPrepareUpload_UnsupportedFormat(t *testing.T) {
	_, _, err := PrepareUpload(gputypes.TextureFormatDepth24PlusStencil8, []byte{0}, reshape.DataTypeUByte, 4, 1)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestPrepareUpload_RejectedConversion(t *testing.T) {
	_, _, err := PrepareUpload(gputypes.TextureFormatRGBA8Unorm, []byte{0, 0, 0, 0}, reshape.DataType(9), 4, 1)
	if !errors.Is(err, ErrConversionFailed) {
		t.Errorf("error = %v, want ErrConversionFailed", err)
	}
}
