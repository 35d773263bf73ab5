package reshape

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// FromImage flattens an image.Image into a 4-channel, 8-bit source buffer
// suitable for ReshapeImage. Alpha is kept straight (non-premultiplied),
// matching what clients usually submit for texture upload. The pixel data is
// copied, so the returned Buffer does not alias img.
func FromImage(img image.Image) *Buffer {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)

	return &Buffer{
		Data:   nrgba.Pix,
		Format: PixelFormatRGBA,
		Type:   DataTypeUByte,
		Stride: nrgba.Stride,
	}
}
