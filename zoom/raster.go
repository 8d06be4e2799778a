package zoom

import (
	"image"
)

// NewGradient builds the synthetic IYUV (4:2:0) test raster: constant luma,
// U rising left to right and V rising top to bottom across the chroma planes.
func NewGradient(size Size) *image.YCbCr {
	img := image.NewYCbCr(image.Rectangle{Max: size}, image.YCbCrSubsampleRatio420)
	for i := range img.Y {
		img.Y[i] = 128
	}
	cw, ch := size.X/2, size.Y/2
	if cw == 0 || ch == 0 {
		return img
	}
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			offset := y*img.CStride + x
			img.Cb[offset] = uint8(x * 256 / cw)
			img.Cr[offset] = uint8(y * 256 / ch)
		}
	}
	return img
}
