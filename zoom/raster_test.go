package zoom

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGradient(t *testing.T) {
	img := NewGradient(image.Pt(640, 480))
	require.Equal(t, image.Rect(0, 0, 640, 480), img.Bounds())
	require.Equal(t, image.YCbCrSubsampleRatio420, img.SubsampleRatio)

	for _, p := range []image.Point{{0, 0}, {639, 479}, {123, 456}} {
		assert.Equal(t, uint8(128), img.Y[img.YOffset(p.X, p.Y)])
	}

	// chroma planes are 320x240: U follows x, V follows y
	assert.Equal(t, uint8(0), img.Cb[img.COffset(0, 0)])
	assert.Equal(t, uint8(0), img.Cr[img.COffset(0, 0)])
	assert.Equal(t, uint8(160*256/320), img.Cb[img.COffset(320, 0)])
	assert.Equal(t, uint8(255*256/320), img.Cb[img.COffset(510, 0)])
	assert.Equal(t, uint8(120*256/240), img.Cr[img.COffset(0, 240)])
	assert.Equal(t, uint8(239*256/240), img.Cr[img.COffset(0, 478)])

	// U does not depend on y, V does not depend on x
	assert.Equal(t, img.Cb[img.COffset(200, 0)], img.Cb[img.COffset(200, 400)])
	assert.Equal(t, img.Cr[img.COffset(0, 300)], img.Cr[img.COffset(600, 300)])
}

func TestNewGradientTinySize(t *testing.T) {
	assert.NotPanics(t, func() {
		img := NewGradient(image.Pt(1, 1))
		assert.Equal(t, uint8(128), img.Y[0])
	})
}
