package zoom

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// ImageCanvas renders into memory. Drawing goes to a back buffer and
// Present copies it to the frame returned by Frame.
type ImageCanvas struct {
	source image.Image
	back   *image.RGBA
	front  *image.RGBA
	dc     *gg.Context
	color  color.NRGBA
	scaler draw.Scaler
	frames int
}

// NewImageCanvas creates a canvas of the given size that copies from source
// with scaler. A nil scaler means nearest neighbour.
func NewImageCanvas(source image.Image, size Size, scaler draw.Scaler) *ImageCanvas {
	if scaler == nil {
		scaler = draw.NearestNeighbor
	}
	bounds := image.Rectangle{Max: size}
	back := image.NewRGBA(bounds)
	return &ImageCanvas{
		source: source,
		back:   back,
		front:  image.NewRGBA(bounds),
		dc:     gg.NewContextForRGBA(back),
		scaler: scaler,
	}
}

func (c *ImageCanvas) Clear() {
	c.dc.SetRGBA255(0, 0, 0, 255)
	c.dc.Clear()
}

func (c *ImageCanvas) Copy(src, dst *Rect) {
	sr := c.source.Bounds()
	if src != nil {
		sr = *src
	}
	dr := c.back.Bounds()
	if dst != nil {
		dr = *dst
	}
	if sr.Empty() || dr.Empty() {
		return
	}
	c.scaler.Scale(c.back, dr, c.source, sr, draw.Src, nil)
}

func (c *ImageCanvas) SetDrawColor(col color.NRGBA) {
	c.color = col
}

// FillRect blends the draw colour over r.
func (c *ImageCanvas) FillRect(r Rect) {
	if r.Empty() {
		return
	}
	c.dc.SetColor(c.color)
	c.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	c.dc.Fill()
}

func (c *ImageCanvas) Present() {
	copy(c.front.Pix, c.back.Pix)
	c.frames++
}

// Frame returns the last presented frame.
func (c *ImageCanvas) Frame() *image.RGBA {
	return c.front
}

// Frames counts calls to Present.
func (c *ImageCanvas) Frames() int {
	return c.frames
}

var _ Canvas = (*ImageCanvas)(nil)
