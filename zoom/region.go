package zoom

import (
	"fmt"
	"image"
)

type Point = image.Point
type Size = image.Point
type Rect = image.Rectangle

// Region is a drag in click order: (X0,Y0) is where the button went down,
// (X1,Y1) is the latest pointer position. It is normalized only by Rect.
type Region struct {
	X0, Y0 int
	X1, Y1 int
}

// RegionAt returns a region with both corners at p.
func RegionAt(p Point) Region {
	return Region{X0: p.X, Y0: p.Y, X1: p.X, Y1: p.Y}
}

// Rect returns the normalized rectangle spanned by the two corners.
// Zero width or height is valid.
func (r Region) Rect() Rect {
	// image.Rect swaps the coordinates so that Min <= Max
	return image.Rect(r.X0, r.Y0, r.X1, r.Y1)
}

func (r Region) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X0, r.Y0, r.X1, r.Y1)
}

// Viewport is either the whole source raster or a crop of it.
// The crop is kept in source coordinates exactly as committed.
type Viewport struct {
	crop    Rect
	cropped bool
}

func FullView() Viewport {
	return Viewport{}
}

func CropView(r Rect) Viewport {
	return Viewport{crop: r, cropped: true}
}

func (v Viewport) IsFull() bool {
	return !v.cropped
}

// Crop returns the committed crop, or false for the full view.
func (v Viewport) Crop() (Rect, bool) {
	return v.crop, v.cropped
}

func (v Viewport) String() string {
	if !v.cropped {
		return "full"
	}
	return fmt.Sprintf("crop%v", v.crop)
}
