package zoom

import (
	"image/color"
)

// Canvas is the drawing surface the renderer issues one frame against.
// Copy draws the source raster: a nil src means the whole raster and a nil
// dst means the whole surface, stretching src to fit.
type Canvas interface {
	Clear()
	Copy(src, dst *Rect)
	SetDrawColor(c color.NRGBA)
	FillRect(r Rect)
	Present()
}

// HighlightColor is drawn over the selection while dragging.
var HighlightColor = color.NRGBA{R: 0, G: 102, B: 204, A: 200}
