package zoom

import (
	"image/color"
)

// ViewState is what the renderer needs from the tracker.
type ViewState interface {
	Selection() (Region, bool)
	Viewport() Viewport
}

// Mode is the kind of frame Render draws for a given view state.
type Mode int

const (
	ModeFull Mode = iota
	ModeSelecting
	ModeCropped
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSelecting:
		return "selecting"
	case ModeCropped:
		return "cropped"
	default:
		return "unknown"
	}
}

type Renderer struct {
	source    Rect
	highlight color.NRGBA
}

// NewRenderer returns a renderer for a source raster with the given bounds.
func NewRenderer(source Rect) *Renderer {
	return &Renderer{
		source:    source,
		highlight: HighlightColor,
	}
}

func ModeOf(vs ViewState) Mode {
	if _, ok := vs.Selection(); ok {
		return ModeSelecting
	}
	if vs.Viewport().IsFull() {
		return ModeFull
	}
	return ModeCropped
}

// Render draws one complete frame of vs onto c.
func (r *Renderer) Render(c Canvas, vs ViewState) {
	c.Clear()
	switch ModeOf(vs) {
	case ModeSelecting:
		// selection is always made against the full raster, 1:1 with the window
		sel, _ := vs.Selection()
		c.Copy(nil, nil)
		c.SetDrawColor(r.highlight)
		c.FillRect(sel.Rect())
	case ModeCropped:
		crop, _ := vs.Viewport().Crop()
		if src := r.visibleCrop(crop); !src.Empty() {
			c.Copy(&src, nil)
		}
	default:
		c.Copy(nil, nil)
	}
	c.Present()
}

// visibleCrop clips a committed crop to the raster. The result may be empty
// for a degenerate or fully out-of-bounds crop, which renders as a blank frame.
func (r *Renderer) visibleCrop(crop Rect) Rect {
	return crop.Intersect(r.source)
}
