package zoom

import (
	"image"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, &slog.HandlerOptions{Level: slog.LevelDebug}))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func newTestTracker() *Tracker {
	return NewTracker(discardLogger)
}

func TestTracker_StartsIdleWithFullView(t *testing.T) {
	tr := newTestTracker()
	assert.Equal(t, StateIdle, tr.State())
	assert.True(t, tr.Running())
	assert.True(t, tr.Viewport().IsFull())
	_, ok := tr.Selection()
	assert.False(t, ok)
}

func TestTracker_DragCommitsFullWindowRect(t *testing.T) {
	tr := newTestTracker()
	assert.Equal(t, SignalNone, tr.PointerDown(image.Pt(0, 0)))
	assert.Equal(t, StateSelecting, tr.State())
	assert.Equal(t, SignalRedraw, tr.PointerMove(image.Pt(320, 240)))
	sel, ok := tr.Selection()
	require.True(t, ok)
	assert.Equal(t, Region{0, 0, 320, 240}, sel)
	assert.Equal(t, SignalRedraw, tr.PointerUp(image.Pt(640, 480)))

	assert.Equal(t, StateIdle, tr.State())
	_, ok = tr.Selection()
	assert.False(t, ok)
	crop, ok := tr.Viewport().Crop()
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 640, 480), crop)
}

func TestTracker_ReverseDragIsNormalized(t *testing.T) {
	tr := newTestTracker()
	tr.PointerDown(image.Pt(300, 200))
	tr.PointerMove(image.Pt(150, 250))
	tr.PointerUp(image.Pt(100, 50))
	crop, ok := tr.Viewport().Crop()
	require.True(t, ok)
	assert.Equal(t, image.Rect(100, 50, 300, 200), crop)
}

func TestTracker_ZeroAreaCommit(t *testing.T) {
	tr := newTestTracker()
	tr.PointerDown(image.Pt(10, 10))
	assert.Equal(t, SignalRedraw, tr.PointerUp(image.Pt(10, 10)))
	crop, ok := tr.Viewport().Crop()
	require.True(t, ok)
	assert.Equal(t, image.Rect(10, 10, 10, 10), crop)
	assert.True(t, crop.Empty())
}

func TestTracker_MoveWithoutPressIsIgnored(t *testing.T) {
	tr := newTestTracker()
	assert.Equal(t, SignalNone, tr.PointerMove(image.Pt(100, 100)))
	assert.Equal(t, StateIdle, tr.State())
	_, ok := tr.Selection()
	assert.False(t, ok)
	assert.True(t, tr.Viewport().IsFull())

	// also after a committed zoom
	tr.PointerDown(image.Pt(1, 1))
	tr.PointerUp(image.Pt(50, 60))
	before := tr.Viewport()
	assert.Equal(t, SignalNone, tr.PointerMove(image.Pt(200, 200)))
	assert.Equal(t, before, tr.Viewport())
}

func TestTracker_ReleaseWithoutPressIsIgnored(t *testing.T) {
	tr := newTestTracker()
	assert.Equal(t, SignalNone, tr.PointerUp(image.Pt(100, 100)))
	assert.True(t, tr.Viewport().IsFull())
}

func TestTracker_PressOverwritesSelection(t *testing.T) {
	tr := newTestTracker()
	tr.PointerDown(image.Pt(10, 10))
	tr.PointerMove(image.Pt(90, 90))
	tr.PointerDown(image.Pt(200, 100))
	sel, ok := tr.Selection()
	require.True(t, ok)
	assert.Equal(t, RegionAt(image.Pt(200, 100)), sel)
}

func TestTracker_ResetIsIdempotent(t *testing.T) {
	tr := newTestTracker()
	tr.PointerDown(image.Pt(10, 20))
	tr.PointerUp(image.Pt(30, 40))
	assert.Equal(t, SignalRedraw, tr.Reset())
	once := tr.Viewport()
	assert.Equal(t, SignalRedraw, tr.Reset())
	assert.Equal(t, once, tr.Viewport())
	assert.Equal(t, FullView(), tr.Viewport())
}

func TestTracker_ResetAfterZoomReturnsToRoot(t *testing.T) {
	tr := newTestTracker()
	tr.PointerDown(image.Pt(100, 100))
	tr.PointerUp(image.Pt(200, 150))
	tr.PointerDown(image.Pt(10, 10))
	tr.PointerUp(image.Pt(20, 20))
	crop, _ := tr.Viewport().Crop()
	assert.Equal(t, image.Rect(10, 10, 20, 20), crop)

	tr.Reset()
	assert.Equal(t, FullView(), tr.Viewport())
	assert.Equal(t, StateIdle, tr.State())
}

func TestTracker_ResetMidDragAbandonsSelection(t *testing.T) {
	tr := newTestTracker()
	tr.PointerDown(image.Pt(100, 100))
	tr.PointerMove(image.Pt(300, 300))
	tr.Reset()
	_, ok := tr.Selection()
	assert.False(t, ok)
	assert.Equal(t, StateIdle, tr.State())

	// the release of the abandoned drag does not commit anything
	assert.Equal(t, SignalNone, tr.PointerUp(image.Pt(320, 320)))
	assert.True(t, tr.Viewport().IsFull())
}

func TestTracker_OutOfBoundsCoordinatesAreKept(t *testing.T) {
	tr := newTestTracker()
	tr.PointerDown(image.Pt(-40, 600))
	tr.PointerUp(image.Pt(700, -10))
	crop, ok := tr.Viewport().Crop()
	require.True(t, ok)
	assert.Equal(t, image.Rect(-40, -10, 700, 600), crop)
}

func TestTracker_QuitIsTerminal(t *testing.T) {
	tr := newTestTracker()
	tr.PointerDown(image.Pt(5, 5))
	assert.Equal(t, SignalQuit, tr.Quit())
	assert.False(t, tr.Running())
	assert.Equal(t, StateQuit, tr.State())

	assert.Equal(t, SignalQuit, tr.PointerDown(image.Pt(1, 1)))
	assert.Equal(t, SignalQuit, tr.PointerMove(image.Pt(2, 2)))
	assert.Equal(t, SignalQuit, tr.PointerUp(image.Pt(3, 3)))
	assert.Equal(t, SignalQuit, tr.Reset())
	assert.Equal(t, StateQuit, tr.State())
	assert.True(t, tr.Viewport().IsFull())
	_, ok := tr.Selection()
	assert.False(t, ok)
}

func TestTracker_NilLogger(t *testing.T) {
	tr := NewTracker(nil)
	tr.PointerDown(image.Pt(1, 1))
	tr.PointerMove(image.Pt(2, 2))
	tr.PointerUp(image.Pt(3, 3))
	tr.Reset()
	tr.Quit()
	assert.False(t, tr.Running())
}
