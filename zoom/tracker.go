package zoom

import (
	"log/slog"
)

// State enumerates the tracker states. StateQuit is terminal.
type State int

const (
	StateIdle State = iota
	StateSelecting
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Signal tells the event loop what to do after an input was applied.
type Signal int

const (
	SignalNone Signal = iota
	SignalRedraw
	SignalQuit
)

func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalRedraw:
		return "redraw"
	case SignalQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Tracker turns pointer and keyboard input into selection and viewport
// changes. The selection only exists while state is StateSelecting.
type Tracker struct {
	state     State
	selection Region
	viewport  Viewport
	logger    *slog.Logger
}

func NewTracker(logger *slog.Logger) *Tracker {
	return &Tracker{
		state:    StateIdle,
		viewport: FullView(),
		logger:   logger,
	}
}

func (t *Tracker) State() State {
	return t.state
}

func (t *Tracker) Running() bool {
	return t.state != StateQuit
}

// Selection returns the in-flight drag, if any.
func (t *Tracker) Selection() (Region, bool) {
	if t.state != StateSelecting {
		return Region{}, false
	}
	return t.selection, true
}

func (t *Tracker) Viewport() Viewport {
	return t.viewport
}

// PointerDown starts a new selection at p, replacing any drag in flight.
func (t *Tracker) PointerDown(p Point) Signal {
	if t.state == StateQuit {
		return SignalQuit
	}
	t.selection = RegionAt(p)
	t.transition(StateSelecting)
	return SignalNone
}

// PointerMove drags the second corner while a selection is active.
func (t *Tracker) PointerMove(p Point) Signal {
	switch t.state {
	case StateQuit:
		return SignalQuit
	case StateSelecting:
		t.selection.X1, t.selection.Y1 = p.X, p.Y
		return SignalRedraw
	default:
		return SignalNone
	}
}

// PointerUp commits the selection as the new viewport. A zero-area
// selection is committed as is.
func (t *Tracker) PointerUp(p Point) Signal {
	switch t.state {
	case StateQuit:
		return SignalQuit
	case StateSelecting:
		t.selection.X1, t.selection.Y1 = p.X, p.Y
		t.setViewport(CropView(t.selection.Rect()))
		t.selection = Region{}
		t.transition(StateIdle)
		return SignalRedraw
	default:
		return SignalNone
	}
}

// Reset drops any drag in flight and returns to the full view.
func (t *Tracker) Reset() Signal {
	if t.state == StateQuit {
		return SignalQuit
	}
	t.selection = Region{}
	t.setViewport(FullView())
	t.transition(StateIdle)
	return SignalRedraw
}

func (t *Tracker) Quit() Signal {
	t.transition(StateQuit)
	return SignalQuit
}

func (t *Tracker) setViewport(v Viewport) {
	if t.logger != nil {
		t.logger.Debug("viewport", "from", t.viewport.String(), "to", v.String())
	}
	t.viewport = v
}

func (t *Tracker) transition(next State) {
	prev := t.state
	if prev == next {
		return
	}
	t.state = next
	if t.logger != nil {
		t.logger.Debug("tracker state transition", "from", prev.String(), "to", next.String())
	}
}
