package main

import (
	"image"
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cellux/spectroview/config"
	"github.com/cellux/spectroview/zoom"
)

// App owns all viewer state. GLFW callbacks apply input to the tracker
// and mark the frame dirty; WithGL renders once per batch of events.
type App struct {
	cfg      *config.Config
	raster   *image.YCbCr
	tracker  *zoom.Tracker
	renderer *zoom.Renderer
	keyMap   zoom.KeyMap
	canvas   *GLCanvas
	dirty    bool
}

func CreateApp(cfg *config.Config, raster *image.YCbCr) *App {
	tracker := zoom.NewTracker(logger)
	return &App{
		cfg:      cfg,
		raster:   raster,
		tracker:  tracker,
		renderer: zoom.NewRenderer(raster.Bounds()),
		keyMap:   zoom.ViewerKeyMap(tracker),
	}
}

func (app *App) Init(window *glfw.Window) error {
	logger.Info("Init", "filter", app.cfg.Filter, "blend", app.cfg.Blend)
	canvas, err := CreateGLCanvas(window, config.WindowSize, app.raster, app.cfg)
	if err != nil {
		return err
	}
	app.canvas = canvas
	// the full image is shown before any input arrives
	app.dirty = true
	return nil
}

func (app *App) IsRunning() bool {
	return app.tracker.Running()
}

func (app *App) apply(sig zoom.Signal) {
	switch sig {
	case zoom.SignalRedraw:
		app.dirty = true
	case zoom.SignalQuit:
		logger.Debug("quit requested")
	}
}

func modsOf(mods glfw.ModifierKey) zoom.Mod {
	var m zoom.Mod
	if mods&glfw.ModShift != 0 {
		m |= zoom.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= zoom.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= zoom.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= zoom.ModSuper
	}
	return m
}

func keyName(key glfw.Key, scancode int) string {
	switch {
	case key == glfw.KeyEscape:
		return "Escape"
	case key >= glfw.Key0 && key <= glfw.Key9:
		return string(rune('0' + int(key-glfw.Key0)))
	case key == glfw.KeyLeftControl, key == glfw.KeyRightControl,
		key == glfw.KeyLeftShift, key == glfw.KeyRightShift,
		key == glfw.KeyLeftAlt, key == glfw.KeyRightAlt,
		key == glfw.KeyLeftSuper, key == glfw.KeyRightSuper:
		return ""
	default:
		return glfw.GetKeyName(key, scancode)
	}
}

// OnKey looks up the chord using the modifier mask delivered with the
// event, so the state of Ctrl is never tracked separately.
func (app *App) OnKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	name := keyName(key, scancode)
	if name == "" {
		return
	}
	chord := zoom.Chord(name, modsOf(mods))
	sig, handled := app.keyMap.HandleKey(chord)
	if handled {
		logger.Debug("OnKey", "chord", chord, "signal", sig)
		app.apply(sig)
	}
}

func pointAt(x, y float64) Point {
	return image.Pt(int(math.Floor(x)), int(math.Floor(y)))
}

func (app *App) OnCursorPos(x, y float64) {
	app.apply(app.tracker.PointerMove(pointAt(x, y)))
}

func (app *App) OnMouseButton(button glfw.MouseButton, action glfw.Action, x, y float64) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		app.apply(app.tracker.PointerDown(pointAt(x, y)))
	case glfw.Release:
		app.apply(app.tracker.PointerUp(pointAt(x, y)))
	}
}

func (app *App) OnClose() {
	app.apply(app.tracker.Quit())
}

func (app *App) OnFramebufferSize(width, height int) {
	logger.Debug("OnFramebufferSize", "width", width, "height", height)
	app.dirty = true
}

func (app *App) NeedsRender() bool {
	return app.dirty
}

func (app *App) Render() error {
	app.renderer.Render(app.canvas, app.tracker)
	app.dirty = false
	return nil
}

func (app *App) Close() error {
	logger.Info("Close")
	if app.canvas != nil {
		return app.canvas.Close()
	}
	return nil
}
