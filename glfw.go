package main

import (
	"fmt"
	"runtime"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

type GlfwApp interface {
	Init(window *glfw.Window) error
	IsRunning() bool
	OnKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey)
	OnCursorPos(x, y float64)
	OnMouseButton(button glfw.MouseButton, action glfw.Action, x, y float64)
	OnClose()
	OnFramebufferSize(width, height int)
	// NeedsRender reports whether events since the last frame changed
	// what is on screen.
	NeedsRender() bool
	Render() error
	Close() error
}

// WithGL opens a fixed-size window with a GLES2 context and runs app until
// it stops. Each iteration waits for input, lets the callbacks apply it,
// then renders at most one frame.
func WithGL(windowTitle string, size Size, app GlfwApp) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	window, err := glfw.CreateWindow(size.X, size.Y, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	framebufferSizeCallback := func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		app.OnFramebufferSize(width, height)
	}
	window.SetFramebufferSizeCallback(framebufferSizeCallback)
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		app.OnKey(key, scancode, action, mods)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		app.OnCursorPos(x, y)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		x, y := w.GetCursorPos()
		app.OnMouseButton(button, action, x, y)
	})
	window.SetCloseCallback(func(w *glfw.Window) {
		app.OnClose()
	})
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	glfw.SwapInterval(1)
	width, height := window.GetFramebufferSize()
	framebufferSizeCallback(window, width, height)
	if err := app.Init(window); err != nil {
		return err
	}
	defer app.Close()
	for app.IsRunning() {
		if app.NeedsRender() {
			if err := app.Render(); err != nil {
				return err
			}
		}
		if !app.IsRunning() {
			break
		}
		glfw.WaitEvents()
	}
	return nil
}
