package main

import (
	"fmt"
	"image"
	"image/color"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"
	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/cellux/spectroview/config"
	"github.com/cellux/spectroview/zoom"
)

const (
	quadVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    attribute vec2 a_texcoord;
    uniform mat4 u_transform;
    varying vec2 v_texcoord;
    void main(void) {
      gl_Position = u_transform * vec4(a_position, 0.0, 1.0);
      v_texcoord = a_texcoord;
    }` + "\x00"
	// full range BT.601, same as image/color.YCbCrToRGB
	yuvFragmentShader = `
    precision mediump float;
    uniform sampler2D u_y;
    uniform sampler2D u_u;
    uniform sampler2D u_v;
    varying vec2 v_texcoord;
    void main(void) {
      float y = texture2D(u_y, v_texcoord).r;
      float u = texture2D(u_u, v_texcoord).r - 0.5;
      float v = texture2D(u_v, v_texcoord).r - 0.5;
      gl_FragColor = vec4(
        y + 1.402 * v,
        y - 0.34414 * u - 0.71414 * v,
        y + 1.772 * u,
        1.0);
    }` + "\x00"
	solidFragmentShader = `
    precision mediump float;
    uniform vec4 u_color;
    varying vec2 v_texcoord;
    void main(void) {
      gl_FragColor = u_color;
    }` + "\x00"
)

type QuadVertex struct {
	position [2]float32
	texcoord [2]float32
}

// GLCanvas implements zoom.Canvas on a GLES2 context. Draw call coordinates
// are window pixels with the origin at the top left.
type GLCanvas struct {
	window      *glfw.Window
	size        Size
	source      Size
	planes      [3]*Texture
	yuv         *Program
	solid       *Program
	vbo         uint32
	a_position  [2]int32
	a_texcoord  int32
	u_transform [2]int32
	u_planes    [3]int32
	u_color     int32
	transform   mgl.Mat4
	color       color.NRGBA
	blend       config.Blend
	vertices    [6]QuadVertex
}

func glFilter(f config.Filter) int32 {
	if f == config.FilterLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

// CreateGLCanvas uploads the planes of raster and compiles the shaders.
// size is the logical window size used for draw call coordinates.
func CreateGLCanvas(window *glfw.Window, size Size, raster *image.YCbCr, cfg *config.Config) (*GLCanvas, error) {
	c := &GLCanvas{
		window:    window,
		size:      size,
		source:    raster.Rect.Size(),
		transform: mgl.Ortho2D(0, float32(size.X), float32(size.Y), 0),
		color:     zoom.HighlightColor,
		blend:     cfg.Blend,
	}
	if err := c.uploadRaster(raster, glFilter(cfg.Filter)); err != nil {
		c.Close()
		return nil, err
	}
	yuv, err := CreateProgram(quadVertexShader, yuvFragmentShader)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("yuv program: %w", err)
	}
	c.yuv = yuv
	solid, err := CreateProgram(quadVertexShader, solidFragmentShader)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("solid program: %w", err)
	}
	c.solid = solid
	c.a_position = [2]int32{yuv.GetAttribLocation("a_position"), solid.GetAttribLocation("a_position")}
	c.a_texcoord = yuv.GetAttribLocation("a_texcoord")
	c.u_transform = [2]int32{yuv.GetUniformLocation("u_transform"), solid.GetUniformLocation("u_transform")}
	c.u_planes = [3]int32{
		yuv.GetUniformLocation("u_y"),
		yuv.GetUniformLocation("u_u"),
		yuv.GetUniformLocation("u_v"),
	}
	c.u_color = solid.GetUniformLocation("u_color")
	gl.GenBuffers(1, &c.vbo)
	return c, nil
}

func (c *GLCanvas) uploadRaster(raster *image.YCbCr, filter int32) error {
	if raster.SubsampleRatio != image.YCbCrSubsampleRatio420 {
		return fmt.Errorf("unsupported subsample ratio: %v", raster.SubsampleRatio)
	}
	w, h := raster.Rect.Dx(), raster.Rect.Dy()
	cw, ch := (w+1)/2, (h+1)/2
	if raster.YStride != w || raster.CStride != cw {
		return fmt.Errorf("raster planes are not tightly packed")
	}
	planes := []struct {
		pix           []byte
		width, height int
	}{
		{raster.Y, w, h},
		{raster.Cb, cw, ch},
		{raster.Cr, cw, ch},
	}
	for i, p := range planes {
		tex, err := CreateTexture(filter)
		if err != nil {
			return err
		}
		c.planes[i] = tex
		if err := tex.UploadPlane(p.width, p.height, p.pix); err != nil {
			return fmt.Errorf("upload plane %d: %w", i, err)
		}
	}
	return nil
}

func (c *GLCanvas) Clear() {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// setQuad fills the vertex buffer with two triangles covering dst, with
// texture coordinates taken from src in raster pixels.
func (c *GLCanvas) setQuad(dst, src Rect) {
	x0, y0 := float32(dst.Min.X), float32(dst.Min.Y)
	x1, y1 := float32(dst.Max.X), float32(dst.Max.Y)
	sw, sh := float32(c.source.X), float32(c.source.Y)
	s0, t0 := float32(src.Min.X)/sw, float32(src.Min.Y)/sh
	s1, t1 := float32(src.Max.X)/sw, float32(src.Max.Y)/sh
	c.vertices = [6]QuadVertex{
		{position: [2]float32{x0, y0}, texcoord: [2]float32{s0, t0}},
		{position: [2]float32{x0, y1}, texcoord: [2]float32{s0, t1}},
		{position: [2]float32{x1, y1}, texcoord: [2]float32{s1, t1}},
		{position: [2]float32{x1, y1}, texcoord: [2]float32{s1, t1}},
		{position: [2]float32{x1, y0}, texcoord: [2]float32{s1, t0}},
		{position: [2]float32{x0, y0}, texcoord: [2]float32{s0, t0}},
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, int(unsafe.Sizeof(c.vertices)), gl.Ptr(&c.vertices[0]), gl.STREAM_DRAW)
}

func (c *GLCanvas) drawQuad(position, texcoord int32) {
	stride := int32(unsafe.Sizeof(QuadVertex{}))
	gl.EnableVertexAttribArray(uint32(position))
	gl.VertexAttribPointer(uint32(position), 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	if texcoord >= 0 {
		gl.EnableVertexAttribArray(uint32(texcoord))
		gl.VertexAttribPointer(uint32(texcoord), 2, gl.FLOAT, false, stride,
			gl.PtrOffset(int(unsafe.Offsetof(QuadVertex{}.texcoord))))
	}
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(c.vertices)))
	gl.DisableVertexAttribArray(uint32(position))
	if texcoord >= 0 {
		gl.DisableVertexAttribArray(uint32(texcoord))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (c *GLCanvas) Copy(src, dst *Rect) {
	sr := Rect{Max: c.source}
	if src != nil {
		sr = *src
	}
	dr := c.viewRect()
	if dst != nil {
		dr = *dst
	}
	c.setQuad(dr, sr)
	c.yuv.Use()
	gl.UniformMatrix4fv(c.u_transform[0], 1, false, &c.transform[0])
	for i, tex := range c.planes {
		tex.BindUnit(uint32(i))
		gl.Uniform1i(c.u_planes[i], int32(i))
	}
	c.drawQuad(c.a_position[0], c.a_texcoord)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (c *GLCanvas) SetDrawColor(col color.NRGBA) {
	c.color = col
}

func (c *GLCanvas) FillRect(r Rect) {
	if r.Empty() {
		return
	}
	c.setQuad(r, Rect{})
	c.solid.Use()
	gl.UniformMatrix4fv(c.u_transform[1], 1, false, &c.transform[0])
	gl.Uniform4f(c.u_color,
		float32(c.color.R)/255.0,
		float32(c.color.G)/255.0,
		float32(c.color.B)/255.0,
		float32(c.color.A)/255.0)
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	switch c.blend {
	case config.BlendAdd:
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	default:
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	c.drawQuad(c.a_position[1], -1)
	gl.Disable(gl.BLEND)
}

func (c *GLCanvas) Present() {
	c.window.SwapBuffers()
}

// viewRect is the whole window in draw call coordinates.
func (c *GLCanvas) viewRect() Rect {
	return Rect{Max: c.size}
}

func (c *GLCanvas) Close() error {
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
		c.vbo = 0
	}
	for i, tex := range c.planes {
		if tex != nil {
			tex.Close()
			c.planes[i] = nil
		}
	}
	if c.yuv != nil {
		c.yuv.Close()
		c.yuv = nil
	}
	if c.solid != nil {
		c.solid.Close()
		c.solid = nil
	}
	return nil
}

var _ zoom.Canvas = (*GLCanvas)(nil)
