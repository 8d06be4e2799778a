package main

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.1/gles2"
)

// Texture is a single-channel plane uploaded as GL_LUMINANCE.
type Texture struct {
	tex uint32
}

func CreateTexture(filter int32) (*Texture, error) {
	var tex uint32
	gl.GenTextures(1, &tex)
	if tex == 0 {
		return nil, fmt.Errorf("glGenTextures failed")
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &Texture{tex: tex}, nil
}

// UploadPlane replaces the texture contents with a tightly packed
// width*height plane.
func (t *Texture) UploadPlane(width, height int, pix []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid plane size %dx%d", width, height)
	}
	if len(pix) < width*height {
		return fmt.Errorf("plane data too short: %d bytes for %dx%d", len(pix), width, height)
	}
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.LUMINANCE,
		int32(width), int32(height),
		0, gl.LUMINANCE, gl.UNSIGNED_BYTE,
		gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// BindUnit binds the texture to texture unit n.
func (t *Texture) BindUnit(n uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + n)
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
}

func (t *Texture) Close() error {
	if t.tex != 0 {
		gl.DeleteTextures(1, &t.tex)
		t.tex = 0
	}
	return nil
}

type Shader struct {
	shader uint32
}

func GetShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]uint8, length)
	var logLen int32
	gl.GetShaderInfoLog(shader, length, &logLen, &log[0])
	return string(log[:logLen])
}

func CreateShader(shaderType uint32, source string) (*Shader, error) {
	shader := gl.CreateShader(shaderType)
	data, free := gl.Strs(source)
	defer free()
	gl.ShaderSource(shader, 1, data, nil)
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := GetShaderInfoLog(shader)
		gl.DeleteShader(shader)
		return nil, fmt.Errorf("shader compilation failed: %s", infoLog)
	}
	return &Shader{shader}, nil
}

func (s *Shader) Close() error {
	if s.shader != 0 {
		gl.DeleteShader(s.shader)
		s.shader = 0
	}
	return nil
}

type Program struct {
	program        uint32
	vertexShader   *Shader
	fragmentShader *Shader
}

func GetProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]uint8, length)
	var logLen int32
	gl.GetProgramInfoLog(program, length, &logLen, &log[0])
	return string(log[:logLen])
}

func CreateProgram(vertexShader string, fragmentShader string) (*Program, error) {
	vs, err := CreateShader(gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := CreateShader(gl.FRAGMENT_SHADER, fragmentShader)
	if err != nil {
		vs.Close()
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs.shader)
	gl.AttachShader(program, fs.shader)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := GetProgramInfoLog(program)
		gl.DeleteProgram(program)
		vs.Close()
		fs.Close()
		return nil, fmt.Errorf("program link failed: %s", infoLog)
	}
	return &Program{program, vs, fs}, nil
}

func (p *Program) GetAttribLocation(name string) int32 {
	return gl.GetAttribLocation(p.program, gl.Str(name+"\x00"))
}

func (p *Program) GetUniformLocation(name string) int32 {
	return gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
}

func (p *Program) Use() {
	gl.UseProgram(p.program)
}

func (p *Program) Close() error {
	if err := p.vertexShader.Close(); err != nil {
		return err
	}
	if err := p.fragmentShader.Close(); err != nil {
		return err
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
	return nil
}
