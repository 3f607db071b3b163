// Package glpainter draws the command stream drained from a gui frame
// using OpenGL: solid triangles in pixel space, scissored per clip rect.
package glpainter

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/cronusdmd/easy-gui-template/geom"
	"github.com/cronusdmd/easy-gui-template/gui"
)

// Vertex: pos2 + color4 => 6 floats.
const vStride = 6

// Painter batches colored triangles and flushes on clip changes.
type Painter struct {
	program uint32
	vao     uint32
	vbo     uint32
	uScreen int32

	verts []float32
	clip  geom.Rect

	screenW, screenH int
}

// New compiles the pipeline. The GL context must be current.
func New() (*Painter, error) {
	p := &Painter{verts: make([]float32, 0, 8*1024)}

	var err error
	p.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	p.uScreen = gl.GetUniformLocation(p.program, gl.Str("uScreen\x00"))

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)

	const stride = vStride * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 2*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return p, nil
}

// Shutdown releases GL objects.
func (p *Painter) Shutdown() {
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
	}
}

// Resize updates the viewport to the framebuffer size.
func (p *Painter) Resize(w, h int) {
	p.screenW, p.screenH = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

// Clear fills the frame with a background color.
func (p *Painter) Clear(c gui.Color) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Paint draws one frame's drained command stream in order.
func (p *Painter) Paint(cmds []gui.ClippedCmd) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.SCISSOR_TEST)

	p.clip = geom.Everything()
	for _, cc := range cmds {
		if cc.Clip != p.clip {
			p.flush()
			p.clip = cc.Clip
		}
		switch cmd := cc.Cmd.(type) {
		case gui.RectCmd:
			if cmd.Fill.IsVisible() {
				p.pushRect(cmd.Rect, cmd.Fill)
			}
			if cmd.Stroke.IsVisible() {
				p.pushRectOutline(cmd.Rect, cmd.Stroke)
			}
		case gui.LineCmd:
			p.pushLine(cmd.Points[0], cmd.Points[1], cmd.Stroke)
		case gui.NoopCmd:
			// reserved slot that was never filled
		}
	}
	p.flush()

	gl.Disable(gl.SCISSOR_TEST)
}

func (p *Painter) flush() {
	if len(p.verts) == 0 {
		return
	}

	sci := p.clip.Intersect(geom.RectFromMinSize(geom.Pos2{}, geom.V2(float32(p.screenW), float32(p.screenH))))
	if sci.IsEmpty() {
		p.verts = p.verts[:0]
		return
	}
	// GL scissor origin is bottom-left.
	gl.Scissor(
		int32(sci.Min.X),
		int32(float32(p.screenH)-sci.Max.Y),
		int32(sci.Width()),
		int32(sci.Height()),
	)

	gl.UseProgram(p.program)
	gl.Uniform2f(p.uScreen, float32(p.screenW), float32(p.screenH))
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(p.verts)*4, gl.Ptr(p.verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(p.verts)/vStride))
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	p.verts = p.verts[:0]
}

func (p *Painter) pushVertex(x, y float32, c gui.Color) {
	p.verts = append(p.verts, x, y, c[0], c[1], c[2], c[3])
}

func (p *Painter) pushRect(r geom.Rect, c gui.Color) {
	p.pushVertex(r.Min.X, r.Min.Y, c)
	p.pushVertex(r.Max.X, r.Min.Y, c)
	p.pushVertex(r.Max.X, r.Max.Y, c)
	p.pushVertex(r.Min.X, r.Min.Y, c)
	p.pushVertex(r.Max.X, r.Max.Y, c)
	p.pushVertex(r.Min.X, r.Max.Y, c)
}

func (p *Painter) pushRectOutline(r geom.Rect, s gui.Stroke) {
	w := s.Width
	p.pushRect(geom.RectFromMinMax(r.Min, geom.P2(r.Max.X, r.Min.Y+w)), s.Color)
	p.pushRect(geom.RectFromMinMax(geom.P2(r.Min.X, r.Max.Y-w), r.Max), s.Color)
	p.pushRect(geom.RectFromMinMax(geom.P2(r.Min.X, r.Min.Y+w), geom.P2(r.Min.X+w, r.Max.Y-w)), s.Color)
	p.pushRect(geom.RectFromMinMax(geom.P2(r.Max.X-w, r.Min.Y+w), r.Max.SubV(geom.V2(0, w))), s.Color)
}

func (p *Painter) pushLine(a, b geom.Pos2, s gui.Stroke) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 || !s.IsVisible() {
		return
	}
	// Perpendicular offset of half the stroke width.
	n := geom.V2(-d.Y/l, d.X/l).Mul(math32.Max(s.Width, 1) * 0.5)
	c := s.Color
	p.pushVertex(a.X-n.X, a.Y-n.Y, c)
	p.pushVertex(b.X-n.X, b.Y-n.Y, c)
	p.pushVertex(b.X+n.X, b.Y+n.Y, c)
	p.pushVertex(a.X-n.X, a.Y-n.Y, c)
	p.pushVertex(b.X+n.X, b.Y+n.Y, c)
	p.pushVertex(a.X+n.X, a.Y+n.Y, c)
}

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec4 aColor;
uniform vec2 uScreen;
out vec4 vColor;
void main() {
    vColor = aColor;
    vec2 ndc = vec2(aPos.x / uScreen.x * 2.0 - 1.0, 1.0 - aPos.y / uScreen.y * 2.0);
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec4 vColor;
out vec4 FragColor;
void main() {
    FragColor = vColor;
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("shader compile error: %s", infoLog)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("program link error: %s", infoLog)
	}
	return prog, nil
}
