package hud

import (
	"fmt"
	"image/color"
	"time"

	"typer3d/internal/asset"
	"typer3d/internal/config"
	"typer3d/internal/graphics"
	renderer "typer3d/internal/graphics/renderer"
	"typer3d/internal/profiling"
	"typer3d/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const margin = 12

var (
	bannerStyle = graphics.TextStyle{
		Done:  color.RGBA{R: 255, G: 60, B: 60, A: 255},
		Todo:  color.RGBA{R: 255, G: 60, B: 60, A: 255},
		Scale: 4,
	}
	statusStyle = graphics.TextStyle{
		Done:  color.RGBA{R: 200, G: 200, B: 120, A: 255},
		Todo:  color.RGBA{R: 200, G: 200, B: 120, A: 255},
		Scale: 2,
	}
)

// HUD draws the active word centered at the top and a status line below it.
type HUD struct {
	shaderDir string
	shader    *graphics.Shader
	vao       uint32
	vbo       uint32

	word   label
	status label

	width, height int

	// FPS tracking
	frames       int
	lastFPSCheck time.Time
	currentFPS   int
}

type label struct {
	text  string
	typed int
	tex   uint32
	w, h  int
}

func NewHUD(shaderDir string) *HUD {
	return &HUD{shaderDir: shaderDir, lastFPSCheck: time.Now()}
}

func (h *HUD) Init() error {
	var err error
	h.shader, err = graphics.LoadProgram(h.shaderDir, "hud")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &h.vao)
	gl.GenBuffers(1, &h.vbo)
	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	// xy, uv
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

func (h *HUD) Render(ctx renderer.RenderContext) {
	defer profiling.Track("render.hud")()
	fr := ctx.Frame

	h.frames++
	if time.Since(h.lastFPSCheck) >= time.Second {
		h.currentFPS = h.frames
		h.frames = 0
		h.lastFPSCheck = time.Now()
	}

	wordStyle := graphics.DefaultTextStyle
	if fr.HUD.GameOver || fr.HUD.Paused {
		wordStyle = bannerStyle
	}
	h.word.set(fr.HUD.Text, fr.HUD.Typed, wordStyle)
	h.status.set(StatusLine(fr, h.currentFPS, config.GetProfiling()), 0, statusStyle)

	gl.Disable(gl.DEPTH_TEST)
	h.shader.Use()
	h.shader.SetInt("tex", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(h.vao)

	if h.word.text != "" {
		x := (h.width - h.word.w) / 2
		h.draw(&h.word, x, margin)
	}
	h.draw(&h.status, margin, h.height-margin-h.status.h)

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Enable(gl.DEPTH_TEST)
}

func (h *HUD) draw(l *label, x, y int) {
	if l.tex == 0 || h.width == 0 || h.height == 0 {
		return
	}
	verts := Quad(x, y, l.w, l.h, h.width, h.height)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.BindTexture(gl.TEXTURE_2D, l.tex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// set re-rasterizes the label only when its content changed.
func (l *label) set(text string, typed int, st graphics.TextStyle) {
	if l.tex != 0 && text == l.text && typed == l.typed {
		return
	}
	l.text, l.typed = text, typed
	img := graphics.RasterizeText(text, typed, st)
	l.w, l.h = img.Bounds().Dx(), img.Bounds().Dy()
	up := graphics.TextTexture(img)
	if l.tex == 0 {
		l.tex = graphics.UploadTexture(up, asset.FilterNearest)
		return
	}
	graphics.ReplaceTexture(l.tex, up)
}

func (h *HUD) Dispose() {
	for _, l := range []*label{&h.word, &h.status} {
		if l.tex != 0 {
			gl.DeleteTextures(1, &l.tex)
			l.tex = 0
		}
	}
	if h.vao != 0 {
		gl.DeleteVertexArrays(1, &h.vao)
	}
	if h.vbo != 0 {
		gl.DeleteBuffers(1, &h.vbo)
	}
	if h.shader != nil {
		h.shader.Delete()
	}
}

func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = width, height
}

// StatusLine summarizes level, lane and frame rate, plus frame timings when
// profiling is on.
func StatusLine(fr *scene.Frame, fps int, withProfiling bool) string {
	s := fmt.Sprintf("LV %d  LANE %d  FPS %d", fr.Level, fr.Lane, fps)
	if withProfiling {
		s += fmt.Sprintf("  CTL %.2fms  GFX %.2fms",
			ms(profiling.SumWithPrefix("scene.Control")),
			ms(profiling.SumWithPrefix("render.")))
	}
	return s
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

// Quad returns two textured triangles covering the pixel rectangle (x, y, w, h),
// top-left origin, in normalized device coordinates for a vw x vh viewport.
func Quad(x, y, w, h, vw, vh int) []float32 {
	x0 := float32(x)/float32(vw)*2 - 1
	y0 := 1 - float32(y)/float32(vh)*2
	x1 := float32(x+w)/float32(vw)*2 - 1
	y1 := 1 - float32(y+h)/float32(vh)*2
	return []float32{
		x0, y0, 0, 1,
		x1, y0, 1, 1,
		x1, y1, 1, 0,
		x0, y0, 0, 1,
		x1, y1, 1, 0,
		x0, y1, 0, 0,
	}
}
