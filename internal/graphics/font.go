package graphics

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextStyle colors a HUD line. Typed characters use Done, the rest Todo.
type TextStyle struct {
	Done  color.RGBA
	Todo  color.RGBA
	Scale int
}

var DefaultTextStyle = TextStyle{
	Done:  color.RGBA{R: 90, G: 90, B: 90, A: 255},
	Todo:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Scale: 3,
}

// RasterizeText draws text with the fixed 7x13 face, top row first. The first
// typed runes use st.Done. The result is at least one pixel wide.
func RasterizeText(text string, typed int, st TextStyle) *image.RGBA {
	face := basicfont.Face7x13
	runes := []rune(text)
	typed = max(0, min(typed, len(runes)))

	w := font.MeasureString(face, text).Ceil()
	h := face.Metrics().Height.Ceil()
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), h))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(st.Done),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(string(runes[:typed]))
	d.Src = image.NewUniform(st.Todo)
	d.DrawString(string(runes[typed:]))

	if st.Scale > 1 {
		b := img.Bounds()
		return transform.Resize(img, b.Dx()*st.Scale, b.Dy()*st.Scale, transform.NearestNeighbor)
	}
	return img
}

// TextTexture flips a rasterized line for upload.
func TextTexture(img *image.RGBA) *image.RGBA {
	return transform.FlipV(img)
}
