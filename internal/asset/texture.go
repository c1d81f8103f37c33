package asset

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
)

// Texture is a decoded RGBA image with its rows flipped so that row zero is the
// bottom of the picture, matching GL texture coordinates.
type Texture struct {
	Path  string
	Image *image.RGBA
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) {
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// LoadTexture decodes a png, jpeg, gif or bmp file.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: KindTexture, Path: path, Err: err}
	}
	defer f.Close()
	return DecodeTexture(f, path)
}

// DecodeTexture decodes an image stream into a Texture.
func DecodeTexture(r io.Reader, path string) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &LoadError{Kind: KindTexture, Path: path, Err: err}
	}
	return &Texture{Path: path, Image: transform.FlipV(img)}, nil
}
