package graphics

import (
	"image"

	"typer3d/internal/asset"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// UploadTexture creates a GL texture from an RGBA image. Rows are taken as-is,
// so callers pass images already flipped to GL orientation.
func UploadTexture(img *image.RGBA, filter asset.Filter) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	minFilter, magFilter := filterModes(filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)

	size := img.Rect.Size()
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	if filter == asset.FilterMipmap {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// ReplaceTexture uploads img into an existing texture, reallocating storage.
func ReplaceTexture(texture uint32, img *image.RGBA) {
	size := img.Rect.Size()
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func filterModes(f asset.Filter) (minFilter, magFilter int32) {
	switch f {
	case asset.FilterNearest:
		return gl.NEAREST, gl.NEAREST
	case asset.FilterMipmap:
		return gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR
	}
	return gl.LINEAR, gl.LINEAR
}
