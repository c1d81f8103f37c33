package graphics

import (
	"sync"

	"typer3d/internal/asset"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type textureKey struct {
	tex    *asset.Texture
	filter asset.Filter
}

// TextureCache uploads each material texture once and hands out its GL name.
type TextureCache struct {
	mu  sync.RWMutex
	ids map[textureKey]uint32
}

func NewTextureCache() *TextureCache {
	return &TextureCache{ids: make(map[textureKey]uint32)}
}

// Get returns the texture for m, or 0 when m is untextured.
func (c *TextureCache) Get(m *asset.Material) uint32 {
	if m == nil || m.Texture == nil {
		return 0
	}
	key := textureKey{m.Texture, m.Filter}

	c.mu.RLock()
	if id, ok := c.ids[key]; ok {
		c.mu.RUnlock()
		return id
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double check locking
	if id, ok := c.ids[key]; ok {
		return id
	}
	id := UploadTexture(m.Texture.Image, m.Filter)
	c.ids[key] = id
	return id
}

// Len reports how many textures are resident.
func (c *TextureCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ids)
}

func (c *TextureCache) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, id := range c.ids {
		gl.DeleteTextures(1, &id)
		delete(c.ids, k)
	}
}
