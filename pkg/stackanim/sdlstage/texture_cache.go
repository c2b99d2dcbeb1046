package sdlstage

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 32

// textureCache keeps loaded textures, evicting the least recently used one when full.
type textureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

func newTextureCache(maxSize int) *textureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &textureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *textureCache) get(key string) *sdl.Texture {
	texture, exists := c.textures[key]
	if exists {
		c.touch(key)
	}
	return texture
}

func (c *textureCache) set(key string, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != texture {
			old.Destroy()
		}
		c.textures[key] = texture
		c.touch(key)
		return
	}

	if len(c.order) >= c.maxSize {
		oldest := c.order[0]
		c.order = c.order[1:]
		c.textures[oldest].Destroy()
		delete(c.textures, oldest)
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *textureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *textureCache) destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
