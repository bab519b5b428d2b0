package internal

import "github.com/veandco/go-sdl2/sdl"

// Chrome text is a handful of strings (titles, close labels, hints) that
// change when navigation does, so a small cache covers the working set.
const defaultMaxCacheSize = 8

// TextureCache is an LRU cache of rendered textures keyed by string.
// The cache owns the textures it holds: eviction and Destroy release them.
// It is confined to the UI loop like the rest of the shell.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

// NewTextureCache creates a cache with the default capacity.
func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

// NewTextureCacheWithSize creates a cache holding at most maxSize textures.
func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Get returns the cached texture for key, or nil. A hit marks the key most
// recently used.
func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture
	}
	return nil
}

// Set stores a texture under key, evicting the least recently used entry
// when the cache is full. Storing under an existing key replaces the entry
// without destroying the old texture; callers own replaced textures.
func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if _, exists := c.textures[key]; exists {
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		if texture != nil {
			texture.Destroy()
		}
		delete(c.textures, oldest)
	}
}

// Destroy releases every cached texture and empties the cache.
func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		if texture != nil {
			texture.Destroy()
		}
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
