// Package gfx provides reference-counted texture handles. Rendering is
// owned entirely by the caller; this package only tracks which image
// resources are loaded and who still holds them, so that snapshots (a bar
// NPC's portrait copied from a live mission) can be released independently
// without double-freeing the shared underlying image.
package gfx

import (
	"log/slog"
)

// Texture is a handle to a loaded image resource. Handles are duplicated
// with Dup and released with Release; the underlying resource is evicted
// from its cache when the last handle is released.
type Texture struct {
	cache *Cache
	path  string
	refs  int
}

// Path returns the image path the texture was loaded from.
func (t *Texture) Path() string {
	if t == nil {
		return ""
	}
	return t.path
}

// Dup returns a new handle to the same underlying resource.
func (t *Texture) Dup() *Texture {
	if t == nil {
		return nil
	}
	t.refs++
	return t
}

// Release drops one handle. Releasing more handles than were acquired is
// a defect and is logged, not propagated.
func (t *Texture) Release() {
	if t == nil {
		return
	}
	if t.refs <= 0 {
		t.cache.log.Warn("Releasing texture with no live handles", "path", t.path)
		return
	}
	t.refs--
	if t.refs == 0 {
		delete(t.cache.textures, t.path)
		t.cache.log.Debug("Texture evicted", "path", t.path)
	}
}

// Cache owns all loaded textures, keyed by path. Single-threaded, like the
// rest of the landing flow.
type Cache struct {
	log      *slog.Logger
	textures map[string]*Texture
}

func NewCache(log *slog.Logger) *Cache {
	return &Cache{
		log:      log,
		textures: make(map[string]*Texture),
	}
}

// Load returns a handle for the image at path, loading it on first use.
// Repeated loads of the same path share one underlying resource.
func (c *Cache) Load(path string) *Texture {
	if t, ok := c.textures[path]; ok {
		t.refs++
		return t
	}
	t := &Texture{cache: c, path: path, refs: 1}
	c.textures[path] = t
	c.log.Debug("Texture loaded", "path", path)
	return t
}

// Live reports how many handles are outstanding across all textures.
// Used by resource-accounting tests: after every owner has released, Live
// must return to zero.
func (c *Cache) Live() int {
	n := 0
	for _, t := range c.textures {
		n += t.refs
	}
	return n
}

// Loaded reports how many distinct textures are resident.
func (c *Cache) Loaded() int {
	return len(c.textures)
}
