package npc

import "github.com/hayate891/naev/pkg/gfx"

// Read-only projections over the current bar ordering, for a
// caller-owned display surface. None of these mutate the registry.

// NameAt returns the display name at the given index; ok is false outside
// [0, Len).
func (r *Registry) NameAt(i int) (string, bool) {
	rec := r.At(i)
	if rec == nil {
		return "", false
	}
	return rec.name, true
}

// PortraitAt returns the portrait at the given index, borrowed: valid
// only while the record persists.
func (r *Registry) PortraitAt(i int) (*gfx.Texture, bool) {
	rec := r.At(i)
	if rec == nil {
		return nil, false
	}
	return rec.portrait, true
}

// DescriptionAt returns the description at the given index.
func (r *Registry) DescriptionAt(i int) (string, bool) {
	rec := r.At(i)
	if rec == nil {
		return "", false
	}
	return rec.desc, true
}

// Names fills buf with up to min(len(buf), Len) display names in bar
// order and returns the count written. The entries are caller-owned
// copies.
func (r *Registry) Names(buf []string) int {
	n := min(len(buf), len(r.records))
	for i := 0; i < n; i++ {
		buf[i] = r.records[i].name
	}
	return n
}

// Portraits fills buf with up to min(len(buf), Len) portraits in bar
// order and returns the count written. The entries are borrowed handles,
// valid only while the corresponding records persist.
func (r *Registry) Portraits(buf []*gfx.Texture) int {
	n := min(len(buf), len(r.records))
	for i := 0; i < n; i++ {
		buf[i] = r.records[i].portrait
	}
	return n
}
