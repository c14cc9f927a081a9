package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayate891/naev/pkg/gfx"
)

func seedBar(t *testing.T, f *fixture, names ...string) {
	t.Helper()
	for i, name := range names {
		_, err := f.registry.AddEvent(uint32(i+1), "approach", name, i,
			"gfx/portraits/"+name+".webp", name+" is here.")
		require.NoError(t, err)
	}
}

func TestAtIndexAccessors(t *testing.T) {
	f := newFixture(t)
	seedBar(t, f, "Ivella", "Dek")

	name, ok := f.registry.NameAt(0)
	assert.True(t, ok)
	assert.Equal(t, "Ivella", name)

	desc, ok := f.registry.DescriptionAt(1)
	assert.True(t, ok)
	assert.Equal(t, "Dek is here.", desc)

	tex, ok := f.registry.PortraitAt(1)
	assert.True(t, ok)
	assert.Equal(t, "gfx/portraits/Dek.webp", tex.Path())

	// Out-of-range is absent, never a fault.
	for _, i := range []int{-1, 2, 100} {
		_, ok := f.registry.NameAt(i)
		assert.False(t, ok)
		_, ok = f.registry.PortraitAt(i)
		assert.False(t, ok)
		_, ok = f.registry.DescriptionAt(i)
		assert.False(t, ok)
	}
}

func TestBulkFillsAreBounded(t *testing.T) {
	f := newFixture(t)
	seedBar(t, f, "Ivella", "Dek", "Mireia")

	// Capacity below size: exactly capacity entries written.
	small := make([]string, 2)
	assert.Equal(t, 2, f.registry.Names(small))
	assert.Equal(t, []string{"Ivella", "Dek"}, small)

	// Capacity above size: exactly size entries written.
	big := make([]string, 5)
	n := f.registry.Names(big)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"Ivella", "Dek", "Mireia"}, big[:n])
	assert.Equal(t, "", big[3], "entries past the count stay untouched")

	texes := make([]*gfx.Texture, 2)
	assert.Equal(t, 2, f.registry.Portraits(texes))
	assert.Equal(t, "gfx/portraits/Ivella.webp", texes[0].Path())
	assert.Equal(t, "gfx/portraits/Dek.webp", texes[1].Path())

	// Zero-capacity buffers are a no-op.
	assert.Equal(t, 0, f.registry.Names(nil))
	assert.Equal(t, 0, f.registry.Portraits(nil))
}

func TestBulkFillsFollowSortOrder(t *testing.T) {
	f := newFixture(t)
	_, err := f.registry.AddEvent(1, "approach", "Late", 9, "gfx/late.webp", "d")
	require.NoError(t, err)
	_, err = f.registry.AddEvent(2, "approach", "Early", 1, "gfx/early.webp", "d")
	require.NoError(t, err)
	f.registry.SortByPriority()

	buf := make([]string, 2)
	f.registry.Names(buf)
	assert.Equal(t, []string{"Early", "Late"}, buf)
}
