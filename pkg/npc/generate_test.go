package npc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayate891/naev/pkg/mission"
)

func TestGenerateSortsOffers(t *testing.T) {
	f := newFixture(t)
	f.missions.offers = []*mission.Mission{
		testOffer(f.cache, "routine", 5),
		testOffer(f.cache, "urgent", 1),
	}

	require.NoError(t, f.registry.Generate())
	require.Equal(t, 2, f.registry.Len())
	assert.Equal(t, 1, f.registry.At(0).Priority())
	assert.Equal(t, 5, f.registry.At(1).Priority())

	// Accept the priority-1 offer; the priority-5 patron keeps its
	// identity and its place.
	survivor := f.registry.At(1).ID()
	f.missions.outcome = mission.OutcomeAccepted
	consumed, err := f.registry.Approach(0)
	require.NoError(t, err)
	assert.True(t, consumed)

	require.Equal(t, 1, f.registry.Len())
	assert.Equal(t, survivor, f.registry.At(0).ID())
	assert.Equal(t, 5, f.registry.At(0).Priority())
}

func TestGenerateIsAdditive(t *testing.T) {
	f := newFixture(t)

	// A mission registered its own patron before the bar was populated.
	hookID, err := f.registry.AddEvent(3, "approach", "Informer", 0, "gfx/informer.webp", "Already here.")
	require.NoError(t, err)

	f.missions.offers = []*mission.Mission{testOffer(f.cache, "cargo", 2)}
	require.NoError(t, f.registry.Generate())

	assert.Equal(t, 2, f.registry.Len())
	require.NotNil(t, f.registry.Get(hookID))
	// Priority 0 sorts the pre-existing patron first.
	assert.Equal(t, hookID, f.registry.At(0).ID())
}

func TestGenerateRequiresLanded(t *testing.T) {
	f := newFixture(t)
	f.session.Depart()

	assert.ErrorIs(t, f.registry.Generate(), ErrNotLanded)
	assert.Equal(t, 0, f.registry.Len())
}

func TestGenerateOfferQueryFailure(t *testing.T) {
	f := newFixture(t)
	f.missions.offersErr = errors.New("mission computer offline")

	// An empty bar is a valid state, not an error.
	require.NoError(t, f.registry.Generate())
	assert.Equal(t, 0, f.registry.Len())
}
