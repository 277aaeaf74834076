package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"glossify/models"
)

func TestNavigateClampsAtBoundaries(t *testing.T) {
	const tierCount = 3

	// At the first tier, left is a no-op.
	assert.Equal(t, 0, Navigate(0, tierCount, DirectionLeft))
	// At the last tier, right is a no-op.
	assert.Equal(t, 2, Navigate(2, tierCount, DirectionRight))
	// In the middle, both directions move.
	assert.Equal(t, 0, Navigate(1, tierCount, DirectionLeft))
	assert.Equal(t, 2, Navigate(1, tierCount, DirectionRight))
}

func TestTierPositionWithSentinels(t *testing.T) {
	// Focused on tier 0: its left neighbor is the leading sentinel, so the
	// first real tier is centered and the second previews on the right.
	assert.Equal(t, PositionCenter, TierPosition(0, 0))
	assert.Equal(t, PositionRight, TierPosition(1, 0))
	assert.Equal(t, PositionHidden, TierPosition(2, 0))

	// Focused on tier 1 of three.
	assert.Equal(t, PositionLeft, TierPosition(0, 1))
	assert.Equal(t, PositionCenter, TierPosition(1, 1))
	assert.Equal(t, PositionRight, TierPosition(2, 1))

	// The leading sentinel slot sits left of the first centered tier.
	assert.Equal(t, PositionLeft, PaddedPosition(0, 0))
	// The trailing sentinel slot sits right of the last centered tier.
	assert.Equal(t, PositionRight, PaddedPosition(4, 2))
}

func TestJumpToClamps(t *testing.T) {
	assert.Equal(t, 2, JumpTo(5, 3))
	assert.Equal(t, 0, JumpTo(-1, 3))
	assert.Equal(t, 1, JumpTo(1, 3))
	assert.Equal(t, 0, JumpTo(4, 0))
}

func TestInitialIndexPrefersPopular(t *testing.T) {
	tiers := []models.CatalogItem{
		{ID: "basic"},
		{ID: "deluxe", Popular: true},
		{ID: "elite", Popular: true},
	}
	assert.Equal(t, 1, InitialIndex(tiers))

	// Without a popular flag, default to the first tier.
	noPopular := []models.CatalogItem{{ID: "a"}, {ID: "b"}}
	assert.Equal(t, 0, InitialIndex(noPopular))

	assert.Equal(t, 0, InitialIndex(nil))
}
