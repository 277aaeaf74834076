package booking

import "glossify/models"

// The carousel shows tiers three-at-a-time. The tier list is logically
// padded with one invisible sentinel slot before the first and after the
// last real tier, so position math never special-cases the boundaries: the
// first real tier's left neighbor is always the sentinel.

// Position is the visual slot of one tier relative to the carousel focus.
type Position string

const (
	PositionCenter Position = "center"
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
	PositionHidden Position = "hidden"
)

// Direction is a carousel navigation direction.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// PaddedPosition computes the position of a padded-list slot. Slot 0 is the
// leading sentinel; real tier i occupies slot i+1.
func PaddedPosition(paddedIndex, currentIndex int) Position {
	switch paddedIndex {
	case currentIndex + 1:
		return PositionCenter
	case currentIndex:
		return PositionLeft
	case currentIndex + 2:
		return PositionRight
	}
	return PositionHidden
}

// TierPosition computes the position of real tier tierIndex when the
// carousel is focused on currentIndex.
func TierPosition(tierIndex, currentIndex int) Position {
	return PaddedPosition(tierIndex+1, currentIndex)
}

// Navigate moves the focus one step, clamped to [0, tierCount-1]. Moving
// left at the first tier or right at the last is a no-op; there is no
// wraparound.
func Navigate(currentIndex, tierCount int, direction Direction) int {
	switch direction {
	case DirectionLeft:
		if currentIndex > 0 {
			return currentIndex - 1
		}
	case DirectionRight:
		if currentIndex < tierCount-1 {
			return currentIndex + 1
		}
	}
	return currentIndex
}

// JumpTo re-centers the carousel on index, clamped into range. Selecting a
// tier directly routes through here.
func JumpTo(index, tierCount int) int {
	if tierCount <= 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index > tierCount-1 {
		return tierCount - 1
	}
	return index
}

// InitialIndex is the default-highlight policy: the first tier flagged
// popular, else index 0. It must run exactly once per (vehicle type,
// category) resolution; the session tracks which keys are initialized.
func InitialIndex(tiers []models.CatalogItem) int {
	for i, tier := range tiers {
		if tier.Popular {
			return i
		}
	}
	return 0
}
