package manager

import "snaker/game/types"

// Input reports the directional key state for the current tick.
type Input interface {
	// IsDown reports whether the direction is currently held.
	IsDown(h types.Heading) bool
	// IsPressed reports whether the direction was newly pressed this tick.
	IsPressed(h types.Heading) bool
}

// DirectionManager owns the committed heading.
type DirectionManager struct {
	heading types.Heading
}

func NewDirectionManager(initial types.Heading) *DirectionManager {
	return &DirectionManager{heading: initial}
}

func (dm *DirectionManager) Heading() types.Heading {
	return dm.heading
}

// Update polls the input once and commits the resulting heading.
// Up is checked as held, the others as newly pressed; when several are active the
// last one checked wins. Reversals are not filtered.
func (dm *DirectionManager) Update(in Input) types.Heading {
	if in == nil {
		return dm.heading
	}
	if in.IsDown(types.Up) {
		dm.heading = types.Up
	}
	if in.IsPressed(types.Down) {
		dm.heading = types.Down
	}
	if in.IsPressed(types.Left) {
		dm.heading = types.Left
	}
	if in.IsPressed(types.Right) {
		dm.heading = types.Right
	}
	return dm.heading
}
