package manager

import (
	"snaker/game/types"
)

// Rand is a uniform integer source over [0, n).
type Rand interface {
	Intn(n int) int
}

// TargetManager owns the single target and moves it when it is eaten.
type TargetManager struct {
	target types.Target
	rng    Rand
}

func NewTargetManager(target types.Target, rng Rand) *TargetManager {
	return &TargetManager{
		target: target,
		rng:    rng,
	}
}

func (tm *TargetManager) Target() types.Target {
	return tm.target
}

// Relocate moves the target to a uniformly random position inside width x height.
// Each axis is sampled independently.
func (tm *TargetManager) Relocate(width, height int) types.Target {
	// A minimized window can report zero bounds.
	width, height = max(width, 1), max(height, 1)
	tm.target.Position = types.Vector{
		X: float32(tm.rng.Intn(width)),
		Y: float32(tm.rng.Intn(height)),
	}
	return tm.target
}

func (tm *TargetManager) SetColor(c types.Color) {
	tm.target.Color = c
}
