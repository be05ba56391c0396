package manager

import (
	"snaker/game/types"
)

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// IsTargetCollision reports whether pos lies strictly inside the box spanning
// target.Size on every side of the target position.
func (cm *CollisionManager) IsTargetCollision(pos types.Vector, target types.Target) bool {
	return abs(pos.X-target.Position.X) < target.Size &&
		abs(pos.Y-target.Position.Y) < target.Size
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
