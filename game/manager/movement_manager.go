package manager

import (
	"fmt"

	"snaker/game/entity"
	"snaker/game/types"
)

// MovementManager moves the snake one cell per tick.
type MovementManager struct{}

func NewMovementManager() *MovementManager {
	return &MovementManager{}
}

// Advance moves the snake one segment size along heading and returns the new head.
// A single segment is translated in place. Longer snakes recycle the tail into the
// cell ahead of the head, so the cost does not depend on the snake length.
func (mm *MovementManager) Advance(snake *entity.Snake, heading types.Heading) (types.Segment, error) {
	head := snake.GetHead()
	next := head.Position.Step(heading, head.Size)

	if snake.Len() == 1 {
		head.Position = next
		snake.SetHead(head)
		return head, nil
	}

	tail, err := snake.PopBack()
	if err != nil {
		return types.Segment{}, fmt.Errorf("recycle tail: %w", err)
	}
	tail.Position = next
	snake.PushFront(tail)
	return tail, nil
}

// Grow appends a segment one step ahead of the head along heading, sized like the head.
func (mm *MovementManager) Grow(snake *entity.Snake, heading types.Heading) types.Segment {
	head := snake.GetHead()
	seg := types.Segment{
		Position: head.Position.Step(heading, head.Size),
		Size:     head.Size,
	}
	snake.PushBack(seg)
	return seg
}
