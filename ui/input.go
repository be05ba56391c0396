package ui

import (
	"snaker/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var arrowKeys = map[types.Heading]int32{
	types.Up:    rl.KeyUp,
	types.Down:  rl.KeyDown,
	types.Left:  rl.KeyLeft,
	types.Right: rl.KeyRight,
}

// KeyboardInput reads the arrow keys from raylib's per-frame key state.
type KeyboardInput struct{}

func (KeyboardInput) IsDown(h types.Heading) bool {
	return rl.IsKeyDown(arrowKeys[h])
}

func (KeyboardInput) IsPressed(h types.Heading) bool {
	return rl.IsKeyPressed(arrowKeys[h])
}
