package ui

import (
	"snaker/game"
	"snaker/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the snake and the target as filled squares.
type Renderer struct {
	background rl.Color
}

func NewRenderer() *Renderer {
	return &Renderer{background: rl.RayWhite}
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (r *Renderer) Draw(scene game.Scene) {
	rl.BeginDrawing()
	rl.ClearBackground(r.background)

	target := scene.Target()
	rl.DrawRectangle(
		int32(target.Position.X),
		int32(target.Position.Y),
		int32(target.Size), int32(target.Size), toColor(target.Color))

	snakeColor := toColor(scene.SnakeColor())
	for _, seg := range scene.Segments() {
		rl.DrawRectangle(
			int32(seg.Position.X),
			int32(seg.Position.Y),
			int32(seg.Size), int32(seg.Size), snakeColor)
	}

	rl.EndDrawing()
}
