package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window wraps the raylib window. It reports its live size so a resized window
// changes where the target can respawn.
type Window struct{}

func OpenWindow(width, height int, title string, exitKey string, fps int) *Window {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetExitKey(KeyCode(exitKey))
	rl.SetTargetFPS(int32(fps))
	return &Window{}
}

func (w *Window) ScreenWidth() int {
	return rl.GetScreenWidth()
}

func (w *Window) ScreenHeight() int {
	return rl.GetScreenHeight()
}

func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// SetTickRate changes how many ticks run per second. Must be called from the loop goroutine.
func (w *Window) SetTickRate(fps int) {
	rl.SetTargetFPS(int32(fps))
}

func (w *Window) Close() {
	rl.CloseWindow()
}

// KeyCode maps an exit key name from the config to a raylib key.
// Unknown names fall back to backspace.
func KeyCode(name string) int32 {
	switch strings.ToLower(name) {
	case "escape", "esc":
		return rl.KeyEscape
	case "q":
		return rl.KeyQ
	case "enter":
		return rl.KeyEnter
	case "none":
		return rl.KeyNull
	default:
		return rl.KeyBackspace
	}
}
