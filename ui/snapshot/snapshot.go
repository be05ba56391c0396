// Package snapshot renders a scene into an image and saves it as PNG.
package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"snaker/game"
	"snaker/game/types"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Snapshot draws onto an off-screen canvas the size of the game screen.
type Snapshot struct {
	width, height int
	background    types.Color
}

func New(width, height int) *Snapshot {
	return &Snapshot{
		width:      width,
		height:     height,
		background: types.Color{R: 245, G: 245, B: 245},
	}
}

func setColor(dc *gg.Context, c types.Color) {
	dc.SetRGB255(int(c.R), int(c.G), int(c.B))
}

// Render draws the target and then the snake as filled squares.
func (s *Snapshot) Render(scene game.Scene) image.Image {
	dc := gg.NewContext(s.width, s.height)
	setColor(dc, s.background)
	dc.Clear()

	target := scene.Target()
	setColor(dc, target.Color)
	dc.DrawRectangle(float64(target.Position.X), float64(target.Position.Y), float64(target.Size), float64(target.Size))
	dc.Fill()

	setColor(dc, scene.SnakeColor())
	for _, seg := range scene.Segments() {
		dc.DrawRectangle(float64(seg.Position.X), float64(seg.Position.Y), float64(seg.Size), float64(seg.Size))
	}
	dc.Fill()

	return dc.Image()
}

// Save renders the scene, scales it by factor and writes it to fileName.
func (s *Snapshot) Save(scene game.Scene, fileName string, factor float64) error {
	img := s.Render(scene)
	if factor > 0 && factor != 1 {
		w := int(float64(s.width) * factor)
		h := int(float64(s.height) * factor)
		if w < 1 || h < 1 {
			return fmt.Errorf("snapshot scale %v too small for %dx%d", factor, s.width, s.height)
		}
		img = imaging.Resize(img, w, h, imaging.NearestNeighbor)
	}
	if err := os.MkdirAll(filepath.Dir(fileName), os.ModePerm); err != nil {
		return err
	}
	return gg.SavePNG(fileName, img)
}
