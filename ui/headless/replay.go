package headless

import (
	"fmt"

	"snaker/game"
	"snaker/game/manager"
	"snaker/ui/snapshot"
)

// Replay runs a key script on a fixed size screen and optionally saves the last frame.
type Replay struct {
	Script string
	// Ticks to run; 0 runs one tick per script step.
	Ticks         int
	SnapshotPath  string
	SnapshotScale float64
}

// Run builds a game on a width x height screen and plays the script.
func (r Replay) Run(width, height int, rng manager.Rand, opts game.Options) (*game.Game, error) {
	input, err := ParseScript(r.Script)
	if err != nil {
		return nil, err
	}
	ticks := r.Ticks
	if ticks == 0 {
		ticks = input.Len()
	}

	g, err := game.NewGame(FixedScreen{Width: width, Height: height}, rng, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < ticks; i++ {
		input.Next()
		g.Update(input)
	}

	if r.SnapshotPath != "" {
		if err := snapshot.New(width, height).Save(g, r.SnapshotPath, r.SnapshotScale); err != nil {
			return nil, fmt.Errorf("save snapshot: %w", err)
		}
		if opts.Logger != nil {
			opts.Logger.Printf("[%s] snapshot after %d ticks written to %s", g.UUID, ticks, r.SnapshotPath)
		}
	}
	return g, nil
}
