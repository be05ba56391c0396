package main

import (
	"log"
	"time"

	"snaker/config"
	"snaker/game"
	"snaker/game/manager"
	"snaker/ui"
	"snaker/ui/headless"
	"snaker/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

func configUpdates(w *config.Watcher) <-chan *config.AppConfig {
	if w == nil {
		return nil
	}
	return w.Updates
}

// applyReload applies what a running game can change: colors now, tick rate via
// the returned flag. Everything else waits for a restart.
func applyReload(g *game.Game, cur, next *config.AppConfig, logger *log.Logger) (tickRateChanged bool) {
	g.SetColors(next.SnakeColor, next.TargetColor)
	if next.Width != cur.Width || next.Height != cur.Height ||
		next.SegmentSize != cur.SegmentSize || next.TargetSize != cur.TargetSize ||
		next.ExitKey != cur.ExitKey || next.Frontend != cur.Frontend || next.Seed != cur.Seed {
		logger.Printf("[%s] config reloaded: only colors and ticks_per_second apply while running, other changes need a restart", g.UUID)
	}
	if next.TicksPerSecond == cur.TicksPerSecond {
		return false
	}
	logger.Printf("[%s] tick rate set to %d", g.UUID, next.TicksPerSecond)
	return true
}

// runRaylib opens a window and runs one tick per frame; raylib paces the frames.
func runRaylib(cfg *config.AppConfig, opts game.Options, rng manager.Rand, w *config.Watcher, logger *log.Logger) (*game.Game, error) {
	win := ui.OpenWindow(cfg.Width, cfg.Height, "snaker", cfg.ExitKey, cfg.TicksPerSecond)
	defer win.Close()

	g, err := game.NewGame(win, rng, opts)
	if err != nil {
		return nil, err
	}
	renderer := ui.NewRenderer()
	input := ui.KeyboardInput{}
	updates := configUpdates(w)

	for !win.ShouldClose() {
		select {
		case c := <-updates:
			if applyReload(g, cfg, c, logger) {
				win.SetTickRate(c.TicksPerSecond)
			}
			cfg = c
		default:
		}

		g.Update(input)
		renderer.Draw(g)
	}
	return g, nil
}

// runTerminal draws into the terminal and ticks on a timer.
func runTerminal(cfg *config.AppConfig, opts game.Options, rng manager.Rand, w *config.Watcher, logger *log.Logger) (*game.Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	term, err := terminal.New(screen, cfg.SegmentSize)
	if err != nil {
		return nil, err
	}
	defer term.Close()
	term.Start()

	g, err := game.NewGame(term, rng, opts)
	if err != nil {
		return nil, err
	}

	ticker := time.NewTicker(tickInterval(cfg.TicksPerSecond))
	defer ticker.Stop()
	updates := configUpdates(w)

	for {
		select {
		case c := <-updates:
			if applyReload(g, cfg, c, logger) {
				ticker.Reset(tickInterval(c.TicksPerSecond))
			}
			cfg = c
		case <-ticker.C:
			if !term.Poll() {
				return g, nil
			}
			g.Update(term)
			term.Draw(g)
		}
	}
}

func tickInterval(tps int) time.Duration {
	return time.Second / time.Duration(tps)
}

func runHeadless(cfg *config.AppConfig, opts game.Options, rng manager.Rand, replay headless.Replay) (*game.Game, error) {
	return replay.Run(cfg.Width, cfg.Height, rng, opts)
}
