package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"snaker/config"
	"snaker/game"
	"snaker/ui/headless"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so deferred cleanup always happens.
func run() error {
	configPath := flag.String("config", "./config.json", "Path to the JSON config file (created with defaults if missing)")
	frontend := flag.String("frontend", "", "raylib, terminal or headless (overrides config)")
	tps := flag.Int("tps", 0, "Ticks per second (overrides config)")
	seed := flag.Uint64("seed", 0, "Random seed for target placement, 0 = time based (overrides config)")
	ticks := flag.Int("ticks", 0, "Headless: number of ticks to run (default: length of -script)")
	script := flag.String("script", "", "Headless: one step per tick, U/D/L/R or '.' for no input, [..] groups keys")
	snapshotPath := flag.String("snapshot", "snapshot.png", "Headless: PNG written after the last tick")
	snapshotScale := flag.Float64("snapshot-scale", 1, "Headless: scale factor applied to the snapshot")
	logPath := flag.String("log", "", "Log file (terminal mode defaults to snaker.log)")
	watch := flag.Bool("watch", true, "Apply color and tick rate changes when the config file is edited")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	overrides := config.Overrides{Frontend: *frontend, TicksPerSecond: *tps, Seed: *seed}
	overrides.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("bad configuration: %w", err)
	}

	logger, closeLog, err := newLogger(*logPath, cfg.Frontend)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closeLog()

	session := uuid.New().String()
	rngSeed := cfg.Seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(rngSeed))
	logger.Printf("[%s] starting %s frontend, seed %d, %d ticks/s", session, cfg.Frontend, rngSeed, cfg.TicksPerSecond)

	opts := game.Options{
		SegmentSize: cfg.SegmentSize,
		TargetSize:  cfg.TargetSize,
		SnakeColor:  cfg.SnakeColor,
		TargetColor: cfg.TargetColor,
		UUID:        session,
		Logger:      logger,
	}

	var watcher *config.Watcher
	if *watch && cfg.Frontend != config.FrontendHeadless {
		watcher, err = config.Watch(*configPath, cfg, overrides, logger)
		if err != nil {
			logger.Printf("config hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	var g *game.Game
	switch cfg.Frontend {
	case config.FrontendRaylib:
		g, err = runRaylib(cfg, opts, rng, watcher, logger)
	case config.FrontendTerminal:
		g, err = runTerminal(cfg, opts, rng, watcher, logger)
	case config.FrontendHeadless:
		g, err = runHeadless(cfg, opts, rng, headless.Replay{
			Script:        *script,
			Ticks:         *ticks,
			SnapshotPath:  *snapshotPath,
			SnapshotScale: *snapshotScale,
		})
	default:
		err = errors.New("no frontend selected")
	}
	if err != nil {
		logger.Printf("[%s] %v", session, err)
		return err
	}

	summary, err := g.Finish()
	if err != nil {
		logger.Printf("[%s] failed to encode session summary: %v", session, err)
		return nil
	}
	logger.Printf("[%s] session summary %s", session, summary)
	return nil
}

// newLogger writes to stderr, or to a file when one is given. The terminal front end
// owns the tty, so it always logs to a file.
func newLogger(path, frontend string) (*log.Logger, func(), error) {
	if path == "" && frontend == config.FrontendTerminal {
		path = "snaker.log"
	}
	var w io.Writer = os.Stderr
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	}
	return log.New(w, "snaker ", log.LstdFlags), closeFn, nil
}
