package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"snaker/game/entity"
	"snaker/game/manager"
	"snaker/game/types"

	"github.com/google/uuid"
)

// ErrInvalidGeometry is returned when the screen or segment sizes cannot host a game.
var ErrInvalidGeometry = errors.New("invalid game geometry")

// Screen reports the current drawable area.
type Screen interface {
	ScreenWidth() int
	ScreenHeight() int
}

// Scene is the read-only view renderers draw from.
type Scene interface {
	Segments() []types.Segment
	Target() types.Target
	SnakeColor() types.Color
}

type Options struct {
	SegmentSize float32
	TargetSize  float32
	SnakeColor  types.Color
	TargetColor types.Color
	UUID        string
	Logger      *log.Logger
}

// TickResult describes what a single Update did.
type TickResult struct {
	Heading  types.Heading
	Head     types.Segment
	Grew     bool
	Reversed bool
	Target   types.Target
}

// Game aggregates the snake, its heading and the target.
// It is not safe for concurrent use; the loop owner calls Update once per tick.
type Game struct {
	UUID       string
	snake      *entity.Snake
	direction  *manager.DirectionManager
	movement   *manager.MovementManager
	targets    *manager.TargetManager
	collisions *manager.CollisionManager
	state      *manager.StateManager
	screen     Screen
	logger     *log.Logger
}

func NewGame(screen Screen, rng manager.Rand, opts Options) (*Game, error) {
	width, height := screen.ScreenWidth(), screen.ScreenHeight()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: screen %dx%d", ErrInvalidGeometry, width, height)
	}
	if opts.SegmentSize <= 0 || opts.TargetSize <= 0 {
		return nil, fmt.Errorf("%w: segment size %v, target size %v",
			ErrInvalidGeometry, opts.SegmentSize, opts.TargetSize)
	}
	if opts.UUID == "" {
		opts.UUID = uuid.New().String()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	start := types.Segment{
		Position: types.Vector{X: float32(width) * 0.5, Y: float32(height) * 0.5},
		Size:     opts.SegmentSize,
	}
	target := types.Target{
		Position: types.Vector{X: float32(width) / 3, Y: float32(height) / 3},
		Size:     opts.TargetSize,
		Color:    opts.TargetColor,
	}

	g := &Game{
		UUID:       opts.UUID,
		snake:      entity.NewSnake(start, opts.SnakeColor),
		direction:  manager.NewDirectionManager(types.Right),
		movement:   manager.NewMovementManager(),
		targets:    manager.NewTargetManager(target, rng),
		collisions: manager.NewCollisionManager(),
		state:      manager.NewStateManager(opts.UUID, time.Now()),
		screen:     screen,
		logger:     logger,
	}
	return g, nil
}

// Update runs one tick: commit the heading, move the snake, then eat the target if
// the new head landed on it. Growth happens at most once per tick.
func (g *Game) Update(in manager.Input) TickResult {
	prev := g.direction.Heading()
	heading := g.direction.Update(in)
	reversed := heading == prev.Opposite()

	head, err := g.movement.Advance(g.snake, heading)
	if err != nil {
		panic(fmt.Sprintf("snake invariant violated: %v", err))
	}

	grew := false
	target := g.targets.Target()
	if g.collisions.IsTargetCollision(head.Position, target) {
		target = g.targets.Relocate(g.screen.ScreenWidth(), g.screen.ScreenHeight())
		seg := g.movement.Grow(g.snake, heading)
		grew = true
		g.logger.Printf("[%s] target eaten at (%.0f, %.0f), length %d, new segment at (%.0f, %.0f), target moved to (%.0f, %.0f)",
			g.UUID, head.Position.X, head.Position.Y, g.snake.Len(),
			seg.Position.X, seg.Position.Y, target.Position.X, target.Position.Y)
	}

	if reversed {
		g.logger.Printf("[%s] heading reversed %s -> %s", g.UUID, prev, heading)
	}
	g.state.RecordTick(g.snake.Len(), grew, reversed)

	return TickResult{
		Heading:  heading,
		Head:     head,
		Grew:     grew,
		Reversed: reversed,
		Target:   target,
	}
}

func (g *Game) Heading() types.Heading {
	return g.direction.Heading()
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

// Segments returns a copy of the body, head first.
func (g *Game) Segments() []types.Segment {
	return g.snake.Segments()
}

func (g *Game) Target() types.Target {
	return g.targets.Target()
}

func (g *Game) SnakeColor() types.Color {
	return g.snake.Color
}

// SetColors repaints the snake and the target from the next frame on.
func (g *Game) SetColors(snake, target types.Color) {
	g.snake.Color = snake
	g.targets.SetColor(target)
}

func (g *Game) Stats() manager.SessionStats {
	return g.state.GetStats()
}

// Finish closes the session and returns its JSON summary.
func (g *Game) Finish() ([]byte, error) {
	return g.state.Finish(time.Now())
}
