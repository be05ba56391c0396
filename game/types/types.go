package types

// Heading is the committed direction of travel for a tick.
// The zero value is Right, matching the default heading of a new game.
type Heading int

const (
	Right Heading = iota
	Up
	Down
	Left
)

// Headings lists every heading in the order the direction controller polls them.
var Headings = [4]Heading{Up, Down, Left, Right}

// ToVector returns the unit offset for the heading in screen space (y grows downward).
func (h Heading) ToVector() Vector {
	switch h {
	case Up:
		return Vector{X: 0, Y: -1}
	case Down:
		return Vector{X: 0, Y: 1}
	case Left:
		return Vector{X: -1, Y: 0}
	default:
		return Vector{X: 1, Y: 0}
	}
}

// Opposite returns the reversed heading.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Vector is a 2D floating point coordinate.
type Vector struct {
	X, Y float32
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Step returns the position one cell of the given size away from v along h.
func (v Vector) Step(h Heading, size float32) Vector {
	return v.Add(h.ToVector().Scale(size))
}

// Color is the display attribute of anything drawn on screen.
type Color struct {
	R, G, B uint8
}

// Segment is one square piece of the snake body.
type Segment struct {
	Position Vector
	Size     float32
}

// Target is the consumable spawn point. Exactly one exists per game.
type Target struct {
	Position Vector
	Size     float32
	Color    Color
}

// Game constants
const (
	DefaultSegmentSize = 20.0
	DefaultTargetSize  = 20.0
)
