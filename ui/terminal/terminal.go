// Package terminal runs the game inside a terminal using tcell.
// Every game cell is drawn two columns wide so squares look square.
package terminal

import (
	"snaker/game"
	"snaker/game/types"

	"github.com/gdamore/tcell/v2"
)

const columnsPerCell = 2

var arrowKeys = map[tcell.Key]types.Heading{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

// Terminal is the screen, input source and renderer for terminal mode.
// Events arrive on a pump goroutine; Poll and Draw must be called from the loop goroutine.
type Terminal struct {
	screen   tcell.Screen
	cellSize float32
	events   chan tcell.Event
	pressed  map[types.Heading]bool
	quit     bool
}

// New initializes screen. cellSize is the game size of one terminal cell.
func New(screen tcell.Screen, cellSize float32) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return &Terminal{
		screen:   screen,
		cellSize: cellSize,
		events:   make(chan tcell.Event, 100),
		pressed:  make(map[types.Heading]bool),
	}, nil
}

// Start pumps terminal events into the buffered channel read by Poll.
func (t *Terminal) Start() {
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			t.events <- ev
		}
	}()
}

// Poll clears last tick's key state and applies every queued event.
// It returns false once an exit key was seen.
func (t *Terminal) Poll() bool {
	clear(t.pressed)
	for {
		select {
		case ev := <-t.events:
			t.HandleEvent(ev)
		default:
			return !t.quit
		}
	}
}

// HandleEvent applies one terminal event to the key state.
func (t *Terminal) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyBackspace, tcell.KeyBackspace2:
			t.quit = true
			return
		}
		if h, ok := arrowKeys[ev.Key()]; ok {
			t.pressed[h] = true
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// Terminals only report key presses, so a key counts as held for the tick it was pressed in.
func (t *Terminal) IsDown(h types.Heading) bool {
	return t.pressed[h]
}

func (t *Terminal) IsPressed(h types.Heading) bool {
	return t.pressed[h]
}

func (t *Terminal) ScreenWidth() int {
	cols, _ := t.screen.Size()
	return int(float32(cols/columnsPerCell) * t.cellSize)
}

func (t *Terminal) ScreenHeight() int {
	_, rows := t.screen.Size()
	return int(float32(rows) * t.cellSize)
}

func style(c types.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (t *Terminal) Draw(scene game.Scene) {
	t.screen.Clear()

	target := scene.Target()
	t.fill(target.Position, style(target.Color))

	body := style(scene.SnakeColor())
	for _, seg := range scene.Segments() {
		t.fill(seg.Position, body)
	}

	t.screen.Show()
}

// fill paints the terminal cell containing pos. Positions off screen are skipped.
func (t *Terminal) fill(pos types.Vector, st tcell.Style) {
	if pos.X < 0 || pos.Y < 0 {
		return
	}
	col := int(pos.X/t.cellSize) * columnsPerCell
	row := int(pos.Y / t.cellSize)
	cols, rows := t.screen.Size()
	if col+columnsPerCell > cols || row >= rows {
		return
	}
	for i := 0; i < columnsPerCell; i++ {
		t.screen.SetContent(col+i, row, ' ', nil, st)
	}
}

func (t *Terminal) Close() {
	t.screen.Fini()
}
