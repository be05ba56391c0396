// Package headless drives the game without a window: a fixed screen size and
// a scripted sequence of key presses, one per tick.
package headless

import (
	"fmt"
	"strings"

	"snaker/game/types"
)

// FixedScreen is a screen whose size never changes.
type FixedScreen struct {
	Width, Height int
}

func (s FixedScreen) ScreenWidth() int  { return s.Width }
func (s FixedScreen) ScreenHeight() int { return s.Height }

// ScriptedInput replays one step per tick. A step is U, D, L or R for that arrow,
// or '.' for no input. Several letters can be grouped in brackets, e.g. "[UL]",
// to press them in the same tick. Past the end of the script no keys are pressed.
type ScriptedInput struct {
	steps [][]types.Heading
	tick  int
}

func ParseScript(script string) (*ScriptedInput, error) {
	in := &ScriptedInput{}
	var group []types.Heading
	grouping := false
	for i, r := range strings.ToUpper(script) {
		switch r {
		case ' ', '\n', '\t':
			continue
		case '[':
			if grouping {
				return nil, fmt.Errorf("script position %d: nested '['", i)
			}
			grouping, group = true, nil
			continue
		case ']':
			if !grouping {
				return nil, fmt.Errorf("script position %d: unmatched ']'", i)
			}
			grouping = false
			in.steps = append(in.steps, group)
			continue
		case '.':
			if grouping {
				return nil, fmt.Errorf("script position %d: '.' inside group", i)
			}
			in.steps = append(in.steps, nil)
			continue
		}

		h, ok := letters[r]
		if !ok {
			return nil, fmt.Errorf("script position %d: unknown step %q", i, r)
		}
		if grouping {
			group = append(group, h)
		} else {
			in.steps = append(in.steps, []types.Heading{h})
		}
	}
	if grouping {
		return nil, fmt.Errorf("script: unterminated '['")
	}
	return in, nil
}

var letters = map[rune]types.Heading{
	'U': types.Up,
	'D': types.Down,
	'L': types.Left,
	'R': types.Right,
}

// Len is the number of scripted ticks.
func (s *ScriptedInput) Len() int {
	return len(s.steps)
}

// Next advances to the following tick. Call it once per tick before the game update.
func (s *ScriptedInput) Next() {
	s.tick++
}

func (s *ScriptedInput) current() []types.Heading {
	i := s.tick - 1
	if i < 0 || i >= len(s.steps) {
		return nil
	}
	return s.steps[i]
}

func (s *ScriptedInput) IsDown(h types.Heading) bool {
	for _, c := range s.current() {
		if c == h {
			return true
		}
	}
	return false
}

func (s *ScriptedInput) IsPressed(h types.Heading) bool {
	return s.IsDown(h)
}
