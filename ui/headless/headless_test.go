package headless

import (
	"testing"

	"snaker/game/types"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		ticks   int
		wantErr bool
	}{
		{"Empty", "", 0, false},
		{"Letters", "uudlr", 5, false},
		{"Idle steps", "R..D", 4, false},
		{"Group", "[UL]R", 2, false},
		{"Whitespace ignored", "U D\nL", 3, false},
		{"Unknown letter", "UX", 0, true},
		{"Unterminated group", "[UL", 0, true},
		{"Unmatched close", "U]", 0, true},
		{"Nested group", "[[U]]", 0, true},
		{"Idle inside group", "[U.]", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseScript(tt.script)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if in.Len() != tt.ticks {
				t.Errorf("ticks: got %d, want %d", in.Len(), tt.ticks)
			}
		})
	}
}

func TestScriptedInputReplaysPerTick(t *testing.T) {
	in, err := ParseScript("U.[LR]")
	if err != nil {
		t.Fatal(err)
	}

	if in.IsDown(types.Up) {
		t.Errorf("nothing should be pressed before the first tick")
	}

	in.Next()
	if !in.IsDown(types.Up) || !in.IsPressed(types.Up) {
		t.Errorf("tick 1: up should be pressed")
	}

	in.Next()
	for _, h := range types.Headings {
		if in.IsPressed(h) {
			t.Errorf("tick 2: %v should not be pressed", h)
		}
	}

	in.Next()
	if !in.IsPressed(types.Left) || !in.IsPressed(types.Right) || in.IsPressed(types.Up) {
		t.Errorf("tick 3: want left and right only")
	}

	in.Next()
	if in.IsPressed(types.Left) {
		t.Errorf("past the end of the script nothing is pressed")
	}
}

func TestFixedScreen(t *testing.T) {
	s := FixedScreen{Width: 320, Height: 200}
	if s.ScreenWidth() != 320 || s.ScreenHeight() != 200 {
		t.Errorf("got %dx%d, want 320x200", s.ScreenWidth(), s.ScreenHeight())
	}
}
