package config

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file to be created: %v", err)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": 1024, "frontend": "terminal"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 1024 || cfg.Frontend != FrontendTerminal {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Height != 600 || cfg.SegmentSize != 20 || cfg.TicksPerSecond != 8 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsBrokenJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": `), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *AppConfig)
		ok     bool
	}{
		{"Defaults", func(c *AppConfig) {}, true},
		{"Headless", func(c *AppConfig) { c.Frontend = FrontendHeadless }, true},
		{"Zero width", func(c *AppConfig) { c.Width = 0 }, false},
		{"Negative height", func(c *AppConfig) { c.Height = -10 }, false},
		{"Zero segment", func(c *AppConfig) { c.SegmentSize = 0 }, false},
		{"Negative target", func(c *AppConfig) { c.TargetSize = -1 }, false},
		{"Zero tick rate", func(c *AppConfig) { c.TicksPerSecond = 0 }, false},
		{"Unknown frontend", func(c *AppConfig) { c.Frontend = "vulkan" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("got %v, want ErrInvalid", err)
			}
		})
	}
}

func TestWatchPublishesValidReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := Save(path, Default()); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, Default(), Overrides{}, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	cfg := Default()
	cfg.TicksPerSecond = 0
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	cfg.TicksPerSecond = 15
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-w.Updates:
			if got.TicksPerSecond == 0 {
				t.Fatalf("invalid config was published")
			}
			if got.TicksPerSecond == 15 {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for reload")
		}
	}
}

func TestOverridesApply(t *testing.T) {
	cfg := Default()
	Overrides{}.Apply(cfg)
	if *cfg != *Default() {
		t.Errorf("empty overrides changed the config: %+v", cfg)
	}

	Overrides{Frontend: FrontendHeadless, TicksPerSecond: 30, Seed: 7}.Apply(cfg)
	if cfg.Frontend != FrontendHeadless || cfg.TicksPerSecond != 30 || cfg.Seed != 7 {
		t.Errorf("got %+v, want headless, 30 ticks/s, seed 7", cfg)
	}
}

func TestWatchKeepsOverridesOnReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := Save(path, Default()); err != nil {
		t.Fatal(err)
	}

	overrides := Overrides{TicksPerSecond: 30}
	current := Default()
	overrides.Apply(current)

	w, err := Watch(path, current, overrides, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	// Only the overridden key changes: the effective config is the same.
	cfg := Default()
	cfg.TicksPerSecond = 12
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	cfg.SnakeColor.R = 200
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Updates:
		if got.TicksPerSecond != 30 {
			t.Errorf("ticks per second: got %d, want 30", got.TicksPerSecond)
		}
		if got.SnakeColor.R != 200 {
			t.Errorf("snake color red: got %d, want 200", got.SnakeColor.R)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
}
