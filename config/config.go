package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"snaker/game/types"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Front ends selectable with the "frontend" key.
const (
	FrontendRaylib   = "raylib"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// AppConfig holds the structure of the configuration file
type AppConfig struct {
	Width          int         `json:"width"`
	Height         int         `json:"height"`
	SegmentSize    float32     `json:"segment_size"`
	TargetSize     float32     `json:"target_size"`
	TicksPerSecond int         `json:"ticks_per_second"`
	Frontend       string      `json:"frontend"`
	Seed           uint64      `json:"seed"`
	ExitKey        string      `json:"exit_key"`
	SnakeColor     types.Color `json:"snake_color"`
	TargetColor    types.Color `json:"target_color"`
}

// Overrides hold command line values. They win over the file at startup and
// on every reload. Zero values leave the file's setting alone.
type Overrides struct {
	Frontend       string
	TicksPerSecond int
	Seed           uint64
}

func (o Overrides) Apply(c *AppConfig) {
	if o.Frontend != "" {
		c.Frontend = o.Frontend
	}
	if o.TicksPerSecond > 0 {
		c.TicksPerSecond = o.TicksPerSecond
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
}

// Default returns the settings used when no config file exists.
func Default() *AppConfig {
	return &AppConfig{
		Width:          800,
		Height:         600,
		SegmentSize:    types.DefaultSegmentSize,
		TargetSize:     types.DefaultTargetSize,
		TicksPerSecond: 8,
		Frontend:       FrontendRaylib,
		ExitKey:        "backspace",
		SnakeColor:     types.Color{R: 0, G: 121, B: 241},
		TargetColor:    types.Color{R: 230, G: 41, B: 55},
	}
}

// Load reads the config at filePath. A missing file is created with defaults.
// Keys absent from the file keep their default values.
func Load(filePath string) (*AppConfig, error) {
	cfg := Default()
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := Save(filePath, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filePath, err)
	}
	return cfg, nil
}

// Save writes cfg to filePath as indented JSON.
func Save(filePath string, cfg *AppConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate rejects geometry and pacing the game cannot run with.
func (c *AppConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalid, c.Width, c.Height)
	case c.SegmentSize <= 0:
		return fmt.Errorf("%w: segment_size %v", ErrInvalid, c.SegmentSize)
	case c.TargetSize <= 0:
		return fmt.Errorf("%w: target_size %v", ErrInvalid, c.TargetSize)
	case c.TicksPerSecond <= 0:
		return fmt.Errorf("%w: ticks_per_second %d", ErrInvalid, c.TicksPerSecond)
	}
	switch c.Frontend {
	case FrontendRaylib, FrontendTerminal, FrontendHeadless:
	default:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalid, c.Frontend)
	}
	return nil
}
