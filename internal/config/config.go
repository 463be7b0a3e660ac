// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// HopperConfig contains all tunables for Sky Hopper.
type HopperConfig struct {
	Physics   HopperPhysics   `yaml:"physics"`
	Player    HopperPlayer    `yaml:"player"`
	Platforms HopperPlatforms `yaml:"platforms"`
	Render    HopperRender    `yaml:"render"`
	Input     HopperInput     `yaml:"input"`
}

// HopperPhysics defines the player's motion constants. Units are per tick.
type HopperPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	Drag           float64 `yaml:"drag"`
	BounceVelocity float64 `yaml:"bounce_velocity"` // Negative = upward
	MoveSpeed      float64 `yaml:"move_speed"`
}

// HopperPlayer defines the player's size and start position.
type HopperPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StartOffsetY float64 `yaml:"start_offset_y"`
}

// HopperPlatforms defines platform size and procedural placement.
type HopperPlatforms struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	Count              int     `yaml:"count"`
	FirstOffset        float64 `yaml:"first_offset"`
	FloorGap           float64 `yaml:"floor_gap"`
	MinVerticalGap     float64 `yaml:"min_vertical_gap"`
	MaxVerticalGap     float64 `yaml:"max_vertical_gap"`
	HorizontalMargin   float64 `yaml:"horizontal_margin"`
	MaxHorizontalShift float64 `yaml:"max_horizontal_shift"`
}

// HopperRender defines how world units map onto terminal cells.
type HopperRender struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// HopperInput defines keyboard handling.
type HopperInput struct {
	// ReleaseTicks is how many ticks a direction stays held after its last
	// key event. Terminals report key presses and repeats but never releases.
	ReleaseTicks int `yaml:"release_ticks"`
}

// Validation errors.
var (
	ErrInvalidSize     = errors.New("sizes must be positive")
	ErrInvalidGapRange = errors.New("vertical gap range is invalid")
	ErrUnreachableGap  = errors.New("maximum vertical gap is higher than the jump apex")
)

// JumpApex returns how high a bounce lifts the player before gravity
// turns it around: v^2 / (2g).
func (c HopperConfig) JumpApex() float64 {
	v := c.Physics.BounceVelocity
	return v * v / (2 * c.Physics.Gravity)
}

// Validate checks the config for values the simulation cannot work with.
// Platform spacing and jump physics are coupled: every generated gap must
// be clearable by a single bounce.
func (c HopperConfig) Validate() error {
	p := c.Platforms
	switch {
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("player: %w", ErrInvalidSize)
	case p.Width <= 0 || p.Height <= 0 || p.Count <= 0:
		return fmt.Errorf("platforms: %w", ErrInvalidSize)
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return fmt.Errorf("render: %w", ErrInvalidSize)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("physics: gravity %v: %w", c.Physics.Gravity, ErrInvalidSize)
	case c.Physics.BounceVelocity >= 0:
		return fmt.Errorf("physics: bounce_velocity %v must be negative (upward)", c.Physics.BounceVelocity)
	case p.MinVerticalGap <= 0 || p.MinVerticalGap > p.MaxVerticalGap:
		return fmt.Errorf("platforms: [%v, %v]: %w", p.MinVerticalGap, p.MaxVerticalGap, ErrInvalidGapRange)
	case p.MaxVerticalGap > c.JumpApex():
		return fmt.Errorf("platforms: %v > %.1f: %w", p.MaxVerticalGap, c.JumpApex(), ErrUnreachableGap)
	}
	return nil
}
