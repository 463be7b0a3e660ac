package config

import (
	_ "embed"
)

//go:embed defaults/hopper.yaml
var defaultHopperYAML []byte

// DefaultHopperConfig returns the built-in Sky Hopper configuration.
// It mirrors defaults/hopper.yaml and is used when the embedded file
// cannot be parsed.
func DefaultHopperConfig() HopperConfig {
	return HopperConfig{
		Physics: HopperPhysics{
			Gravity:        0.33,
			Drag:           0.3,
			BounceVelocity: -12.5,
			MoveSpeed:      3,
		},
		Player: HopperPlayer{
			Width:        40,
			Height:       60,
			StartOffsetY: 100,
		},
		Platforms: HopperPlatforms{
			Width:              100,
			Height:             10,
			Count:              30,
			FirstOffset:        100,
			FloorGap:           10,
			MinVerticalGap:     80,
			MaxVerticalGap:     120,
			HorizontalMargin:   50,
			MaxHorizontalShift: 150,
		},
		Render: HopperRender{
			CellWidth:  10,
			CellHeight: 20,
		},
		Input: HopperInput{
			ReleaseTicks: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultHopperYAML
}
