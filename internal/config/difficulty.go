package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// gapRange is the vertical platform spacing for a preset.
type gapRange struct {
	min, max float64
}

// Normal has no entry: it plays the configured gaps as they are.
var presetGaps = map[DifficultyPreset]gapRange{
	DifficultyEasy: {min: 60, max: 100},
	DifficultyHard: {min: 100, max: 150},
}

// ParsePreset converts a CLI string to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(s)
	if _, ok := presetGaps[p]; !ok && p != DifficultyNormal {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyHopperPreset sets the vertical gap range for a preset.
// Normal and unknown presets leave the config untouched.
func ApplyHopperPreset(cfg *HopperConfig, preset DifficultyPreset) {
	g, ok := presetGaps[preset]
	if !ok {
		return
	}
	cfg.Platforms.MinVerticalGap = g.min
	cfg.Platforms.MaxVerticalGap = g.max
}
