package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultHopperConfig() {
		t.Errorf("embedded YAML and DefaultHopperConfig differ:\n%+v\n%+v", cfg, DefaultHopperConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultHopperConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if apex := cfg.JumpApex(); apex < cfg.Platforms.MaxVerticalGap {
		t.Errorf("jump apex %.1f cannot clear max gap %.1f", apex, cfg.Platforms.MaxVerticalGap)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*HopperConfig)
		wantErr error
	}{
		{
			name:    "zero player width",
			mutate:  func(c *HopperConfig) { c.Player.Width = 0 },
			wantErr: ErrInvalidSize,
		},
		{
			name:    "no platforms",
			mutate:  func(c *HopperConfig) { c.Platforms.Count = 0 },
			wantErr: ErrInvalidSize,
		},
		{
			name:    "zero cell size",
			mutate:  func(c *HopperConfig) { c.Render.CellHeight = 0 },
			wantErr: ErrInvalidSize,
		},
		{
			name: "inverted gap range",
			mutate: func(c *HopperConfig) {
				c.Platforms.MinVerticalGap = 130
				c.Platforms.MaxVerticalGap = 120
			},
			wantErr: ErrInvalidGapRange,
		},
		{
			name:    "gap higher than jump",
			mutate:  func(c *HopperConfig) { c.Platforms.MaxVerticalGap = 300 },
			wantErr: ErrUnreachableGap,
		},
		{
			name:    "weak bounce",
			mutate:  func(c *HopperConfig) { c.Physics.BounceVelocity = -5 },
			wantErr: ErrUnreachableGap,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHopperConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, expected %v", err, tc.wantErr)
			}
		})
	}

	cfg := DefaultHopperConfig()
	cfg.Physics.BounceVelocity = 3
	if err := cfg.Validate(); err == nil {
		t.Error("upward bounce velocity must be negative")
	}
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 0.5\nplatforms:\n  count: 12\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Platforms.Count != 12 {
		t.Errorf("count = %d, expected 12", cfg.Platforms.Count)
	}
	if cfg.Physics.BounceVelocity != -12.5 {
		t.Errorf("unset fields should keep defaults, bounce = %v", cfg.Physics.BounceVelocity)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("physics: [not, a, map]")); err == nil {
		t.Error("Parse should fail on malformed YAML")
	}
	if _, err := Parse([]byte("platforms:\n  max_vertical_gap: 500\n")); !errors.Is(err, ErrUnreachableGap) {
		t.Errorf("Parse should validate, got %v", err)
	}
}

func TestLoadHopperCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hopper.yaml")
	if err := os.WriteFile(path, []byte("player:\n  width: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadHopper(path)
	if err != nil {
		t.Fatalf("LoadHopper() error: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Player.Width != 30 {
		t.Errorf("player width = %v, expected 30", cfg.Player.Width)
	}
}

func TestLoadHopperMissingCustomPath(t *testing.T) {
	_, _, err := LoadHopper(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a wrapped not-exist error, got %v", err)
	}
}

func TestLoadHopperFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	testChdir(t, t.TempDir())

	cfg, source, err := LoadHopper("")
	if err != nil {
		t.Fatalf("LoadHopper() error: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != DefaultHopperConfig() {
		t.Error("embedded fallback should equal the defaults")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
	}{
		{"", DifficultyNormal},
		{"easy", DifficultyEasy},
		{"hard", DifficultyHard},
	}
	for _, tc := range tests {
		p, err := ParsePreset(tc.in)
		if err != nil || p != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, %v", tc.in, p, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}

	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg := DefaultHopperConfig()
		ApplyHopperPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produces an invalid config: %v", p, err)
		}
	}

	cfg := DefaultHopperConfig()
	ApplyHopperPreset(&cfg, DifficultyHard)
	if cfg.Platforms.MinVerticalGap != 100 || cfg.Platforms.MaxVerticalGap != 150 {
		t.Errorf("hard gaps = [%v, %v]", cfg.Platforms.MinVerticalGap, cfg.Platforms.MaxVerticalGap)
	}

	custom := DefaultHopperConfig()
	custom.Platforms.MinVerticalGap, custom.Platforms.MaxVerticalGap = 70, 90
	ApplyHopperPreset(&custom, DifficultyNormal)
	if custom.Platforms.MinVerticalGap != 70 || custom.Platforms.MaxVerticalGap != 90 {
		t.Error("normal should keep the configured gaps")
	}
}

// testChdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains:
// it changes the working directory and restores it when the test ends.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}
