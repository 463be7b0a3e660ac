package hopper

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// Viewport is the visible area in world units. World and screen
// coordinates coincide; scrolling moves the world, not the viewport.
type Viewport struct {
	Width, Height float64
}

// PlatformField owns the active platforms: initial population, upward
// extension as the camera climbs, and pruning below the screen.
type PlatformField struct {
	platforms []core.Rect
	rng       *rand.Rand
	cfg       config.HopperPlatforms
}

// NewPlatformField creates an empty field drawing placement from rng.
func NewPlatformField(rng *rand.Rand, cfg config.HopperPlatforms) *PlatformField {
	return &PlatformField{
		platforms: make([]core.Rect, 0, cfg.Count*2),
		rng:       rng,
		cfg:       cfg,
	}
}

// Initialize replaces the field with the starting layout: one platform
// centered under the player's feet, then Count-1 platforms at random x,
// evenly spaced by vp.Height/Count starting at FirstOffset.
func (f *PlatformField) Initialize(player core.Rect, vp Viewport) {
	f.platforms = f.platforms[:0]

	w, h := f.cfg.Width, f.cfg.Height
	f.platforms = append(f.platforms, core.NewRect(
		player.CenterX()-w/2,
		player.Bottom()+f.cfg.FloorGap,
		w, h,
	))

	spacing := vp.Height / float64(f.cfg.Count)
	for i := 1; i < f.cfg.Count; i++ {
		x := uniform(f.rng, 0, vp.Width-w)
		y := float64(i)*spacing + f.cfg.FirstOffset
		f.platforms = append(f.platforms, core.NewRect(x, y, w, h))
	}
}

// ExtendUpward appends platforms above the topmost one until the top of the
// viewport is covered. Each new platform is placed relative to the one
// appended just before it, so the ladder stays connected.
// Returns the number of platforms added.
func (f *PlatformField) ExtendUpward(vp Viewport) int {
	top, ok := f.Topmost()
	if !ok {
		return 0
	}

	added := 0
	for top.Y > 0 {
		y := top.Y - uniform(f.rng, f.cfg.MinVerticalGap, f.cfg.MaxVerticalGap)
		lo := math.Max(top.X-f.cfg.MaxHorizontalShift, f.cfg.HorizontalMargin)
		hi := math.Min(top.X+f.cfg.MaxHorizontalShift, vp.Width-f.cfg.Width-f.cfg.HorizontalMargin)
		x := uniform(f.rng, lo, hi)

		next := core.NewRect(x, y, f.cfg.Width, f.cfg.Height)
		f.platforms = append(f.platforms, next)
		top = next
		added++
	}
	return added
}

// Prune drops every platform whose top edge is at or below height.
// Returns the number removed.
func (f *PlatformField) Prune(height float64) int {
	kept := f.platforms[:0]
	for _, p := range f.platforms {
		if p.Y < height {
			kept = append(kept, p)
		}
	}
	removed := len(f.platforms) - len(kept)
	f.platforms = kept
	return removed
}

// TranslateAll shifts every platform vertically by dy.
func (f *PlatformField) TranslateAll(dy float64) {
	for i := range f.platforms {
		f.platforms[i] = f.platforms[i].Translate(0, dy)
	}
}

// Topmost returns the platform with the smallest y.
func (f *PlatformField) Topmost() (core.Rect, bool) {
	if len(f.platforms) == 0 {
		return core.Rect{}, false
	}
	top := f.platforms[0]
	for _, p := range f.platforms[1:] {
		if p.Y < top.Y {
			top = p
		}
	}
	return top, true
}

// Platforms returns the active platforms in insertion order.
// The slice is owned by the field; callers must not keep it across ticks.
func (f *PlatformField) Platforms() []core.Rect {
	return f.platforms
}

// Len returns the number of active platforms.
func (f *PlatformField) Len() int {
	return len(f.platforms)
}
