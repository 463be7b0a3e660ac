// Package hopper implements Sky Hopper, a vertical platform jumper.
// The player bounces off procedurally generated platforms while the camera
// scrolls upward; the score is the distance climbed before falling off
// the bottom of the screen.
package hopper

import (
	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
	"github.com/vovakirdan/tui-hopper/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game is the session controller. It owns the Session, translates arcade
// input frames into steering, handles start/pause/restart and drives the
// audio collaborator.
type Game struct {
	id      string
	title   string
	preset  config.DifficultyPreset
	cfg     config.HopperConfig
	runtime core.RuntimeConfig
	session *Session
	paused  bool
	audio   core.Audio

	// holdTicks counts down after the last direction key event; the
	// direction is considered held while it is positive.
	holdTicks int
}

// New creates a controller for a difficulty variant.
func New(id, title string, preset config.DifficultyPreset) *Game {
	return &Game{
		id:     id,
		title:  title,
		preset: preset,
		cfg:    config.DefaultHopperConfig(),
		audio:  core.NopAudio{},
	}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.title
}

// SetAudio installs the soundtrack player. Nil restores silence.
func (g *Game) SetAudio(a core.Audio) {
	if a == nil {
		a = core.NopAudio{}
	}
	g.audio = a
}

// Config returns the configuration of the current session.
func (g *Game) Config() config.HopperConfig {
	return g.cfg
}

// Session exposes the simulation state.
func (g *Game) Session() *Session {
	return g.session
}

// Reset loads the configuration and prepares a session on the title card.
// The viewport is the playfield size in cells scaled to world units.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, _, err := config.LoadHopper(configPath)
	if err != nil {
		cfg = config.DefaultHopperConfig()
	}
	config.ApplyHopperPreset(&cfg, g.preset)
	if cfg.Validate() != nil {
		cfg = config.DefaultHopperConfig()
		config.ApplyHopperPreset(&cfg, g.preset)
	}
	g.cfg = cfg

	vp := Viewport{
		Width:  float64(runtime.ScreenW) * cfg.Render.CellWidth,
		Height: float64(runtime.ScreenH) * cfg.Render.CellHeight,
	}
	g.session = NewSession(cfg, vp, runtime.Seed)
	g.paused = false
	g.holdTicks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.runtime)
	}

	switch g.session.Phase {
	case PhaseNotStarted:
		if in.Has(core.ActionStart) && g.session.Start() {
			g.audio.Play()
		}
		return core.StepResult{State: g.State()}

	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.session.Tick(g.steering(in))
	if res.Ended {
		g.audio.Pause()
		g.audio.Rewind()
	}

	return core.StepResult{State: g.State()}
}

// restart begins a new run after game over.
func (g *Game) restart() {
	g.session.Reset()
	g.paused = false
	g.holdTicks = 0
	g.audio.Rewind()
	g.audio.Play()
}

// steering converts this tick's key events into the Player Body input.
// Pressing both directions at once refreshes the hold without changing
// direction.
func (g *Game) steering(in core.InputFrame) Steering {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)

	var press Direction
	switch {
	case left && !right:
		press = DirLeft
	case right && !left:
		press = DirRight
	}

	if left || right {
		g.holdTicks = g.cfg.Input.ReleaseTicks
	} else if g.holdTicks > 0 {
		g.holdTicks--
	}

	return Steering{Press: press, Held: g.holdTicks > 0}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	s := g.session
	return core.GameState{
		Score:    s.Score,
		Distance: s.Camera.Distance,
		Ticks:    s.Ticks,
		Started:  s.Phase != PhaseNotStarted,
		GameOver: s.Phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Register the difficulty variants with the registry
func init() {
	registry.Register("hopper", func() registry.Game {
		return New("hopper", "Sky Hopper", config.DifficultyNormal)
	})
	registry.Register("hopper_easy", func() registry.Game {
		return New("hopper_easy", "Sky Hopper (Easy)", config.DifficultyEasy)
	})
	registry.Register("hopper_hard", func() registry.Game {
		return New("hopper_hard", "Sky Hopper (Hard)", config.DifficultyHard)
	})
}
