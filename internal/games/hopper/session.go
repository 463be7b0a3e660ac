package hopper

import (
	"math/rand"

	"github.com/vovakirdan/tui-hopper/internal/config"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Bounced  bool    // The player landed on a platform
	Scrolled float64 // Camera scroll applied this tick
	Ended    bool    // The session moved to GameOver on this tick
}

// Session is the whole simulation state: player, platforms, camera and
// counters. It never schedules itself; a driver calls Tick once per frame.
type Session struct {
	Phase  Phase
	Player *Player
	Field  *PlatformField
	Camera Camera
	Score  int
	Ticks  int

	viewport Viewport
	cfg      config.HopperConfig
}

// NewSession creates a session in PhaseNotStarted. The platform field stays
// empty until Start.
func NewSession(cfg config.HopperConfig, vp Viewport, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		Player:   NewPlayer(cfg),
		Field:    NewPlatformField(rng, cfg.Platforms),
		viewport: vp,
		cfg:      cfg,
	}
	s.Player.Place(vp, cfg.Player.StartOffsetY)
	return s
}

// Viewport returns the viewport the session simulates.
func (s *Session) Viewport() Viewport {
	return s.viewport
}

// Start begins the first run. It only acts in PhaseNotStarted.
func (s *Session) Start() bool {
	if s.Phase != PhaseNotStarted {
		return false
	}
	s.begin()
	return true
}

// Reset re-initializes everything and starts a fresh run. The platform
// layout continues the session's random sequence.
func (s *Session) Reset() {
	s.begin()
}

func (s *Session) begin() {
	s.Player.Place(s.viewport, s.cfg.Player.StartOffsetY)
	s.Camera.Reset()
	s.Score = 0
	s.Ticks = 0
	s.Field.Initialize(s.Player.Rect(), s.viewport)
	s.Phase = PhaseRunning
}

// Tick advances a running session by one step: player integration, camera
// follow (which extends and prunes platforms), score update, then the
// terminal check. It does nothing outside PhaseRunning.
func (s *Session) Tick(in Steering) TickResult {
	var res TickResult
	if s.Phase != PhaseRunning {
		return res
	}

	s.Ticks++
	res.Bounced = s.Player.Integrate(in, s.Field.Platforms(), s.viewport)
	res.Scrolled = s.Camera.Follow(s.Player, s.Field, s.viewport)
	s.Score = s.Camera.Score()

	if s.Player.Y > s.viewport.Height {
		s.Phase = PhaseGameOver
		res.Ended = true
	}
	return res
}
