package hopper

import (
	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// Direction is a horizontal steering direction.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Steering is the input state consumed by one integration step.
type Steering struct {
	// Press is a direction key activated since the last tick, or DirNone.
	Press Direction
	// Held reports whether a direction key is still down. Drag only
	// applies once it is released.
	Held bool
}

// Player is the bouncing body: position, velocity and the direction that
// drag is currently decaying.
type Player struct {
	X, Y   float64 // Top-left corner
	DX, DY float64 // Velocity per tick
	W, H   float64

	dir  Direction
	phys config.HopperPhysics
}

// NewPlayer creates a player with the configured size and physics.
func NewPlayer(cfg config.HopperConfig) *Player {
	return &Player{
		W:    cfg.Player.Width,
		H:    cfg.Player.Height,
		phys: cfg.Physics,
	}
}

// Place puts the player at its start position, horizontally centered and
// startOffsetY above the bottom of the viewport, at rest.
func (p *Player) Place(vp Viewport, startOffsetY float64) {
	p.X = vp.Width/2 - p.W/2
	p.Y = vp.Height - startOffsetY
	p.DX, p.DY = 0, 0
	p.dir = DirNone
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Direction returns the direction drag is decaying, DirNone once stopped.
func (p *Player) Direction() Direction {
	return p.dir
}

// steer sets a constant horizontal speed in the pressed direction.
func (p *Player) steer(d Direction) {
	switch d {
	case DirLeft:
		p.DX = -p.phys.MoveSpeed
	case DirRight:
		p.DX = p.phys.MoveSpeed
	default:
		return
	}
	p.dir = d
}

// applyDrag decays horizontal speed toward zero without crossing it.
func (p *Player) applyDrag() {
	switch p.dir {
	case DirLeft:
		p.DX += p.phys.Drag
		if p.DX >= 0 {
			p.DX = 0
			p.dir = DirNone
		}
	case DirRight:
		p.DX -= p.phys.Drag
		if p.DX <= 0 {
			p.DX = 0
			p.dir = DirNone
		}
	}
}

// wrap teleports the player across the vertical screen edges.
func (p *Player) wrap(width float64) {
	if p.X+p.W < 0 {
		p.X = width
	} else if p.X > width {
		p.X = -p.W
	}
}

// Integrate advances the player by one tick and resolves platform landings.
// It returns true when the player bounced this tick.
func (p *Player) Integrate(in Steering, platforms []core.Rect, vp Viewport) bool {
	p.steer(in.Press)

	p.DY += p.phys.Gravity
	p.Y += p.DY

	if !in.Held {
		p.applyDrag()
	}

	p.X += p.DX
	p.wrap(vp.Width)

	return p.land(platforms)
}

// land checks every platform against the state after this tick's motion.
// A landing needs downward velocity, a bottom edge that crossed the platform
// top during this tick, and horizontal overlap. When several platforms
// qualify the last one in iteration order wins.
func (p *Player) land(platforms []core.Rect) bool {
	if p.DY <= 0 {
		return false
	}

	body := p.Rect()
	bottom := body.Bottom()
	hit := -1
	for i, pl := range platforms {
		if bottom <= pl.Y+p.DY && bottom >= pl.Y && body.OverlapsX(pl) {
			hit = i
		}
	}
	if hit < 0 {
		return false
	}

	p.DY = p.phys.BounceVelocity
	p.Y = platforms[hit].Y - p.H
	return true
}
