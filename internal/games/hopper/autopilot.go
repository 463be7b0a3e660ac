package hopper

import (
	"math"

	"github.com/vovakirdan/tui-hopper/internal/core"
)

// Autopilot steers toward the platform the player is most likely to land
// on next. It drives headless runs and soak tests; it is not meant to play
// well, only deterministically.
func Autopilot(s *Session) Steering {
	p := s.Player
	target, ok := nextTarget(p, s.Field.Platforms())
	if !ok {
		return Steering{}
	}

	const slack = 5
	diff := target.CenterX() - p.Rect().CenterX()
	switch {
	case diff < -slack:
		return Steering{Press: DirLeft, Held: true}
	case diff > slack:
		return Steering{Press: DirRight, Held: true}
	}
	return Steering{}
}

// nextTarget picks the nearest platform below the player's feet while
// falling, or the nearest one above them while rising.
func nextTarget(p *Player, platforms []core.Rect) (core.Rect, bool) {
	feet := p.Y + p.H
	best := core.Rect{}
	bestDist := math.Inf(1)
	for _, pl := range platforms {
		d := pl.Y - feet
		if p.DY < 0 {
			d = -d
		}
		if d < 0 || d >= bestDist {
			continue
		}
		best, bestDist = pl, d
	}
	return best, !math.IsInf(bestDist, 1)
}
