package hopper

import (
	"math"
)

// Camera keeps the player at or below mid-screen by scrolling the world
// down, and accumulates the distance climbed.
type Camera struct {
	Offset   float64 // Total scroll applied to the world
	Distance float64 // Total distance ascended
}

// Follow scrolls when the player is above the midline: the player and every
// platform move down by the overshoot, new platforms are generated above
// and the ones pushed off the bottom are dropped. Returns the scroll amount,
// zero when the player is at or below the midline.
func (c *Camera) Follow(p *Player, field *PlatformField, vp Viewport) float64 {
	mid := vp.Height / 2
	if p.Y >= mid {
		return 0
	}

	offset := mid - p.Y
	p.Y += offset
	c.Offset += offset
	c.Distance += offset

	field.TranslateAll(offset)
	field.ExtendUpward(vp)
	field.Prune(vp.Height)
	return offset
}

// Score is the whole part of the distance ascended.
func (c *Camera) Score() int {
	return int(math.Floor(c.Distance))
}

// Reset zeroes the offset and distance.
func (c *Camera) Reset() {
	c.Offset = 0
	c.Distance = 0
}
