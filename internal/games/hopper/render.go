package hopper

import (
	"fmt"

	"github.com/vovakirdan/tui-hopper/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '▀'
	BodyChar     = '█'
	HeadChar     = '▄'
	FeetChar     = '▘'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	s := g.session
	cw, ch := g.cfg.Render.CellWidth, g.cfg.Render.CellHeight

	if s.Phase != PhaseNotStarted {
		vp := s.Viewport()
		view := core.NewRect(0, 0, vp.Width, vp.Height)
		for _, p := range s.Field.Platforms() {
			if !p.Intersects(view) {
				continue
			}
			dst.FillRect(core.Cell(p.X, cw), core.Cell(p.Y, ch), core.Cells(p.W, cw), 1, PlatformChar, core.ColorBrightGreen)
		}
	}

	g.drawPlayer(dst, s.Player, cw, ch)

	scoreText := fmt.Sprintf(" Score: %d ", s.Score)
	dst.DrawTextColored(2, 0, scoreText, core.ColorBrightWhite)

	switch {
	case s.Phase == PhaseNotStarted:
		g.drawCenteredMessage(dst, g.title, "Press Enter to start", core.ColorBrightYellow)
	case s.Phase == PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score), core.ColorBrightRed)
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorCyan)
	}
}

// drawPlayer draws the player sprite. The top row is the head, the bottom
// row the feet, the rest body; small sizes degrade to a solid block.
func (g *Game) drawPlayer(dst *core.Screen, p *Player, cw, ch float64) {
	x, y := core.Cell(p.X, cw), core.Cell(p.Y, ch)
	w, h := core.Cells(p.W, cw), core.Cells(p.H, ch)

	dst.FillRect(x, y, w, h, BodyChar, core.ColorYellow)
	if h < 3 || w < 3 {
		return
	}
	for col := x + 1; col < x+w-1; col++ {
		dst.SetColored(col, y, HeadChar, core.ColorBrightYellow)
	}
	dst.Set(x, y, ' ')
	dst.Set(x+w-1, y, ' ')
	for col := x; col < x+w; col++ {
		dst.Set(col, y+h-1, ' ')
	}
	dst.SetColored(x+1, y+h-1, FeetChar, core.ColorYellow)
	dst.SetColored(x+w-2, y+h-1, FeetChar, core.ColorYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	titleLen, subtitleLen := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)

	dst.DrawTextCentered(boxY+1, title, c)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
