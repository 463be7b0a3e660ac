package core

import (
	"strings"
	"testing"
)

// get returns the rune at (x, y), or a space when out of bounds.
func (s *Screen) get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// drawText writes uncolored text starting at (x, y).
func (s *Screen) drawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorGreen)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected green X", c)
	}

	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.get(-1, 0) != ' ' || s.get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillRect(0, 0, 4, 4, '#', ColorRed)
	s.Clear()

	if strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")) != "" {
		t.Errorf("after Clear, screen should be blank, got %q", s.String())
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillRect(3, 3, 10, 10, '#', ColorGreen)

	if s.get(4, 4) != '#' {
		t.Error("FillRect should fill cells inside the screen")
	}
	if s.get(2, 2) != ' ' {
		t.Error("FillRect should not touch cells outside the block")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.drawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.get(2+i, 1) != ch {
			t.Errorf("expected %q at (%d, 1), got %q", ch, 2+i, s.get(2+i, 1))
		}
	}

	s.drawText(18, 0, "Hello")
	if s.get(18, 0) != 'H' || s.get(19, 0) != 'e' {
		t.Error("text should be clipped at the right edge")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorYellow)

	x := (20 - 2) / 2
	if s.get(x, 2) != 'H' || s.get(x+1, 2) != 'i' {
		t.Error("text not centered")
	}
	if s.GetCell(x, 2).Color != ColorYellow {
		t.Error("centered text should keep its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4, ColorWhite)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.get(3, 1) != '─' || s.get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.drawText(0, 0, "AAAAA")
	s.drawText(0, 1, "BBBBB")
	s.drawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(1); got != "BBBBB" {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("out of bounds row = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(8, 4)

	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	s.Set(7, 3, 'Z')
	if s.get(7, 3) != 'Z' {
		t.Error("resized screen should accept writes inside new bounds")
	}
}
