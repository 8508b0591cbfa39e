package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position: a rune and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a fixed-size grid of cells that a game renders into once per
// frame. Writes outside the grid are dropped.
type Screen struct {
	w, h  int
	cells []Cell // Row-major, len w*h
}

// NewScreen returns a blank screen. Negative sizes are treated as zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{w: max(0, width), h: max(0, height)}
	s.cells = make([]Cell, s.w*s.h)
	s.Clear()
	return s
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0, false
	}
	return y*s.w + x, true
}

// Resize changes the grid size, keeping the overlapping top-left area.
func (s *Screen) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	if width == s.w && height == s.h {
		return
	}

	next := NewScreen(width, height)
	for y := range min(s.h, height) {
		n := min(s.w, width)
		copy(next.cells[y*width:y*width+n], s.cells[y*s.w:y*s.w+n])
	}
	*s = *next
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// SetColor writes one colored rune.
func (s *Screen) SetColor(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y), or a blank cell outside the grid.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blankCell
}

func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes text left to right from (x, y), one rune per cell.
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColor(x, y, r, c)
		x++
	}
}

func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColor(y, text, ColorDefault)
}

// DrawTextCenteredColor writes text centered on row y. Text wider than
// the screen starts at column 0 and is clipped on the right.
func (s *Screen) DrawTextCenteredColor(y int, text string, c Color) {
	s.DrawTextColor((s.w-utf8.RuneCountInString(text))/2, y, text, c)
}

// DrawBoxColor outlines r with box-drawing runes. Boxes smaller than 2x2
// are skipped.
func (s *Screen) DrawBoxColor(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	left, right, top, bottom := r.X, r.Right()-1, r.Y, r.Bottom()-1

	for x := left + 1; x < right; x++ {
		s.SetColor(x, top, '─', c)
		s.SetColor(x, bottom, '─', c)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetColor(left, y, '│', c)
		s.SetColor(right, y, '│', c)
	}
	s.SetColor(left, top, '┌', c)
	s.SetColor(right, top, '┐', c)
	s.SetColor(left, bottom, '└', c)
	s.SetColor(right, bottom, '┘', c)
}

// String returns the runes row by row, separated by newlines, without colors.
func (s *Screen) String() string {
	var b strings.Builder
	b.Grow(len(s.cells) + s.h)
	for i, c := range s.cells {
		if i > 0 && i%s.w == 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(c.Rune)
	}
	return b.String()
}
