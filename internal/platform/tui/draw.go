package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/chromapong/internal/core"
	"github.com/vovakirdan/chromapong/internal/game"
)

// Messages shown over the field.
const (
	PausedText   = "GAME PAUSED"
	GameOverText = "PRESS [ENTER] TO PLAY AGAIN"
)

// Minimum screen size that fits the HUD and a playable field.
const (
	MinWidth  = 24
	MinHeight = 8
)

// Glyphs are the runes used for the paddle and the ball.
type Glyphs struct {
	Paddle rune
	Ball   rune
}

// DefaultGlyphs returns the block paddle and round ball.
func DefaultGlyphs() Glyphs {
	return Glyphs{Paddle: '█', Ball: '●'}
}

// fieldView maps field units onto a rectangle of screen cells.
type fieldView struct {
	inner core.Rect
	w, h  float64
}

func (v fieldView) cellX(x float64) int {
	cx := v.inner.X + int(x/v.w*float64(v.inner.W))
	return core.Clamp(cx, v.inner.X, v.inner.Right()-1)
}

func (v fieldView) cellY(y float64) int {
	cy := v.inner.Y + int(y/v.h*float64(v.inner.H))
	return core.Clamp(cy, v.inner.Y, v.inner.Bottom()-1)
}

// DrawSnapshot renders a game snapshot into s: a HUD row with the score and
// remaining lives, then the boxed field scaled to the rest of the screen.
func DrawSnapshot(s *core.Screen, snap game.Snapshot, g Glyphs) {
	s.Clear()
	w, h := s.Width(), s.Height()
	if w < MinWidth || h < MinHeight {
		s.DrawText(0, 0, "terminal too small", core.ColorGray)
		return
	}

	if snap.GameOver() {
		s.DrawTextCentered(h/2, GameOverText, core.ColorGray)
		return
	}

	s.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorMaroon)
	stars := strings.TrimSpace(strings.Repeat("* ", max(snap.Paddle.Life, 0)))
	s.DrawText(w-1-len(stars), 0, stars, core.ColorMaroon)

	box := core.NewRect(0, 1, w, h-1)
	s.DrawBox(box)
	view := fieldView{
		inner: core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2),
		w:     snap.FieldWidth,
		h:     snap.FieldHeight,
	}

	p := snap.Paddle.Bounds()
	px := view.cellX(snap.Paddle.Position.X)
	for y := view.cellY(p.Y); y <= view.cellY(p.Bottom()); y++ {
		s.SetCell(px, y, core.Cell{Rune: g.Paddle, Color: core.ColorWhite})
	}

	b := snap.Ball.Position
	s.SetCell(view.cellX(b.X), view.cellY(b.Y), core.Cell{Rune: g.Ball, Color: core.ColorMaroon})

	if snap.Paused() {
		s.DrawTextCentered(view.inner.Y+view.inner.H/2, PausedText, core.ColorGray)
	}
}
