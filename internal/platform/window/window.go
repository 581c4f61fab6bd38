// Package window is the desktop presenter: an ebiten window that polls the
// keyboard, steps the engine once per tick and draws the field.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/chromapong/internal/core"
	"github.com/vovakirdan/chromapong/internal/game"
)

// Messages shown over the field.
const (
	PausedText   = "GAME PAUSED"
	GameOverText = "PRESS [ENTER] TO PLAY AGAIN"
)

// Font sizes in field units.
const (
	scoreSize   = 20
	lifeSize    = 40
	overlaySize = 40
	promptSize  = 20
)

var (
	colorBackground = color.RGBA{245, 245, 245, 255}
	colorPaddle     = color.RGBA{0, 0, 0, 255}
	colorAccent     = color.RGBA{190, 33, 55, 255}
	colorOverlay    = color.RGBA{130, 130, 130, 255}
)

// Engine is the simulation driven by the window.
type Engine interface {
	Update(in core.InputFrame)
	Snapshot() game.Snapshot
}

// Options configures the window.
type Options struct {
	Title    string
	Scale    float64 // window size relative to the field
	TickRate int
	Logger   *log.Logger
}

// Game adapts an Engine to ebiten.Game.
type Game struct {
	engine Engine
	keys   KeySource
	field  core.Vec2
	faces  map[float64]*text.GoTextFace
	logger *log.Logger
}

// NewGame creates the ebiten game for engine. The field size is taken from
// the engine's first snapshot.
func NewGame(engine Engine, keys KeySource, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: failed to create font source: %w", err)
	}
	faces := make(map[float64]*text.GoTextFace)
	for _, size := range []float64{scoreSize, lifeSize, overlaySize, promptSize} {
		faces[size] = &text.GoTextFace{
			Source:    source,
			Size:      size,
			Direction: text.DirectionLeftToRight,
		}
	}

	snap := engine.Snapshot()
	return &Game{
		engine: engine,
		keys:   keys,
		field:  core.Vec2{X: snap.FieldWidth, Y: snap.FieldHeight},
		faces:  faces,
		logger: logger,
	}, nil
}

// Update polls input and advances the engine by one tick.
func (g *Game) Update() error {
	in, quit := PollInput(g.keys)
	if quit {
		g.logger.Info("window closed by player")
		return ebiten.Termination
	}
	g.engine.Update(in)
	return nil
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.engine.Snapshot()
	screen.Fill(colorBackground)

	w, h := snap.FieldWidth, snap.FieldHeight
	if snap.GameOver() {
		g.drawCentered(screen, GameOverText, promptSize, h/2-50, colorOverlay)
		return
	}

	p := snap.Paddle.Bounds()
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), colorPaddle, false)

	g.drawText(screen, fmt.Sprintf("Score:\t%d", snap.Score), scoreSize, 10, 10, colorAccent)
	for _, x := range LifePositions(w, snap.Paddle.Life) {
		g.drawText(screen, "*", lifeSize, x, h-40, colorAccent)
	}

	b := snap.Ball
	vector.DrawFilledCircle(screen, float32(b.Position.X), float32(b.Position.Y), float32(b.Radius), colorAccent, true)

	if snap.Paused() {
		g.drawCentered(screen, PausedText, overlaySize, h/2-40, colorOverlay)
	}
}

// Layout fixes the logical screen to the field size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.field.X), int(g.field.Y)
}

func (g *Game) drawText(screen *ebiten.Image, str string, size, x, y float64, clr color.Color) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, strings.ReplaceAll(str, "\t", "    "), g.faces[size], opts)
}

func (g *Game) drawCentered(screen *ebiten.Image, str string, size, y float64, clr color.Color) {
	width, _ := text.Measure(str, g.faces[size], 0)
	g.drawText(screen, str, size, g.field.X/2-width/2, y, clr)
}

// LifePositions returns the x coordinate of each life star, right to left
// from 100 units inside the right edge.
func LifePositions(fieldWidth float64, life int) []float64 {
	xs := make([]float64, 0, max(life, 0))
	for i := range life {
		xs = append(xs, fieldWidth-100-40*float64(i))
	}
	return xs
}

// Run opens the window and blocks until it is closed.
func Run(engine Engine, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	g, err := NewGame(engine, EbitenKeys{}, opts.Logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(g.field.X*opts.Scale), int(g.field.Y*opts.Scale))
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
