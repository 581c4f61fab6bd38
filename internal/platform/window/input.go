package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/chromapong/internal/core"
)

// KeySource reports keyboard state for the current tick.
type KeySource interface {
	Pressed(k ebiten.Key) bool     // key is down
	JustPressed(k ebiten.Key) bool // key went down this tick
}

// EbitenKeys reads the live keyboard.
type EbitenKeys struct{}

// Pressed reports whether k is down.
func (EbitenKeys) Pressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

// JustPressed reports whether k went down this tick.
func (EbitenKeys) JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

// Bindings maps each action to its keys.
var Bindings = map[core.Action][]ebiten.Key{
	core.ActionUp:      {ebiten.KeyUp, ebiten.KeyW},
	core.ActionDown:    {ebiten.KeyDown, ebiten.KeyS},
	core.ActionLaunch:  {ebiten.KeySpace},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// PollInput builds the input frame for this tick and reports whether the
// player asked to quit.
func PollInput(keys KeySource) (core.InputFrame, bool) {
	in := core.NewInputFrame()
	for action, bound := range Bindings {
		for _, k := range bound {
			if keys.Pressed(k) {
				in.SetHeld(action)
			}
			if keys.JustPressed(k) {
				in.SetPressed(action)
			}
		}
	}
	return in, in.IsPressed(core.ActionQuit)
}
