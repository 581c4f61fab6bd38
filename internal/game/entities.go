package game

import "github.com/vovakirdan/chromapong/internal/core"

// State is the engine's top-level mode.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Paddle is the player's bat. Position is its center.
type Paddle struct {
	Position core.Vec2
	Size     core.Vec2
	Life     int
}

// Bounds returns the paddle's bounding rectangle.
func (p Paddle) Bounds() core.RectF {
	return core.CenteredRect(p.Position, p.Size)
}

// Ball is the ball. An inactive ball is docked beside the paddle with zero velocity.
type Ball struct {
	Position core.Vec2
	Velocity core.Vec2
	Radius   float64
	Active   bool
}
