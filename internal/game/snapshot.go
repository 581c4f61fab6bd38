package game

import "math"

// Snapshot is a read-only copy of the game state for presenters and tests.
type Snapshot struct {
	Tick        uint64
	FieldWidth  float64
	FieldHeight float64
	Paddle      Paddle
	Ball        Ball
	Score       int
	State       State
}

// Snapshot returns the current game state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:        e.tickCount,
		FieldWidth:  e.rules.FieldWidth,
		FieldHeight: e.rules.FieldHeight,
		Paddle:      e.paddle,
		Ball:        e.ball,
		Score:       e.score,
		State:       e.state,
	}
}

// GameOver reports whether the snapshot was taken after the round ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Paused reports whether the snapshot was taken while paused.
func (s Snapshot) Paused() bool {
	return s.State == StatePaused
}

// Hash returns a hash of the snapshot for determinism checks.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	for _, v := range []float64{
		s.Paddle.Position.X, s.Paddle.Position.Y,
		s.Ball.Position.X, s.Ball.Position.Y,
		s.Ball.Velocity.X, s.Ball.Velocity.Y,
	} {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + uint64(s.Paddle.Life) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(s.State)       //#nosec G115 -- hash computation
	if s.Ball.Active {
		h = h*31 + 1
	}
	return h
}
