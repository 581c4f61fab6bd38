// Package game implements the paddle-and-ball simulation: the game state
// and the per-frame step that evolves it and sonifies its events.
package game

import (
	"time"

	"github.com/vovakirdan/chromapong/internal/core"
	"github.com/vovakirdan/chromapong/internal/sequencer"
)

// Sequencer is the audio behaviour the engine triggers.
type Sequencer interface {
	PlayProgression(indices []int, interval time.Duration)
	PlayRandomFromSet(set []int) int
	Advance(dt time.Duration)
}

// Engine owns the single GameState of a play session and is its only writer.
// Presenters read it through the accessors or Snapshot after Update returns.
type Engine struct {
	rules Rules
	seq   Sequencer
	sink  EventSink
	frame time.Duration

	paddle    Paddle
	ball      Ball
	score     int
	state     State
	tickCount uint64
}

// New validates the rules, builds the game state and opens the first round.
// frame is the frame-clock step handed to the sequencer on every Update.
func New(rules Rules, seq Sequencer, sink EventSink, frame time.Duration) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = NopSink{}
	}

	e := &Engine{
		rules: rules,
		seq:   seq,
		sink:  sink,
		frame: frame,
	}
	e.reset()
	return e, nil
}

// reset re-initializes the state in place and plays the round-start progression.
func (e *Engine) reset() {
	e.paddle = Paddle{
		Position: core.Vec2{X: e.rules.PaddleX, Y: e.rules.FieldHeight / 2},
		Size:     e.rules.PaddleSize,
		Life:     e.rules.MaxLife,
	}
	e.ball = Ball{Radius: e.rules.BallRadius}
	e.dockBall()
	e.score = 0
	e.state = StatePlaying
	e.tickCount = 0

	e.seq.PlayProgression(sequencer.StartProgression(), 0)
	e.emit(EventRoundStart, WallNone, -1)
}

// Update advances the simulation by one frame.
func (e *Engine) Update(in core.InputFrame) {
	e.Advance(e.frame)

	switch e.state {
	case StateGameOver:
		if in.IsPressed(core.ActionRestart) {
			e.reset()
		}
		return
	case StatePaused:
		if in.IsPressed(core.ActionPause) {
			e.state = StatePlaying
			e.emit(EventResume, WallNone, -1)
		}
		return
	}

	if in.IsPressed(core.ActionPause) {
		e.state = StatePaused
		e.emit(EventPause, WallNone, -1)
		return
	}

	e.tickCount++

	e.movePaddle(in)
	e.launchBall(in)
	e.moveBall()
	e.collideWalls()
	e.collidePaddle()

	if e.paddle.Life <= 0 {
		e.paddle.Life = 0
		e.state = StateGameOver
		e.emit(EventGameOver, WallNone, -1)
	}
}

// Advance moves the audio clock forward without stepping the simulation.
// Update calls it once per frame.
func (e *Engine) Advance(dt time.Duration) {
	e.seq.Advance(dt)
}

func (e *Engine) movePaddle(in core.InputFrame) {
	half := e.paddle.Size.Y / 2
	if in.IsHeld(core.ActionUp) {
		e.paddle.Position.Y -= e.rules.PaddleStep
	}
	if in.IsHeld(core.ActionDown) {
		e.paddle.Position.Y += e.rules.PaddleStep
	}
	e.paddle.Position.Y = core.ClampF(e.paddle.Position.Y, half, e.rules.FieldHeight-half)
}

func (e *Engine) launchBall(in core.InputFrame) {
	if e.ball.Active || !in.IsPressed(core.ActionLaunch) {
		return
	}
	e.ball.Active = true
	e.ball.Velocity = core.Vec2{X: e.rules.LaunchSpeed, Y: 0}
	e.emit(EventLaunch, WallNone, -1)
}

func (e *Engine) moveBall() {
	if e.ball.Active {
		e.ball.Position = e.ball.Position.Add(e.ball.Velocity)
		return
	}
	e.dockBall()
}

// dockBall pins an inactive ball beside the paddle's face.
func (e *Engine) dockBall() {
	e.ball.Velocity = core.Vec2{}
	e.ball.Position = core.Vec2{
		X: e.paddle.Position.X + 2*e.ball.Radius,
		Y: e.paddle.Position.Y,
	}
}

// collideWalls reflects the ball off the right, top and bottom walls and
// handles the ball getting past the paddle on the left. A wall only
// reflects a ball moving toward it, so one contact reflects once.
func (e *Engine) collideWalls() {
	if !e.ball.Active {
		return
	}
	b := &e.ball

	if b.Position.X+b.Radius >= e.rules.FieldWidth && b.Velocity.X > 0 {
		b.Velocity.X = -b.Velocity.X
		e.emit(EventWallBounce, WallRight, e.playEventNote())
	}

	if b.Position.X-b.Radius <= 0 {
		b.Velocity = core.Vec2{}
		note := e.playEventNote()
		b.Active = false
		e.paddle.Life--
		e.seq.PlayProgression(sequencer.MissProgression(), 0)
		e.dockBall()
		e.emit(EventMiss, WallLeft, note)
		return
	}

	if b.Position.Y-b.Radius <= 0 && b.Velocity.Y < 0 {
		b.Velocity.Y = -b.Velocity.Y
		e.emit(EventWallBounce, WallTop, e.playEventNote())
	} else if b.Position.Y+b.Radius >= e.rules.FieldHeight && b.Velocity.Y > 0 {
		b.Velocity.Y = -b.Velocity.Y
		e.emit(EventWallBounce, WallBottom, e.playEventNote())
	}
}

// collidePaddle returns the ball when it touches the paddle while
// approaching it. The vertical speed after a return grows linearly with
// the distance from the paddle's center.
func (e *Engine) collidePaddle() {
	b := &e.ball
	if !b.Active || b.Velocity.X >= 0 {
		return
	}
	if !core.CircleIntersectsRect(b.Position, b.Radius, e.paddle.Bounds()) {
		return
	}

	b.Velocity.X = -b.Velocity.X
	offset := b.Position.Y - e.paddle.Position.Y
	b.Velocity.Y = offset / (e.paddle.Size.Y / 2) * e.rules.SpinSpeed
	note := e.playEventNote()
	e.score++
	e.emit(EventReturn, WallNone, note)
}

func (e *Engine) playEventNote() int {
	return e.seq.PlayRandomFromSet(sequencer.HarmonicSubset)
}

func (e *Engine) emit(kind EventKind, wall Wall, note int) {
	e.sink.Emit(Event{
		Kind:  kind,
		Tick:  e.tickCount,
		Wall:  wall,
		Note:  note,
		Score: e.score,
		Life:  e.paddle.Life,
	})
}

// Rules returns the ruleset the engine was built with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Field returns the playfield size.
func (e *Engine) Field() core.Vec2 {
	return core.Vec2{X: e.rules.FieldWidth, Y: e.rules.FieldHeight}
}

// Paddle returns a copy of the paddle.
func (e *Engine) Paddle() Paddle {
	return e.paddle
}

// Ball returns a copy of the ball.
func (e *Engine) Ball() Ball {
	return e.ball
}

// Score returns the number of successful returns this round.
func (e *Engine) Score() int {
	return e.score
}

// Life returns the paddle's remaining lives.
func (e *Engine) Life() int {
	return e.paddle.Life
}

// State returns the current mode.
func (e *Engine) State() State {
	return e.state
}

// GameOver reports whether the round has ended.
func (e *Engine) GameOver() bool {
	return e.state == StateGameOver
}

// Paused reports whether the simulation is paused.
func (e *Engine) Paused() bool {
	return e.state == StatePaused
}
