package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/chromapong/internal/core"
)

// ErrInvalidGeometry is returned by New when the rules describe a field,
// paddle or ball that cannot be simulated.
var ErrInvalidGeometry = errors.New("game: invalid geometry")

// Default ruleset values.
const (
	DefaultFieldWidth  = 800
	DefaultFieldHeight = 600
	DefaultPaddleX     = 57
	DefaultPaddleWidth = 14
	DefaultPaddleStep  = 5
	DefaultBallRadius  = 7
	DefaultLaunchSpeed = 5
	DefaultSpinSpeed   = 5
	MaxLife            = 5
)

// Rules holds the fixed ruleset. The game ships one ruleset; tests build
// variants to reach edge cases.
type Rules struct {
	FieldWidth  float64
	FieldHeight float64
	PaddleX     float64   // paddle center x, fixed
	PaddleSize  core.Vec2 // width, height
	PaddleStep  float64   // vertical movement per frame
	BallRadius  float64
	LaunchSpeed float64 // horizontal speed on launch
	SpinSpeed   float64 // vertical speed at the paddle's edge on a return
	MaxLife     int
}

// DefaultRules returns the standard 800x600 ruleset.
func DefaultRules() Rules {
	return Rules{
		FieldWidth:  DefaultFieldWidth,
		FieldHeight: DefaultFieldHeight,
		PaddleX:     DefaultPaddleX,
		PaddleSize:  core.Vec2{X: DefaultPaddleWidth, Y: DefaultFieldHeight / 6},
		PaddleStep:  DefaultPaddleStep,
		BallRadius:  DefaultBallRadius,
		LaunchSpeed: DefaultLaunchSpeed,
		SpinSpeed:   DefaultSpinSpeed,
		MaxLife:     MaxLife,
	}
}

// Validate reports geometry that would break the simulation.
func (r Rules) Validate() error {
	switch {
	case r.FieldWidth <= 0 || r.FieldHeight <= 0:
		return fmt.Errorf("%w: field %vx%v", ErrInvalidGeometry, r.FieldWidth, r.FieldHeight)
	case r.PaddleSize.X <= 0 || r.PaddleSize.Y <= 0:
		return fmt.Errorf("%w: paddle size %vx%v", ErrInvalidGeometry, r.PaddleSize.X, r.PaddleSize.Y)
	case r.PaddleSize.Y > r.FieldHeight:
		return fmt.Errorf("%w: paddle taller than field", ErrInvalidGeometry)
	case r.BallRadius <= 0:
		return fmt.Errorf("%w: ball radius %v", ErrInvalidGeometry, r.BallRadius)
	case r.PaddleX-r.PaddleSize.X/2 < 0 || r.PaddleX+r.PaddleSize.X/2 > r.FieldWidth:
		return fmt.Errorf("%w: paddle x %v outside field", ErrInvalidGeometry, r.PaddleX)
	case r.PaddleStep <= 0 || r.LaunchSpeed <= 0:
		return fmt.Errorf("%w: paddle step and launch speed must be positive", ErrInvalidGeometry)
	case r.MaxLife <= 0:
		return fmt.Errorf("%w: max life %d", ErrInvalidGeometry, r.MaxLife)
	}
	return nil
}
