package game

// EventKind identifies a gameplay event.
type EventKind int

const (
	EventRoundStart EventKind = iota
	EventLaunch
	EventWallBounce
	EventMiss
	EventReturn
	EventPause
	EventResume
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventRoundStart:
		return "round_start"
	case EventLaunch:
		return "launch"
	case EventWallBounce:
		return "wall_bounce"
	case EventMiss:
		return "miss"
	case EventReturn:
		return "return"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Wall names a field edge.
type Wall int

const (
	WallNone Wall = iota
	WallLeft
	WallRight
	WallTop
	WallBottom
)

// String returns the wall name.
func (w Wall) String() string {
	switch w {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallTop:
		return "top"
	case WallBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Event describes something that happened during a tick.
type Event struct {
	Kind  EventKind
	Tick  uint64
	Wall  Wall // for wall bounces and misses
	Note  int  // chromatic index of the event note, -1 if none
	Score int
	Life  int
}

// EventSink receives gameplay events. The engine calls Emit synchronously
// from Update.
type EventSink interface {
	Emit(ev Event)
}

// NopSink discards all events.
type NopSink struct{}

// Emit does nothing.
func (NopSink) Emit(Event) {}
