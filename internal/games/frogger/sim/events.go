package sim

// EventKind identifies something that happened in a session.
type EventKind int

const (
	EventCollision EventKind = iota // an obstacle overlapped the player
	EventLifeLost                   // a life and the penalty were taken
	EventGoal                       // a crossing was scored
	EventGameOver                   // the last life was lost
	EventHelp                       // help was requested
	EventReset                      // the session was restarted
)

// String returns a short name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventCollision:
		return "collision"
	case EventLifeLost:
		return "life_lost"
	case EventGoal:
		return "goal"
	case EventGameOver:
		return "game_over"
	case EventHelp:
		return "help"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is emitted by the session for hosts to react to (logging, help
// display, statistics). X, Y is the player position when it happened;
// Value carries points for goals and remaining lives for life losses.
type Event struct {
	Kind  EventKind
	Tick  uint64
	X, Y  float64
	Value int
}

// Stats are counters for the current round.
type Stats struct {
	Ticks      uint64
	Crossings  int
	Collisions int
	LivesLost  int
}
