package sim

import "github.com/vovakirdan/tui-frogger/internal/core"

// State is the session lifecycle state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// Session owns every entity of one game: obstacles, the player, the marker
// log and the lifecycle state. All mutation goes through it.
type Session struct {
	params    Params
	rng       core.Random
	obstacles []Obstacle
	player    *Player
	markers   MarkerLog
	state     State
	events    []Event
	stats     Stats
}

// NewSession creates a session in the Playing state.
// rng drives every obstacle speed and wrap position.
func NewSession(p Params, rng core.Random) *Session {
	if p.MultiHit == "" {
		p.MultiHit = MultiHitAll
	}
	return &Session{
		params:    p,
		rng:       rng,
		obstacles: spawnObstacles(p, rng),
		player:    NewPlayer(p),
		state:     StatePlaying,
	}
}

// Tick advances the simulation by dt seconds. It does nothing once the game
// is over.
//
// Every obstacle is advanced first, then each one is tested against the
// player in order. A hit always records a marker at the player's position.
// While the session is not over the hit also costs a life and the collision
// penalty (at most once per tick under MultiHitOnce). The player respawns if
// lives remain, otherwise the session ends. Goal handling runs afterwards
// regardless of collisions.
func (s *Session) Tick(dt float64) {
	if s.state == StateGameOver {
		return
	}
	s.stats.Ticks++

	course := s.params.course()
	for i := range s.obstacles {
		s.obstacles[i].Advance(dt, course, s.rng)
	}

	penalized := false
	for i := range s.obstacles {
		if !s.obstacles[i].CollidesWith(s.player.Box()) {
			continue
		}
		penalized = s.collide(penalized)
	}

	if s.player.Update() {
		s.stats.Crossings++
		s.emit(EventGoal, s.params.GoalPoints)
	}
}

// collide applies the consequences of one hit and reports whether a
// penalty has been applied during this tick.
func (s *Session) collide(penalized bool) bool {
	p := s.player
	s.markers.Append(Marker{X: p.X, Y: p.Y})
	s.stats.Collisions++
	s.emit(EventCollision, 0)

	if s.state != StateGameOver && !(penalized && s.params.MultiHit == MultiHitOnce) {
		p.lives.RemoveLife()
		p.score.Decrement(s.params.CollisionPenalty)
		s.stats.LivesLost++
		s.emit(EventLifeLost, p.lives.Remaining())
		penalized = true
	}

	if p.lives.Remaining() > 0 {
		p.Reset()
	} else if s.state != StateGameOver {
		s.state = StateGameOver
		s.emit(EventGameOver, p.score.Amount())
	}
	return penalized
}

// HandleInput applies a player command immediately. Movement is ignored
// while the game is over; help is always signalled.
func (s *Session) HandleInput(d Direction) {
	if d == DirHelp {
		s.emit(EventHelp, 0)
		return
	}
	if s.state == StateGameOver {
		return
	}
	s.player.HandleInput(d)
}

// RequestReset starts a new round: markers are cleared, lives and score
// restored, the player returned to the start and the state set to Playing.
// Obstacles keep their positions.
func (s *Session) RequestReset() {
	s.markers.clear()
	s.player.restart()
	s.state = StatePlaying
	s.stats = Stats{}
	s.emit(EventReset, 0)
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// IsOver reports whether the session is in the GameOver state.
func (s *Session) IsOver() bool {
	return s.state == StateGameOver
}

// Player returns the session's player for read access.
func (s *Session) Player() *Player {
	return s.player
}

// Obstacles returns a copy of the obstacles.
func (s *Session) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Markers returns a copy of the recorded markers.
func (s *Session) Markers() []Marker {
	return s.markers.All()
}

// Params returns the parameters the session was built with.
func (s *Session) Params() Params {
	return s.params
}

// Stats returns counters for the current round.
func (s *Session) Stats() Stats {
	return s.stats
}

// DrainEvents returns the events emitted since the last call and forgets them.
func (s *Session) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

func (s *Session) emit(kind EventKind, value int) {
	s.events = append(s.events, Event{
		Kind:  kind,
		Tick:  s.stats.Ticks,
		X:     s.player.X,
		Y:     s.player.Y,
		Value: value,
	})
}
