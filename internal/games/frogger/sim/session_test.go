package sim

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

const testDT = 0.001

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(DefaultParams(), core.NewRandom(42))
	parkObstacles(s)
	return s
}

// putPlayerOnLane moves the player onto the 228 lane and an obstacle onto it.
func putPlayerOnLane(s *Session, obstacle int) {
	s.player.X, s.player.Y = 202, 239
	s.obstacles[obstacle].X = 200
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestNewSession(t *testing.T) {
	s := NewSession(DefaultParams(), core.NewRandom(1))

	if s.State() != StatePlaying || s.IsOver() {
		t.Errorf("new session state = %v, expected playing", s.State())
	}
	if len(s.Obstacles()) != 5 {
		t.Errorf("obstacles = %d, expected 5", len(s.Obstacles()))
	}
	if len(s.Markers()) != 0 {
		t.Errorf("markers = %d, expected 0", len(s.Markers()))
	}
	p := s.Player()
	if p.Lives() != 3 || p.Score() != 0 || p.X != 202 || p.Y != 405 {
		t.Errorf("player = %+v", p.View())
	}
}

func TestCollisionCostsLifeAndResetsPlayer(t *testing.T) {
	s := newTestSession(t)
	putPlayerOnLane(s, 2)

	s.Tick(testDT)

	p := s.Player()
	if p.Lives() != 2 {
		t.Errorf("lives = %d, expected 2", p.Lives())
	}
	if p.Score() != 0 {
		t.Errorf("score = %d, expected 0 (penalty clamped)", p.Score())
	}
	markers := s.Markers()
	if len(markers) != 1 {
		t.Fatalf("markers = %d, expected 1", len(markers))
	}
	if markers[0] != (Marker{X: 202, Y: 239}) {
		t.Errorf("marker = %+v, expected hit position (202, 239)", markers[0])
	}
	if s.State() != StatePlaying {
		t.Errorf("state = %v, expected playing", s.State())
	}
	if p.X != 202 || p.Y != 405 {
		t.Errorf("player at (%v, %v), expected start", p.X, p.Y)
	}

	got := kinds(s.DrainEvents())
	want := []EventKind{EventCollision, EventLifeLost}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("events = %v, expected %v", got, want)
	}
	if s.DrainEvents() != nil {
		t.Error("DrainEvents should forget delivered events")
	}
}

func TestCollisionPenaltyReducesScore(t *testing.T) {
	s := newTestSession(t)
	s.player.score.Increment(40)
	putPlayerOnLane(s, 2)

	s.Tick(testDT)

	if s.Player().Score() != 30 {
		t.Errorf("score = %d, expected 30", s.Player().Score())
	}
}

func TestLastLifeEndsGameAndFreezesTicks(t *testing.T) {
	s := newTestSession(t)
	s.player.lives.Reset(1)
	putPlayerOnLane(s, 2)

	s.Tick(testDT)

	if s.State() != StateGameOver {
		t.Fatalf("state = %v, expected game over", s.State())
	}
	if s.Player().Lives() != 0 {
		t.Errorf("lives = %d, expected 0", s.Player().Lives())
	}
	// The player is not respawned when the game ends
	if s.player.X != 202 || s.player.Y != 239 {
		t.Errorf("player moved to (%v, %v)", s.player.X, s.player.Y)
	}

	obstaclesBefore := s.Obstacles()
	viewBefore := s.Player().View()
	markersBefore := len(s.Markers())
	statsBefore := s.Stats()

	for i := 0; i < 100; i++ {
		s.Tick(0.5)
	}

	after := s.Obstacles()
	for i := range after {
		if after[i] != obstaclesBefore[i] {
			t.Errorf("obstacle %d moved after game over: %+v -> %+v", i, obstaclesBefore[i], after[i])
		}
	}
	if s.Player().View() != viewBefore {
		t.Errorf("player changed after game over: %+v -> %+v", viewBefore, s.Player().View())
	}
	if len(s.Markers()) != markersBefore {
		t.Error("markers changed after game over")
	}
	if s.Stats() != statsBefore {
		t.Error("stats changed after game over")
	}
}

func TestInputIgnoredWhileOver(t *testing.T) {
	s := newTestSession(t)
	s.state = StateGameOver

	s.HandleInput(DirUp)
	s.HandleInput(DirLeft)

	if s.player.X != 202 || s.player.Y != 405 {
		t.Errorf("player moved to (%v, %v) while over", s.player.X, s.player.Y)
	}

	s.HandleInput(DirHelp)
	got := kinds(s.DrainEvents())
	if len(got) != 1 || got[0] != EventHelp {
		t.Errorf("events = %v, expected [help]", got)
	}
}

func TestHandleInputMovesPlayer(t *testing.T) {
	s := newTestSession(t)

	s.HandleInput(DirUp)
	s.HandleInput(DirRight)

	if s.player.X != 303 || s.player.Y != 322 {
		t.Errorf("player at (%v, %v), expected (303, 322)", s.player.X, s.player.Y)
	}
}

func TestRequestResetFromGameOver(t *testing.T) {
	s := newTestSession(t)
	s.player.score.Increment(60)
	s.player.lives.Reset(1)
	putPlayerOnLane(s, 2)
	s.Tick(testDT)

	if !s.IsOver() {
		t.Fatal("expected game over")
	}

	s.RequestReset()

	p := s.Player()
	if s.State() != StatePlaying {
		t.Errorf("state = %v, expected playing", s.State())
	}
	if p.Lives() != 3 {
		t.Errorf("lives = %d, expected 3", p.Lives())
	}
	if p.Score() != 0 {
		t.Errorf("score = %d, expected 0", p.Score())
	}
	if len(s.Markers()) != 0 {
		t.Errorf("markers = %d, expected 0", len(s.Markers()))
	}
	if p.X != 202 || p.Y != 405 {
		t.Errorf("player at (%v, %v), expected start", p.X, p.Y)
	}
	if s.Stats() != (Stats{}) {
		t.Errorf("stats = %+v, expected zero", s.Stats())
	}

	// Ticks run again
	parkObstacles(s)
	s.Tick(testDT)
	if s.Stats().Ticks != 1 {
		t.Errorf("ticks = %d, expected 1", s.Stats().Ticks)
	}
}

func TestGoalCrossingThroughSession(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 5; i++ {
		s.HandleInput(DirUp)
	}
	if s.player.Y != -10 {
		t.Fatalf("player y = %v, expected -10", s.player.Y)
	}

	for i := 0; i < 7; i++ {
		s.Tick(testDT)
	}

	if s.Player().Score() != 20 {
		t.Errorf("score = %d, expected 20", s.Player().Score())
	}
	if s.Stats().Crossings != 1 {
		t.Errorf("crossings = %d, expected 1", s.Stats().Crossings)
	}
	if s.player.Y != 405 {
		t.Errorf("player y = %v, expected respawn at 405", s.player.Y)
	}

	found := false
	for _, e := range s.DrainEvents() {
		if e.Kind == EventGoal && e.Value == 20 {
			found = true
		}
	}
	if !found {
		t.Error("expected a goal event worth 20")
	}
}

// stackedParams puts a lane on the start row so a respawned player can be
// hit again in the same tick.
func stackedParams(policy MultiHitPolicy) Params {
	p := DefaultParams()
	p.Lanes = []float64{405}
	p.WrapPositions = []float64{200}
	p.ObstacleCount = 2
	p.MultiHit = policy
	return p
}

func TestMultiHitPolicies(t *testing.T) {
	tests := []struct {
		name          string
		policy        MultiHitPolicy
		expectedLives int
		expectedScore int
	}{
		{"all hits penalize", MultiHitAll, 1, 10},
		{"one penalty per tick", MultiHitOnce, 2, 20},
		{"empty policy defaults to all", "", 1, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(stackedParams(tc.policy), &scriptedRandom{})
			s.player.score.Increment(30)

			s.Tick(testDT)

			if s.Player().Lives() != tc.expectedLives {
				t.Errorf("lives = %d, expected %d", s.Player().Lives(), tc.expectedLives)
			}
			if s.Player().Score() != tc.expectedScore {
				t.Errorf("score = %d, expected %d", s.Player().Score(), tc.expectedScore)
			}
			if len(s.Markers()) != 2 {
				t.Errorf("markers = %d, expected one per hit", len(s.Markers()))
			}
			if s.Stats().Collisions != 2 {
				t.Errorf("collisions = %d, expected 2", s.Stats().Collisions)
			}
		})
	}
}

func TestSimultaneousHitsOnLastLife(t *testing.T) {
	s := NewSession(stackedParams(MultiHitAll), &scriptedRandom{})
	s.player.lives.Reset(1)
	s.player.score.Increment(30)

	s.Tick(testDT)

	if !s.IsOver() {
		t.Fatal("expected game over")
	}
	if len(s.Markers()) != 2 {
		t.Errorf("markers = %d, expected 2", len(s.Markers()))
	}
	// The second hit lands after game over, so only one penalty applies
	if s.Player().Score() != 20 {
		t.Errorf("score = %d, expected 20", s.Player().Score())
	}

	gameOvers := 0
	for _, e := range s.DrainEvents() {
		if e.Kind == EventGameOver {
			gameOvers++
		}
	}
	if gameOvers != 1 {
		t.Errorf("game over events = %d, expected 1", gameOvers)
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() []Obstacle {
		s := NewSession(DefaultParams(), core.NewRandom(12345))
		for i := 0; i < 600; i++ {
			s.Tick(1.0 / 60)
		}
		return s.Obstacles()
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("obstacle %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestObstaclesKeepLanesOverTime(t *testing.T) {
	s := NewSession(DefaultParams(), core.NewRandom(99))
	lanes := make([]float64, 0, 5)
	for _, o := range s.Obstacles() {
		lanes = append(lanes, o.Y)
	}

	for i := 0; i < 3000; i++ {
		s.Tick(1.0 / 60)
		if s.IsOver() {
			s.RequestReset()
		}
	}

	for i, o := range s.Obstacles() {
		if o.Y != lanes[i] {
			t.Errorf("obstacle %d changed lane %v -> %v", i, lanes[i], o.Y)
		}
		if o.Speed < 20 || o.Speed >= 30 {
			t.Errorf("obstacle %d speed %v outside [20,30)", i, o.Speed)
		}
	}
}
