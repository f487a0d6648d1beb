package sim

import "testing"

func TestPlayerHandleInputClamps(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		dir        Direction
		wantX      float64
		wantY      float64
		wantHelped bool
	}{
		{"left at x=0 stays", 0, 405, DirLeft, 0, 405, false},
		{"left from 101 reaches 0", 101, 405, DirLeft, 0, 405, false},
		{"right from 303", 303, 405, DirRight, 404, 405, false},
		{"right at 404 stays", 404, 405, DirRight, 404, 405, false},
		{"up from start", 202, 405, DirUp, 202, 322, false},
		{"up into goal zone", 202, 73, DirUp, 202, -10, false},
		{"up above guard stays", 202, -10, DirUp, 202, -10, false},
		{"down at start stays", 202, 405, DirDown, 202, 405, false},
		{"down from lane", 202, 322, DirDown, 202, 405, false},
		{"none is a no-op", 202, 405, DirNone, 202, 405, false},
		{"unknown is a no-op", 202, 405, Direction(42), 202, 405, false},
		{"help signals", 202, 405, DirHelp, 202, 405, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(DefaultParams())
			p.X, p.Y = tc.x, tc.y

			helped := p.HandleInput(tc.dir)

			if p.X != tc.wantX || p.Y != tc.wantY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", p.X, p.Y, tc.wantX, tc.wantY)
			}
			if helped != tc.wantHelped {
				t.Errorf("helpRequested = %v, expected %v", helped, tc.wantHelped)
			}
		})
	}
}

func TestPlayerStaysInsideField(t *testing.T) {
	p := NewPlayer(DefaultParams())
	dirs := []Direction{DirUp, DirUp, DirRight, DirRight, DirRight, DirUp, DirUp, DirUp, DirUp,
		DirLeft, DirLeft, DirLeft, DirLeft, DirLeft, DirDown, DirDown, DirDown, DirDown, DirDown, DirDown, DirDown}

	for i, d := range dirs {
		p.HandleInput(d)
		if p.X < 0 || p.X >= 505 || p.Y < -10 || p.Y >= 415 {
			t.Fatalf("step %d (%v): position (%v, %v) left the field", i, d, p.X, p.Y)
		}
	}
}

func TestPlayerGoalWaitScoresOnSeventhUpdate(t *testing.T) {
	p := NewPlayer(DefaultParams())
	p.Y = -5

	for i := 1; i <= 6; i++ {
		if p.Update() {
			t.Fatalf("scored early on update %d", i)
		}
		if p.Score() != 0 {
			t.Fatalf("score changed early on update %d", i)
		}
		if p.WaitTicks() != 6-i {
			t.Errorf("after update %d WaitTicks = %d, expected %d", i, p.WaitTicks(), 6-i)
		}
	}

	if !p.Update() {
		t.Fatal("expected the seventh update to score")
	}
	if p.Score() != 20 {
		t.Errorf("score = %d, expected 20", p.Score())
	}
	if p.WaitTicks() != 6 {
		t.Errorf("WaitTicks = %d, expected 6", p.WaitTicks())
	}
	if p.X != 202 || p.Y != 405 {
		t.Errorf("player at (%v, %v), expected start (202, 405)", p.X, p.Y)
	}
}

func TestPlayerUpdateOutsideGoalZone(t *testing.T) {
	p := NewPlayer(DefaultParams())

	for i := 0; i < 20; i++ {
		if p.Update() {
			t.Fatal("Update should not score outside the goal zone")
		}
	}
	if p.WaitTicks() != 6 {
		t.Errorf("WaitTicks = %d, expected untouched 6", p.WaitTicks())
	}

	// y == 0 is on the goal line, not above it
	p.Y = 0
	p.Update()
	if p.WaitTicks() != 6 {
		t.Errorf("WaitTicks = %d at y=0, expected 6", p.WaitTicks())
	}
}

func TestPlayerLeavingGoalKeepsCountdown(t *testing.T) {
	p := NewPlayer(DefaultParams())
	p.Y = -10
	p.Update()
	p.Update()
	p.HandleInput(DirDown)
	p.Update()

	if p.WaitTicks() != 4 {
		t.Errorf("WaitTicks = %d, expected 4", p.WaitTicks())
	}
}

func TestPlayerView(t *testing.T) {
	p := NewPlayer(DefaultParams())
	p.score.Increment(40)
	p.lives.RemoveLife()
	p.Y = -10

	v := p.View()
	if v.X != 202 || v.Y != -10 || v.Score != 40 || v.Lives != 2 || v.MaxLives != 3 || !v.InGoal {
		t.Errorf("View() = %+v", v)
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"up":    DirUp,
		"DOWN":  DirDown,
		" left": DirLeft,
		"right": DirRight,
		"help":  DirHelp,
		"h":     DirHelp,
		"":      DirNone,
		"jump":  DirNone,
	}
	for in, want := range tests {
		if got := ParseDirection(in); got != want {
			t.Errorf("ParseDirection(%q) = %v, expected %v", in, got, want)
		}
	}
}
