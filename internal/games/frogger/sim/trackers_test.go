package sim

import "testing"

func TestScoreTrackerNeverNegative(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		dec      int
		expected int
	}{
		{"zero minus zero", 0, 0, 0},
		{"partial decrement", 30, 10, 20},
		{"exact to zero", 10, 10, 0},
		{"exceeding score", 5, 10, 0},
		{"from zero", 0, 10, 0},
		{"huge amount", 20, 1 << 30, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s ScoreTracker
			s.Increment(tc.start)
			s.Decrement(tc.dec)
			if s.Amount() != tc.expected {
				t.Errorf("Amount() = %d, expected %d", s.Amount(), tc.expected)
			}
			if s.Amount() < 0 {
				t.Error("score went negative")
			}
		})
	}
}

func TestScoreTrackerIncrementAndReset(t *testing.T) {
	var s ScoreTracker
	s.Increment(20)
	s.Increment(20)
	if s.Amount() != 40 {
		t.Errorf("Amount() = %d, expected 40", s.Amount())
	}
	s.Reset()
	if s.Amount() != 0 {
		t.Errorf("Amount() after Reset = %d, expected 0", s.Amount())
	}
}

func TestLifeTrackerRemoveLife(t *testing.T) {
	l := NewLifeTracker(3)
	if l.Remaining() != 3 || l.Max() != 3 {
		t.Fatalf("NewLifeTracker(3) = %d/%d, expected 3/3", l.Remaining(), l.Max())
	}

	for want := 2; want >= 0; want-- {
		l.RemoveLife()
		if l.Remaining() != want {
			t.Errorf("Remaining() = %d, expected %d", l.Remaining(), want)
		}
	}

	// Idempotent at the floor
	l.RemoveLife()
	l.RemoveLife()
	if l.Remaining() != 0 {
		t.Errorf("RemoveLife at zero should be a no-op, got %d", l.Remaining())
	}
}

func TestLifeTrackerReset(t *testing.T) {
	tests := []struct {
		to, expected int
	}{
		{3, 3},
		{1, 1},
		{0, 0},
		{-2, 0}, // clamped to floor
		{9, 3},  // clamped to max
	}

	for _, tc := range tests {
		l := NewLifeTracker(3)
		l.RemoveLife()
		l.Reset(tc.to)
		if l.Remaining() != tc.expected {
			t.Errorf("Reset(%d) -> %d, expected %d", tc.to, l.Remaining(), tc.expected)
		}
	}
}
