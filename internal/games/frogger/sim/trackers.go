package sim

// ScoreTracker holds a score that never drops below zero.
type ScoreTracker struct {
	amount int
}

// Amount returns the current score.
func (s *ScoreTracker) Amount() int {
	return s.amount
}

// Increment adds n to the score.
func (s *ScoreTracker) Increment(n int) {
	s.amount += n
}

// Decrement subtracts n, flooring the result at zero.
func (s *ScoreTracker) Decrement(n int) {
	s.amount = max(0, s.amount-n)
}

// Reset zeroes the score.
func (s *ScoreTracker) Reset() {
	s.amount = 0
}

// LifeTracker counts remaining lives within [0, max].
type LifeTracker struct {
	remaining int
	max       int
}

// NewLifeTracker starts with a full set of lives.
func NewLifeTracker(maxLives int) LifeTracker {
	maxLives = max(0, maxLives)
	return LifeTracker{remaining: maxLives, max: maxLives}
}

// Remaining returns the number of lives left.
func (l *LifeTracker) Remaining() int {
	return l.remaining
}

// Max returns the configured maximum.
func (l *LifeTracker) Max() int {
	return l.max
}

// RemoveLife takes one life away. It is a no-op at zero.
func (l *LifeTracker) RemoveLife() {
	if l.remaining > 0 {
		l.remaining--
	}
}

// Reset sets the remaining lives, clamped to [0, max].
func (l *LifeTracker) Reset(to int) {
	l.remaining = min(max(0, to), l.max)
}
