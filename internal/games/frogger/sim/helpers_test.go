package sim

// scriptedRandom replays fixed values so tests can assert exact wrap
// positions and speeds.
type scriptedRandom struct {
	ints   []int
	floats []float64
	ni, nf int
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ni%len(r.ints)]
	r.ni++
	return v % n
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.nf%len(r.floats)]
	r.nf++
	return v
}

// parkObstacles moves every obstacle far left of the field so it cannot
// reach the player during a test.
func parkObstacles(s *Session) {
	for i := range s.obstacles {
		s.obstacles[i].X = -10000
	}
}
