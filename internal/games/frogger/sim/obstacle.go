package sim

import "github.com/vovakirdan/tui-frogger/internal/core"

// Course is the part of the field an obstacle needs to move and recycle.
type Course struct {
	FieldWidth    float64
	WrapPositions []float64
	SpeedMin      float64
	SpeedMax      float64
	SpeedScale    float64
}

// Obstacle is an enemy travelling rightwards along a fixed lane.
// Y is set at creation and never changes.
type Obstacle struct {
	X      float64
	Y      float64
	Speed  float64
	Width  float64
	Height float64
}

// NewObstacle places an obstacle at (x, lane) with a freshly drawn speed.
func NewObstacle(x, lane, w, h float64, c Course, rng core.Random) Obstacle {
	return Obstacle{
		X:      x,
		Y:      lane,
		Speed:  drawSpeed(c, rng),
		Width:  w,
		Height: h,
	}
}

// Advance moves the obstacle by Speed*SpeedScale*dt while it is still on the
// field. Once it has left past the right edge it is teleported back to one of
// the wrap positions with a new speed instead of moving.
func (o *Obstacle) Advance(dt float64, c Course, rng core.Random) {
	if o.X <= c.FieldWidth {
		o.X += o.Speed * c.SpeedScale * dt
		return
	}
	if len(c.WrapPositions) > 0 {
		o.X = c.WrapPositions[rng.Intn(len(c.WrapPositions))]
	}
	o.Speed = drawSpeed(c, rng)
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// CollidesWith reports whether the obstacle overlaps box.
func (o Obstacle) CollidesWith(box core.Box) bool {
	return core.Overlaps(o.Box(), box)
}

// drawSpeed returns a uniform value in [SpeedMin, SpeedMax).
func drawSpeed(c Course, rng core.Random) float64 {
	return c.SpeedMin + rng.Float64()*(c.SpeedMax-c.SpeedMin)
}

// spawnObstacles creates n obstacles, cycling lanes and start positions.
func spawnObstacles(p Params, rng core.Random) []Obstacle {
	if len(p.Lanes) == 0 {
		return nil
	}
	c := p.course()
	obstacles := make([]Obstacle, 0, p.ObstacleCount)
	for i := 0; i < p.ObstacleCount; i++ {
		lane := p.Lanes[i%len(p.Lanes)]
		x := 0.0
		if len(p.WrapPositions) > 0 {
			x = p.WrapPositions[i%len(p.WrapPositions)]
		}
		obstacles = append(obstacles, NewObstacle(x, lane, p.ObstacleW, p.ObstacleH, c, rng))
	}
	return obstacles
}
