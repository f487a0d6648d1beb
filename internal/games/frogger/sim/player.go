package sim

import "github.com/vovakirdan/tui-frogger/internal/core"

// Player is the token crossing the field. It owns its score and lives.
type Player struct {
	X, Y          float64
	Width, Height float64

	startX, startY float64
	score          ScoreTracker
	lives          LifeTracker
	waitTicks      int

	grid playerGrid
}

// playerGrid is the subset of Params the player consults on every move.
type playerGrid struct {
	fieldWidth    float64
	stepX, stepY  float64
	bottom        float64
	topGuard      float64
	goalY         float64
	goalWaitTicks int
	goalPoints    int
}

// PlayerView is the render data exposed to hosts.
type PlayerView struct {
	X, Y      float64
	Score     int
	Lives     int
	MaxLives  int
	WaitTicks int
	InGoal    bool
}

// NewPlayer creates a player at the configured start position.
func NewPlayer(p Params) *Player {
	return &Player{
		X:         p.StartX,
		Y:         p.StartY,
		Width:     p.PlayerW,
		Height:    p.PlayerH,
		startX:    p.StartX,
		startY:    p.StartY,
		lives:     NewLifeTracker(p.MaxLives),
		waitTicks: p.GoalWaitTicks,
		grid: playerGrid{
			fieldWidth:    p.FieldWidth,
			stepX:         p.StepX,
			stepY:         p.StepY,
			bottom:        p.BottomBound(),
			topGuard:      p.TopGuard,
			goalY:         p.GoalY,
			goalWaitTicks: p.GoalWaitTicks,
			goalPoints:    p.GoalPoints,
		},
	}
}

// HandleInput moves the player one grid step, refusing moves that would
// leave the field. It reports whether help was requested; showing help is
// up to the host.
func (p *Player) HandleInput(d Direction) (helpRequested bool) {
	g := p.grid
	switch d {
	case DirUp:
		if next := p.Y - g.stepY; next >= g.topGuard {
			p.Y = next
		}
	case DirDown:
		if next := p.Y + g.stepY; next < g.bottom {
			p.Y = next
		}
	case DirLeft:
		if next := p.X - g.stepX; next >= 0 {
			p.X = next
		}
	case DirRight:
		if next := p.X + g.stepX; next < g.fieldWidth {
			p.X = next
		}
	case DirHelp:
		return true
	}
	return false
}

// Update runs the goal-zone countdown. While the player is above the goal
// line the wait counter ticks down; the tick after it reaches zero the
// crossing is scored, the player respawns and the counter is restored.
// It reports whether a crossing was scored.
func (p *Player) Update() (scored bool) {
	if p.Y >= p.grid.goalY {
		return false
	}
	if p.waitTicks <= 0 {
		p.score.Increment(p.grid.goalPoints)
		p.Reset()
		p.waitTicks = p.grid.goalWaitTicks
		return true
	}
	p.waitTicks--
	return false
}

// Reset moves the player back to the start position.
func (p *Player) Reset() {
	p.X = p.startX
	p.Y = p.startY
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Score returns the current score.
func (p *Player) Score() int {
	return p.score.Amount()
}

// Lives returns the remaining lives.
func (p *Player) Lives() int {
	return p.lives.Remaining()
}

// WaitTicks returns the goal-zone counter.
func (p *Player) WaitTicks() int {
	return p.waitTicks
}

// View returns a copy of everything a renderer needs.
func (p *Player) View() PlayerView {
	return PlayerView{
		X:         p.X,
		Y:         p.Y,
		Score:     p.score.Amount(),
		Lives:     p.lives.Remaining(),
		MaxLives:  p.lives.Max(),
		WaitTicks: p.waitTicks,
		InGoal:    p.Y < p.grid.goalY,
	}
}

// restart restores a fresh round: full lives, zero score, start position.
func (p *Player) restart() {
	p.lives.Reset(p.lives.Max())
	p.score.Reset()
	p.waitTicks = p.grid.goalWaitTicks
	p.Reset()
}
