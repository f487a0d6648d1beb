package frogger

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger/sim"
)

// Terminal cell size of one field grid cell.
const (
	cellW     = 10
	cellH     = 3
	hudHeight = 2
)

const (
	playerGlyph   = "{o,o}"
	obstacleGlyph = "<###>"
	markerGlyph   = "[RIP]"
	heartGlyph    = '♥'
)

var helpLines = []string{
	"Frogger Help - Allowable input:",
	"",
	"Up: Move player up",
	"Down: Move player down",
	"Left: Move player left",
	"Right: Move player right",
	"",
	"Press any key to continue",
}

// layout places the field on the terminal. The field is boxed and sits
// below the HUD, centred horizontally.
type layout struct {
	fits         bool
	cols, rows   int
	fieldW       int // characters
	fieldH       int // lines
	ox, oy       int // top-left character of the field interior
	stepX, stepY float64
	needW, needH int
}

func newLayout(p sim.Params, screenW, screenH int) layout {
	l := layout{
		cols:  int(math.Ceil(p.FieldWidth / p.StepX)),
		rows:  p.BottomRows + 1,
		stepX: p.StepX,
		stepY: p.StepY,
	}
	l.fieldW = l.cols * cellW
	l.fieldH = l.rows * cellH
	l.needW = l.fieldW + 2
	l.needH = hudHeight + l.fieldH + 2
	l.fits = screenW >= l.needW && screenH >= l.needH
	l.ox = (screenW - l.fieldW) / 2
	l.oy = hudHeight + 1
	return l
}

// col converts a field x to a screen column.
func (l layout) col(x float64) int {
	return l.ox + int(math.Round(x/l.stepX*cellW))
}

// line converts a field y to a screen line.
func (l layout) line(y float64) int {
	return l.oy + int(math.Round(y/l.stepY*cellH))
}

// spriteLine returns the middle line of the grid row an entity of height h
// at y occupies.
func (l layout) spriteLine(y, h float64) int {
	row := int(math.Floor((y + h/2) / l.stepY))
	row = core.Clamp(row, 0, l.rows-1)
	return l.oy + row*cellH + 1
}

// screenRenderer draws session output onto a core.Screen.
type screenRenderer struct {
	dst    *core.Screen
	l      layout
	params sim.Params

	// Markers arrive before the player. Once the game is over the player
	// stays where the last life was lost, so its glyph is dropped where it
	// would cover a marker.
	over    bool
	markers map[[2]int]bool
}

func (r *screenRenderer) DrawSprite(id sim.SpriteID, x, y float64) {
	p := r.params
	switch id {
	case sim.SpritePlayer:
		cell := [2]int{r.l.col(x), r.l.spriteLine(y, p.PlayerH)}
		if r.over && r.markers[cell] {
			return
		}
		r.drawClipped(cell[0], cell[1], playerGlyph, core.ColorBrightGreen)
	case sim.SpriteObstacle:
		r.drawClipped(r.l.col(x), r.l.spriteLine(y, p.ObstacleH), obstacleGlyph, core.ColorBrightRed)
	case sim.SpriteMarker:
		cell := [2]int{r.l.col(x), r.l.spriteLine(y, p.PlayerH)}
		if r.markers == nil {
			r.markers = make(map[[2]int]bool)
		}
		r.markers[cell] = true
		r.drawClipped(cell[0], cell[1], markerGlyph, core.ColorGray)
	case sim.SpriteHeart:
		r.dst.SetColored(r.dst.Width()-10, 0, heartGlyph, core.ColorBrightRed)
	case sim.SpritePanel:
		w := int(math.Round(panelWidth / r.l.stepX * cellW))
		h := int(math.Round(panelHeight / r.l.stepY * cellH))
		rect := core.NewRect(r.l.col(x), r.l.line(y), w, h)
		r.dst.DrawRect(rect, ' ', core.ColorDefault)
		r.dst.DrawBox(rect, core.ColorBrightWhite)
	}
}

// Game-over panel size in field pixels.
const (
	panelWidth  = 303
	panelHeight = 260
)

func (r *screenRenderer) DrawText(content string, x, y float64, style sim.TextStyle) {
	switch style.Role {
	case sim.RoleScore:
		r.dst.DrawTextColored(1, 0, "Score: "+content, core.ColorBrightYellow)
	case sim.RoleLives:
		r.dst.DrawTextColored(r.dst.Width()-8, 0, "x "+content, core.ColorBrightWhite)
	default:
		color := core.ColorWhite
		switch style.Role {
		case sim.RoleBanner:
			color = core.ColorBrightRed
		case sim.RoleValue:
			color = core.ColorBrightYellow
		case sim.RoleButton:
			content = "[ " + content + " (r) ]"
			color = core.ColorBrightGreen
		}
		col := r.l.col(x)
		if style.Align == sim.AlignCenter {
			col -= utf8.RuneCountInString(content) / 2
		}
		r.dst.DrawTextColored(col, r.l.line(y), content, color)
	}
}

// drawClipped draws text only inside the field interior.
func (r *screenRenderer) drawClipped(x, y int, text string, c core.Color) {
	i := 0
	for _, ch := range text {
		cx := x + i
		if cx >= r.l.ox && cx < r.l.ox+r.l.fieldW {
			r.dst.SetColored(cx, y, ch, c)
		}
		i++
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", g.layout.needW, g.layout.needH, dst.Width(), dst.Height()))
		return
	}

	g.renderHUD(dst)
	g.renderField(dst)

	g.session.Render(&screenRenderer{
		dst:    dst,
		l:      g.layout,
		params: g.session.Params(),
		over:   g.session.IsOver(),
	})

	switch {
	case g.showHelp:
		g.renderHelp(dst)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the title line and separator. Score and lives are drawn
// by the session through the renderer.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "FROGGER", core.ColorBrightGreen)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderField draws the boxed background rows: water on top, grass at the
// bottom two rows and stone lanes in between.
func (g *Game) renderField(dst *core.Screen) {
	l := g.layout
	dst.DrawBox(core.NewRect(l.ox-1, l.oy-1, l.fieldW+2, l.fieldH+2), core.ColorGray)

	for row := 0; row < l.rows; row++ {
		fill, color := '.', core.ColorGray
		switch {
		case row == 0:
			fill, color = '~', core.ColorBlue
		case row >= l.rows-2:
			fill, color = '"', core.ColorGreen
		}
		dst.DrawRect(core.NewRect(l.ox, l.oy+row*cellH, l.fieldW, cellH), fill, color)
	}
}

func (g *Game) renderHelp(dst *core.Screen) {
	width := 0
	for _, line := range helpLines {
		width = max(width, utf8.RuneCountInString(line))
	}
	boxW, boxH := width+4, len(helpLines)+2
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	rect := core.NewRect(x, y, boxW, boxH)
	dst.DrawRect(rect, ' ', core.ColorDefault)
	dst.DrawBox(rect, core.ColorBrightCyan)
	for i, line := range helpLines {
		dst.DrawTextColored(x+2, y+1+i, line, core.ColorWhite)
	}
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 4
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	rect := core.NewRect(x, y, boxW, boxH)
	dst.DrawRect(rect, ' ', core.ColorDefault)
	dst.DrawBox(rect, core.ColorBrightWhite)
	dst.DrawTextCentered(y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(y+2, subtitle, core.ColorWhite)
}
