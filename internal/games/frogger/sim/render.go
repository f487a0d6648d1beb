package sim

import "strconv"

// SpriteID is an opaque identifier the renderer maps to artwork.
type SpriteID int

const (
	SpriteObstacle SpriteID = iota
	SpritePlayer
	SpriteMarker
	SpriteHeart
	SpritePanel
)

// TextRole tells the renderer what a piece of text is for.
type TextRole int

const (
	RoleScore TextRole = iota
	RoleLives
	RoleBanner
	RoleLabel
	RoleValue
	RoleButton
)

// Align is the horizontal anchor of a text draw.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes how a text draw should look.
type TextStyle struct {
	Role  TextRole
	Align Align
}

// Renderer is the drawing capability a host provides.
type Renderer interface {
	DrawSprite(id SpriteID, x, y float64)
	DrawText(content string, x, y float64, style TextStyle)
}

// HUD and game-over panel anchors, in field pixels.
const (
	heartX, heartY         = 404, 5
	livesTextX, livesTextY = 455, 108
	scoreTextX, scoreTextY = 48, 110
	panelX, panelY         = 100, 130
	bannerY                = 200
	labelY                 = 240
	valueY                 = 280
	buttonY                = 340
)

// Render issues one draw request per visible entity: markers, obstacles,
// the player, the HUD and, once the game is over, the game-over panel.
func (s *Session) Render(r Renderer) {
	for _, m := range s.markers.markers {
		r.DrawSprite(SpriteMarker, m.X, m.Y)
	}
	for _, o := range s.obstacles {
		r.DrawSprite(SpriteObstacle, o.X, o.Y)
	}
	r.DrawSprite(SpritePlayer, s.player.X, s.player.Y)

	r.DrawSprite(SpriteHeart, heartX, heartY)
	r.DrawText(strconv.Itoa(s.player.Lives()), livesTextX, livesTextY, TextStyle{Role: RoleLives})
	r.DrawText(strconv.Itoa(s.player.Score()), scoreTextX, scoreTextY, TextStyle{Role: RoleScore, Align: AlignCenter})

	if s.state != StateGameOver {
		return
	}
	mid := s.params.FieldWidth / 2
	r.DrawSprite(SpritePanel, panelX, panelY)
	r.DrawText("GAME OVER!", mid, bannerY, TextStyle{Role: RoleBanner, Align: AlignCenter})
	r.DrawText("Your Score:", mid, labelY, TextStyle{Role: RoleLabel, Align: AlignCenter})
	r.DrawText(strconv.Itoa(s.player.Score()), mid, valueY, TextStyle{Role: RoleValue, Align: AlignCenter})
	r.DrawText("Start Again", mid, buttonY, TextStyle{Role: RoleButton, Align: AlignCenter})
}
