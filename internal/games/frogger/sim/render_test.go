package sim

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

type drawCall struct {
	sprite SpriteID
	text   string
	x, y   float64
	style  TextStyle
	isText bool
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawSprite(id SpriteID, x, y float64) {
	r.calls = append(r.calls, drawCall{sprite: id, x: x, y: y})
}

func (r *recordingRenderer) DrawText(content string, x, y float64, style TextStyle) {
	r.calls = append(r.calls, drawCall{text: content, x: x, y: y, style: style, isText: true})
}

func (r *recordingRenderer) sprites(id SpriteID) []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if !c.isText && c.sprite == id {
			out = append(out, c)
		}
	}
	return out
}

func (r *recordingRenderer) texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.isText {
			out = append(out, c.text)
		}
	}
	return out
}

func TestRenderPlaying(t *testing.T) {
	s := NewSession(DefaultParams(), core.NewRandom(3))
	r := &recordingRenderer{}

	s.Render(r)

	if got := len(r.sprites(SpriteObstacle)); got != 5 {
		t.Errorf("obstacle sprites = %d, expected 5", got)
	}
	players := r.sprites(SpritePlayer)
	if len(players) != 1 || players[0].x != 202 || players[0].y != 405 {
		t.Errorf("player sprites = %+v", players)
	}
	hearts := r.sprites(SpriteHeart)
	if len(hearts) != 1 || hearts[0].x != 404 || hearts[0].y != 5 {
		t.Errorf("heart sprites = %+v", hearts)
	}
	if len(r.sprites(SpritePanel)) != 0 {
		t.Error("panel should not be drawn while playing")
	}

	texts := r.texts()
	if len(texts) != 2 || texts[0] != "3" || texts[1] != "0" {
		t.Errorf("texts = %v, expected lives then score", texts)
	}
}

func TestRenderOrder(t *testing.T) {
	s := newTestSession(t)
	s.markers.Append(Marker{X: 10, Y: 20})
	r := &recordingRenderer{}

	s.Render(r)

	if r.calls[0].isText || r.calls[0].sprite != SpriteMarker {
		t.Fatalf("first draw = %+v, expected marker", r.calls[0])
	}
	lastObstacle, playerAt := -1, -1
	for i, c := range r.calls {
		if c.isText {
			continue
		}
		switch c.sprite {
		case SpriteObstacle:
			lastObstacle = i
		case SpritePlayer:
			playerAt = i
		}
	}
	if playerAt < lastObstacle {
		t.Errorf("player drawn at %d before last obstacle at %d", playerAt, lastObstacle)
	}
}

func TestRenderGameOverPanel(t *testing.T) {
	s := newTestSession(t)
	s.player.score.Increment(40)
	s.state = StateGameOver
	r := &recordingRenderer{}

	s.Render(r)

	panels := r.sprites(SpritePanel)
	if len(panels) != 1 || panels[0].x != 100 || panels[0].y != 130 {
		t.Errorf("panel sprites = %+v", panels)
	}

	expected := []string{"3", "40", "GAME OVER!", "Your Score:", "40", "Start Again"}
	texts := r.texts()
	if len(texts) != len(expected) {
		t.Fatalf("texts = %v, expected %v", texts, expected)
	}
	for i := range expected {
		if texts[i] != expected[i] {
			t.Errorf("text %d = %q, expected %q", i, texts[i], expected[i])
		}
	}

	for _, c := range r.calls {
		if c.isText && c.style.Role == RoleBanner {
			if c.x != 252.5 || c.style.Align != AlignCenter {
				t.Errorf("banner at x=%v align=%v, expected centred at 252.5", c.x, c.style.Align)
			}
		}
	}
}
