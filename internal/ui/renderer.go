package ui

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/Just-a-Unity-Dev/aeros/internal/entity"
	"github.com/Just-a-Unity-Dev/aeros/internal/gamedata"
	"github.com/Just-a-Unity-Dev/aeros/internal/msglog"
	"github.com/Just-a-Unity-Dev/aeros/internal/world"
)

// LogLines is how many messages the panel shows.
const LogLines = 5

var (
	colorDarkWall    = gamedata.MustParseHexColor("#000064")
	colorDarkGround  = gamedata.MustParseHexColor("#323296")
	colorLightWall   = gamedata.MustParseHexColor("#826E32")
	colorLightGround = gamedata.MustParseHexColor("#C8B432")
)

// Frame is everything needed to draw one screen.
type Frame struct {
	Map      *world.Map
	Actors   []*entity.Actor // Collection order
	Player   *entity.Actor
	Visible  mapset.Set[gruid.Point]
	Messages []msglog.Message // Oldest first
	ShowLog  bool
	GameOver bool
	Turn     int
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, the visible actors and the status panel.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	for y := 0; y < f.Map.Height; y++ {
		for x := 0; x < f.Map.Width; x++ {
			p := gruid.Point{X: x, Y: y}
			if bg, ok := tileBackground(f.Map.TileAt(p), f.Visible.Has(p)); ok {
				r.screen.SetContent(x, y, ' ', tcell.StyleDefault.Background(bg))
			}
		}
	}

	for _, a := range VisibleActors(f.Actors, f.Visible) {
		bg, _ := tileBackground(f.Map.TileAt(a.Pos), true)
		style := tcell.StyleDefault.Foreground(a.Color).Background(bg)
		if a.ID == f.Player.ID {
			style = style.Bold(true)
		}
		r.screen.SetContent(a.Pos.X, a.Pos.Y, a.Glyph, style)
	}

	r.renderPanel(f)
	r.screen.Show()
}

func (r *Renderer) renderPanel(f Frame) {
	y := f.Map.Height
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	if hp := f.Player.Fighter; hp != nil {
		r.screen.DrawText(0, y, fmt.Sprintf("HP: %d/%d  Turn: %d", hp.HP, hp.MaxHP, f.Turn), white)
	}
	if f.GameOver {
		r.screen.DrawText(30, y, "You died. Press Esc to quit.", tcell.StyleDefault.Foreground(tcell.ColorRed))
	}

	if !f.ShowLog {
		return
	}
	for i, m := range tail(f.Messages, LogLines) {
		r.screen.DrawText(1, y+1+i, m.Text, tcell.StyleDefault.Foreground(m.Color))
	}
}

// tileBackground picks the cell color. Unexplored cells outside view are not drawn.
func tileBackground(t world.Tile, visible bool) (tcell.Color, bool) {
	switch {
	case visible && t.BlocksSight:
		return colorLightWall, true
	case visible:
		return colorLightGround, true
	case !t.Explored:
		return tcell.ColorDefault, false
	case t.BlocksSight:
		return colorDarkWall, true
	default:
		return colorDarkGround, true
	}
}

// VisibleActors returns the actors standing in view, non-blocking ones (remains)
// first so living actors are drawn over them.
func VisibleActors(actors []*entity.Actor, visible mapset.Set[gruid.Point]) []*entity.Actor {
	out := make([]*entity.Actor, 0, len(actors))
	for _, a := range actors {
		if !a.Blocking && visible.Has(a.Pos) {
			out = append(out, a)
		}
	}
	for _, a := range actors {
		if a.Blocking && visible.Has(a.Pos) {
			out = append(out, a)
		}
	}
	return out
}

func tail(msgs []msglog.Message, n int) []msglog.Message {
	if len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}
