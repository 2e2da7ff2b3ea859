package starfall

import (
	"fmt"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/engine"
	"github.com/vovakirdan/starfall/internal/physics"
)

// Visual characters for rendering
const (
	PlatformChar = '▀'
	StarChar     = '★'
	BombChar     = '●'
	PlayerBody   = '█'
)

// hudRows is the number of screen rows above the field.
const hudRows = 1

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	proj := g.projection(dst)
	state := g.session.State()

	for _, p := range state.Platforms {
		dst.DrawRectColored(g.box(proj, p), PlatformChar, core.ColorBrown)
	}
	for _, c := range state.Collectibles {
		if !c.Active() {
			continue
		}
		x, y := proj.Point(c.Position())
		dst.SetColored(x, y, StarChar, core.ColorBrightYellow)
	}
	for _, h := range state.Hazards {
		x, y := proj.Point(h.Position())
		dst.SetColored(x, y, BombChar, core.ColorBrightRed)
	}
	if state.Player != nil {
		g.drawPlayer(dst, proj, state.Player)
	}

	g.drawHUD(dst)

	if state.Status == StatusOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R or click %s", state.Score, RestartLabel))
	}
}

// projection fits the field under the HUD.
func (g *Game) projection(dst *core.Screen) core.Projection {
	return core.Projection{
		WorldW:  g.cfg.Field.Width,
		WorldH:  g.cfg.Field.Height,
		OffsetX: 0,
		OffsetY: hudRows,
		Cols:    dst.Width(),
		Rows:    dst.Height() - hudRows,
	}
}

func (g *Game) box(proj core.Projection, b engine.Body) core.Rect {
	size := g.spriteSize(b)
	return proj.Box(b.Position(), size.X, size.Y)
}

func (g *Game) spriteSize(b engine.Body) core.Vec {
	if pb, ok := b.(*physics.Body); ok {
		return pb.Size()
	}
	return core.Vec{}
}

func (g *Game) drawPlayer(dst *core.Screen, proj core.Projection, player engine.Body) {
	color := core.ColorBrightCyan
	if player.Tint() == engine.TintDeath {
		color = core.ColorRed
	}

	r := g.box(proj, player)
	dst.DrawRectColored(r, PlayerBody, color)

	face := '◆'
	switch player.Animation() {
	case engine.AnimLeft:
		face = '◀'
	case engine.AnimRight:
		face = '▶'
	}
	dst.SetColored(r.X+r.W/2, r.Y, face, core.ColorBrightWhite)
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, g.hud[engine.TextScore], core.ColorBrightWhite)
	dst.DrawTextColored(16, 0, g.hud[engine.TextLevel], core.ColorBrightWhite)

	if cue, ok := g.mixer.Current(); ok {
		dst.DrawTextColored(30, 0, "♪ "+cue.String(), core.ColorMagenta)
	}

	labelColor := core.ColorBrightWhite
	if g.hover {
		labelColor = core.ColorOrange
	}
	r := g.restartRect()
	dst.DrawTextColored(r.X, r.Y, RestartLabel, labelColor)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))
	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
