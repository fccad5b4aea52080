package game

import (
	"fmt"
	"image/color"
	"sort"

	"chosenoffset.com/damselgrove/internal/render"
	"chosenoffset.com/damselgrove/internal/sprite"
)

var backgroundColor = color.RGBA{24, 36, 28, 255}

// drawable is any actor with a visual frame.
type drawable interface {
	sprite.Actor
	Frame() render.Image
}

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	g.drawVisible(screen)
	g.drawPlayer(screen)
	g.drawHUD(screen)
	g.drawMessages(screen)
}

// drawVisible renders the scrolled world in non-decreasing order of
// vertical center, so southern sprites overlap northern ones.
func (g *Game) drawVisible(screen render.Image) {
	actors := g.Reg.Members(GroupVisible)
	sort.SliceStable(actors, func(i, j int) bool {
		return actors[i].State().CenterY() < actors[j].State().CenterY()
	})

	for _, a := range actors {
		d, ok := a.(drawable)
		if !ok {
			continue
		}
		frame := d.Frame()
		if frame == nil {
			continue
		}

		x, y := g.Cam.ScreenPos(a.State())
		opts := &render.DrawImageOptions{}
		opts.GeoM = render.NewGeoM()
		opts.GeoM.Translate(x, y)
		screen.DrawImage(frame, opts)
	}
}

func (g *Game) drawPlayer(screen render.Image) {
	frame := g.Player.Frame()
	x, y := g.Cam.ScreenPos(g.Player.State())

	if frame != nil {
		opts := &render.DrawImageOptions{}
		opts.GeoM = render.NewGeoM()
		opts.GeoM.Translate(x, y)
		screen.DrawImage(frame, opts)
		return
	}

	// Fallback to a circle when the sheet failed to slice.
	g.Renderer.FillCircle(screen, float32(x), float32(y), 8, color.RGBA{255, 255, 100, 255})
	g.Renderer.StrokeCircle(screen, float32(x), float32(y), 8, 2, color.RGBA{200, 200, 50, 255})
}

func (g *Game) drawHUD(screen render.Image) {
	rescued := g.Progress.GetCounter(RescuedCounter)
	text := fmt.Sprintf("Damsels rescued: %d/%d", rescued, len(g.Damsels))
	g.Renderer.DrawText(screen, text, 20, 20, color.White, 1.0)
}

func (g *Game) drawMessages(screen render.Image) {
	y := 50.0
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		g.Renderer.DrawText(screen, msg.Text, 20, int(y), color.RGBA{255, 255, 255, alpha}, 1.0)
		y += 20
	}
}
