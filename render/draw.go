package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/confetti/physics"
)

var fallback *ebiten.Image

func fallbackImage() *ebiten.Image {
	if fallback == nil {
		fallback = ebiten.NewImage(8, 8)
		fallback.Fill(color.White)
	}
	return fallback
}

// DrawParticles draws every body in the world centred on its position and
// rotated by its angle.
func DrawParticles(screen *ebiten.Image, world *physics.World) {
	if screen == nil || world == nil {
		return
	}
	world.EachParticle(func(p *physics.Particle) {
		img := GetImage(p.Sprite)
		if img == nil {
			img = fallbackImage()
		}
		w := img.Bounds().Dx()
		h := img.Bounds().Dy()
		scale := fitScale(w, h)

		pos := p.Body.Position()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Rotate(p.Body.Angle())
		op.GeoM.Translate(pos.X, pos.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	})
}

// DrawStats prints the live body count in the top-left corner.
func DrawStats(screen *ebiten.Image, world *physics.World, emitting bool) {
	state := "idle"
	if emitting {
		state = "emitting"
	}
	msg := fmt.Sprintf("TPS: %.0f  bodies: %d  removed: %d  geyser: %s",
		ebiten.ActualTPS(), world.Count(), world.Removed(), state)
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}
