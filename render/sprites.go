package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/milk9111/confetti/common"
	"github.com/milk9111/confetti/emitter"
)

var confettiColors = map[string]color.NRGBA{
	"confetti_red":    {R: 0xe6, G: 0x39, B: 0x46, A: 0xff},
	"confetti_orange": {R: 0xf4, G: 0xa2, B: 0x61, A: 0xff},
	"confetti_yellow": {R: 0xe9, G: 0xc4, B: 0x6a, A: 0xff},
	"confetti_green":  {R: 0x2a, G: 0x9d, B: 0x8f, A: 0xff},
	"confetti_blue":   {R: 0x45, G: 0x7b, B: 0x9d, A: 0xff},
	"confetti_purple": {R: 0x9b, G: 0x5d, B: 0xe5, A: 0xff},
	"streamer_pink":   {R: 0xf1, G: 0x5b, B: 0xb5, A: 0xff},
	"streamer_teal":   {R: 0x00, G: 0xbb, B: 0xf9, A: 0xff},
}

// DefaultSprite draws the built-in image for one of common.DefaultSprites.
// Confetti are small squares, streamers are thin strips.
func DefaultSprite(name string) (image.Image, bool) {
	c, ok := confettiColors[name]
	if !ok {
		return nil, false
	}
	w, h := 10, 10
	if strings.HasPrefix(name, "streamer_") {
		w, h = 4, emitter.ParticleSize
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	shade := color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// darker bottom edge reads as a fold while spinning
			if y == h-1 {
				img.SetNRGBA(x, y, shade)
				continue
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img, true
}

// DefaultSprites generates every built-in sprite keyed by name.
func DefaultSprites() map[string]image.Image {
	out := make(map[string]image.Image, len(common.DefaultSprites))
	for _, name := range common.DefaultSprites {
		if img, ok := DefaultSprite(name); ok {
			out[name] = img
		}
	}
	return out
}

// fitScale returns the uniform scale that fits a w×h sprite inside one particle.
func fitScale(w, h int) float64 {
	m := w
	if h > m {
		m = h
	}
	if m <= emitter.ParticleSize {
		return 1
	}
	return float64(emitter.ParticleSize) / float64(m)
}
