package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// Gravity is the downward acceleration in units per tick squared.
	Gravity = 0.3
)

// Lerp maps t in [0,1] onto the range [a,b].
func Lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// DefaultSprites names the built-in confetti images, used when a geyser spec
// leaves its sprite list out.
var DefaultSprites = []string{
	"confetti_red",
	"confetti_orange",
	"confetti_yellow",
	"confetti_green",
	"confetti_blue",
	"confetti_purple",
	"streamer_pink",
	"streamer_teal",
}
