package emitter

import (
	"io"
	"log"
	"math/rand/v2"
	"time"
)

// scriptedRand replays fixed samples, cycling when exhausted.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func baseConfig() Config {
	return Config{
		Position:        Position{Top: 400, Left: 200},
		Angle:           -90,
		Spread:          40,
		Velocity:        12,
		Volatility:      0.5,
		AngularVelocity: 0.3,
		Concentration:   30,
		Duration:        time.Second,
		Sprites:         []string{"red", "green", "blue"},
	}
}

const frame = time.Second / 60
