// Command geyserstat runs a geyser prefab headlessly and prints what the
// simulation saw, tick by tick or as a summary.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/milk9111/confetti/emitter"
	"github.com/milk9111/confetti/physics"
	"github.com/milk9111/confetti/prefabs"
	"github.com/milk9111/confetti/timer"
)

type stats struct {
	Ticks     int
	Emitted   int
	Peak      int
	Live      int
	Removed   int
	StoppedAt time.Duration
}

type simOptions struct {
	seconds float64
	tps     int
	seed    uint64
	every   int
	out     io.Writer
}

func simulate(cfg emitter.Config, worldCfg physics.WorldConfig, opts simOptions) (stats, error) {
	if opts.tps <= 0 {
		opts.tps = 60
	}
	loop := timer.NewLoop()
	world := physics.NewWorld(worldCfg)
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed>>1|1))
	g := emitter.NewGeyser(world, loop, loop, rng, log.New(io.Discard, "", 0))

	h, err := g.Activate(cfg)
	if err != nil {
		return stats{}, err
	}
	defer g.Deactivate(h)

	var s stats
	tick := time.Second / time.Duration(opts.tps)
	total := int(opts.seconds * float64(opts.tps))
	for i := 0; i < total; i++ {
		loop.Advance(tick)
		world.Step(1.0)
		s.Ticks++
		if world.Count() > s.Peak {
			s.Peak = world.Count()
		}
		if s.StoppedAt == 0 && !h.Active() {
			s.StoppedAt = loop.Now()
		}
		if opts.every > 0 && opts.out != nil && s.Ticks%opts.every == 0 {
			fmt.Fprintf(opts.out, "t=%-8v emitted=%-5d live=%-5d removed=%d\n",
				loop.Now().Round(time.Millisecond), h.Emitted(), world.Count(), world.Removed())
		}
	}
	s.Emitted = h.Emitted()
	s.Live = world.Count()
	s.Removed = world.Removed()
	return s, nil
}

func main() {
	geyserName := flag.String("geyser", "geyser", "geyser prefab in prefabs/")
	worldName := flag.String("world", "world", "world prefab in prefabs/")
	seconds := flag.Float64("t", 5, "seconds to simulate")
	tps := flag.Int("tps", 60, "simulation ticks per second")
	seed := flag.Uint64("seed", 1, "random seed")
	every := flag.Int("every", 0, "print a line every N ticks (0 prints only the summary)")
	flag.Parse()

	spec, err := prefabs.LoadGeyserSpec(*geyserName)
	if err != nil {
		log.Fatal(err)
	}
	worldSpec, err := prefabs.LoadWorldSpec(*worldName)
	if err != nil {
		log.Fatal(err)
	}

	s, err := simulate(spec.Config(), worldSpec.Config(), simOptions{
		seconds: *seconds,
		tps:     *tps,
		seed:    *seed,
		every:   *every,
		out:     os.Stdout,
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: %d ticks, %d emitted, stopped at %v, peak %d live, %d live at end, %d removed\n",
		spec.Name, s.Ticks, s.Emitted, s.StoppedAt, s.Peak, s.Live, s.Removed)
}
