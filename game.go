package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/confetti/common"
	"github.com/milk9111/confetti/emitter"
	"github.com/milk9111/confetti/physics"
	"github.com/milk9111/confetti/prefabs"
	"github.com/milk9111/confetti/render"
	"github.com/milk9111/confetti/timer"
	"golang.design/x/clipboard"
)

const (
	baseWidth  = common.BaseWidth
	baseHeight = common.BaseHeight
)

var background = color.RGBA{R: 0x14, G: 0x14, B: 0x1e, A: 0xff}

type gameOptions struct {
	geyserName string
	worldName  string
	seed       uint64
	debug      bool
	watch      bool
}

type Game struct {
	opts gameOptions

	loop   *timer.Loop
	world  *physics.World
	geyser *emitter.Geyser
	handle *emitter.Handle
	spec   *prefabs.GeyserSpec

	ui          *ebitenui.UI
	showUI      bool
	watcher     *prefabs.Watcher
	clipboardOK bool
}

func NewGame(opts gameOptions) (*Game, error) {
	spec, err := prefabs.LoadGeyserSpec(opts.geyserName)
	if err != nil {
		return nil, err
	}
	worldSpec, err := prefabs.LoadWorldSpec(opts.worldName)
	if err != nil {
		return nil, err
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Game: seed %d", seed)

	loop := timer.NewLoop()
	world := physics.NewWorld(worldSpec.Config())
	render.RegisterDefaults()

	g := &Game{
		opts:   opts,
		loop:   loop,
		world:  world,
		geyser: emitter.NewGeyser(world, loop, loop, rand.New(rand.NewPCG(seed, seed>>1|1)), nil),
		spec:   spec,
		showUI: true,
	}
	g.ui = NewControlUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("Game: clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	if opts.watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("Game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.Fire()
	return g, nil
}

// Fire restarts the geyser with the current spec.
func (g *Game) Fire() {
	g.geyser.Deactivate(g.handle)
	g.handle = nil

	cfg := g.spec.Config()
	if err := render.EnsureSprites(cfg.Sprites); err != nil {
		log.Printf("Game: %v", err)
	}
	h, err := g.geyser.Activate(cfg)
	if err != nil {
		log.Printf("Game: activate %s: %v", g.spec.Name, err)
		return
	}
	g.handle = h
}

// Stop halts emission; confetti already in flight keeps falling.
func (g *Game) Stop() {
	g.geyser.Deactivate(g.handle)
}

// CopySpec puts the live geyser spec on the clipboard as YAML.
func (g *Game) CopySpec() {
	if !g.clipboardOK {
		return
	}
	data, err := prefabs.MarshalGeyserSpec(prefabs.GeyserSpecFromConfig(g.spec.Name, g.spec.Config()))
	if err != nil {
		log.Printf("Game: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("Game: copied %s to clipboard", g.spec.Name)
}

func (g *Game) Close() {
	g.geyser.Deactivate(g.handle)
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	g.loop.Advance(time.Second / time.Duration(tps))
	g.world.Step(1.0)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Fire()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.CopySpec()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showUI = !g.showUI
	}
	if g.showUI {
		g.ui.Update()
	}

	g.pollWatcher()
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			return
		}
		base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		if base != strings.TrimSuffix(filepath.Base(g.opts.geyserName), ".yaml") {
			continue
		}
		spec, err := prefabs.LoadGeyserSpec(g.opts.geyserName)
		if err != nil {
			log.Printf("Game: reload %s: %v", name, err)
			continue
		}
		g.spec = spec
		log.Printf("Game: reloaded %s", name)
		if g.handle.Active() {
			g.Fire()
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	render.DrawParticles(screen, g.world)
	if g.opts.debug {
		render.DrawPhysicsDebug(g.world.Space(), screen)
	}
	render.DrawStats(screen, g.world, g.handle.Active())
	if g.showUI {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic(fmt.Sprintf("shouldn't use Layout (%dx%d)", outsideWidth, outsideHeight))
}
