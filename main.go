package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	geyserName := flag.String("geyser", "geyser", "geyser prefab in prefabs/ (basename, .yaml optional)")
	worldName := flag.String("world", "world", "world prefab in prefabs/")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "draw physics shapes")
	watch := flag.Bool("watch", false, "reload prefabs when they change on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("confetti geyser")

	game, err := NewGame(gameOptions{
		geyserName: *geyserName,
		worldName:  *worldName,
		seed:       *seed,
		debug:      *debug,
		watch:      *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
