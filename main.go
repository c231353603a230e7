package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "draw collider outlines and runtime stats")
	watch := flag.Bool("watch", false, "reload prefab tuning on disk edits")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "stomper",
	})

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("stomper")

	game, err := NewGame(logger, *debug)
	if err != nil {
		logger.Fatal("startup failed", "err", err)
	}

	if !*mute {
		if err := game.sounds.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing muted", "err", err)
		}
	}

	if *watch {
		if err := game.WatchTuning(); err != nil {
			logger.Warn("prefab watching unavailable", "err", err)
		} else {
			defer game.watcher.Close()
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop ended", "err", err)
	}
}
