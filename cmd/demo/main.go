package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	profilePath := flag.String("profile", "default.yaml", "profile name in profiles/")
	workers := flag.Int("workers", 0, "evaluation worker count (0 = single threaded)")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(960, 540)
	ebiten.SetWindowTitle("inputkit demo")

	game, err := NewGame(*profilePath, *workers)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
