package main

import (
	"flag"
	"log"

	"github.com/Mairuzu0/Boost-Game/common"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level to start on, by file name in levels/ (.yaml optional)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Boost")
	ebiten.SetTPS(common.TicksPerSecond)

	game, err := NewGame(*levelName, *mute)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
