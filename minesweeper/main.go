package main

import (
	"flag"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jan-bar/LittleMine/session"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	fw := flag.Int("w", 30, "board width")
	fh := flag.Int("h", 16, "board height")
	fm := flag.Int("m", 99, "mine count")
	seed := flag.Uint64("seed", 0, "random seed, 0 for a random board")
	ft := flag.String("theme", "light", "light or dark")
	fv := flag.Bool("v", false, "verbose log")
	flag.Parse()

	if *fv {
		log.SetLevel(logrus.DebugLevel)
	}

	th, err := lookupTheme(*ft)
	if err != nil {
		log.Fatal(err)
	}

	sh, err := loadResources()
	if err != nil {
		log.Fatal(err)
	}

	opts := []session.Option{session.WithLogger(log)}
	if *seed != 0 {
		opts = append(opts, session.WithRand(rand.New(rand.NewPCG(*seed, *seed))))
	}
	g := newGame(session.New(*fw, *fh, *fm, opts...), sh, th)

	ebiten.SetWindowTitle("Mine Sweeping")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err = ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
