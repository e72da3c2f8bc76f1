package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sudorandom/travel-atlas/pkg/atlas"
	"github.com/sudorandom/travel-atlas/pkg/citylist"
	"github.com/sudorandom/travel-atlas/pkg/logging"
	"github.com/sudorandom/travel-atlas/pkg/sources"
	"github.com/sudorandom/travel-atlas/pkg/viewer"
)

var (
	apiBase      = flag.String("api", sources.CountriesBaseURL, "Base URL of the countries API")
	mapPath      = flag.String("map", "", "GeoJSON feature collection to use instead of the built-in map")
	windowWidth  = flag.Int("window-width", 800, "Initial window width")
	windowHeight = flag.Int("window-height", 800, "Initial window height")
	tpsFlag      = flag.Int("tps", 30, "Ticks per second")
	logLevel     = flag.String("log-level", "info", "Log level: debug, info, warn or error")
)

func main() {
	flag.Parse()
	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.Setup(os.Stderr, level)

	var a *atlas.Atlas
	if *mapPath != "" {
		a, err = atlas.Load(*mapPath)
	} else {
		a, err = atlas.LoadWorld()
	}
	if err != nil {
		slog.Error("Failed to load map data", "error", err)
		os.Exit(1)
	}

	// Cancelled when the window closes; a late response is dropped.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	game := viewer.NewGame(a, citylist.Start(ctx, nil, *apiBase))

	ebiten.SetTPS(*tpsFlag)
	ebiten.SetWindowSize(*windowWidth, *windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Travel Atlas")
	if err := ebiten.RunGame(game); err != nil {
		slog.Error("Viewer stopped", "error", err)
		os.Exit(1)
	}
}
