package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/sudorandom/travel-atlas/pkg/atlas"
	"github.com/sudorandom/travel-atlas/pkg/logging"
)

type Globals struct {
	APIBase  string    `name:"api" env:"TRAVEL_ATLAS_API_BASE" default:"https://countriesnow.space" help:"Base URL of the countries API."`
	MapFile  string    `name:"map-file" env:"TRAVEL_ATLAS_MAP" type:"path" help:"GeoJSON feature collection to use instead of the built-in map."`
	LogLevel string    `env:"TRAVEL_ATLAS_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level (${enum})."`
	Stdout   io.Writer `kong:"-"`
}

func (g *Globals) loadAtlas() (*atlas.Atlas, error) {
	if g.MapFile != "" {
		return atlas.Load(g.MapFile)
	}
	return atlas.LoadWorld()
}

type CLI struct {
	Globals

	Cities   CitiesCmd   `cmd:"" help:"Load the city list once and print the cities matching a query."`
	Map      MapCmd      `cmd:"" help:"Render the world map as SVG or PNG."`
	Select   SelectCmd   `cmd:"" help:"Replay selection events such as tap:Turkey confirm back."`
	Serve    ServeCmd    `cmd:"" help:"Serve the city list, the map and selection sessions over HTTP."`
	FetchMap FetchMapCmd `cmd:"" help:"Download a GeoJSON map dataset for use with --map-file."`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Could not read .env", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := CLI{Globals: Globals{Stdout: os.Stdout}}
	kctx := kong.Parse(&cli,
		kong.Name("travel-atlas"),
		kong.Description("Searchable city list and world map."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	level, err := logging.ParseLevel(cli.LogLevel)
	kctx.FatalIfErrorf(err)
	logging.Setup(os.Stderr, level)

	kctx.FatalIfErrorf(kctx.Run(&cli.Globals))
}
