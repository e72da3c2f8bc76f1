package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sudorandom/travel-atlas/pkg/atlas"
	"github.com/sudorandom/travel-atlas/pkg/sources"
	"github.com/sudorandom/travel-atlas/pkg/utils"
)

type FetchMapCmd struct {
	URL string `arg:"" optional:"" help:"GeoJSON URL to download."`
	Out string `short:"o" default:"data/world.geo.json" type:"path" help:"Destination file."`
}

func (c *FetchMapCmd) Run(ctx context.Context) error {
	url := c.URL
	if url == "" {
		url = sources.WorldGeoJSONURL
	}
	if err := os.MkdirAll(filepath.Dir(c.Out), 0o755); err != nil {
		return err
	}
	slog.Info("Downloading map data", "url", url, "out", c.Out)
	n, err := utils.DownloadFile(ctx, nil, url, c.Out)
	if err != nil {
		return err
	}

	// Parse it once so a bad download is reported now rather than at startup.
	a, err := atlas.Load(c.Out)
	if err != nil {
		return err
	}
	slog.Info("Map data saved", "bytes", n, "features", len(a.Features()))
	return nil
}
