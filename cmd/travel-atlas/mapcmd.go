package main

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/sudorandom/travel-atlas/pkg/atlas"
)

type MapCmd struct {
	Out      string `short:"o" default:"-" help:"Output file, - for stdout."`
	PNG      bool   `name:"png" help:"Write a PNG instead of SVG."`
	Size     int    `default:"1000" help:"PNG side length in pixels."`
	Selected string `help:"Country to highlight."`
}

func (c *MapCmd) Run(g *Globals) error {
	a, err := g.loadAtlas()
	if err != nil {
		return err
	}
	if c.Selected != "" {
		if _, ok := a.Feature(c.Selected); !ok {
			return fmt.Errorf("unknown country %q", c.Selected)
		}
	}

	var w io.Writer = g.Stdout
	if c.Out != "-" {
		f, err := os.Create(c.Out)
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil {
				slog.Warn("Error closing output", "path", c.Out, "error", err)
			}
		}()
		w = f
	}
	bw := bufio.NewWriter(w)

	if c.PNG {
		if c.Size <= 0 {
			return fmt.Errorf("invalid size %d", c.Size)
		}
		err = png.Encode(bw, a.Rasterize(c.Size, c.Selected))
	} else {
		opts := atlas.DefaultSVGOptions()
		opts.Selected = c.Selected
		err = a.WriteSVG(bw, opts)
	}
	if err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	slog.Debug("Map written", "out", c.Out, "features", len(a.Features()), "bounds", a.Bounds())
	return nil
}
