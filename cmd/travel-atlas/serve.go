package main

import (
	"context"

	"github.com/sudorandom/travel-atlas/pkg/server"
)

type ServeCmd struct {
	Addr string `env:"TRAVEL_ATLAS_ADDR" default:":8080" help:"Listen address."`
}

func (c *ServeCmd) Run(g *Globals, ctx context.Context) error {
	a, err := g.loadAtlas()
	if err != nil {
		return err
	}
	s := server.New(a)
	s.StartLoading(ctx, nil, g.APIBase)
	return s.ListenAndServe(ctx, c.Addr)
}
