package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/sudorandom/travel-atlas/pkg/citylist"
)

type CitiesCmd struct {
	Query string `short:"q" help:"Case-insensitive substring of the country or city name."`
	Limit int    `default:"0" help:"Print at most this many cities (0 prints all)."`
	JSON  bool   `help:"Print JSON instead of a table."`
}

func (c *CitiesCmd) Run(g *Globals, ctx context.Context) error {
	st := citylist.NewListState().WithQuery(c.Query)
	records, err := citylist.Load(ctx, nil, g.APIBase)
	st = st.WithResult(citylist.Result{Records: records, Err: err})
	if st.Failed {
		return fmt.Errorf("could not load cities: %w", err)
	}

	visible := st.Visible
	if c.Limit > 0 && len(visible) > c.Limit {
		visible = visible[:c.Limit]
	}
	if c.JSON {
		enc := json.NewEncoder(g.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(visible)
	}

	tw := tabwriter.NewWriter(g.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COUNTRY\tCITY\tFLAG")
	for _, r := range visible {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Country, r.City, r.FlagURL)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(g.Stdout, "%d of %d cities\n", len(st.Visible), len(st.Records))
	return err
}
