package main

import (
	"fmt"

	"github.com/sudorandom/travel-atlas/pkg/selection"
)

type SelectCmd struct {
	Events []string `arg:"" help:"Events to apply in order: tap:NAME, confirm, cancel or back."`
}

func (c *SelectCmd) Run(g *Globals) error {
	a, err := g.loadAtlas()
	if err != nil {
		return err
	}
	var m selection.Machine
	for _, raw := range c.Events {
		ev, err := selection.ParseEvent(raw)
		if err != nil {
			return err
		}
		if ev.Feature != "" {
			f, ok := a.Feature(ev.Feature)
			if !ok {
				return fmt.Errorf("unknown country %q", ev.Feature)
			}
			ev.Feature = f.Name
		}
		st, err := m.Apply(ev)
		line := fmt.Sprintf("%-16s -> %s", raw, st)
		if err != nil {
			line += "  (ignored: " + err.Error() + ")"
		} else if p := selection.Prompt(st); p != "" {
			line += "  " + p
		}
		if _, err := fmt.Fprintln(g.Stdout, line); err != nil {
			return err
		}
	}
	return nil
}
