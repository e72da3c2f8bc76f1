// Package atlas projects a static set of country outlines into a fixed square
// view and answers which country sits under a point of that view.
package atlas

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/paulmach/orb"
)

type projectedFeature struct {
	name  string
	rings []orb.Ring // view coordinates
	bound orb.Bound
}

// Atlas owns the loaded features. Bounds and projected outlines are computed
// on first use and kept for the lifetime of the Atlas.
type Atlas struct {
	features []Feature
	byName   map[string]int

	once      sync.Once
	bounds    Bounds
	projected []projectedFeature
}

func New(features []Feature) *Atlas {
	a := &Atlas{
		features: features,
		byName:   make(map[string]int, len(features)),
	}
	for i, f := range features {
		a.byName[strings.ToLower(f.Name)] = i
	}
	return a
}

// LoadWorld builds an Atlas from the embedded dataset.
func LoadWorld() (*Atlas, error) {
	return parse(worldGeoJSON, "embedded")
}

// Load builds an Atlas from a GeoJSON file on disk.
func Load(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map data: %w", err)
	}
	return parse(data, path)
}

func parse(data []byte, source string) (*Atlas, error) {
	features, skipped, err := ParseFeatureCollection(data)
	if err != nil {
		return nil, err
	}
	if skipped != nil {
		slog.Warn("Skipped map features", "source", source, "error", skipped)
	}
	slog.Debug("Map data loaded", "source", source, "features", len(features))
	return New(features), nil
}

func (a *Atlas) compute() {
	a.once.Do(func() {
		a.bounds = ComputeBounds(a.features)
		if err := a.bounds.Validate(); err != nil {
			slog.Debug("Projecting to view midpoint", "error", err)
		}
		a.projected = make([]projectedFeature, len(a.features))
		for i, f := range a.features {
			pf := projectedFeature{name: f.Name, rings: make([]orb.Ring, len(f.Polygons))}
			first := true
			for j, ring := range f.Polygons {
				out := make(orb.Ring, len(ring))
				for k, p := range ring {
					x, y := Project(p, a.bounds)
					out[k] = orb.Point{x, y}
					if first {
						pf.bound = orb.Bound{Min: out[k], Max: out[k]}
						first = false
					} else {
						pf.bound = pf.bound.Extend(out[k])
					}
				}
				pf.rings[j] = out
			}
			a.projected[i] = pf
		}
	})
}

// Bounds returns the padded bounds of every feature.
func (a *Atlas) Bounds() Bounds {
	a.compute()
	return a.bounds
}

func (a *Atlas) Features() []Feature {
	return a.features
}

// Names lists feature names in alphabetical order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.features))
	for _, f := range a.features {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// Feature looks a feature up by name, ignoring case.
func (a *Atlas) Feature(name string) (Feature, bool) {
	i, ok := a.byName[strings.ToLower(name)]
	if !ok {
		return Feature{}, false
	}
	return a.features[i], true
}

// ProjectedRings returns the outline of the named feature in view coordinates.
func (a *Atlas) ProjectedRings(name string) []orb.Ring {
	i, ok := a.byName[strings.ToLower(name)]
	if !ok {
		return nil
	}
	a.compute()
	return a.projected[i].rings
}
