package atlas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
)

var (
	ErrUnsupportedGeometry = errors.New("unsupported geometry")
	ErrMissingName         = errors.New("feature has no name")
)

// Feature is one named region. Polygons holds every ring of the source
// geometry in order; for polygons with holes the first ring is the outline.
type Feature struct {
	Name     string
	Polygons []orb.Ring
}

var nameKeys = []string{"name", "NAME", "ADMIN", "admin", "name_en"}

// ParseFeatureCollection reads a GeoJSON feature collection. Features without
// a name or with a non polygonal geometry are left out; they are returned in
// skipped so the caller can report them. err is only set when the document
// itself cannot be read.
func ParseFeatureCollection(data []byte) (features []Feature, skipped error, err error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing feature collection: %w", err)
	}

	var warnings *multierror.Error
	for i, f := range fc.Features {
		name := featureName(f)
		if name == "" {
			warnings = multierror.Append(warnings, fmt.Errorf("feature %d: %w", i, ErrMissingName))
			continue
		}
		rings, err := featureRings(f.Geometry)
		if err != nil {
			warnings = multierror.Append(warnings, fmt.Errorf("feature %d (%s): %w", i, name, err))
			continue
		}
		features = append(features, Feature{Name: name, Polygons: rings})
	}
	return features, warnings.ErrorOrNil(), nil
}

func featureName(f *geojson.Feature) string {
	for _, k := range nameKeys {
		if name := strings.TrimSpace(f.PropertyMustString(k, "")); name != "" {
			return name
		}
	}
	return ""
}

func featureRings(g *geojson.Geometry) ([]orb.Ring, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: null", ErrUnsupportedGeometry)
	}
	var rings []orb.Ring
	switch {
	case g.IsPolygon():
		for _, r := range g.Polygon {
			rings = append(rings, toRing(r))
		}
	case g.IsMultiPolygon():
		for _, poly := range g.MultiPolygon {
			for _, r := range poly {
				rings = append(rings, toRing(r))
			}
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, g.Type)
	}
	return rings, nil
}

func toRing(coords [][]float64) orb.Ring {
	ring := make(orb.Ring, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		ring = append(ring, orb.Point{c[0], c[1]})
	}
	return ring
}
