package atlas

import _ "embed"

// A simplified outline of a handful of countries, enough for the map screen.
// A full dataset can be supplied with Load.
//
//go:embed data/world.geo.json
var worldGeoJSON []byte
