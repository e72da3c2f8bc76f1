package citylist

import (
	"strings"

	"github.com/biter777/countries"
	"github.com/sudorandom/travel-atlas/pkg/sources"
)

const unknown = "Unknown"

// Detail is what the country detail view shows once a selection is confirmed.
type Detail struct {
	Name    string   `json:"name"`
	ISO2    string   `json:"iso2,omitempty"`
	ISO3    string   `json:"iso3,omitempty"`
	Capital string   `json:"capital,omitempty"`
	Region  string   `json:"region,omitempty"`
	FlagURL string   `json:"flagUrl,omitempty"`
	Cities  []string `json:"cities"`
}

// DetailFor describes the named country. Cities are taken from records whose
// country matches by name or by flag (the API's iso2 code).
func DetailFor(name string, records []CityRecord) Detail {
	d := Detail{Name: name, Cities: []string{}}
	code := countries.ByName(name)
	if code.IsValid() {
		d.ISO2 = code.Alpha2()
		d.ISO3 = code.Alpha3()
		if capital := code.Capital().String(); capital != unknown {
			d.Capital = capital
		}
		if region := code.Region().String(); region != unknown {
			d.Region = region
		}
		d.FlagURL = sources.FlagURL(d.ISO2)
	}
	for _, r := range records {
		if strings.EqualFold(r.Country, name) || (d.FlagURL != "" && r.FlagURL == d.FlagURL) {
			d.Cities = append(d.Cities, r.City)
		}
	}
	return d
}
