// Package citylist turns the countries API document into a flat, searchable
// list of cities.
package citylist

import (
	"context"
	"net/http"

	"github.com/sudorandom/travel-atlas/pkg/sources"
)

type CityRecord struct {
	Country string `json:"country"`
	City    string `json:"city"`
	FlagURL string `json:"flagUrl"`
}

// Key identifies a record inside a list.
func (r CityRecord) Key() string {
	return r.Country + "-" + r.City
}

// Flatten produces one record per (country, city) pair in API order.
func Flatten(resp *sources.CountriesResponse) []CityRecord {
	if resp == nil {
		return nil
	}
	total := 0
	for _, c := range resp.Data {
		total += len(c.Cities)
	}
	records := make([]CityRecord, 0, total)
	for _, c := range resp.Data {
		flag := sources.FlagURL(c.ISO2)
		for _, city := range c.Cities {
			records = append(records, CityRecord{Country: c.Country, City: city, FlagURL: flag})
		}
	}
	return records
}

// Load fetches the countries document once and flattens it.
func Load(ctx context.Context, client *http.Client, baseURL string) ([]CityRecord, error) {
	resp, err := sources.FetchCountries(ctx, client, baseURL)
	if err != nil {
		return nil, err
	}
	return Flatten(resp), nil
}
