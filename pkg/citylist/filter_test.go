package citylist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sample = []CityRecord{
	{Country: "France", City: "Paris"},
	{Country: "France", City: "Lyon"},
	{Country: "Italy", City: "Rome"},
	{Country: "Turkey", City: "Istanbul"},
	{Country: "Türkiye", City: "İzmir"},
	{Country: "Paraguay", City: "Asunción"},
}

func TestFilterEmptyQuery(t *testing.T) {
	got := Filter(sample, "")
	assert.Equal(t, sample, got)

	assert.Nil(t, Filter(nil, ""))
}

func TestFilterMatchesPredicate(t *testing.T) {
	queries := []string{"par", "PAR", "fr", "o", "an", "ü", "zzz", "France", "ris", "  "}
	for _, q := range queries {
		got := Filter(sample, q)
		lq := strings.ToLower(q)

		want := []CityRecord{}
		for _, r := range sample {
			if strings.Contains(strings.ToLower(r.Country), lq) || strings.Contains(strings.ToLower(r.City), lq) {
				want = append(want, r)
			}
		}
		assert.Equal(t, want, got, "query %q", q)
	}
}

func TestFilterOrderAndIdempotence(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"par", []string{"Paris", "Asunción"}},
		{"FRANCE", []string{"Paris", "Lyon"}},
		{"istan", []string{"Istanbul"}},
		{"nope", []string{}},
	}
	for _, tt := range tests {
		once := Filter(sample, tt.query)
		twice := Filter(once, tt.query)
		assert.Equal(t, once, twice, "query %q", tt.query)

		cities := []string{}
		for _, r := range once {
			cities = append(cities, r.City)
		}
		assert.Equal(t, tt.want, cities, "query %q", tt.query)
	}
}
