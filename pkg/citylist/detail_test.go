package citylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailFor(t *testing.T) {
	records := []CityRecord{
		{Country: "France", City: "Paris", FlagURL: "https://flagsapi.com/FR/flat/64.png"},
		{Country: "France", City: "Lyon", FlagURL: "https://flagsapi.com/FR/flat/64.png"},
		{Country: "Italy", City: "Rome", FlagURL: "https://flagsapi.com/IT/flat/64.png"},
		{Country: "France (Metropolitan)", City: "Nice", FlagURL: "https://flagsapi.com/FR/flat/64.png"},
	}

	d := DetailFor("France", records)
	assert.Equal(t, "FR", d.ISO2)
	assert.Equal(t, "FRA", d.ISO3)
	assert.Equal(t, "https://flagsapi.com/FR/flat/64.png", d.FlagURL)
	// The API spells the last one differently; the flag code joins it.
	assert.Equal(t, []string{"Paris", "Lyon", "Nice"}, d.Cities)
}

func TestDetailForUnknown(t *testing.T) {
	d := DetailFor("Atlantis", []CityRecord{{Country: "Atlantis", City: "Poseidonia"}})
	assert.Empty(t, d.ISO2)
	assert.Empty(t, d.FlagURL)
	assert.Equal(t, []string{"Poseidonia"}, d.Cities)
}
