package citylist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sudorandom/travel-atlas/pkg/sources"
)

const franceBody = `{"error":false,"msg":"ok","data":[{"country":"France","iso2":"FR","cities":["Paris","Lyon"]}]}`

func newAPI(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadAndFilterFrance(t *testing.T) {
	srv := newAPI(t, franceBody)

	records, err := Load(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []CityRecord{
		{Country: "France", City: "Paris", FlagURL: "https://flagsapi.com/FR/flat/64.png"},
		{Country: "France", City: "Lyon", FlagURL: "https://flagsapi.com/FR/flat/64.png"},
	}, records)

	got := Filter(records, "par")
	assert.Equal(t, []CityRecord{records[0]}, got)
}

func TestFlatten(t *testing.T) {
	resp := &sources.CountriesResponse{Data: []sources.Country{
		{Country: "Italy", ISO2: "IT", Cities: []string{"Rome"}},
		{Country: "Nowhere", ISO2: "NW"},
		{Country: "Turkey", ISO2: "TR", Cities: []string{"Ankara", "Izmir"}},
	}}
	records := Flatten(resp)
	require.Len(t, records, 3)
	assert.Equal(t, "Italy-Rome", records[0].Key())
	assert.Equal(t, "Turkey-Ankara", records[1].Key())
	assert.Equal(t, "https://flagsapi.com/TR/flat/64.png", records[2].FlagURL)

	assert.Nil(t, Flatten(nil))
}

func TestLoadAPIError(t *testing.T) {
	srv := newAPI(t, `{"error":true,"msg":"down","data":[]}`)

	records, err := Load(context.Background(), srv.Client(), srv.URL)
	assert.ErrorIs(t, err, sources.ErrNetwork)
	assert.Empty(t, records)
}
