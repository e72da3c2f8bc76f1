package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sudorandom/travel-atlas/pkg/atlas"
	"github.com/sudorandom/travel-atlas/pkg/citylist"
)

var records = []citylist.CityRecord{
	{Country: "France", City: "Paris", FlagURL: "https://flagsapi.com/FR/flat/64.png"},
	{Country: "France", City: "Lyon", FlagURL: "https://flagsapi.com/FR/flat/64.png"},
	{Country: "Turkey", City: "Ankara", FlagURL: "https://flagsapi.com/TR/flat/64.png"},
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	w, err := atlas.LoadWorld()
	require.NoError(t, err)
	s := New(w)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp.StatusCode
}

func TestCities(t *testing.T) {
	s, ts := newTestServer(t)

	var body citiesResponse
	getJSON(t, ts.URL+"/api/cities", &body)
	assert.True(t, body.Loading)
	assert.Empty(t, body.Records)

	s.ApplyResult(citylist.Result{Records: records})

	body = citiesResponse{}
	getJSON(t, ts.URL+"/api/cities?q=par", &body)
	assert.False(t, body.Loading)
	assert.Equal(t, "par", body.Query)
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, records[:1], body.Records)

	body = citiesResponse{}
	getJSON(t, ts.URL+"/api/cities", &body)
	assert.Equal(t, 3, body.Count)
}

func TestCitiesFailedLoad(t *testing.T) {
	s, ts := newTestServer(t)
	s.ApplyResult(citylist.Result{Err: errors.New("offline")})

	var body citiesResponse
	getJSON(t, ts.URL+"/api/cities?q=a", &body)
	assert.False(t, body.Loading)
	assert.True(t, body.Failed)
	assert.NotNil(t, body.Records)
	assert.Empty(t, body.Records)
}

func TestStartLoading(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":false,"data":[{"country":"Italy","iso2":"IT","cities":["Rome","Milan"]}]}`))
	}))
	defer api.Close()

	s, ts := newTestServer(t)
	s.StartLoading(context.Background(), api.Client(), api.URL)

	require.Eventually(t, func() bool {
		var body citiesResponse
		getJSON(t, ts.URL+"/api/cities", &body)
		return !body.Loading && body.Count == 2
	}, 5*time.Second, 10*time.Millisecond)
}

func TestMapSVG(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/map.svg?selected=Italy")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg"))
	assert.Contains(t, string(data), `data-name="Italy"`)
}

func TestFeatures(t *testing.T) {
	_, ts := newTestServer(t)

	var body []featureResponse
	getJSON(t, ts.URL+"/api/features", &body)
	require.Len(t, body, 9)
	assert.Equal(t, "Egypt", body[0].Name)
	assert.True(t, strings.HasPrefix(body[0].Path, "M"))
}

func TestCountry(t *testing.T) {
	s, ts := newTestServer(t)
	s.ApplyResult(citylist.Result{Records: records})

	var d citylist.Detail
	status := getJSON(t, ts.URL+"/api/countries/france", &d)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "France", d.Name)
	assert.Equal(t, "FR", d.ISO2)
	assert.Equal(t, []string{"Paris", "Lyon"}, d.Cities)

	var e errorBody
	status = getJSON(t, ts.URL+"/api/countries/Atlantis", &e)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "unknown country", e.Error)
}

type wireUpdate struct {
	Phase   string           `json:"phase"`
	Feature string           `json:"feature"`
	Prompt  string           `json:"prompt"`
	Detail  *citylist.Detail `json:"detail"`
	Error   string           `json:"error"`
}

func TestSession(t *testing.T) {
	s, ts := newTestServer(t)
	s.ApplyResult(citylist.Result{Records: records})

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	var u wireUpdate
	require.NoError(t, conn.ReadJSON(&u))
	assert.Equal(t, "idle", u.Phase)

	send := func(msg map[string]any) wireUpdate {
		t.Helper()
		require.NoError(t, conn.WriteJSON(msg))
		var u wireUpdate
		require.NoError(t, conn.ReadJSON(&u))
		return u
	}

	u = send(map[string]any{"action": "tap", "feature": "turkey"})
	assert.Equal(t, wireUpdate{Phase: "selected", Feature: "Turkey", Prompt: "Show details for Turkey?"}, u)

	u = send(map[string]any{"action": "confirm"})
	assert.Equal(t, "detail", u.Phase)
	require.NotNil(t, u.Detail)
	assert.Equal(t, []string{"Ankara"}, u.Detail.Cities)

	x, y := atlas.Project(orb.Point{12.5, 42.5}, s.atlas.Bounds())
	u = send(map[string]any{"action": "tap", "x": x, "y": y})
	assert.Equal(t, "selected", u.Phase)
	assert.Equal(t, "Italy", u.Feature)
	assert.Nil(t, u.Detail)

	u = send(map[string]any{"action": "back"})
	assert.Equal(t, "selected", u.Phase)
	assert.NotEmpty(t, u.Error)

	u = send(map[string]any{"action": "tap", "feature": "Atlantis"})
	assert.Equal(t, "Italy", u.Feature)
	assert.Equal(t, "unknown feature", u.Error)

	u = send(map[string]any{"action": "tap:Atlantis"})
	assert.Equal(t, "Italy", u.Feature)
	assert.Equal(t, "unknown feature", u.Error)

	u = send(map[string]any{"action": "tap:greece"})
	assert.Equal(t, "Greece", u.Feature)
	assert.Empty(t, u.Error)

	u = send(map[string]any{"action": "cancel"})
	assert.Equal(t, wireUpdate{Phase: "idle"}, u)
}

func TestListenAndServeShutdown(t *testing.T) {
	s, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
