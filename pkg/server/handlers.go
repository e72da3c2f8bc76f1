package server

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sudorandom/travel-atlas/pkg/atlas"
	"github.com/sudorandom/travel-atlas/pkg/citylist"
)

type citiesResponse struct {
	Loading bool                  `json:"loading"`
	Failed  bool                  `json:"failed"`
	Query   string                `json:"query"`
	Count   int                   `json:"count"`
	Records []citylist.CityRecord `json:"records"`
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	st := s.listState().WithQuery(r.URL.Query().Get("q"))
	records := st.Visible
	if records == nil {
		records = []citylist.CityRecord{}
	}
	writeJSON(w, http.StatusOK, citiesResponse{
		Loading: st.Loading,
		Failed:  st.Failed,
		Query:   st.Query,
		Count:   len(records),
		Records: records,
	})
}

func (s *Server) handleMapSVG(w http.ResponseWriter, r *http.Request) {
	opts := atlas.DefaultSVGOptions()
	opts.Selected = r.URL.Query().Get("selected")

	var buf bytes.Buffer
	if err := s.atlas.WriteSVG(&buf, opts); err != nil {
		slog.Error("Rendering map", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "rendering map failed"})
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(buf.Bytes())
}

type featureResponse struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	names := s.atlas.Names()
	out := make([]featureResponse, 0, len(names))
	for _, name := range names {
		out = append(out, featureResponse{Name: name, Path: atlas.PathData(s.atlas.ProjectedRings(name))})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCountry(w http.ResponseWriter, r *http.Request) {
	f, ok := s.atlas.Feature(mux.Vars(r)["name"])
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "unknown country"})
		return
	}
	writeJSON(w, http.StatusOK, citylist.DetailFor(f.Name, s.listState().Records))
}
