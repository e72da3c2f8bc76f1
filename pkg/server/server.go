// Package server exposes the city list, the map and a live selection session
// over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/sudorandom/travel-atlas/pkg/atlas"
	"github.com/sudorandom/travel-atlas/pkg/citylist"
)

type Server struct {
	atlas    *atlas.Atlas
	router   *mux.Router
	upgrader websocket.Upgrader

	mu   sync.RWMutex
	list citylist.ListState
}

func New(a *atlas.Atlas) *Server {
	s := &Server{
		atlas: a,
		list:  citylist.NewListState(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.router = mux.NewRouter()
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/cities", s.handleCities).Methods(http.MethodGet)
	api.HandleFunc("/map.svg", s.handleMapSVG).Methods(http.MethodGet)
	api.HandleFunc("/features", s.handleFeatures).Methods(http.MethodGet)
	api.HandleFunc("/countries/{name}", s.handleCountry).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.handleSession)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// StartLoading fetches the city list once in the background. Until it
// finishes the list reports loading.
func (s *Server) StartLoading(ctx context.Context, client *http.Client, baseURL string) {
	ch := citylist.Start(ctx, client, baseURL)
	go func() {
		if res, ok := <-ch; ok {
			s.ApplyResult(res)
		}
	}()
}

func (s *Server) ApplyResult(res citylist.Result) {
	s.mu.Lock()
	s.list = s.list.WithResult(res)
	s.mu.Unlock()
}

func (s *Server) listState() citylist.ListState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("Error writing response", "error", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

var errUnknownFeature = errors.New("unknown feature")
