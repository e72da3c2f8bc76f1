package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sudorandom/travel-atlas/pkg/citylist"
	"github.com/sudorandom/travel-atlas/pkg/selection"
)

type clientMessage struct {
	Action  string   `json:"action"`
	Feature string   `json:"feature,omitempty"`
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
}

type sessionUpdate struct {
	Phase   selection.Phase  `json:"phase"`
	Feature string           `json:"feature,omitempty"`
	Prompt  string           `json:"prompt,omitempty"`
	Detail  *citylist.Detail `json:"detail,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// handleSession runs one selection machine per connection. Messages are
// handled in order by the read loop and each one is answered with the
// resulting state.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Debug("Websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	slog.Debug("Selection session opened", "remote", r.RemoteAddr)

	var m selection.Machine
	if err := conn.WriteJSON(s.update(m.State(), nil)); err != nil {
		return
	}
	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("Error reading session message", "error", err)
			}
			slog.Debug("Selection session closed", "remote", r.RemoteAddr)
			return
		}
		ev, err := s.event(msg)
		var st selection.State
		if err == nil {
			st, err = m.Apply(ev)
		} else {
			st = m.State()
		}
		if err := conn.WriteJSON(s.update(st, err)); err != nil {
			slog.Debug("Error writing session update", "error", err)
			return
		}
	}
}

func (s *Server) event(msg clientMessage) (selection.Event, error) {
	ev, err := selection.ParseEvent(msg.Action)
	if err != nil || ev.Kind != selection.EventTap {
		return ev, err
	}
	if msg.X != nil && msg.Y != nil {
		return selection.Event{Kind: ev.Kind, Feature: s.atlas.FeatureAt(*msg.X, *msg.Y)}, nil
	}
	name := msg.Feature
	if name == "" {
		// "tap:Name" is accepted as well as a separate feature field.
		name = ev.Feature
	}
	if name == "" {
		return selection.Event{Kind: ev.Kind}, nil
	}
	f, ok := s.atlas.Feature(name)
	if !ok {
		return selection.Event{}, errUnknownFeature
	}
	return selection.Event{Kind: ev.Kind, Feature: f.Name}, nil
}

func (s *Server) update(st selection.State, err error) sessionUpdate {
	u := sessionUpdate{Phase: st.Phase, Feature: st.Feature, Prompt: selection.Prompt(st)}
	if st.Phase == selection.DetailShown {
		d := citylist.DetailFor(st.Feature, s.listState().Records)
		u.Detail = &d
	}
	if err != nil {
		u.Error = err.Error()
	}
	return u
}
