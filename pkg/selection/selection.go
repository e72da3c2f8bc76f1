// Package selection tracks which country on the map is selected and whether
// its detail view is open.
package selection

import (
	"errors"
	"fmt"
)

type Phase int

const (
	Idle Phase = iota
	Selected
	DetailShown
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Selected:
		return "selected"
	case DetailShown:
		return "detail"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

var ErrInvalidTransition = errors.New("invalid selection transition")

// State is the selection screen state. Feature is empty exactly when Phase is
// Idle.
type State struct {
	Phase   Phase  `json:"phase"`
	Feature string `json:"feature,omitempty"`
}

func (s State) String() string {
	if s.Phase == Idle {
		return s.Phase.String()
	}
	return fmt.Sprintf("%s(%s)", s.Phase, s.Feature)
}

// Tap selects the tapped feature from any phase; the most recent tap always
// wins. A tap that hit no feature changes nothing.
func Tap(s State, feature string) State {
	if feature == "" {
		return s
	}
	return State{Phase: Selected, Feature: feature}
}

func Confirm(s State) (State, error) {
	if s.Phase != Selected {
		return s, fmt.Errorf("%w: confirm from %s", ErrInvalidTransition, s.Phase)
	}
	return State{Phase: DetailShown, Feature: s.Feature}, nil
}

func Cancel(s State) (State, error) {
	if s.Phase != Selected {
		return s, fmt.Errorf("%w: cancel from %s", ErrInvalidTransition, s.Phase)
	}
	return State{}, nil
}

func Back(s State) (State, error) {
	if s.Phase != DetailShown {
		return s, fmt.Errorf("%w: back from %s", ErrInvalidTransition, s.Phase)
	}
	return State{}, nil
}

// Prompt is the confirmation question shown while a feature is Selected.
func Prompt(s State) string {
	if s.Phase != Selected {
		return ""
	}
	return fmt.Sprintf("Show details for %s?", s.Feature)
}
