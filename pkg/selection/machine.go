package selection

import (
	"fmt"
	"strings"
)

type EventKind string

const (
	EventTap     EventKind = "tap"
	EventConfirm EventKind = "confirm"
	EventCancel  EventKind = "cancel"
	EventBack    EventKind = "back"
)

type Event struct {
	Kind    EventKind
	Feature string
}

// ParseEvent reads the short form used on the command line: "tap:Turkey",
// "confirm", "cancel" or "back".
func ParseEvent(s string) (Event, error) {
	kind, feature, _ := strings.Cut(s, ":")
	ev := Event{Kind: EventKind(strings.ToLower(strings.TrimSpace(kind))), Feature: strings.TrimSpace(feature)}
	switch ev.Kind {
	case EventTap:
		return ev, nil
	case EventConfirm, EventCancel, EventBack:
		if ev.Feature != "" {
			return Event{}, fmt.Errorf("event %q takes no feature", ev.Kind)
		}
		return ev, nil
	default:
		return Event{}, fmt.Errorf("unknown event %q", kind)
	}
}

// Machine holds a State and applies events one at a time. It is not safe for
// concurrent use; each screen or session owns its own Machine.
type Machine struct {
	state State
}

func (m *Machine) State() State {
	return m.state
}

// Apply runs one event. On an invalid transition the state is left as it was
// and the error is returned.
func (m *Machine) Apply(ev Event) (State, error) {
	var (
		next State
		err  error
	)
	switch ev.Kind {
	case EventTap:
		next = Tap(m.state, ev.Feature)
	case EventConfirm:
		next, err = Confirm(m.state)
	case EventCancel:
		next, err = Cancel(m.state)
	case EventBack:
		next, err = Back(m.state)
	default:
		return m.state, fmt.Errorf("%w: unknown event %q", ErrInvalidTransition, ev.Kind)
	}
	m.state = next
	return next, err
}
