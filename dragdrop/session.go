// SPDX-License-Identifier: Unlicense OR MIT

// Package dragdrop reconciles the embedded engine's native drag-drop
// handling with the host application's need to observe and correct
// drop payloads. The reconciler never substitutes for the engine's
// own drop behavior; it enriches or observes it.
//
// Two platform variants share one session state machine. The context
// variant works with engines that own a native drag-context object;
// the override variant works with engines that invoke a host override
// point before performing their native drop.
package dragdrop

import "hostbridge/f32"

// State is the lifecycle state of a drag session.
type State uint8

const (
	// Idle means no session is tracked for the id.
	Idle State = iota
	// Entered is the state after the first enter notification.
	Entered
	// Hovering is the state while motion events arrive.
	Hovering
	// Leaving is the transient state between a drop and the leave
	// notification that finalizes it.
	Leaving
	// Dropped and Cancelled are terminal; they reset session
	// tracking.
	Dropped
	Cancelled
)

// Origin classifies where the dragged content came from.
type Origin uint8

const (
	// OriginUnknown means classification has not been resolved yet.
	OriginUnknown Origin = iota
	// OriginInternal means the drag started inside the host process.
	OriginInternal
	// OriginExternal means the drag came from outside the host
	// process.
	OriginExternal
)

// session tracks one in-flight drag interaction. Sessions are keyed
// by an identifier supplied by the host windowing system and are
// owned exclusively by a reconciler; the host reads classification
// and paths only through the reconciler's query methods.
type session struct {
	id     uint64
	state  State
	origin Origin
	paths  []string
	last   f32.Point
}

// classify resolves the session origin. Once resolved to Internal or
// External the classification is immutable for the session.
func (s *session) classify(internal bool) Origin {
	if s.origin == OriginUnknown {
		if internal {
			s.origin = OriginInternal
		} else {
			s.origin = OriginExternal
		}
	}
	return s.origin
}

func (o Origin) String() string {
	switch o {
	case OriginUnknown:
		return "Unknown"
	case OriginInternal:
		return "Internal"
	case OriginExternal:
		return "External"
	default:
		panic("unknown Origin")
	}
}

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Entered:
		return "Entered"
	case Hovering:
		return "Hovering"
	case Leaving:
		return "Leaving"
	case Dropped:
		return "Dropped"
	case Cancelled:
		return "Cancelled"
	default:
		panic("unknown State")
	}
}

// sessions is the per-reconciler session table.
type sessions struct {
	m map[uint64]*session
}

func newSessions() sessions {
	return sessions{m: make(map[uint64]*session)}
}

// enter returns the session for id, creating it in the Entered state
// on the first notification for an untracked id.
func (ss *sessions) enter(id uint64, pos f32.Point) *session {
	s, ok := ss.m[id]
	if !ok {
		s = &session{id: id, state: Entered}
		ss.m[id] = s
	}
	s.last = pos
	return s
}

// get returns the tracked session for id, or nil.
func (ss *sessions) get(id uint64) *session {
	return ss.m[id]
}

// finish moves the session to a terminal state and drops it from the
// table.
func (ss *sessions) finish(s *session, terminal State) {
	s.state = terminal
	delete(ss.m, s.id)
}
