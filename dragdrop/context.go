// SPDX-License-Identifier: Unlicense OR MIT

package dragdrop

import (
	"log/slog"

	"golang.org/x/exp/slices"

	"hostbridge/f32"
	"hostbridge/internal/logging"
	"hostbridge/io/transfer"
)

// Context is the engine-owned drag-context object the context variant
// classifies from.
type Context interface {
	// SourceWidget reports whether the drag originates from a widget
	// in this process.
	SourceWidget() bool
	// FilePaths lists the file paths offered by the drag, in platform
	// order. Empty for drags without file payloads.
	FilePaths() []string
}

// ContextReconciler is the drag-drop variant for engines that own a
// native drag-context object. It observes the drag and emits a drop
// notification for external file drops; native handling always
// proceeds unimpeded.
type ContextReconciler struct {
	sessions sessions
	notify   func(transfer.DropEvent)
	log      *slog.Logger
}

// NewContextReconciler returns a reconciler delivering drop
// notifications through notify. notify may be nil.
func NewContextReconciler(notify func(transfer.DropEvent)) *ContextReconciler {
	return &ContextReconciler{
		sessions: newSessions(),
		notify:   notify,
		log:      logging.Logger(),
	}
}

// Enter starts tracking a session on its first enter notification.
func (r *ContextReconciler) Enter(id uint64, pos f32.Point) {
	r.sessions.enter(id, pos)
}

// Motion records drag motion. An in-process source widget classifies
// the session Internal; classification is immutable once resolved.
func (r *ContextReconciler) Motion(id uint64, ctx Context, pos f32.Point) {
	s := r.sessions.enter(id, pos)
	s.state = Hovering
	if ctx != nil && ctx.SourceWidget() {
		s.classify(true)
	}
}

// Drop records that a drop was received. The session awaits the leave
// notification that finalizes it.
func (r *ContextReconciler) Drop(id uint64, pos f32.Point) {
	s := r.sessions.get(id)
	if s == nil {
		return
	}
	s.last = pos
	s.state = Leaving
}

// Leave finalizes the session. Immediately after a drop, external file
// paths available from the context are extracted and emitted as a
// single drop notification; the engine's native handling proceeds
// regardless. A leave without a preceding drop cancels the session.
func (r *ContextReconciler) Leave(id uint64, ctx Context) {
	s := r.sessions.get(id)
	if s == nil {
		return
	}
	if s.state != Leaving {
		r.sessions.finish(s, Cancelled)
		return
	}
	if s.origin != OriginInternal && ctx != nil {
		if paths := ctx.FilePaths(); len(paths) > 0 {
			s.classify(false)
			s.paths = slices.Clone(paths)
			if r.notify != nil {
				r.notify(transfer.DropEvent{
					Paths:    slices.Clone(s.paths),
					Position: s.last,
				})
			}
			r.log.Debug("external drop", "paths", len(s.paths), "pos", s.last)
		}
	}
	r.sessions.finish(s, Dropped)
}

// Origin reports the session's classification. Untracked sessions are
// Unknown.
func (r *ContextReconciler) Origin(id uint64) Origin {
	if s := r.sessions.get(id); s != nil {
		return s.origin
	}
	return OriginUnknown
}

// State reports the session's lifecycle state. Untracked sessions are
// Idle.
func (r *ContextReconciler) State(id uint64) State {
	if s := r.sessions.get(id); s != nil {
		return s.state
	}
	return Idle
}
