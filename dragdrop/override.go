// SPDX-License-Identifier: Unlicense OR MIT

package dragdrop

import (
	"log/slog"

	"golang.org/x/exp/slices"

	"hostbridge/f32"
	"hostbridge/internal/logging"
	"hostbridge/io/transfer"
)

// OverrideReconciler is the drag-drop variant for engines that invoke
// a host override point before performing their native drop. It
// classifies through the host Hooks, stores external paths for later
// query and corrects the pasteboard for same-process drags. Native
// handling is always invoked after the override returns.
type OverrideReconciler struct {
	sessions sessions
	hooks    Hooks
	notify   func(transfer.ContentEvent)
	log      *slog.Logger
}

// NewOverrideReconciler returns a reconciler using hooks for
// classification and payload queries. notify receives content-only
// external drops (no file paths) and may be nil.
func NewOverrideReconciler(hooks Hooks, notify func(transfer.ContentEvent)) *OverrideReconciler {
	return &OverrideReconciler{
		sessions: newSessions(),
		hooks:    hooks,
		notify:   notify,
		log:      logging.Logger(),
	}
}

// Enter starts tracking a session and accepts the drag.
func (r *OverrideReconciler) Enter(id uint64, pos f32.Point) Operation {
	r.sessions.enter(id, pos)
	return OpCopy
}

// Update records drag motion over the surface.
func (r *OverrideReconciler) Update(id uint64, pos f32.Point) Operation {
	s := r.sessions.enter(id, pos)
	s.state = Hovering
	return OpCopy
}

// Drop is the override point the engine calls before its native drop
// handling. The return value is always true: the reconciler enriches
// or observes the drop, it never reserves it.
func (r *OverrideReconciler) Drop(id uint64, pb Pasteboard, paths []string, pos f32.Point) bool {
	s := r.sessions.enter(id, pos)
	if s.origin == OriginUnknown {
		s.classify(r.hooks.IsInternalDrag())
	}
	internal := s.origin == OriginInternal

	switch {
	case internal:
		// Same-process drags carry a stale or incomplete engine
		// pasteboard snapshot. Overwrite it with the host's
		// canonical payloads so native insertion and content drop
		// zones both see current data.
		if pb != nil {
			if text, ok := r.hooks.InternalDragText(); ok {
				pb.SetString(transfer.TypeText, text)
			}
			if payload, ok := r.hooks.InternalDragPayload(); ok {
				pb.SetString(transfer.TypeStructured, payload)
			}
		}
	case len(paths) > 0:
		// External file drop: hand the paths to the host for later
		// query before native handling runs, so they are stored by
		// the time native insertion completes. The host listener is
		// not called; native handling fires the page's own drop
		// events and a notification here would double-process.
		s.paths = slices.Clone(paths)
		r.hooks.StoreDropPaths(slices.Clone(paths))
		r.log.Debug("external drop stored", "paths", len(paths), "pos", pos)
	default:
		// External drop without paths (text, HTML, URL). Notify the
		// host so its content drop handling can take over.
		if r.notify != nil {
			r.notify(transfer.ContentEvent{Position: pos})
		}
	}

	r.sessions.finish(s, Dropped)
	return true
}

// Leave cancels a session that ends without a drop.
func (r *OverrideReconciler) Leave(id uint64) {
	if s := r.sessions.get(id); s != nil {
		r.sessions.finish(s, Cancelled)
	}
}

// Classify resolves and reports the session's origin, querying the
// host predicate on first use. The resolved classification is
// immutable for the rest of the session.
func (r *OverrideReconciler) Classify(id uint64) Origin {
	s := r.sessions.get(id)
	if s == nil {
		return OriginUnknown
	}
	if s.origin == OriginUnknown {
		s.classify(r.hooks.IsInternalDrag())
	}
	return s.origin
}

// Origin reports the session's classification. Untracked sessions are
// Unknown.
func (r *OverrideReconciler) Origin(id uint64) Origin {
	if s := r.sessions.get(id); s != nil {
		return s.origin
	}
	return OriginUnknown
}

// Paths returns a copy of the file paths recorded for the session.
func (r *OverrideReconciler) Paths(id uint64) []string {
	if s := r.sessions.get(id); s != nil {
		return slices.Clone(s.paths)
	}
	return nil
}
