// SPDX-License-Identifier: Unlicense OR MIT

// Package transfer contains the events and payload types surfaced to
// the host during drag-and-drop reconciliation.
//
// The reconciler is observational: it never replaces the engine's own
// drop handling. A DropEvent reports what the engine is about to
// consume; payload types name the pasteboard entries the host may
// overwrite for same-process drags.
package transfer

import (
	"hostbridge/f32"
	"hostbridge/io/event"
)

// Pasteboard payload types.
const (
	// TypeText is the plain-text pasteboard entry consumed by native
	// text insertion.
	TypeText = "public.utf8-plain-text"
	// TypeStructured is the structured record entry consumed by
	// content-aware drop zones in the hosted page.
	TypeStructured = "application/x-hostbridge-record"
	// TypeFileList is the file list entry offered by external drags.
	TypeFileList = "text/uri-list"
)

// DropEvent is emitted to the host when an external drag delivers
// file paths to the hosted surface. Exactly one DropEvent is emitted
// per drop; the engine's native handling still proceeds afterwards.
type DropEvent struct {
	// Paths are the dropped file paths, in the order the platform
	// reported them.
	Paths []string
	// Position is the drop position in view coordinates.
	Position f32.Point
}

// ContentEvent is emitted for external drops that carry no file
// paths, such as text, HTML or URL drags, so the host's own content
// drop handling can take over.
type ContentEvent struct {
	Position f32.Point
}

var (
	_ event.Event = DropEvent{}
	_ event.Event = ContentEvent{}
)

func (DropEvent) ImplementsEvent()    {}
func (ContentEvent) ImplementsEvent() {}
