// SPDX-License-Identifier: Unlicense OR MIT

package dragdrop

// Hooks is the capability interface the host implements per platform.
// The reconciler never calls platform FFI directly; classification and
// payload queries go through this interface.
type Hooks interface {
	// IsInternalDrag reports whether the drag in progress originated
	// inside the host process.
	IsInternalDrag() bool
	// InternalDragText returns the host's canonical plain-text
	// payload for an internal drag.
	InternalDragText() (string, bool)
	// InternalDragPayload returns the host's canonical structured
	// payload for an internal drag.
	InternalDragPayload() (string, bool)
	// StoreDropPaths hands external drop paths to the host for later
	// retrieval by its own scripting surface.
	StoreDropPaths(paths []string)
}

// Pasteboard is the engine's drag payload, writable by the override
// variant to correct same-process payload drift.
type Pasteboard interface {
	// SetString overwrites the pasteboard entry of the given type.
	SetString(typ, value string)
}

// Operation is the drag operation suggested back to the platform.
type Operation uint8

const (
	// OpNone rejects the drag at the current position.
	OpNone Operation = iota
	// OpCopy accepts the drag as a copy.
	OpCopy
)
