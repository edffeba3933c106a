// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements the pointer contact model shared by the
// input translator and the platform extractors.
package pointer

import (
	"strings"
	"time"

	"hostbridge/f32"
	"hostbridge/io/event"
)

// Sample is the state of one pointer contact at one instant. A Sample
// is produced per input message and consumed immediately by the
// translator; it is never persisted.
type Sample struct {
	// ID identifies the contact. It is unique among active contacts.
	ID uint32
	// Source is the device that produced the contact.
	Source Source
	// Kind is the action the contact performed.
	Kind Kind
	// Position is the contact position in device pixels.
	Position f32.Point
	// Pressure is the normalized contact pressure in [0, 1].
	// It is zero for mouse sources.
	Pressure float32
	// Contact is the touch footprint in device pixels.
	// It is only set for touch sources.
	Contact f32.Rectangle
	// TiltX and TiltY are the pen tilt angles in degrees, with 0
	// meaning perpendicular to the digitizer surface. Pen only.
	TiltX, TiltY int32
	// Rotation is the pen barrel rotation in degrees. Pen only.
	Rotation uint32
	// Buttons are the buttons pressed during the sample.
	Buttons Buttons
	// Scroll is the scroll delta for Scroll samples.
	Scroll f32.Point
	// Time is when the sample was taken, relative to an undefined base.
	Time time.Duration
}

// Kind of a pointer action.
type Kind uint

// Source of a pointer contact.
type Source uint8

// Buttons is a set of pointer buttons.
type Buttons uint8

// Cursor denotes a pre-defined cursor shape, reported by the embedded
// engine for the content under the pointer.
type Cursor byte

const (
	// A Cancel action is generated when the contact is interrupted
	// by the system, for example by an external capture steal.
	Cancel Kind = 1 << iota
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
	// Pointer enters the hosted surface.
	Enter
	// Pointer leaves the hosted surface.
	Leave
	// Scroll of a pointer.
	Scroll
)

const (
	// Mouse generated contact.
	Mouse Source = iota
	// Touch generated contact.
	Touch
	// Pen generated contact.
	Pen
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button
	// for a right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
	// ButtonQuaternary is the first extended button.
	ButtonQuaternary
	// ButtonQuinary is the second extended button.
	ButtonQuinary
)

const (
	// CursorDefault is the default cursor.
	CursorDefault Cursor = iota
	// CursorNone hides the cursor.
	CursorNone
	// CursorText is for selecting and inserting text.
	CursorText
	// CursorPointer is for a link.
	CursorPointer
	// CursorCrosshair is for a precise location.
	CursorCrosshair
	// CursorColResize is for vertical resize.
	CursorColResize
	// CursorRowResize is for horizontal resize.
	CursorRowResize
	// CursorGrab is for content that can be dragged.
	CursorGrab
	// CursorGrabbing is for content that is being dragged.
	CursorGrabbing
	// CursorNotAllowed is shown when the requested action cannot be
	// carried out.
	CursorNotAllowed
	// CursorWait is shown when the content is busy.
	CursorWait
	// CursorProgress is shown when the content is busy but still
	// interactive.
	CursorProgress
)

func (t Kind) String() string {
	if t == Cancel {
		return "Cancel"
	}
	var buf strings.Builder
	for tt := Kind(1); tt > 0; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Cancel:
		return "Cancel"
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Enter:
		return "Enter"
	case Leave:
		return "Leave"
	case Scroll:
		return "Scroll"
	default:
		panic("unknown Kind")
	}
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	case Pen:
		return "Pen"
	default:
		panic("unknown source")
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	if b.Contain(ButtonQuaternary) {
		strs = append(strs, "ButtonQuaternary")
	}
	if b.Contain(ButtonQuinary) {
		strs = append(strs, "ButtonQuinary")
	}
	return strings.Join(strs, "|")
}

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "Default"
	case CursorNone:
		return "None"
	case CursorText:
		return "Text"
	case CursorPointer:
		return "Pointer"
	case CursorCrosshair:
		return "Crosshair"
	case CursorColResize:
		return "ColResize"
	case CursorRowResize:
		return "RowResize"
	case CursorGrab:
		return "Grab"
	case CursorGrabbing:
		return "Grabbing"
	case CursorNotAllowed:
		return "NotAllowed"
	case CursorWait:
		return "Wait"
	case CursorProgress:
		return "Progress"
	default:
		panic("unknown Cursor")
	}
}

var _ event.Event = Sample{}

func (Sample) ImplementsEvent() {}
