// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements the keyboard and IME composition events
// forwarded to the embedded engine.
package key

import (
	"strings"

	"hostbridge/io/event"
)

// An Event is generated when a key is pressed or released. For text
// input use EditEvent.
type Event struct {
	// Name of the key.
	Name Name
	// Code is the platform virtual-key code the name was derived
	// from, preserved for engine injection.
	Code uint32
	// Modifiers is the set of active modifiers when the key was pressed.
	Modifiers Modifiers
	// State is the state of the key when the event was fired.
	State State
}

// An EditEvent carries committed text input, such as a Unicode
// character message.
type EditEvent struct {
	Text string
}

// A FocusEvent is generated when the hosted surface gains or loses
// input focus.
type FocusEvent struct {
	Focus bool
}

// IMEState is the lifecycle phase of an IME composition.
type IMEState uint8

const (
	// IMEStart begins a composition.
	IMEStart IMEState = iota
	// IMEUpdate replaces the in-progress composition text.
	IMEUpdate
	// IMEEnd commits or cancels the composition.
	IMEEnd
)

// An IMEEvent is one step of an IME composition. The engine's
// composition state machine is order sensitive: events must be
// delivered in the start, update, end order they were produced.
type IMEEvent struct {
	State IMEState
	// Text is the provisional composition text for IMEUpdate, or the
	// committed text for IMEEnd.
	Text string
	// Caret is the caret position within Text, in runes.
	Caret int
}

// Range represents a range of text, such as a composing region.
// Start and End are in runes.
type Range struct {
	Start int
	End   int
}

// Modifiers
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key.
	ModAlt
	// ModSuper is the platform modifier key, the windows key on
	// Windows, the command key on macOS.
	ModSuper
)

// State is the state of a key during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a released key.
	Release
)

// Name is the identifier of a key.
type Name string

const (
	NameLeftArrow      Name = "←"
	NameRightArrow     Name = "→"
	NameUpArrow        Name = "↑"
	NameDownArrow      Name = "↓"
	NameReturn         Name = "⏎"
	NameEnter          Name = "⌤"
	NameEscape         Name = "⎋"
	NameHome           Name = "⇱"
	NameEnd            Name = "⇲"
	NameDeleteBackward Name = "⌫"
	NameDeleteForward  Name = "⌦"
	NamePageUp         Name = "⇞"
	NamePageDown       Name = "⇟"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
	NameCtrl           Name = "Ctrl"
	NameShift          Name = "Shift"
	NameAlt            Name = "Alt"
	NameSuper          Name = "Super"
	NameF1             Name = "F1"
	NameF2             Name = "F2"
	NameF3             Name = "F3"
	NameF4             Name = "F4"
	NameF5             Name = "F5"
	NameF6             Name = "F6"
	NameF7             Name = "F7"
	NameF8             Name = "F8"
	NameF9             Name = "F9"
	NameF10            Name = "F10"
	NameF11            Name = "F11"
	NameF12            Name = "F12"
)

// Contain reports whether m contains all modifiers in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, "ModCtrl")
	}
	if m.Contain(ModShift) {
		strs = append(strs, "ModShift")
	}
	if m.Contain(ModAlt) {
		strs = append(strs, "ModAlt")
	}
	if m.Contain(ModSuper) {
		strs = append(strs, "ModSuper")
	}
	return strings.Join(strs, "|")
}

func (s IMEState) String() string {
	switch s {
	case IMEStart:
		return "IMEStart"
	case IMEUpdate:
		return "IMEUpdate"
	case IMEEnd:
		return "IMEEnd"
	default:
		panic("unknown IMEState")
	}
}

var (
	_ event.Event = Event{}
	_ event.Event = EditEvent{}
	_ event.Event = FocusEvent{}
	_ event.Event = IMEEvent{}
)

func (Event) ImplementsEvent()      {}
func (EditEvent) ImplementsEvent()  {}
func (FocusEvent) ImplementsEvent() {}
func (IMEEvent) ImplementsEvent()   {}
