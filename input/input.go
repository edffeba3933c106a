// SPDX-License-Identifier: Unlicense OR MIT

// Package input translates host window messages into engine injection
// calls. The platform glue decodes each native message into a Msg with
// a closed Category; the Translator dispatches on the category and
// drives the engine's mouse, pointer, keyboard, IME and gesture
// injection surfaces.
package input

import (
	"time"

	"hostbridge/f32"
	"hostbridge/io/key"
	"hostbridge/io/pointer"
	"hostbridge/surface"
)

// Category classifies a host window message. The set is closed so the
// dispatch table is a total function over it.
type Category uint8

const (
	// Unknown messages are forwarded to default platform handling.
	Unknown Category = iota
	// MouseDown and MouseUp are plain button messages without rich
	// pointer data.
	MouseDown
	MouseUp
	// MouseMove is a plain mouse move.
	MouseMove
	// MouseWheel is a plain wheel message.
	MouseWheel
	// MouseLeave reports the one-shot leave notification.
	MouseLeave
	// NCMouseDown, NCMouseUp and NCMouseMove are the non-client-area
	// equivalents of the plain mouse messages.
	NCMouseDown
	NCMouseUp
	NCMouseMove
	// PointerDown through PointerCaptureChanged carry rich pointer
	// data retrievable through a Sampler.
	PointerDown
	PointerUp
	PointerUpdate
	PointerEnter
	PointerLeave
	PointerWheel
	PointerActivate
	PointerCaptureChanged
	// KeyDown and KeyUp cover plain and system key messages.
	KeyDown
	KeyUp
	// Char is a committed character message, including Unicode
	// character messages.
	Char
	// DeadChar is a dead-key prefix character.
	DeadChar
	// IMEStart, IMEUpdate and IMEEnd are the composition lifecycle
	// messages. Their order must be preserved end-to-end.
	IMEStart
	IMEUpdate
	IMEEnd
	// Gesture is a legacy gesture message, used when pointer messages
	// are not delivered by the platform.
	Gesture
	// CaptureChanged reports an external capture steal.
	CaptureChanged
	// DPIChanged reports a window scale factor change.
	DPIChanged
	// Activate and MouseActivate report window activation.
	Activate
	MouseActivate
	// FocusGained and FocusLost report host window focus changes.
	FocusGained
	FocusLost
	// CursorQuery asks which cursor to display.
	CursorQuery
)

// Msg is one decoded host window message. Only the fields relevant to
// the category are set.
type Msg struct {
	Category Category
	// PointerID identifies the contact for Pointer categories.
	PointerID uint32
	// Hint is the expected contact source for Pointer categories.
	Hint pointer.Source
	// Position is the message position in client-area device pixels.
	Position f32.Point
	// Buttons is the button a MouseDown or MouseUp refers to.
	Buttons pointer.Buttons
	// Scroll is the wheel delta for MouseWheel.
	Scroll f32.Point
	// Modifiers are the active keyboard modifiers.
	Modifiers key.Modifiers
	// Name and Code describe the key for KeyDown and KeyUp.
	Name key.Name
	Code uint32
	// Text carries the character for Char and DeadChar, and the
	// composition text for IMEUpdate and IMEEnd.
	Text string
	// Caret is the caret position within Text, in runes.
	Caret int
	// Scale is the new scale factor for DPIChanged.
	Scale float32
	// GestureKind, GestureDelta, GestureScale and GestureAngle carry
	// the decoded gesture payload.
	GestureKind  GestureKind
	GestureDelta f32.Point
	GestureScale float32
	GestureAngle float32
	// Time is the message timestamp.
	Time time.Duration
}

// Result is the outcome of translating one message.
type Result uint8

const (
	// Handled means the message was consumed; the host must not run
	// default platform handling.
	Handled Result = iota
	// Forwarded means the message should fall through to default
	// platform handling. Used for unknown categories and stale
	// pointer ids.
	Forwarded
)

// MouseEvent is a plain mouse injection without rich pointer
// metadata.
type MouseEvent struct {
	Kind      pointer.Kind
	Position  f32.Point
	Buttons   pointer.Buttons
	Scroll    f32.Point
	Modifiers key.Modifiers
	Time      time.Duration
}

// GestureKind is the recognized gesture class.
type GestureKind uint8

const (
	GestureBegin GestureKind = iota
	GestureEnd
	GesturePan
	GesturePinch
	GestureRotate
)

// GestureEvent is a pinch, pan or rotate gesture injection.
type GestureEvent struct {
	Kind     GestureKind
	Position f32.Point
	// Delta is the pan translation since the previous event.
	Delta f32.Point
	// Scale is the pinch scale ratio since the previous event.
	Scale float32
	// Angle is the rotation in degrees since the previous event.
	Angle float32
}

// Engine is the embedded engine's injection surface. Calls are
// fire-and-forget: no acknowledgment is awaited, and failures are
// absorbed by the translator.
type Engine interface {
	// AcceptSurface hands the engine the committed composition
	// surface it renders into.
	AcceptSurface(*surface.Surface) error
	InjectMouse(MouseEvent) error
	InjectPointer(pointer.Sample) error
	InjectKey(key.Event) error
	InjectText(key.EditEvent) error
	InjectIME(key.IMEEvent) error
	InjectGesture(GestureEvent) error
	// RequestFocus moves input focus to the engine surface.
	RequestFocus() error
	// Cursor reports the cursor shape for the content under the
	// pointer.
	Cursor() pointer.Cursor
	// NotifyScale informs the engine of a new scale factor.
	NotifyScale(float32) error
}

// Sampler produces a rich pointer sample for a platform pointer id.
// The boolean result is false when the id is stale, that is the
// contact ended before the query ran. A stale id is an expected race,
// not an error.
type Sampler interface {
	Sample(id uint32, hint pointer.Source) (pointer.Sample, bool)
}

func (k GestureKind) String() string {
	switch k {
	case GestureBegin:
		return "Begin"
	case GestureEnd:
		return "End"
	case GesturePan:
		return "Pan"
	case GesturePinch:
		return "Pinch"
	case GestureRotate:
		return "Rotate"
	default:
		panic("unknown GestureKind")
	}
}
