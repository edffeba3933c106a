// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"log/slog"

	"hostbridge/f32"
	"hostbridge/internal/logging"
	"hostbridge/io/key"
	"hostbridge/io/pointer"
)

// Translator converts decoded host window messages into engine
// injection calls. All state is per-translator, so multiple embedded
// views never share button or focus state. A Translator is confined
// to the thread running the host window's message pump.
type Translator struct {
	engine  Engine
	sampler Sampler

	// buttons tracks pressed mouse buttons across messages. It is
	// reset when an external capture steal is reported.
	buttons pointer.Buttons
	// focused tracks whether the engine surface holds input focus.
	focused bool
	// entered tracks whether the mouse is inside the window.
	// Platform leave tracking is one-shot and is re-armed on every
	// enter.
	entered bool
	// composing tracks an in-progress IME composition.
	composing bool
	// caret is the position of the text-input caret in view
	// coordinates, used to place the IME candidate window.
	caret f32.Point
	// scale is the device-pixel-per-view-pixel factor current at
	// translation time.
	scale float32

	setScale      func(float32) error
	armLeave      func()
	applyCursor   func(pointer.Cursor)
	syncCandidate func(f32.Point)
	log           *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithScaleUpdater sets the callback that applies a new scale factor
// to the composition surface. It runs before the scale takes effect
// for pointer translation.
func WithScaleUpdater(f func(float32) error) Option {
	return func(t *Translator) { t.setScale = f }
}

// WithLeaveTracker sets the callback that (re-)arms the platform's
// one-shot mouse-leave notification.
func WithLeaveTracker(f func()) Option {
	return func(t *Translator) { t.armLeave = f }
}

// WithCursorApplier sets the callback that applies an engine-reported
// cursor shape to the host window.
func WithCursorApplier(f func(pointer.Cursor)) Option {
	return func(t *Translator) { t.applyCursor = f }
}

// WithCandidateSync sets the callback that moves the IME candidate
// window to the caret position.
func WithCandidateSync(f func(f32.Point)) Option {
	return func(t *Translator) { t.syncCandidate = f }
}

// WithScale sets the initial scale factor.
func WithScale(scale float32) Option {
	return func(t *Translator) { t.scale = scale }
}

// WithLogger sets the logger for absorbed injection failures.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) { t.log = l }
}

// New returns a Translator injecting into engine, with rich pointer
// data supplied by sampler.
func New(engine Engine, sampler Sampler, options ...Option) *Translator {
	t := &Translator{
		engine:  engine,
		sampler: sampler,
		scale:   1,
		log:     logging.Logger(),
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

type handler func(*Translator, Msg) Result

// handlers is the total dispatch table over Category. Non-client
// mouse categories share the client-area handlers.
var handlers = map[Category]handler{
	MouseDown:             (*Translator).mouseDown,
	MouseUp:               (*Translator).mouseUp,
	MouseMove:             (*Translator).mouseMove,
	MouseWheel:            (*Translator).mouseWheel,
	MouseLeave:            (*Translator).mouseLeave,
	NCMouseDown:           (*Translator).mouseDown,
	NCMouseUp:             (*Translator).mouseUp,
	NCMouseMove:           (*Translator).mouseMove,
	PointerDown:           (*Translator).pointerDown,
	PointerUp:             (*Translator).pointerUp,
	PointerUpdate:         (*Translator).pointerUpdate,
	PointerEnter:          (*Translator).pointerEnter,
	PointerLeave:          (*Translator).pointerLeave,
	PointerWheel:          (*Translator).pointerWheel,
	PointerActivate:       (*Translator).activate,
	PointerCaptureChanged: (*Translator).captureChanged,
	KeyDown:               (*Translator).keyDown,
	KeyUp:                 (*Translator).keyUp,
	Char:                  (*Translator).char,
	DeadChar:              (*Translator).deadChar,
	IMEStart:              (*Translator).imeStart,
	IMEUpdate:             (*Translator).imeUpdate,
	IMEEnd:                (*Translator).imeEnd,
	Gesture:               (*Translator).gesture,
	CaptureChanged:        (*Translator).captureChanged,
	DPIChanged:            (*Translator).dpiChanged,
	Activate:              (*Translator).activate,
	MouseActivate:         (*Translator).activate,
	FocusGained:           (*Translator).activate,
	FocusLost:             (*Translator).focusLost,
	CursorQuery:           (*Translator).cursorQuery,
}

// Handle translates one message. It is synchronous: by the time it
// returns, any resulting injection has been issued. Injection
// failures are absorbed; only the Result is host-visible.
func (t *Translator) Handle(m Msg) Result {
	h, ok := handlers[m.Category]
	if !ok {
		return Forwarded
	}
	return h(t, m)
}

// Buttons returns the mouse buttons currently tracked as pressed.
func (t *Translator) Buttons() pointer.Buttons {
	return t.buttons
}

// Scale returns the scale factor current at translation time.
func (t *Translator) Scale() float32 {
	return t.scale
}

// SetCaret updates the position of the text-input caret, in view
// coordinates. The IME candidate window follows it on the next
// composition message.
func (t *Translator) SetCaret(p f32.Point) {
	t.caret = p
}

func (t *Translator) toView(p f32.Point) f32.Point {
	if t.scale == 1 || t.scale == 0 {
		return p
	}
	return p.Div(t.scale)
}

func (t *Translator) absorb(what string, err error) {
	if err != nil {
		t.log.Debug("injection failed", "call", what, "err", err)
	}
}

func (t *Translator) mouseDown(m Msg) Result {
	t.buttons |= m.Buttons
	t.absorb("mouse", t.engine.InjectMouse(MouseEvent{
		Kind:      pointer.Press,
		Position:  t.toView(m.Position),
		Buttons:   t.buttons,
		Modifiers: m.Modifiers,
		Time:      m.Time,
	}))
	return Handled
}

func (t *Translator) mouseUp(m Msg) Result {
	t.buttons &^= m.Buttons
	t.absorb("mouse", t.engine.InjectMouse(MouseEvent{
		Kind:      pointer.Release,
		Position:  t.toView(m.Position),
		Buttons:   t.buttons,
		Modifiers: m.Modifiers,
		Time:      m.Time,
	}))
	return Handled
}

func (t *Translator) mouseMove(m Msg) Result {
	if !t.entered {
		t.entered = true
		if t.armLeave != nil {
			t.armLeave()
		}
	}
	t.absorb("mouse", t.engine.InjectMouse(MouseEvent{
		Kind:      pointer.Move,
		Position:  t.toView(m.Position),
		Buttons:   t.buttons,
		Modifiers: m.Modifiers,
		Time:      m.Time,
	}))
	return Handled
}

func (t *Translator) mouseWheel(m Msg) Result {
	t.absorb("mouse", t.engine.InjectMouse(MouseEvent{
		Kind:      pointer.Scroll,
		Position:  t.toView(m.Position),
		Buttons:   t.buttons,
		Scroll:    m.Scroll,
		Modifiers: m.Modifiers,
		Time:      m.Time,
	}))
	return Handled
}

func (t *Translator) mouseLeave(m Msg) Result {
	t.entered = false
	t.absorb("mouse", t.engine.InjectMouse(MouseEvent{
		Kind:     pointer.Leave,
		Position: t.toView(m.Position),
		Buttons:  t.buttons,
		Time:     m.Time,
	}))
	return Handled
}

func (t *Translator) pointerDown(m Msg) Result {
	return t.pointerMsg(m, pointer.Press)
}

func (t *Translator) pointerUp(m Msg) Result {
	return t.pointerMsg(m, pointer.Release)
}

func (t *Translator) pointerUpdate(m Msg) Result {
	return t.pointerMsg(m, pointer.Move)
}

func (t *Translator) pointerEnter(m Msg) Result {
	return t.pointerMsg(m, pointer.Enter)
}

func (t *Translator) pointerLeave(m Msg) Result {
	return t.pointerMsg(m, pointer.Leave)
}

func (t *Translator) pointerWheel(m Msg) Result {
	return t.pointerMsg(m, pointer.Scroll)
}

func (t *Translator) pointerMsg(m Msg, kind pointer.Kind) Result {
	s, ok := t.sampler.Sample(m.PointerID, m.Hint)
	if !ok {
		// The contact ended before the query ran. Let default
		// platform handling have the message.
		return Forwarded
	}
	s.Kind = kind
	s.Position = t.toView(s.Position)
	if kind == pointer.Scroll {
		s.Scroll = m.Scroll
	}
	t.absorb("pointer", t.engine.InjectPointer(s))
	return Handled
}

func (t *Translator) keyDown(m Msg) Result {
	t.ensureFocus()
	t.absorb("key", t.engine.InjectKey(key.Event{
		Name:      m.Name,
		Code:      m.Code,
		Modifiers: m.Modifiers,
		State:     key.Press,
	}))
	return Handled
}

func (t *Translator) keyUp(m Msg) Result {
	t.ensureFocus()
	t.absorb("key", t.engine.InjectKey(key.Event{
		Name:      m.Name,
		Code:      m.Code,
		Modifiers: m.Modifiers,
		State:     key.Release,
	}))
	return Handled
}

func (t *Translator) char(m Msg) Result {
	t.ensureFocus()
	t.absorb("text", t.engine.InjectText(key.EditEvent{Text: m.Text}))
	return Handled
}

func (t *Translator) deadChar(m Msg) Result {
	// A dead key is a composition prefix; the committed character
	// arrives in a later Char message. Deliver it through the key
	// surface so the engine sees the keystroke without inserting
	// text.
	t.ensureFocus()
	t.absorb("key", t.engine.InjectKey(key.Event{
		Name:      key.Name(m.Text),
		Code:      m.Code,
		Modifiers: m.Modifiers,
		State:     key.Press,
	}))
	return Handled
}

func (t *Translator) gesture(m Msg) Result {
	t.absorb("gesture", t.engine.InjectGesture(GestureEvent{
		Kind:     m.GestureKind,
		Position: t.toView(m.Position),
		Delta:    m.GestureDelta,
		Scale:    m.GestureScale,
		Angle:    m.GestureAngle,
	}))
	return Handled
}

func (t *Translator) captureChanged(m Msg) Result {
	// An external capture steal means button-up messages will never
	// arrive. Reset every tracked button so later moves do not
	// report stale "down" state.
	t.buttons = 0
	t.absorb("mouse", t.engine.InjectMouse(MouseEvent{
		Kind: pointer.Cancel,
		Time: m.Time,
	}))
	return Handled
}

func (t *Translator) dpiChanged(m Msg) Result {
	if t.setScale != nil {
		if err := t.setScale(m.Scale); err != nil {
			t.log.Warn("surface scale update failed", "scale", m.Scale, "err", err)
		}
	}
	t.scale = m.Scale
	t.absorb("scale", t.engine.NotifyScale(m.Scale))
	return Handled
}

func (t *Translator) activate(m Msg) Result {
	t.ensureFocus()
	return Handled
}

func (t *Translator) focusLost(m Msg) Result {
	t.focused = false
	return Handled
}

func (t *Translator) cursorQuery(m Msg) Result {
	c := t.engine.Cursor()
	if t.applyCursor != nil {
		t.applyCursor(c)
	}
	return Handled
}

func (t *Translator) ensureFocus() {
	if t.focused {
		return
	}
	if err := t.engine.RequestFocus(); err != nil {
		t.absorb("focus", err)
		return
	}
	t.focused = true
}
