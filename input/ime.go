// SPDX-License-Identifier: Unlicense OR MIT

package input

import "hostbridge/io/key"

// IME composition handling. The engine's composition state machine is
// order sensitive: start, zero or more updates, end. Handle runs
// synchronously in message-pump order, so delivery order here is
// delivery order at the engine.

func (t *Translator) imeStart(m Msg) Result {
	t.composing = true
	t.syncCaret()
	t.absorb("ime", t.engine.InjectIME(key.IMEEvent{State: key.IMEStart}))
	return Handled
}

func (t *Translator) imeUpdate(m Msg) Result {
	if !t.composing {
		// Some IMEs skip the start message after a focus change.
		// Open the composition first so the engine never sees an
		// update outside one.
		t.composing = true
		t.absorb("ime", t.engine.InjectIME(key.IMEEvent{State: key.IMEStart}))
	}
	t.syncCaret()
	t.absorb("ime", t.engine.InjectIME(key.IMEEvent{
		State: key.IMEUpdate,
		Text:  m.Text,
		Caret: m.Caret,
	}))
	return Handled
}

func (t *Translator) imeEnd(m Msg) Result {
	if !t.composing {
		// The platform reports the commit and the end of composition
		// as separate messages. The commit already ended the
		// composition; swallow the trailing end.
		return Handled
	}
	t.composing = false
	t.absorb("ime", t.engine.InjectIME(key.IMEEvent{
		State: key.IMEEnd,
		Text:  m.Text,
		Caret: m.Caret,
	}))
	return Handled
}

// syncCaret keeps the candidate window at the current caret position.
// The caret is read at translation time, not at message delivery
// time, so a window move between messages cannot leave the candidate
// window stale.
func (t *Translator) syncCaret() {
	if t.syncCandidate != nil {
		t.syncCandidate(t.caret)
	}
}
