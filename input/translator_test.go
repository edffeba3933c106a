// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"hostbridge/f32"
	"hostbridge/io/key"
	"hostbridge/io/pointer"
	"hostbridge/surface"
)

// fakeEngine records every injection in arrival order.
type fakeEngine struct {
	calls     []string
	mouse     []MouseEvent
	samples   []pointer.Sample
	keys      []key.Event
	text      []key.EditEvent
	ime       []key.IMEEvent
	gestures  []GestureEvent
	cursor    pointer.Cursor
	focusReqs int
	scale     float32
	injectErr error
}

func (e *fakeEngine) AcceptSurface(*surface.Surface) error { return nil }

func (e *fakeEngine) InjectMouse(ev MouseEvent) error {
	e.calls = append(e.calls, "mouse")
	e.mouse = append(e.mouse, ev)
	return e.injectErr
}

func (e *fakeEngine) InjectPointer(s pointer.Sample) error {
	e.calls = append(e.calls, "pointer")
	e.samples = append(e.samples, s)
	return e.injectErr
}

func (e *fakeEngine) InjectKey(ev key.Event) error {
	e.calls = append(e.calls, "key")
	e.keys = append(e.keys, ev)
	return e.injectErr
}

func (e *fakeEngine) InjectText(ev key.EditEvent) error {
	e.calls = append(e.calls, "text")
	e.text = append(e.text, ev)
	return e.injectErr
}

func (e *fakeEngine) InjectIME(ev key.IMEEvent) error {
	e.calls = append(e.calls, "ime."+ev.State.String())
	e.ime = append(e.ime, ev)
	return e.injectErr
}

func (e *fakeEngine) InjectGesture(ev GestureEvent) error {
	e.calls = append(e.calls, "gesture")
	e.gestures = append(e.gestures, ev)
	return e.injectErr
}

func (e *fakeEngine) RequestFocus() error {
	e.calls = append(e.calls, "focus")
	e.focusReqs++
	return nil
}

func (e *fakeEngine) Cursor() pointer.Cursor { return e.cursor }

func (e *fakeEngine) NotifyScale(s float32) error {
	e.calls = append(e.calls, "scale")
	e.scale = s
	return nil
}

// fakeSampler serves canned samples; missing ids are stale.
type fakeSampler struct {
	samples map[uint32]pointer.Sample
}

func (f *fakeSampler) Sample(id uint32, hint pointer.Source) (pointer.Sample, bool) {
	s, ok := f.samples[id]
	return s, ok
}

func TestDispatchTableTotal(t *testing.T) {
	for c := MouseDown; c <= CursorQuery; c++ {
		assert.Contains(t, handlers, c, "category %d has no handler", c)
	}
	keys := maps.Keys(handlers)
	slices.Sort(keys)
	assert.Len(t, keys, int(CursorQuery), "dispatch table has entries outside the closed category set")
}

func TestUnknownForwarded(t *testing.T) {
	e := &fakeEngine{}
	tr := New(e, &fakeSampler{})
	assert.Equal(t, Forwarded, tr.Handle(Msg{Category: Unknown}))
	assert.Empty(t, e.calls)
}

func TestMouseButtons(t *testing.T) {
	e := &fakeEngine{}
	tr := New(e, &fakeSampler{})

	tr.Handle(Msg{Category: MouseDown, Buttons: pointer.ButtonPrimary, Position: f32.Pt(10, 20)})
	tr.Handle(Msg{Category: MouseDown, Buttons: pointer.ButtonSecondary, Position: f32.Pt(10, 20)})
	tr.Handle(Msg{Category: MouseUp, Buttons: pointer.ButtonPrimary, Position: f32.Pt(10, 20)})

	require.Len(t, e.mouse, 3)
	assert.Equal(t, pointer.ButtonPrimary, e.mouse[0].Buttons)
	assert.Equal(t, pointer.ButtonPrimary|pointer.ButtonSecondary, e.mouse[1].Buttons)
	assert.Equal(t, pointer.ButtonSecondary, e.mouse[2].Buttons)
	assert.Equal(t, pointer.ButtonSecondary, tr.Buttons())
}

func TestNCMouseSameAsClient(t *testing.T) {
	e := &fakeEngine{}
	tr := New(e, &fakeSampler{})

	tr.Handle(Msg{Category: NCMouseDown, Buttons: pointer.ButtonPrimary, Position: f32.Pt(3, 4)})
	require.Len(t, e.mouse, 1)
	assert.Equal(t, pointer.Press, e.mouse[0].Kind)
	assert.Equal(t, pointer.ButtonPrimary, tr.Buttons())
}

func TestCaptureChangedResetsButtons(t *testing.T) {
	e := &fakeEngine{}
	tr := New(e, &fakeSampler{})

	tr.Handle(Msg{Category: MouseDown, Buttons: pointer.ButtonPrimary})
	tr.Handle(Msg{Category: MouseDown, Buttons: pointer.ButtonTertiary})
	tr.Handle(Msg{Category: CaptureChanged})
	assert.Equal(t, pointer.Buttons(0), tr.Buttons())

	// A later move never reports stale "down" buttons.
	tr.Handle(Msg{Category: MouseMove, Position: f32.Pt(5, 5)})
	last := e.mouse[len(e.mouse)-1]
	assert.Equal(t, pointer.Move, last.Kind)
	assert.Equal(t, pointer.Buttons(0), last.Buttons)

	cancel := e.mouse[len(e.mouse)-2]
	assert.Equal(t, pointer.Cancel, cancel.Kind)
}

func TestStalePointerForwarded(t *testing.T) {
	e := &fakeEngine{}
	tr := New(e, &fakeSampler{})

	res := tr.Handle(Msg{Category: PointerDown, PointerID: 7, Hint: pointer.Touch})
	assert.Equal(t, Forwarded, res)
	assert.Empty(t, e.samples, "a stale pointer must not be injected with default metadata")
}

func TestPointerSampleKinds(t *testing.T) {
	for _, tc := range []struct {
		category Category
		kind     pointer.Kind
	}{
		{PointerDown, pointer.Press},
		{PointerUp, pointer.Release},
		{PointerUpdate, pointer.Move},
		{PointerEnter, pointer.Enter},
		{PointerLeave, pointer.Leave},
		{PointerWheel, pointer.Scroll},
	} {
		t.Run(tc.kind.String(), func(t *testing.T) {
			e := &fakeEngine{}
			s := &fakeSampler{samples: map[uint32]pointer.Sample{
				3: {ID: 3, Source: pointer.Pen, Position: f32.Pt(100, 60), Pressure: 0.5},
			}}
			tr := New(e, s)

			res := tr.Handle(Msg{Category: tc.category, PointerID: 3, Hint: pointer.Pen, Scroll: f32.Pt(0, -120)})
			require.Equal(t, Handled, res)
			require.Len(t, e.samples, 1)
			got := e.samples[0]
			assert.Equal(t, tc.kind, got.Kind)
			assert.Equal(t, float32(0.5), got.Pressure)
			if tc.kind == pointer.Scroll {
				assert.Equal(t, f32.Pt(0, -120), got.Scroll)
			}
		})
	}
}

func TestIMEOrdering(t *testing.T) {
	e := &fakeEngine{}
	tr := New(e, &fakeSampler{})

	// Composition messages interleaved with unrelated keyboard
	// traffic keep their relative order.
	tr.Handle(Msg{Category: IMEStart})
	tr.Handle(Msg{Category: KeyDown, Name: key.NameShift})
	tr.Handle(Msg{Category: IMEUpdate, Text: "に", Caret: 1})
	tr.Handle(Msg{Category: IMEUpdate, Text: "にほ", Caret: 2})
	tr.Handle(Msg{Category: KeyUp, Name: key.NameShift})
	tr.Handle(Msg{Category: IMEEnd, Text: "日本", Caret: 2})

	var imeCalls []string
	for _, c := range e.calls {
		if len(c) > 3 && c[:3] == "ime" {
			imeCalls = append(imeCalls, c)
		}
	}
	assert.Equal(t, []string{"ime.IMEStart", "ime.IMEUpdate", "ime.IMEUpdate", "ime.IMEEnd"}, imeCalls)
	require.Len(t, e.ime, 4)
	assert.Equal(t, "にほ", e.ime[2].Text)
	assert.Equal(t, "日本", e.ime[3].Text)
}

func TestIMEUpdateWithoutStart(t *testing.T) {
	e := &fakeEngine{}
	tr := New(e, &fakeSampler{})

	tr.Handle(Msg{Category: IMEUpdate, Text: "a"})
	require.Len(t, e.ime, 2)
	assert.Equal(t, key.IMEStart, e.ime[0].State)
	assert.Equal(t, key.IMEUpdate, e.ime[1].State)
}

func TestIMEDuplicateEndSwallowed(t *testing.T) {
	e := &fakeEngine{}
	tr := New(e, &fakeSampler{})

	tr.Handle(Msg{Category: IMEStart})
	tr.Handle(Msg{Category: IMEEnd, Text: "日本", Caret: 2})
	tr.Handle(Msg{Category: IMEEnd})

	require.Len(t, e.ime, 2)
	assert.Equal(t, key.IMEEnd, e.ime[1].State)
	assert.Equal(t, "日本", e.ime[1].Text)
}

func TestIMECandidateSync(t *testing.T) {
	e := &fakeEngine{}
	var synced []f32.Point
	tr := New(e, &fakeSampler{}, WithCandidateSync(func(p f32.Point) {
		synced = append(synced, p)
	}))

	tr.SetCaret(f32.Pt(40, 300))
	tr.Handle(Msg{Category: IMEStart})
	tr.SetCaret(f32.Pt(48, 300))
	tr.Handle(Msg{Category: IMEUpdate, Text: "x"})

	assert.Equal(t, []f32.Point{{X: 40, Y: 300}, {X: 48, Y: 300}}, synced)
}

func TestDPIChangeBeforePointer(t *testing.T) {
	e := &fakeEngine{}
	var order []string
	tr := New(e, &fakeSampler{}, WithScaleUpdater(func(s float32) error {
		order = append(order, "surface")
		return nil
	}))

	tr.Handle(Msg{Category: DPIChanged, Scale: 2})
	order = append(order, "notify-done")

	require.Equal(t, []string{"surface", "notify-done"}, order)
	assert.Equal(t, float32(2), e.scale)
	assert.Equal(t, float32(2), tr.Scale())

	// The very next translation uses the new factor.
	tr.Handle(Msg{Category: MouseMove, Position: f32.Pt(100, 60)})
	last := e.mouse[len(e.mouse)-1]
	assert.Equal(t, f32.Pt(50, 30), last.Position)
}

func TestMouseLeaveTracking(t *testing.T) {
	e := &fakeEngine{}
	armed := 0
	tr := New(e, &fakeSampler{}, WithLeaveTracker(func() { armed++ }))

	tr.Handle(Msg{Category: MouseMove})
	tr.Handle(Msg{Category: MouseMove})
	assert.Equal(t, 1, armed, "leave tracking is armed once per enter")

	tr.Handle(Msg{Category: MouseLeave})
	tr.Handle(Msg{Category: MouseMove})
	assert.Equal(t, 2, armed, "leave tracking is re-armed after re-entry")
}

func TestKeyboardRefocus(t *testing.T) {
	e := &fakeEngine{}
	tr := New(e, &fakeSampler{})

	tr.Handle(Msg{Category: KeyDown, Name: "A", Code: 0x41})
	assert.Equal(t, 1, e.focusReqs)
	tr.Handle(Msg{Category: KeyDown, Name: "B", Code: 0x42})
	assert.Equal(t, 1, e.focusReqs, "focus is not re-requested while held")

	tr.Handle(Msg{Category: FocusLost})
	tr.Handle(Msg{Category: Char, Text: "b"})
	assert.Equal(t, 2, e.focusReqs, "focus is re-requested after loss")

	require.Len(t, e.keys, 2)
	require.Len(t, e.text, 1)
	assert.Equal(t, "b", e.text[0].Text)
}

func TestDeadKey(t *testing.T) {
	e := &fakeEngine{}
	tr := New(e, &fakeSampler{})

	tr.Handle(Msg{Category: DeadChar, Text: "^", Code: 0xDD})
	tr.Handle(Msg{Category: Char, Text: "ê"})

	require.Len(t, e.keys, 1)
	assert.Equal(t, key.Name("^"), e.keys[0].Name)
	require.Len(t, e.text, 1)
	assert.Equal(t, "ê", e.text[0].Text, "dead keys never commit text themselves")
}

func TestGesture(t *testing.T) {
	e := &fakeEngine{}
	tr := New(e, &fakeSampler{})

	tr.Handle(Msg{Category: Gesture, GestureKind: GesturePinch, GestureScale: 1.5, Position: f32.Pt(10, 10)})
	require.Len(t, e.gestures, 1)
	assert.Equal(t, GesturePinch, e.gestures[0].Kind)
	assert.Equal(t, float32(1.5), e.gestures[0].Scale)
}

func TestCursorQuery(t *testing.T) {
	e := &fakeEngine{cursor: pointer.CursorText}
	var applied []pointer.Cursor
	tr := New(e, &fakeSampler{}, WithCursorApplier(func(c pointer.Cursor) {
		applied = append(applied, c)
	}))

	tr.Handle(Msg{Category: CursorQuery})
	assert.Equal(t, []pointer.Cursor{pointer.CursorText}, applied)
}

func TestInjectionFailureAbsorbed(t *testing.T) {
	e := &fakeEngine{injectErr: assert.AnError}
	tr := New(e, &fakeSampler{})

	res := tr.Handle(Msg{Category: MouseDown, Buttons: pointer.ButtonPrimary})
	assert.Equal(t, Handled, res, "injection failures never propagate to the host")
	assert.Equal(t, pointer.ButtonPrimary, tr.Buttons(), "state is not rolled back")
}
