// SPDX-License-Identifier: Unlicense OR MIT

package dragdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostbridge/f32"
	"hostbridge/io/transfer"
)

type fakeContext struct {
	source bool
	paths  []string
}

func (c *fakeContext) SourceWidget() bool { return c.source }
func (c *fakeContext) FilePaths() []string {
	return c.paths
}

type fakeHooks struct {
	internal      bool
	internalCalls int
	text          string
	hasText       bool
	payload       string
	hasPayload    bool
	stored        [][]string
}

func (h *fakeHooks) IsInternalDrag() bool {
	h.internalCalls++
	return h.internal
}

func (h *fakeHooks) InternalDragText() (string, bool) {
	return h.text, h.hasText
}

func (h *fakeHooks) InternalDragPayload() (string, bool) {
	return h.payload, h.hasPayload
}

func (h *fakeHooks) StoreDropPaths(paths []string) {
	h.stored = append(h.stored, paths)
}

type fakePasteboard struct {
	entries map[string]string
}

func newFakePasteboard() *fakePasteboard {
	return &fakePasteboard{entries: map[string]string{}}
}

func (p *fakePasteboard) SetString(typ, value string) {
	p.entries[typ] = value
}

func TestContextExternalFileDrop(t *testing.T) {
	var events []transfer.DropEvent
	r := NewContextReconciler(func(e transfer.DropEvent) {
		events = append(events, e)
	})
	ctx := &fakeContext{paths: []string{"/a/b.txt", "/c/d.png"}}

	r.Enter(1, f32.Pt(10, 10))
	r.Motion(1, ctx, f32.Pt(100, 70))
	r.Drop(1, f32.Pt(120, 80))
	r.Leave(1, ctx)

	require.Len(t, events, 1, "exactly one drop notification per drop")
	assert.Equal(t, []string{"/a/b.txt", "/c/d.png"}, events[0].Paths)
	assert.Equal(t, f32.Pt(120, 80), events[0].Position)
	assert.Equal(t, Idle, r.State(1), "terminal states reset session tracking")
}

func TestContextInternalDragNoNotification(t *testing.T) {
	var events []transfer.DropEvent
	r := NewContextReconciler(func(e transfer.DropEvent) {
		events = append(events, e)
	})
	ctx := &fakeContext{source: true, paths: []string{"/a/b.txt"}}

	r.Enter(1, f32.Pt(0, 0))
	r.Motion(1, ctx, f32.Pt(5, 5))
	assert.Equal(t, OriginInternal, r.Origin(1))

	// Classification is immutable: later motion without a source
	// widget does not flip it.
	r.Motion(1, &fakeContext{}, f32.Pt(6, 6))
	assert.Equal(t, OriginInternal, r.Origin(1))

	r.Drop(1, f32.Pt(6, 6))
	r.Leave(1, ctx)
	assert.Empty(t, events, "internal drags are left to native handling")
}

func TestContextLeaveWithoutDrop(t *testing.T) {
	var events []transfer.DropEvent
	r := NewContextReconciler(func(e transfer.DropEvent) {
		events = append(events, e)
	})
	ctx := &fakeContext{paths: []string{"/a/b.txt"}}

	r.Enter(1, f32.Pt(0, 0))
	r.Motion(1, ctx, f32.Pt(5, 5))
	r.Leave(1, ctx)

	assert.Empty(t, events, "leave without drop cancels the session")
	assert.Equal(t, Idle, r.State(1))
}

func TestContextZeroPaths(t *testing.T) {
	var events []transfer.DropEvent
	r := NewContextReconciler(func(e transfer.DropEvent) {
		events = append(events, e)
	})
	ctx := &fakeContext{}

	r.Enter(1, f32.Pt(0, 0))
	r.Motion(1, ctx, f32.Pt(5, 5))
	r.Drop(1, f32.Pt(5, 5))
	r.Leave(1, ctx)

	assert.Empty(t, events, "no notification without file paths")
}

func TestOverrideExternalPaths(t *testing.T) {
	hooks := &fakeHooks{}
	r := NewOverrideReconciler(hooks, nil)
	pb := newFakePasteboard()

	r.Enter(1, f32.Pt(10, 10))
	r.Update(1, f32.Pt(50, 50))
	proceed := r.Drop(1, pb, []string{"/tmp/x.md"}, f32.Pt(60, 60))

	assert.True(t, proceed, "native handling always proceeds")
	require.Len(t, hooks.stored, 1)
	assert.Equal(t, []string{"/tmp/x.md"}, hooks.stored[0])
	assert.Empty(t, pb.entries, "external drops leave the pasteboard alone")
}

func TestOverrideInternalPayloadCorrection(t *testing.T) {
	hooks := &fakeHooks{
		internal:   true,
		text:       "hello",
		hasText:    true,
		payload:    `{"title":"hello"}`,
		hasPayload: true,
	}
	r := NewOverrideReconciler(hooks, nil)
	pb := newFakePasteboard()

	r.Enter(1, f32.Pt(0, 0))
	proceed := r.Drop(1, pb, nil, f32.Pt(30, 40))

	assert.True(t, proceed)
	assert.Equal(t, "hello", pb.entries[transfer.TypeText],
		"host text overrides the stale engine snapshot")
	assert.Equal(t, `{"title":"hello"}`, pb.entries[transfer.TypeStructured])
	assert.Empty(t, hooks.stored, "internal drags store no paths")
}

func TestOverrideContentOnlyDrop(t *testing.T) {
	hooks := &fakeHooks{}
	var events []transfer.ContentEvent
	r := NewOverrideReconciler(hooks, func(e transfer.ContentEvent) {
		events = append(events, e)
	})

	r.Enter(1, f32.Pt(0, 0))
	proceed := r.Drop(1, newFakePasteboard(), nil, f32.Pt(15, 25))

	assert.True(t, proceed)
	require.Len(t, events, 1)
	assert.Equal(t, f32.Pt(15, 25), events[0].Position)
	assert.Empty(t, hooks.stored)
}

func TestOverrideClassificationIdempotent(t *testing.T) {
	hooks := &fakeHooks{internal: true}
	r := NewOverrideReconciler(hooks, nil)

	r.Enter(1, f32.Pt(0, 0))
	first := r.Classify(1)
	assert.Equal(t, OriginInternal, first)

	// Flipping the predicate afterwards does not change the resolved
	// classification.
	hooks.internal = false
	assert.Equal(t, first, r.Classify(1))
	assert.Equal(t, 1, hooks.internalCalls, "predicate queried once per session")
}

func TestOverrideLeaveCancels(t *testing.T) {
	hooks := &fakeHooks{}
	r := NewOverrideReconciler(hooks, nil)

	r.Enter(1, f32.Pt(0, 0))
	r.Update(1, f32.Pt(5, 5))
	r.Leave(1)

	assert.Equal(t, OriginUnknown, r.Origin(1))
	assert.Nil(t, r.Paths(1))
}

func TestSessionStateStrings(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Hovering", Hovering.String())
	assert.Equal(t, "Internal", OriginInternal.String())
	assert.Equal(t, "External", OriginExternal.String())
}

func TestSessionsIndependent(t *testing.T) {
	hooks := &fakeHooks{internal: true}
	r := NewOverrideReconciler(hooks, nil)

	r.Enter(1, f32.Pt(0, 0))
	r.Enter(2, f32.Pt(9, 9))
	assert.Equal(t, OriginInternal, r.Classify(1))

	hooks.internal = false
	assert.Equal(t, OriginExternal, r.Classify(2), "sessions classify independently")
	assert.Equal(t, OriginInternal, r.Classify(1))
}
