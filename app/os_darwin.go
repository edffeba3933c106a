// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin && !ios
// +build darwin,!ios

package app

import (
	"errors"
	"runtime/cgo"
	"unsafe"

	"hostbridge/dragdrop"
	"hostbridge/input"
	"hostbridge/internal/logging"
)

/*
#cgo CFLAGS: -Werror -Wno-deprecated-declarations -fobjc-arc -x objective-c
#cgo LDFLAGS: -framework AppKit -framework WebKit

#include <stdlib.h>
#include <CoreFoundation/CoreFoundation.h>

__attribute__ ((visibility ("hidden"))) void bridge_installDragOverride(CFTypeRef viewRef, uintptr_t handle);
__attribute__ ((visibility ("hidden"))) void bridge_removeDragOverride(CFTypeRef viewRef);
__attribute__ ((visibility ("hidden"))) double bridge_backingScale(CFTypeRef viewRef);
__attribute__ ((visibility ("hidden"))) void bridge_pasteboardSetString(CFTypeRef pbRef, const char *typ, const char *value);
*/
import "C"

// View is one embedded engine view. The engine owns its native view on
// this platform; the bridge installs the drag override and corrects
// the pasteboard before the engine's native drop handling runs.
type View struct {
	view   C.CFTypeRef
	drops  *dragdrop.OverrideReconciler
	handle cgo.Handle

	// One platform drag is active at a time; each gets a fresh
	// session id.
	seq uint64
}

// Attach installs the drag override on the engine's native view.
// Hooks are required on this platform: classification and payload
// queries have no other source.
func Attach(view uintptr, engine input.Engine, options ...Option) (*View, error) {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}
	if cfg.hooks == nil {
		return nil, errors.New("app: drag override requires hooks")
	}
	v := &View{
		view:  C.CFTypeRef(view),
		drops: dragdrop.NewOverrideReconciler(cfg.hooks, cfg.onContent),
	}
	if err := engine.NotifyScale(float32(C.bridge_backingScale(v.view))); err != nil {
		logging.Logger().Debug("scale notification failed", "err", err)
	}
	v.handle = cgo.NewHandle(v)
	C.bridge_installDragOverride(v.view, C.uintptr_t(v.handle))
	return v, nil
}

// Detach removes the drag override. The engine's view survives.
func (v *View) Detach() {
	C.bridge_removeDragOverride(v.view)
	v.handle.Delete()
}

// Drops exposes the reconciler for host-side queries such as the
// stored session origin.
func (v *View) Drops() *dragdrop.OverrideReconciler {
	return v.drops
}

// pasteboard adapts the platform dragging pasteboard.
type pasteboard struct {
	ref C.CFTypeRef
}

func (p pasteboard) SetString(typ, value string) {
	ctyp := C.CString(typ)
	cval := C.CString(value)
	defer C.free(unsafe.Pointer(ctyp))
	defer C.free(unsafe.Pointer(cval))
	C.bridge_pasteboardSetString(p.ref, ctyp, cval)
}
