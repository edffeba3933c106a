// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin && !ios
// +build darwin,!ios

package app

import (
	"runtime/cgo"
	"unsafe"

	"hostbridge/f32"
)

/*
#include <CoreFoundation/CoreFoundation.h>
*/
import "C"

// Dragging callbacks invoked from the platform side, on the main
// thread, before the engine's native handling. Positions arrive
// already flipped to a top-left origin.

//export bridge_onDraggingEntered
func bridge_onDraggingEntered(handle C.uintptr_t, x, y C.double) C.int {
	v := cgo.Handle(handle).Value().(*View)
	v.seq++
	return C.int(v.drops.Enter(v.seq, f32.Pt(float32(x), float32(y))))
}

//export bridge_onDraggingUpdated
func bridge_onDraggingUpdated(handle C.uintptr_t, x, y C.double) C.int {
	v := cgo.Handle(handle).Value().(*View)
	return C.int(v.drops.Update(v.seq, f32.Pt(float32(x), float32(y))))
}

//export bridge_onPerformDragOperation
func bridge_onPerformDragOperation(handle C.uintptr_t, pbRef C.CFTypeRef, cpaths **C.char, npaths C.int, x, y C.double) C.int {
	v := cgo.Handle(handle).Value().(*View)
	paths := goPaths(cpaths, npaths)
	proceed := v.drops.Drop(v.seq, pasteboard{ref: pbRef}, paths, f32.Pt(float32(x), float32(y)))
	if proceed {
		return 1
	}
	return 0
}

//export bridge_onDraggingExited
func bridge_onDraggingExited(handle C.uintptr_t) {
	v := cgo.Handle(handle).Value().(*View)
	v.drops.Leave(v.seq)
}

func goPaths(cpaths **C.char, npaths C.int) []string {
	if cpaths == nil || npaths == 0 {
		return nil
	}
	slice := unsafe.Slice(cpaths, int(npaths))
	paths := make([]string, 0, len(slice))
	for _, p := range slice {
		paths = append(paths, C.GoString(p))
	}
	return paths
}
