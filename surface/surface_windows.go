// SPDX-License-Identifier: Unlicense OR MIT

package surface

import (
	"fmt"
	"unsafe"

	"hostbridge/internal/win32"
)

// IDCompositionDevice, IDCompositionTarget and IDCompositionVisual
// vtable slots used below.
const (
	vtDeviceCommit          = 3
	vtDeviceCreateTarget    = 6
	vtDeviceCreateVisual    = 7
	vtTargetSetRoot         = 3
	vtVisualSetTransformRef = 7
)

// matrix3x2 is the D2D_MATRIX_3X2_F passed to SetTransform.
type matrix3x2 struct {
	M11, M12 float32
	M21, M22 float32
	Dx, Dy   float32
}

// dcompCompositor implements compositor on DirectComposition. The
// compositing device is backed by a hardware D3D11 device created
// with BGRA support.
type dcompCompositor struct {
	d3d uintptr
}

// New returns a Manager backed by DirectComposition.
func New() *Manager {
	return newManager(&dcompCompositor{})
}

func (c *dcompCompositor) CreateDevice() (Device, error) {
	d3d, err := win32.D3D11CreateDevice()
	if err != nil {
		return 0, err
	}
	dev, err := win32.DCompositionCreateDevice(d3d)
	if err != nil {
		win32.ComRelease(d3d)
		return 0, err
	}
	c.d3d = d3d
	return Device(dev), nil
}

func (c *dcompCompositor) CreateTarget(d Device, hwnd uintptr) (Target, error) {
	var target uintptr
	hr := win32.ComCall(uintptr(d), vtDeviceCreateTarget,
		hwnd,
		1, // topmost
		uintptr(unsafe.Pointer(&target)),
	)
	if hr < 0 {
		return 0, fmt.Errorf("CreateTargetForHwnd: HRESULT 0x%08x", uint32(hr))
	}
	return Target(target), nil
}

func (c *dcompCompositor) CreateVisual(d Device) (Visual, error) {
	var visual uintptr
	hr := win32.ComCall(uintptr(d), vtDeviceCreateVisual,
		uintptr(unsafe.Pointer(&visual)),
	)
	if hr < 0 {
		return 0, fmt.Errorf("CreateVisual: HRESULT 0x%08x", uint32(hr))
	}
	return Visual(visual), nil
}

func (c *dcompCompositor) SetRoot(t Target, v Visual) error {
	if hr := win32.ComCall(uintptr(t), vtTargetSetRoot, uintptr(v)); hr < 0 {
		return fmt.Errorf("SetRoot: HRESULT 0x%08x", uint32(hr))
	}
	return nil
}

func (c *dcompCompositor) SetScale(v Visual, scale float32) error {
	m := matrix3x2{M11: scale, M22: scale}
	if hr := win32.ComCall(uintptr(v), vtVisualSetTransformRef,
		uintptr(unsafe.Pointer(&m)),
	); hr < 0 {
		return fmt.Errorf("SetTransform: HRESULT 0x%08x", uint32(hr))
	}
	return nil
}

func (c *dcompCompositor) Commit(d Device) error {
	if hr := win32.ComCall(uintptr(d), vtDeviceCommit); hr < 0 {
		return fmt.Errorf("Commit: HRESULT 0x%08x", uint32(hr))
	}
	return nil
}

func (c *dcompCompositor) ReleaseVisual(v Visual) {
	win32.ComRelease(uintptr(v))
}

func (c *dcompCompositor) ReleaseTarget(t Target) {
	win32.ComRelease(uintptr(t))
}

func (c *dcompCompositor) ReleaseDevice(d Device) {
	win32.ComRelease(uintptr(d))
	win32.ComRelease(c.d3d)
	c.d3d = 0
}
