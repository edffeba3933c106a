// SPDX-License-Identifier: Unlicense OR MIT

// Package surface manages the host-owned composition surface the
// embedded engine renders into. The host owns the compositing device,
// the visual tree and the render-target binding; the engine is handed
// a committed surface and draws into it without a window of its own.
package surface

import (
	"errors"
	"fmt"
)

// ErrSurfaceCreation is reported when the compositing stack cannot be
// created, for example when no hardware GPU adapter is available. It
// is fatal to attaching the view and is not retried.
var ErrSurfaceCreation = errors.New("surface: creation failed")

// ErrDeviceLost is reported when the GPU device backing a surface is
// lost. The surface must be detached and recreated.
var ErrDeviceLost = errors.New("surface: device lost")

// Device is an opaque handle to the compositing device.
type Device uintptr

// Visual is an opaque handle to the root visual of a surface.
type Visual uintptr

// Target is an opaque handle binding a visual tree to a host window.
type Target uintptr

// Surface is the render target bound into the engine. There is one
// Surface per embedded view. It is created at attach time and torn
// down when the view detaches.
type Surface struct {
	device    Device
	visual    Visual
	target    Target
	committed bool
	scale     float32
}

// compositor abstracts the platform compositing calls so attach and
// detach ordering can be exercised without a GPU.
type compositor interface {
	// CreateDevice allocates an alpha-capable compositing device.
	CreateDevice() (Device, error)
	// CreateTarget binds a visual tree root for the given window.
	CreateTarget(d Device, hwnd uintptr) (Target, error)
	// CreateVisual allocates a visual owned by the device.
	CreateVisual(d Device) (Visual, error)
	// SetRoot parents the visual as the root of the target.
	SetRoot(t Target, v Visual) error
	// SetScale updates the visual's scale transform.
	SetScale(v Visual, scale float32) error
	// Commit publishes pending visual tree changes.
	Commit(d Device) error
	// ReleaseVisual, ReleaseTarget and ReleaseDevice free the
	// respective handles.
	ReleaseVisual(v Visual)
	ReleaseTarget(t Target)
	ReleaseDevice(d Device)
}

// Manager creates and tears down surfaces. The zero value is not
// usable; construct one with New.
type Manager struct {
	c compositor
}

func newManager(c compositor) *Manager {
	return &Manager{c: c}
}

// Option configures an attach call.
type Option func(*config)

type config struct {
	scale float32
}

// WithScale sets the initial scale factor of the surface. The default
// is 1, meaning one device pixel per view pixel.
func WithScale(scale float32) Option {
	return func(c *config) {
		c.scale = scale
	}
}

// Attach creates a committed surface bound to hwnd. The window must be
// a live native window with no previously attached surface. On failure
// no partial resources remain allocated.
func (m *Manager) Attach(hwnd uintptr, options ...Option) (*Surface, error) {
	cfg := config{scale: 1}
	for _, opt := range options {
		opt(&cfg)
	}
	d, err := m.c.CreateDevice()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceCreation, err)
	}
	t, err := m.c.CreateTarget(d, hwnd)
	if err != nil {
		m.c.ReleaseDevice(d)
		return nil, fmt.Errorf("%w: %v", ErrSurfaceCreation, err)
	}
	v, err := m.c.CreateVisual(d)
	if err != nil {
		m.c.ReleaseTarget(t)
		m.c.ReleaseDevice(d)
		return nil, fmt.Errorf("%w: %v", ErrSurfaceCreation, err)
	}
	if err := m.c.SetRoot(t, v); err != nil {
		m.c.ReleaseVisual(v)
		m.c.ReleaseTarget(t)
		m.c.ReleaseDevice(d)
		return nil, fmt.Errorf("%w: %v", ErrSurfaceCreation, err)
	}
	if cfg.scale != 1 {
		if err := m.c.SetScale(v, cfg.scale); err != nil {
			m.c.ReleaseVisual(v)
			m.c.ReleaseTarget(t)
			m.c.ReleaseDevice(d)
			return nil, fmt.Errorf("%w: %v", ErrSurfaceCreation, err)
		}
	}
	if err := m.c.Commit(d); err != nil {
		m.c.ReleaseVisual(v)
		m.c.ReleaseTarget(t)
		m.c.ReleaseDevice(d)
		return nil, fmt.Errorf("%w: %v", ErrSurfaceCreation, err)
	}
	return &Surface{
		device:    d,
		visual:    v,
		target:    t,
		committed: true,
		scale:     cfg.scale,
	}, nil
}

// Detach releases the surface's resources in reverse creation order.
// It is safe to call once per surface; further calls are no-ops.
func (m *Manager) Detach(s *Surface) {
	if s == nil || !s.committed {
		return
	}
	s.committed = false
	m.c.ReleaseVisual(s.visual)
	m.c.ReleaseTarget(s.target)
	m.c.ReleaseDevice(s.device)
	s.visual, s.target, s.device = 0, 0, 0
}

// SetScale updates the surface's scale transform, typically in
// response to a DPI change. The new factor takes effect for pointer
// translation as soon as SetScale returns.
func (m *Manager) SetScale(s *Surface, scale float32) error {
	if err := m.c.SetScale(s.visual, scale); err != nil {
		return err
	}
	if err := m.c.Commit(s.device); err != nil {
		return err
	}
	s.scale = scale
	return nil
}

// Committed reports whether the surface's visual tree has been
// committed and rendering may begin.
func (s *Surface) Committed() bool {
	return s.committed
}

// Scale returns the surface's current scale factor.
func (s *Surface) Scale() float32 {
	return s.scale
}

// Device returns the surface's compositing device handle.
func (s *Surface) Device() Device {
	return s.device
}

// Visual returns the surface's root visual handle.
func (s *Surface) Visual() Visual {
	return s.visual
}

// Target returns the handle binding the visual tree to the host
// window.
func (s *Surface) Target() Target {
	return s.target
}
