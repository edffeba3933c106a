// SPDX-License-Identifier: Unlicense OR MIT

// Package app attaches an embedded engine view to a live host window.
// Attach creates the composition surface, hands it to the engine and
// installs the platform message hook that feeds the input translator.
// The drag-drop reconciler matching the platform's engine is wired at
// the same time.
//
// All calls into a View must happen on the thread running the host
// window's message pump.
package app

import (
	"errors"

	"hostbridge/dragdrop"
	"hostbridge/io/transfer"
)

// ErrAlreadyAttached is reported when the host window already has an
// attached view.
var ErrAlreadyAttached = errors.New("app: window already has an attached view")

// Option configures an Attach call.
type Option func(*config)

type config struct {
	hooks     dragdrop.Hooks
	onDrop    func(transfer.DropEvent)
	onContent func(transfer.ContentEvent)
}

// WithDropListener sets the listener for external file drops observed
// by the drag-drop reconciler.
func WithDropListener(f func(transfer.DropEvent)) Option {
	return func(c *config) { c.onDrop = f }
}

// WithContentListener sets the listener for external drops that carry
// no file paths.
func WithContentListener(f func(transfer.ContentEvent)) Option {
	return func(c *config) { c.onContent = f }
}

// WithHooks sets the host capability hooks used by the drag-drop
// reconciler for classification and payload queries.
func WithHooks(h dragdrop.Hooks) Option {
	return func(c *config) { c.hooks = h }
}
