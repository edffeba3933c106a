// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostbridge/io/transfer"
)

func TestOptions(t *testing.T) {
	var cfg config
	var drops []transfer.DropEvent
	for _, opt := range []Option{
		WithDropListener(func(e transfer.DropEvent) { drops = append(drops, e) }),
		WithContentListener(func(transfer.ContentEvent) {}),
	} {
		opt(&cfg)
	}
	assert.NotNil(t, cfg.onDrop)
	assert.NotNil(t, cfg.onContent)
	assert.Nil(t, cfg.hooks)

	cfg.onDrop(transfer.DropEvent{Paths: []string{"/a"}})
	assert.Len(t, drops, 1)
}
