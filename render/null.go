// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// NullContext is a Context that draws nothing. It records the calls it
// receives, which makes it useful for headless runs and tests.
type NullContext struct {
	// Configures lists every size passed to Configure, in order.
	Configures [][2]uint32

	// Draws counts Draw calls.
	Draws int

	// Released reports whether Release was called.
	Released bool
}

var _ Context = (*NullContext)(nil)

// Configure records the size.
func (c *NullContext) Configure(width, height uint32) error {
	c.Configures = append(c.Configures, [2]uint32{width, height})
	return nil
}

// Draw counts the call.
func (c *NullContext) Draw(*Frame) error {
	c.Draws++
	return nil
}

// Release marks the context released.
func (c *NullContext) Release() {
	c.Released = true
}

func init() {
	Register("null", PriorityNull, func(Target) (Context, error) {
		return &NullContext{}, nil
	}, nil)
}
