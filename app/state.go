// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import "fmt"

// State is the lifecycle state of an Application.
type State uint8

const (
	// StateUninitialized means no Renderer is installed yet.
	StateUninitialized State = iota

	// StateActive means a Renderer is installed and frames are drawn.
	StateActive

	// StateExiting is terminal.
	StateExiting
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateActive:
		return "Active"
	case StateExiting:
		return "Exiting"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}
