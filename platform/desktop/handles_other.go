// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !linux && !freebsd && !netbsd && !openbsd && !windows

package desktop

// TODO: macOS needs the NSView behind the Cocoa window, which takes an
// Objective-C call GLFW 3.3 does not expose.
func (w *Window) handles() (display, window uintptr, err error) {
	return 0, 0, ErrUnsupportedPlatform
}
