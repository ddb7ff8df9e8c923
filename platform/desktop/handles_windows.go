// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import "unsafe"

// The display handle is unused on Windows.
func (w *Window) handles() (display, window uintptr, err error) {
	return 0, uintptr(unsafe.Pointer(w.win.GetWin32Window())), nil
}
