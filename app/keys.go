// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gpucontext"
)

// ErrUnknownKey is returned by ParseKey for names it does not know.
var ErrUnknownKey = errors.New("app: unknown key name")

var keyNames = map[string]gpucontext.Key{
	"escape": gpucontext.KeyEscape, "space": gpucontext.KeySpace,
	"enter": gpucontext.KeyEnter, "tab": gpucontext.KeyTab,
	"backspace": gpucontext.KeyBackspace, "delete": gpucontext.KeyDelete,
	"insert": gpucontext.KeyInsert, "home": gpucontext.KeyHome,
	"end": gpucontext.KeyEnd, "pageup": gpucontext.KeyPageUp,
	"pagedown": gpucontext.KeyPageDown, "pause": gpucontext.KeyPause,
	"up": gpucontext.KeyUp, "down": gpucontext.KeyDown,
	"left": gpucontext.KeyLeft, "right": gpucontext.KeyRight,
	"leftshift": gpucontext.KeyLeftShift, "rightshift": gpucontext.KeyRightShift,
	"leftcontrol": gpucontext.KeyLeftControl, "rightcontrol": gpucontext.KeyRightControl,
	"leftalt": gpucontext.KeyLeftAlt, "rightalt": gpucontext.KeyRightAlt,
	"grave": gpucontext.KeyGrave,

	"a": gpucontext.KeyA, "b": gpucontext.KeyB, "c": gpucontext.KeyC,
	"d": gpucontext.KeyD, "e": gpucontext.KeyE, "f": gpucontext.KeyF,
	"g": gpucontext.KeyG, "h": gpucontext.KeyH, "i": gpucontext.KeyI,
	"j": gpucontext.KeyJ, "k": gpucontext.KeyK, "l": gpucontext.KeyL,
	"m": gpucontext.KeyM, "n": gpucontext.KeyN, "o": gpucontext.KeyO,
	"p": gpucontext.KeyP, "q": gpucontext.KeyQ, "r": gpucontext.KeyR,
	"s": gpucontext.KeyS, "t": gpucontext.KeyT, "u": gpucontext.KeyU,
	"v": gpucontext.KeyV, "w": gpucontext.KeyW, "x": gpucontext.KeyX,
	"y": gpucontext.KeyY, "z": gpucontext.KeyZ,

	"0": gpucontext.Key0, "1": gpucontext.Key1, "2": gpucontext.Key2,
	"3": gpucontext.Key3, "4": gpucontext.Key4, "5": gpucontext.Key5,
	"6": gpucontext.Key6, "7": gpucontext.Key7, "8": gpucontext.Key8,
	"9": gpucontext.Key9,

	"f1": gpucontext.KeyF1, "f2": gpucontext.KeyF2, "f3": gpucontext.KeyF3,
	"f4": gpucontext.KeyF4, "f5": gpucontext.KeyF5, "f6": gpucontext.KeyF6,
	"f7": gpucontext.KeyF7, "f8": gpucontext.KeyF8, "f9": gpucontext.KeyF9,
	"f10": gpucontext.KeyF10, "f11": gpucontext.KeyF11, "f12": gpucontext.KeyF12,
}

// ParseKey returns the key for a case-insensitive name such as "escape",
// "q" or "f10". "esc" is accepted for "escape".
func ParseKey(name string) (gpucontext.Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "esc" {
		n = "escape"
	}
	if k, ok := keyNames[n]; ok {
		return k, nil
	}
	return gpucontext.KeyUnknown, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// KeyName returns the ParseKey name of k, or "unknown".
func KeyName(k gpucontext.Key) string {
	for name, v := range keyNames {
		if v == k {
			return name
		}
	}
	return "unknown"
}
