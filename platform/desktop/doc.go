// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package desktop hosts an app.Application in a GLFW window
// (github.com/go-gl/glfw/v3.3/glfw).
//
// GLFW requires its calls on the main OS thread. Importing this package
// locks the main goroutine to it; Open, Run and every Window method except
// Post, RequestRedraw and Close must be called from main.
//
//	win, err := desktop.Open(desktop.Options{Title: "vox", Width: 1280, Height: 720})
//	if err != nil {
//	    return err
//	}
//	defer win.Destroy()
//	a := app.New(cfg, w, win, app.NewProvider(cfg, win.Post), build)
//	return win.Run(a)
//
// Native handles for surface creation come from Target: X11 on Linux and
// the BSDs (Wayland with the "wayland" build tag) and Win32 on Windows.
// Other platforms return ErrUnsupportedPlatform.
package desktop
