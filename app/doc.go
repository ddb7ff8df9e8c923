// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package app is the lifecycle controller of a vox window.
//
// An Application receives window events from a host loop through its On*
// entry points and owns the state machine
//
//	Uninitialized -> Active -> Exiting
//
// OnReady applies the cursor policy and asks a ContextProvider for a
// Renderer. Synchronous builds it inline. Deferred builds it on a goroutine
// and hands the result back through the host's Post function, so that
// OnRendererReady always runs on the event loop thread.
//
// While Uninitialized every event except a close request is ignored. Any
// state moves to Exiting on a close request, the cancel key (Escape unless
// Config.CancelKey says otherwise), a fatal surface error or a lost GPU
// context. Exiting is terminal: Done is closed and Err reports why.
package app
