// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"errors"

	"github.com/gogpu/vox"
	"github.com/gogpu/vox/render"
)

// ErrNoDispatch is returned by Deferred when it has no Post function.
var ErrNoDispatch = errors.New("app: deferred provider has no post function")

// Builder constructs a Renderer bound to the application window.
type Builder func() (*render.Renderer, error)

// ContextProvider decides when a Builder runs.
//
// Provide either returns the result immediately (ready == true) or arranges
// for deliver to be called exactly once, later, on the event loop thread.
type ContextProvider interface {
	Provide(build Builder, deliver func(*render.Renderer, error)) (r *render.Renderer, ready bool, err error)
}

// Synchronous builds the Renderer inline, blocking the caller.
type Synchronous struct{}

// Provide runs build and returns its result.
func (Synchronous) Provide(build Builder, _ func(*render.Renderer, error)) (*render.Renderer, bool, error) {
	r, err := build()
	return r, true, err
}

// Deferred builds the Renderer on its own goroutine. Post must run a
// function on the event loop thread; the result is delivered through it.
type Deferred struct {
	Post func(func())
}

// Provide starts build in the background and returns immediately.
func (d Deferred) Provide(build Builder, deliver func(*render.Renderer, error)) (*render.Renderer, bool, error) {
	if d.Post == nil {
		return nil, false, ErrNoDispatch
	}
	go func() {
		r, err := build()
		if err != nil {
			vox.Logger().Debug("app: deferred build failed", "error", err)
		}
		d.Post(func() { deliver(r, err) })
	}()
	return nil, false, nil
}

// NewProvider returns the provider selected by cfg.Deferred.
func NewProvider(cfg Config, post func(func())) ContextProvider {
	if cfg.Deferred {
		return Deferred{Post: post}
	}
	return Synchronous{}
}
