// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Factory opens a Context presenting to t.
type Factory func(t Target) (Context, error)

// Backend priorities used by the built-in backends.
const (
	PriorityGPU  = 100
	PriorityNull = 0
)

// RegistryEntry represents a registered render backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory opens contexts for this backend.
	Factory Factory

	// Available reports if the backend can run on this system.
	Available func() bool
}

// Registry manages render backends by name.
//
// Backends register themselves from init:
//
//	func init() {
//	    render.Register("wgpu", render.PriorityGPU, open, nil)
//	}
//
// and the host opens one by name, or the best available with "":
//
//	ctx, err := render.Open("", target)
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*RegistryEntry)}
}

// Register adds a backend to the global registry.
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Available returns names of available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Open opens a Context with the named backend from the global registry.
// An empty name selects the highest-priority available backend.
func Open(name string, t Target) (Context, error) {
	return globalRegistry.Open(name, t)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Available returns names of available backends sorted by priority
// (highest first, ties by name).
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Available() {
			list = append(list, e)
		}
	}
	slices.SortFunc(list, func(a, b *RegistryEntry) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	names := make([]string, len(list))
	for i, e := range list {
		names[i] = e.Name
	}
	return names
}

// Open opens a Context with the named backend. An empty name selects the
// highest-priority available backend. Its failure is returned as is: there
// is no fallback to a lower-priority backend.
func (r *Registry) Open(name string, t Target) (Context, error) {
	if name == "" {
		names := r.Available()
		if len(names) == 0 {
			return nil, ErrNoBackend
		}
		name = names[0]
	}

	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	ctx, err := entry.Factory(t)
	if err != nil {
		return nil, fmt.Errorf("render: open %s backend: %w", name, err)
	}
	return ctx, nil
}

// ErrNoBackend is returned when no render backend is registered or
// available on the current system.
var ErrNoBackend = errors.New("render: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "render: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "render: backend unavailable: " + e.Name
}
