// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliff

import (
	"slices"

	"github.com/yeetrun/cliff/pkg/naming"
	"tailscale.com/util/mak"
)

// DefaultEntry is the segment tried after a name that does not resolve on
// its own: "config" resolves to "Config/Command" when that is registered.
const DefaultEntry = "Command"

// Factory builds a fresh command.
type Factory func() Command

// Registry maps canonical command paths to factories.
type Registry struct {
	// DefaultEntry overrides the package DefaultEntry when set.
	DefaultEntry string

	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a command under the canonical form of name.
func (r *Registry) Register(name string, f Factory) error {
	path := naming.CommandPath(name)
	switch {
	case path == "":
		return &ConfigurationError{Command: name, Reason: "empty command path"}
	case f == nil:
		return &ConfigurationError{Command: path, Reason: "nil factory"}
	}
	if _, ok := r.factories[path]; ok {
		return &ConfigurationError{Command: path, Reason: "registered twice"}
	}
	mak.Set(&r.factories, path, f)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, f Factory) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// Lookup resolves a command name as typed by the user. It returns the
// canonical path the factory is registered under.
func (r *Registry) Lookup(name string) (string, Factory, bool) {
	if r == nil {
		return "", nil, false
	}
	path := naming.CommandPath(name)
	if path == "" {
		return "", nil, false
	}
	if f, ok := r.factories[path]; ok {
		return path, f, true
	}
	entry := r.DefaultEntry
	if entry == "" {
		entry = DefaultEntry
	}
	path += naming.PathSeparator + naming.CommandPath(entry)
	if f, ok := r.factories[path]; ok {
		return path, f, true
	}
	return "", nil, false
}

// Paths returns every registered path, sorted.
func (r *Registry) Paths() []string {
	if r == nil {
		return nil
	}
	paths := make([]string, 0, len(r.factories))
	for path := range r.factories {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}
