// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliff

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func noopFactory() Command { return fieldsCommand{} }

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("foo/bar", noopFactory)
	r.MustRegister("config:command", noopFactory)
	r.MustRegister("Greet", noopFactory)

	tests := []struct {
		name     string
		wantPath string
		wantOK   bool
	}{
		{"foo/bar", "Foo/Bar", true},
		{"foo:bar", "Foo/Bar", true},
		{"FOO/BAR", "Foo/Bar", true},
		{"greet", "Greet", true},
		{"config", "Config/Command", true},
		{"config/command", "Config/Command", true},
		{"foo", "", false},
		{"bar", "", false},
		{"", "", false},
		{"//", "", false},
	}
	for _, tt := range tests {
		path, f, ok := r.Lookup(tt.name)
		if path != tt.wantPath || ok != tt.wantOK {
			t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.name, path, ok, tt.wantPath, tt.wantOK)
		}
		if ok && f == nil {
			t.Errorf("Lookup(%q) returned a nil factory", tt.name)
		}
	}
}

func TestRegistryCustomDefaultEntry(t *testing.T) {
	r := &Registry{DefaultEntry: "main"}
	r.MustRegister("serve/main", noopFactory)
	r.MustRegister("other/command", noopFactory)

	if path, _, ok := r.Lookup("serve"); !ok || path != "Serve/Main" {
		t.Fatalf("Lookup(serve) = %q, %v; want Serve/Main", path, ok)
	}
	if _, _, ok := r.Lookup("other"); ok {
		t.Fatalf("Lookup(other) used the package default entry")
	}
}

func TestRegistryRegisterErrors(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("greet", noopFactory)

	for _, tt := range []struct {
		name string
		f    Factory
	}{
		{"", noopFactory},
		{":/", noopFactory},
		{"nil", nil},
		{"GREET", noopFactory},
	} {
		var cerr *ConfigurationError
		if err := r.Register(tt.name, tt.f); !errors.As(err, &cerr) {
			t.Errorf("Register(%q) = %v, want ConfigurationError", tt.name, err)
		}
	}
}

func TestRegistryPaths(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha/beta", "alpha"} {
		r.MustRegister(name, noopFactory)
	}
	want := []string{"Alpha", "Alpha/Beta", "Zeta"}
	if diff := cmp.Diff(want, r.Paths()); diff != "" {
		t.Fatalf("Paths mismatch (-want +got):\n%s", diff)
	}

	var nilRegistry *Registry
	if _, _, ok := nilRegistry.Lookup("alpha"); ok {
		t.Fatalf("nil registry resolved a command")
	}
	if got := nilRegistry.Paths(); got != nil {
		t.Fatalf("nil registry Paths = %v, want nil", got)
	}
}
