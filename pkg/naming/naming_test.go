// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package naming

import (
	"reflect"
	"testing"
)

func TestFlagName(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"foo", "foo"},
		{"fooBar", "foo-bar"},
		{"requiredOption", "required-option"},
		{"aBC", "a-b-c"},
		{"x", "x"},
		{"Leading", "leading"},
	}
	for _, tt := range tests {
		if got := FlagName(tt.field); got != tt.want {
			t.Errorf("FlagName(%q) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestFieldName(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{"foo", "foo"},
		{"foo-bar", "fooBar"},
		{"foo_bar", "fooBar"},
		{"a-b-c", "aBC"},
		{"trailing-", "trailing"},
	}
	for _, tt := range tests {
		if got := FieldName(tt.flag); got != tt.want {
			t.Errorf("FieldName(%q) = %q, want %q", tt.flag, got, tt.want)
		}
	}
}

func TestFieldNameInvertsFlagName(t *testing.T) {
	names := []string{
		"a", "ab", "fooBar", "emptyOption", "optionalOption",
		"x1", "tlsCAFile", "dryRun", "with2Digits",
	}
	for _, name := range names {
		if got := FieldName(FlagName(name)); got != name {
			t.Errorf("FieldName(FlagName(%q)) = %q", name, got)
		}
	}
}

func TestCommandPath(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"foo:bar", "Foo/Bar"},
		{"foo/bar", "Foo/Bar"},
		{"FOO/bAR", "Foo/Bar"},
		{"greet", "Greet"},
		{"monolyth/cliff/test/bar-command", "Monolyth/Cliff/Test/Bar-command"},
		{"foo//bar:", "Foo/Bar"},
		{"::", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CommandPath(tt.name); got != tt.want {
			t.Errorf("CommandPath(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSegments(t *testing.T) {
	got := Segments("config:show/all")
	want := []string{"Config", "Show", "All"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Segments = %#v, want %#v", got, want)
	}
}
