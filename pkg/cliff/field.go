// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliff

import (
	"fmt"
	"slices"
)

// FieldType is the semantic type of a configurable field.
type FieldType int

const (
	_ FieldType = iota
	// Bool fields are toggled by their flag.
	Bool
	// String fields take one value.
	String
	// StringList fields collect one value per flag occurrence.
	StringList
)

func (t FieldType) String() string {
	switch t {
	case Bool:
		return "bool"
	case String:
		return "string"
	case StringList:
		return "[]string"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// Field declares one configurable field of a command and the storage it is
// bound to. Use BoolVar, StringVar or StringsVar to build one.
type Field struct {
	Name  string
	Type  FieldType
	Alias string
	Usage string

	optional bool
	b        *bool
	s        *string
	l        *[]string
}

// FieldOption customizes a Field.
type FieldOption func(*Field)

// Alias overrides the field's short flag. It must be a single character.
func Alias(short string) FieldOption {
	return func(f *Field) { f.Alias = short }
}

// Usage sets the help text of the field.
func Usage(text string) FieldOption {
	return func(f *Field) { f.Usage = text }
}

// Optional marks a string field as having a default even when its storage
// is empty, so its flag may be given without a value.
func Optional() FieldOption {
	return func(f *Field) { f.optional = true }
}

// BoolVar declares a boolean field stored in p. The value p holds when the
// schema is derived is the default; each occurrence of the flag inverts it.
func BoolVar(p *bool, name string, opts ...FieldOption) Field {
	return newField(Field{Name: name, Type: Bool, b: p}, opts)
}

// StringVar declares a string field stored in p. A non-empty value in p is
// the field's default.
func StringVar(p *string, name string, opts ...FieldOption) Field {
	return newField(Field{Name: name, Type: String, s: p}, opts)
}

// StringsVar declares a list field stored in p.
func StringsVar(p *[]string, name string, opts ...FieldOption) Field {
	return newField(Field{Name: name, Type: StringList, l: p}, opts)
}

func newField(f Field, opts []FieldOption) Field {
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// HasDefault reports whether the field carries a default value.
func (f Field) HasDefault() bool {
	switch f.Type {
	case Bool, StringList:
		return true
	case String:
		return f.optional || (f.s != nil && *f.s != "")
	}
	return false
}

// Default returns the field's current value: a bool, string or []string.
func (f Field) Default() any {
	switch f.Type {
	case Bool:
		if f.b != nil {
			return *f.b
		}
	case String:
		if f.s != nil {
			return *f.s
		}
	case StringList:
		if f.l != nil {
			return slices.Clone(*f.l)
		}
	}
	return nil
}

func (f Field) bound() bool {
	switch f.Type {
	case Bool:
		return f.b != nil
	case String:
		return f.s != nil
	case StringList:
		return f.l != nil
	}
	return true
}
