// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliff

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/yeetrun/cliff/pkg/grammar"
	"github.com/yeetrun/cliff/pkg/naming"
	"tailscale.com/util/set"
)

// Command is implemented by every command. Fields returns the command's
// configurable fields in declaration order, bound to the command's own
// storage.
type Command interface {
	Fields() []Field
}

// Runner is implemented by commands that have an entry point. Params
// declares the entry point's parameters in order.
type Runner interface {
	Command
	Params() []Param
	Run(ctx context.Context, args Args) error
}

// Schema is the grammar derived from a command.
type Schema struct {
	Command  string
	Options  *grammar.OptionSet
	Operands []grammar.OperandSpec

	fields []Field // parallel to Options
	params []Param
}

// Derive builds the schema of cmd. name is only used in errors.
func Derive(name string, cmd Command) (*Schema, error) {
	s := &Schema{
		Command: name,
		Options: &grammar.OptionSet{},
	}
	used := make(set.Set[string])
	for _, f := range cmd.Fields() {
		opt, err := s.option(f, used)
		if err != nil {
			return nil, err
		}
		if err := s.Options.Add(opt); err != nil {
			return nil, s.configErr(f.Name, err.Error())
		}
		s.fields = append(s.fields, f)
	}
	if r, ok := cmd.(Runner); ok {
		s.params = r.Params()
		s.Operands = DeriveOperands(s.params)
	}
	return s, nil
}

func (s *Schema) option(f Field, used set.Set[string]) (grammar.OptionSpec, error) {
	if f.Name == "" {
		return grammar.OptionSpec{}, s.configErr("", "field without a name")
	}
	arity, err := s.arity(f)
	if err != nil {
		return grammar.OptionSpec{}, err
	}
	if !f.bound() {
		return grammar.OptionSpec{}, s.configErr(f.Name, "no storage bound")
	}
	short, err := s.shortFlag(f, used)
	if err != nil {
		return grammar.OptionSpec{}, err
	}
	var long string
	if utf8.RuneCountInString(f.Name) > 1 {
		long = naming.FlagName(f.Name)
		if naming.FieldName(long) != f.Name {
			return grammar.OptionSpec{}, s.configErr(f.Name, fmt.Sprintf("name is not camelCase; flag %q would not map back to it", "--"+long))
		}
	}
	if short == "" && long == "" {
		return grammar.OptionSpec{}, s.configErr(f.Name, "no short flag left and name too short for a long flag")
	}
	return grammar.OptionSpec{Short: short, Long: long, Arity: arity, Usage: f.Usage}, nil
}

func (s *Schema) arity(f Field) (grammar.Arity, error) {
	switch f.Type {
	case Bool:
		return grammar.None, nil
	case StringList:
		return grammar.Multiple, nil
	case String:
		if f.HasDefault() {
			return grammar.Optional, nil
		}
		return grammar.Required, nil
	}
	return 0, &TypeBindingError{Command: s.Command, Field: f.Name, Type: f.Type}
}

// shortFlag picks the field's short flag: its alias or first character,
// then the uppercased character, then none. Earlier fields win.
func (s *Schema) shortFlag(f Field, used set.Set[string]) (string, error) {
	candidate := f.Alias
	if candidate != "" {
		if len(candidate) != 1 || !isFlagChar(candidate[0]) {
			return "", s.configErr(f.Name, fmt.Sprintf("alias %q must be a single letter or digit", candidate))
		}
	} else {
		if !isFlagChar(f.Name[0]) {
			return "", nil
		}
		candidate = f.Name[:1]
	}
	if used.Contains(candidate) {
		upper := strings.ToUpper(candidate)
		if upper == candidate || used.Contains(upper) {
			return "", nil
		}
		candidate = upper
	}
	used.Add(candidate)
	return candidate, nil
}

func isFlagChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func (s *Schema) configErr(field, reason string) error {
	return &ConfigurationError{Command: s.Command, Field: field, Reason: reason}
}

// Field finds a field by option key, flag name or field name.
func (s *Schema) Field(name string) (Field, bool) {
	name = strings.TrimLeft(name, "-")
	for i, o := range s.Options.All() {
		if o.Key() == name || o.Short == name {
			return s.fields[i], true
		}
	}
	name = naming.FieldName(name)
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []Field {
	return slices.Clone(s.fields)
}

// Params returns the entry point parameters.
func (s *Schema) Params() []Param {
	return slices.Clone(s.params)
}
