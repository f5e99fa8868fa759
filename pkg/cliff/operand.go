// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliff

import (
	"slices"

	"github.com/yeetrun/cliff/pkg/grammar"
)

// Param declares one parameter of a command's entry point.
type Param struct {
	Name       string
	List       bool
	HasDefault bool
	Default    []string
}

// Arg declares a required single-value parameter.
func Arg(name string) Param {
	return Param{Name: name}
}

// OptionalArg declares a single-value parameter with a default.
func OptionalArg(name, def string) Param {
	return Param{Name: name, HasDefault: true, Default: []string{def}}
}

// ArgList declares a required list parameter. It must be the last one.
func ArgList(name string) Param {
	return Param{Name: name, List: true}
}

// OptionalArgList declares a list parameter with a default. It must be the
// last one.
func OptionalArgList(name string, def ...string) Param {
	return Param{Name: name, List: true, HasDefault: true, Default: def}
}

// DeriveOperands turns entry point parameters into operand specs, in order.
func DeriveOperands(params []Param) []grammar.OperandSpec {
	specs := make([]grammar.OperandSpec, 0, len(params))
	for _, p := range params {
		specs = append(specs, grammar.OperandSpec{
			Name:     p.Name,
			Required: !p.HasDefault,
			Multiple: p.List,
			Default:  slices.Clone(p.Default),
		})
	}
	return specs
}

// Args are the operands a command is invoked with, matched to its params.
type Args struct {
	params []Param
	values []string
}

// NewArgs matches values to params by position. A list param takes every
// remaining value.
func NewArgs(params []Param, values []string) Args {
	return Args{params: params, values: slices.Clone(values)}
}

// Get returns the value of a single-value param, its default when no value
// was given, or "" for an unknown name.
func (a Args) Get(name string) string {
	if vals := a.List(name); len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// List returns every value bound to the named param.
func (a Args) List(name string) []string {
	for i, p := range a.params {
		if p.Name != name {
			continue
		}
		switch {
		case p.List && i < len(a.values):
			return slices.Clone(a.values[i:])
		case i < len(a.values):
			return []string{a.values[i]}
		default:
			return slices.Clone(p.Default)
		}
	}
	return nil
}

// All returns the raw operand values, including any the params do not
// account for.
func (a Args) All() []string {
	return slices.Clone(a.values)
}

// Len reports the number of raw operand values.
func (a Args) Len() int {
	return len(a.values)
}
