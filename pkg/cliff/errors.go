// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliff

import (
	"fmt"

	"github.com/yeetrun/cliff/pkg/grammar"
)

// ConfigurationError reports a command whose declaration cannot be turned
// into a grammar. It is the command author's mistake, not the user's.
type ConfigurationError struct {
	Command string
	Field   string // empty when the error is not about a single field
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("command %s: %s", e.Command, e.Reason)
	}
	return fmt.Sprintf("command %s: field %s: %s", e.Command, e.Field, e.Reason)
}

// TypeBindingError reports a field whose type has no binding rule.
type TypeBindingError struct {
	Command string
	Field   string
	Type    FieldType
}

func (e *TypeBindingError) Error() string {
	return fmt.Sprintf("command %s: field %s: no binding for type %v", e.Command, e.Field, e.Type)
}

// HelpError is returned when -h or --help reaches a command that does not
// define them. Schema describes the command help was asked for. Option is
// set when help was asked for a single option, as in --help=name.
type HelpError struct {
	Command string
	Schema  *Schema
	Option  string
}

func (e *HelpError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("%s: help requested for %s", e.Command, e.Option)
	}
	return e.Command + ": help requested"
}

func (e *HelpError) Unwrap() error {
	return grammar.ErrHelp
}
