// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grammar

import (
	"errors"
	"fmt"
)

var (
	// ErrHelp is wrapped by every *HelpRequest.
	ErrHelp = errors.New("help requested")

	// ErrOperandLayout is returned when a multiple operand is not the last one.
	ErrOperandLayout = errors.New("only the last operand may take multiple values")
)

// HelpRequest is returned in strict mode when -h or --help is passed to a
// command that does not define them. Option is the option named with
// -hOPTION or --help=OPTION, empty for general help.
type HelpRequest struct {
	Option string
}

func (e *HelpRequest) Error() string {
	if e.Option == "" {
		return ErrHelp.Error()
	}
	return fmt.Sprintf("%v for %s", ErrHelp, e.Option)
}

func (e *HelpRequest) Unwrap() error {
	return ErrHelp
}

// UnknownOptionError is returned in strict mode for an option the command
// does not define.
type UnknownOptionError struct {
	Flag string // as typed, e.g. "--colour" or "-q"
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: %s", e.Flag)
}

// OperandError is returned in strict mode when the operand count does not
// fit the command.
type OperandError struct {
	Operand  string // the missing operand's name or the unexpected value
	Missing  bool
	Expected string // "1", "1-3", "at least 1"
	Got      int
}

func (e *OperandError) Error() string {
	if e.Missing {
		return fmt.Sprintf("missing operand %s (requires %s, got %d)", e.Operand, e.Expected, e.Got)
	}
	return fmt.Sprintf("unexpected operand %q (accepts %s, got %d)", e.Operand, e.Expected, e.Got)
}

// ParseError wraps any other token-level failure, such as a missing value
// for a required option.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
