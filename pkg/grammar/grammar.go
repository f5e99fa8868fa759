// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grammar

import (
	"fmt"
	"iter"
)

// Arity describes how many values an option accepts.
type Arity int

const (
	// None options are toggles and never take a value.
	None Arity = iota
	// Optional options take a value only in the attached form (--name=value).
	Optional
	// Required options always take a value, attached or as the next argument.
	Required
	// Multiple options may repeat; each occurrence carries one value.
	Multiple
)

func (a Arity) String() string {
	switch a {
	case None:
		return "none"
	case Optional:
		return "optional"
	case Required:
		return "required"
	case Multiple:
		return "multiple"
	default:
		return fmt.Sprintf("Arity(%d)", int(a))
	}
}

// OptionSpec describes one option of a command. At least one of Short and
// Long is set.
type OptionSpec struct {
	Short string
	Long  string
	Arity Arity
	Usage string
}

// Key is the name the option is registered and reported under.
func (o OptionSpec) Key() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// String renders the option the way a user would type it.
func (o OptionSpec) String() string {
	switch {
	case o.Short != "" && o.Long != "":
		return "-" + o.Short + ", --" + o.Long
	case o.Long != "":
		return "--" + o.Long
	default:
		return "-" + o.Short
	}
}

// OptionSet is an insertion-ordered set of options keyed by OptionSpec.Key.
// The zero value is ready to use.
type OptionSet struct {
	specs []OptionSpec
	index map[string]int
}

// Add registers o. It fails if o has no name or its key is already taken.
func (s *OptionSet) Add(o OptionSpec) error {
	key := o.Key()
	if key == "" {
		return fmt.Errorf("option has neither a short nor a long name")
	}
	if _, ok := s.index[key]; ok {
		return fmt.Errorf("option %q defined twice", key)
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[key] = len(s.specs)
	s.specs = append(s.specs, o)
	return nil
}

// Get returns the option registered under key.
func (s *OptionSet) Get(key string) (OptionSpec, bool) {
	if s == nil {
		return OptionSpec{}, false
	}
	i, ok := s.index[key]
	if !ok {
		return OptionSpec{}, false
	}
	return s.specs[i], true
}

// Len reports the number of options.
func (s *OptionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.specs)
}

// All iterates the options in insertion order.
func (s *OptionSet) All() iter.Seq2[int, OptionSpec] {
	return func(yield func(int, OptionSpec) bool) {
		if s == nil {
			return
		}
		for i, o := range s.specs {
			if !yield(i, o) {
				return
			}
		}
	}
}

// OperandSpec describes one positional operand.
type OperandSpec struct {
	Name     string
	Required bool
	Multiple bool
	Default  []string
}

// RawValue is what the tokenizer collected for one option.
type RawValue struct {
	// Count is the number of times the option occurred.
	Count int
	// Values holds the values carried by those occurrences, in order.
	// Occurrences without a value (toggles, optional options given
	// without "=") contribute nothing.
	Values []string
}

// Last returns the last carried value.
func (v RawValue) Last() (string, bool) {
	if len(v.Values) == 0 {
		return "", false
	}
	return v.Values[len(v.Values)-1], true
}

// Parsed is the result of one tokenizer pass. Options only holds keys of
// options that occurred.
type Parsed struct {
	Options  map[string]RawValue
	Operands []string
}

// Mode selects how unknown options are treated.
type Mode int

const (
	// Strict rejects unknown options and checks the operand count.
	Strict Mode = iota
	// Lenient drops unknown options and skips the operand count check.
	Lenient
)

func (m Mode) String() string {
	if m == Lenient {
		return "lenient"
	}
	return "strict"
}

// Tokenizer parses raw arguments against a command grammar.
type Tokenizer interface {
	Tokenize(options *OptionSet, operands []OperandSpec, args []string, mode Mode) (*Parsed, error)
}
