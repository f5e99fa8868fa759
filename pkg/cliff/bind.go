// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliff

import (
	"slices"

	"github.com/yeetrun/cliff/pkg/grammar"
)

// Bind writes parsed option values onto the command's fields, in
// declaration order. Options that did not occur leave their field alone.
func (s *Schema) Bind(parsed *grammar.Parsed) error {
	for i, o := range s.Options.All() {
		raw, ok := parsed.Options[o.Key()]
		if !ok {
			continue
		}
		if err := s.bind(s.fields[i], raw); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) bind(f Field, raw grammar.RawValue) error {
	switch f.Type {
	case Bool:
		// Each occurrence flips the current value.
		for range raw.Count {
			*f.b = !*f.b
		}
	case String:
		if v, ok := raw.Last(); ok {
			*f.s = v
		}
	case StringList:
		vals := slices.Clone(raw.Values)
		if vals == nil {
			vals = []string{}
		}
		*f.l = vals
	default:
		return &TypeBindingError{Command: s.Command, Field: f.Name, Type: f.Type}
	}
	return nil
}
