// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package naming converts between field names, flag names and command paths.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Separator is inserted by FlagName between words.
const Separator = '-'

// PathSeparator joins the segments of a canonical command path.
const PathSeparator = "/"

// FlagName converts a camelCase field name to its long flag form.
//
//	FlagName("dryRun") == "dry-run"
//
// Only names that start in lowercase, have no two uppercase letters in a
// row and contain no separator survive FieldName(FlagName(name)):
// "URL" becomes "u-r-l" and comes back as "uRL".
func FlagName(field string) string {
	var b strings.Builder
	b.Grow(len(field) + 4)
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteRune(Separator)
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FieldName is the inverse of FlagName. Both '-' and '_' are accepted as
// separators; a trailing separator is dropped.
//
//	FieldName("dry-run") == "dryRun"
func FieldName(flag string) string {
	var b strings.Builder
	b.Grow(len(flag))
	upper := false
	for _, r := range flag {
		if isSeparator(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_'
}

// CommandPath normalizes a command name as typed on the command line to its
// canonical path. Segments may be separated by '/' or ':'; each segment is
// lowercased and then capitalized, and empty segments are dropped.
//
//	CommandPath("foo:bar") == CommandPath("foo/bar") == "Foo/Bar"
func CommandPath(name string) string {
	return strings.Join(Segments(name), PathSeparator)
}

// Segments returns the canonical segments of a command name.
func Segments(name string) []string {
	parts := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == '/' || r == ':'
	})
	for i, part := range parts {
		parts[i] = capitalize(part)
	}
	return parts
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
