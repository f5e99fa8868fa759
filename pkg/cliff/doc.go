// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cliff binds command-line arguments onto declaratively described
// commands.
//
// A command lists its fields with BoolVar, StringVar and StringsVar. Derive
// turns those into an option grammar: every field gets a long flag (the
// kebab-case field name, unless the name is a single character) and, when
// one is still free, a short flag. Booleans are toggles, lists repeat, and
// strings take a value that is optional only when the field has a default.
//
// Commands implementing Runner also declare positional parameters and an
// entry point. A Resolver looks at the first operand of a command; if it
// names a command in the Registry, the remaining arguments are handed to
// that command and the two are linked into a Chain. Chain.Execute then runs
// every entry point from the root to the leaf.
package cliff
