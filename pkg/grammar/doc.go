// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grammar describes the option and operand grammar of a command and
// tokenizes raw arguments against it.
//
// A grammar is an OptionSet plus an ordered list of OperandSpec. A Tokenizer
// turns raw arguments into a Parsed value in one of two modes:
//   - Strict: unknown options fail with *UnknownOptionError, the operand
//     count is checked (*OperandError) and an undefined -h[OPTION] or
//     --help[=OPTION] stops with *HelpRequest
//   - Lenient: unknown options, help included, are dropped and operands are
//     returned as found. Values that do not fit an option's arity are
//     tolerated, as they may belong to a subcommand.
//
// Flag syntax follows github.com/spf13/pflag, which backs the default
// Tokenizer:
//   - toggles: -v, --verbose (no value may be attached)
//   - required values: -n alice, -n=alice, --name alice, --name=alice
//   - optional values: --region, --region=eu, --region eu, -r eu, -reu (a
//     detached value is taken when it does not start with '-')
//   - repeated values: --tag a --tag b
//   - "--" ends option parsing; everything after it is an operand
//
// Options are reported by count and value so callers decide what a repeated
// occurrence means.
package grammar
