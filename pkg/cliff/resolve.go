// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliff

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/yeetrun/cliff/pkg/grammar"
)

// Resolver turns raw arguments into a chain of bound commands.
//
// Each command is first tokenized leniently to find its operands. When the
// first operand names a registered command, that operand is removed and the
// remaining arguments are resolved against the named command, which becomes
// the next link of the chain. Otherwise the arguments are tokenized strictly
// and bound onto the command's fields.
type Resolver struct {
	// Registry holds the commands that can be forwarded to. A nil
	// Registry disables forwarding.
	Registry *Registry

	// Tokenizer defaults to grammar.Pflag.
	Tokenizer grammar.Tokenizer

	// Logger receives debug records for every decision. Defaults to
	// discarding.
	Logger *slog.Logger

	// Presets returns arguments placed before a leaf command's own
	// arguments, keyed by the command's name or canonical path.
	Presets func(path string) []string
}

// Resolve builds the chain rooted at root. name identifies the root in
// errors and presets. args must not include the program name.
func (r *Resolver) Resolve(name string, root Command, args []string) (*Chain, error) {
	id := uuid.NewString()
	logger := r.logger().With("chain", id)
	node, err := r.resolve(logger, name, root, args)
	if err != nil {
		return nil, err
	}
	return &Chain{ID: id, Root: node, logger: logger}, nil
}

func (r *Resolver) resolve(logger *slog.Logger, name string, cmd Command, args []string) (*Node, error) {
	if cmd == nil {
		return nil, &ConfigurationError{Command: name, Reason: "factory returned nil"}
	}
	schema, err := Derive(name, cmd)
	if err != nil {
		return nil, err
	}
	tok := r.tokenizer()

	probe, err := tok.Tokenize(schema.Options, schema.Operands, args, grammar.Lenient)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("probed", "command", name, "args", args, "operands", probe.Operands)

	if len(probe.Operands) > 0 {
		if path, factory, ok := r.Registry.Lookup(probe.Operands[0]); ok {
			rest := shift(tok, schema, args, probe)
			logger.Debug("forwarding", "command", name, "to", path, "args", rest)
			next, err := r.resolve(logger, path, factory(), rest)
			if err != nil {
				return nil, err
			}
			return &Node{
				Name:    name,
				Command: cmd,
				Schema:  schema,
				Parsed:  probe,
				Args:    NewArgs(schema.params, probe.Operands),
				Next:    next,
			}, nil
		}
	}

	if r.Presets != nil {
		if preset := r.Presets(name); len(preset) > 0 {
			args = append(slices.Clone(preset), args...)
			logger.Debug("applied preset", "command", name, "preset", preset)
		}
	}
	parsed, err := tok.Tokenize(schema.Options, schema.Operands, args, grammar.Strict)
	if errors.Is(err, grammar.ErrHelp) {
		return nil, helpError(name, schema, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := schema.Bind(parsed); err != nil {
		return nil, err
	}
	logger.Debug("bound", "command", name, "options", len(parsed.Options), "operands", parsed.Operands)
	return &Node{
		Name:    name,
		Command: cmd,
		Schema:  schema,
		Parsed:  parsed,
		Args:    NewArgs(schema.params, parsed.Operands),
	}, nil
}

// helpError turns a help request into a *HelpError for the command. A
// request for an option the command does not define is an
// *grammar.UnknownOptionError.
func helpError(name string, schema *Schema, err error) error {
	var req *grammar.HelpRequest
	if !errors.As(err, &req) || req.Option == "" {
		return &HelpError{Command: name, Schema: schema}
	}
	if _, ok := schema.Field(req.Option); !ok {
		return fmt.Errorf("%s: %w", name, &grammar.UnknownOptionError{Flag: req.Option})
	}
	return &HelpError{Command: name, Schema: schema, Option: req.Option}
}

// shift removes the probe's first operand from args. The token is located
// by re-probing, so a flag value equal to the operand is left in place.
func shift(tok grammar.Tokenizer, schema *Schema, args []string, probe *grammar.Parsed) []string {
	lead := probe.Operands[0]
	for i, arg := range args {
		if arg != lead {
			continue
		}
		rest := removeArgAt(args, i)
		p, err := tok.Tokenize(schema.Options, schema.Operands, rest, grammar.Lenient)
		if err == nil && slices.Equal(p.Operands, probe.Operands[1:]) {
			return rest
		}
	}
	return removeArgAt(args, slices.Index(args, lead))
}

func removeArgAt(args []string, idx int) []string {
	if idx < 0 || idx >= len(args) {
		return args
	}
	out := make([]string, 0, len(args)-1)
	out = append(out, args[:idx]...)
	out = append(out, args[idx+1:]...)
	return out
}

func (r *Resolver) tokenizer() grammar.Tokenizer {
	if r.Tokenizer != nil {
		return r.Tokenizer
	}
	return grammar.Pflag{}
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}
