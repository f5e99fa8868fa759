// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliff

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/yeetrun/cliff/pkg/grammar"
)

// Node is one resolved command. A node that forwarded to another command
// has a Next link; its own fields were not bound and its Args are the
// operands found while probing.
type Node struct {
	Name    string
	Command Command
	Schema  *Schema
	Parsed  *grammar.Parsed
	Args    Args
	Next    *Node
}

// Forwarded reports whether the node handed its arguments to Next.
func (n *Node) Forwarded() bool {
	return n.Next != nil
}

// Chain is the result of Resolver.Resolve.
type Chain struct {
	// ID correlates the log records of one resolution and execution.
	ID   string
	Root *Node

	logger *slog.Logger
}

// Nodes iterates the chain from root to leaf.
func (c *Chain) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := c.Root; n != nil; n = n.Next {
			if !yield(n) {
				return
			}
		}
	}
}

// Leaf returns the last node, the one whose fields were bound.
func (c *Chain) Leaf() *Node {
	n := c.Root
	for n != nil && n.Next != nil {
		n = n.Next
	}
	return n
}

// Execute runs the entry point of every node from root to leaf. Nodes that
// are not Runners are skipped. The first error stops the walk.
func (c *Chain) Execute(ctx context.Context) error {
	logger := c.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	for n := range c.Nodes() {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, ok := n.Command.(Runner)
		if !ok {
			logger.Debug("no entry point", "command", n.Name)
			continue
		}
		logger.Debug("running", "command", n.Name, "operands", n.Args.All())
		if err := r.Run(ctx, n.Args); err != nil {
			return fmt.Errorf("%s: %w", n.Name, err)
		}
	}
	return nil
}
