// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/yeetrun/cliff/pkg/cliff"
	"github.com/yeetrun/cliff/pkg/cmdutil"
)

type hello struct {
	name    string
	forever bool
}

func (h *hello) Fields() []cliff.Field {
	return []cliff.Field{
		cliff.StringVar(&h.name, "name", cliff.Usage("Who to greet")),
		cliff.BoolVar(&h.forever, "forever", cliff.Usage("Keep greeting every two seconds")),
	}
}

func (h *hello) Params() []cliff.Param { return nil }

func (h *hello) Run(ctx context.Context, _ cliff.Args) error {
	for {
		fmt.Printf("Hello, %s!\n", h.name)
		if !h.forever {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(2 * time.Second):
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	chain, err := (&cliff.Resolver{}).Resolve("hello", &hello{name: "World"}, os.Args[1:])
	if err == nil {
		err = chain.Execute(ctx)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(cmdutil.ExitCode(err))
	}
}
