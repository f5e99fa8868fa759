// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewColorizerModes(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer

	if !NewColorizer(ModeAlways, &buf).Enabled {
		t.Errorf("always: color disabled")
	}
	if NewColorizer(ModeNever, &buf).Enabled {
		t.Errorf("never: color enabled")
	}
	if NewColorizer(ModeAuto, &buf).Enabled {
		t.Errorf("auto: color enabled for a buffer")
	}
}

func TestNewColorizerEnvironment(t *testing.T) {
	var buf bytes.Buffer
	for _, env := range []struct{ term, noColor string }{
		{"dumb", ""},
		{"", ""},
		{"xterm", "1"},
	} {
		t.Setenv("TERM", env.term)
		t.Setenv("NO_COLOR", env.noColor)
		if NewColorizer(ModeAuto, &buf).Enabled {
			t.Errorf("TERM=%q NO_COLOR=%q: color enabled", env.term, env.noColor)
		}
	}
}

func TestColorizerWrap(t *testing.T) {
	plain := Colorizer{}
	if got := plain.Error("boom"); got != "boom" {
		t.Fatalf("disabled Error = %q, want %q", got, "boom")
	}

	c := Colorizer{Enabled: true}
	got := c.Flag("--name")
	if !strings.HasPrefix(got, "\x1b[") || !strings.Contains(got, "--name") || !strings.HasSuffix(got, "\x1b[0m") {
		t.Fatalf("enabled Flag = %q", got)
	}
	if got := c.Dim(""); got != "" {
		t.Fatalf("empty text wrapped: %q", got)
	}
}
