// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/grailbio/simdviz/config"
	"github.com/grailbio/simdviz/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"v.io/x/lib/cmdline"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	env := &cmdline.Env{Stdout: &stdout, Stderr: &stderr}
	err := cmdline.ParseAndRun(newCmdRoot(), env, args)
	return stdout.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	for _, want := range []string{"Basic Operations", "Bitwise Operations", "Advanced Operations"} {
		assert.Contains(t, out, want)
	}
	for _, id := range op.Builtin().IDs() {
		assert.Contains(t, out, "  "+id+" ")
	}
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "xor")
	require.NoError(t, err)
	assert.Contains(t, out, "[4 4 4 12]")
	assert.Contains(t, out, "00001100")
	assert.Contains(t, out, "_mm256_xor_si256")

	out, err = run(t, "eval", "permute")
	require.NoError(t, err)
	assert.Contains(t, out, "[4 3 2 1]")
	assert.NotContains(t, out, "B:")
	assert.Contains(t, out, "Reorders elements across the entire vector.")

	_, err = run(t, "eval", "nonexistent")
	assert.True(t, op.IsUnknownOperation(err), "%v", err)
	_, err = run(t, "eval")
	assert.Error(t, err)
}

func TestServeStopsWithContext(t *testing.T) {
	cfg := config.Default()
	cfg.Addr = "localhost:0"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, serve(ctx, cfg))
}
