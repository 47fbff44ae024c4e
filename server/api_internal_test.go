// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/grailbio/simdviz/errors"
	"github.com/grailbio/simdviz/op"
	"github.com/grailbio/simdviz/playback"
)

func TestStatusCode(t *testing.T) {
	_, unknown := op.Builtin().Lookup("nonexistent")
	for _, c := range []struct {
		err  error
		want int
	}{
		{unknown, http.StatusNotFound},
		{errors.E(errors.Invalid, "bad"), http.StatusBadRequest},
		{errors.E(errors.Precondition, "closed"), http.StatusConflict},
		{errors.E(errors.Unavailable, "busy"), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	} {
		if got := statusCode(c.err); got != c.want {
			t.Errorf("statusCode(%v): got %d, want %d", c.err, got, c.want)
		}
	}
}

func TestRowOf(t *testing.T) {
	s := New(Opts{})
	defer s.Close()
	f, err := s.frame(playback.State{Operation: "and", Step: 2, Running: true})
	if err != nil {
		t.Fatal(err)
	}
	r := rowOf(f.Result, f.Highlight)
	if got, want := len(r.Cells), 4; got != want {
		t.Fatalf("got %d cells, want %d", got, want)
	}
	for i, c := range r.Cells {
		if c.Highlight != (i == 2) {
			t.Errorf("lane %d: highlight %v", i, c.Highlight)
		}
		if c.Binary == "" {
			t.Errorf("lane %d: missing binary", i)
		}
	}
}

func TestSweepEveryClampsInterval(t *testing.T) {
	s := New(Opts{})
	defer s.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, d := range []time.Duration{0, time.Nanosecond, -time.Second} {
		if err := s.SweepEvery(ctx, d); err != nil {
			t.Errorf("SweepEvery(%v): %v", d, err)
		}
	}
}
