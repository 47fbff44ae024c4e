// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package playback_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/grailbio/simdviz/playback"
)

func running(op string, step int) playback.State {
	return playback.State{Operation: op, Step: step, Running: true}
}

func paused(op string, step int) playback.State {
	return playback.State{Operation: op, Step: step, Paused: true}
}

func rest(op string) playback.State {
	return playback.State{Operation: op}
}

func TestStateTransitions(t *testing.T) {
	selectMin := func(s playback.State) playback.State { return s.Select("min") }
	for _, c := range []struct {
		name string
		from playback.State
		f    func(playback.State) playback.State
		want playback.State
	}{
		{"toggle rest", rest("add"), playback.State.Toggle, running("add", 0)},
		{"toggle running", running("add", 2), playback.State.Toggle, paused("add", 2)},
		{"toggle running at lane 0", running("add", 0), playback.State.Toggle, paused("add", 0)},
		{"toggle paused", paused("add", 2), playback.State.Toggle, running("add", 2)},
		{"tick", running("add", 0), playback.State.Tick, running("add", 1)},
		{"tick last lane", running("add", 3), playback.State.Tick, rest("add")},
		{"tick paused", paused("add", 2), playback.State.Tick, paused("add", 2)},
		{"tick rest", rest("add"), playback.State.Tick, rest("add")},
		{"reset running", running("xor", 2), playback.State.Reset, rest("xor")},
		{"reset paused", paused("xor", 0), playback.State.Reset, rest("xor")},
		{"reset rest", rest("xor"), playback.State.Reset, rest("xor")},
		{"select keeps run", running("add", 2), selectMin, running("min", 2)},
		{"select keeps pause", paused("add", 1), selectMin, paused("min", 1)},
	} {
		if diff := deep.Equal(c.f(c.from), c.want); diff != nil {
			t.Errorf("%s: %v", c.name, diff)
		}
	}
}

func TestPauseAtLaneZeroIsNotRest(t *testing.T) {
	s := rest("add").Toggle().Toggle()
	if s.AtRest() {
		t.Errorf("%v is at rest", s)
	}
	if !s.Toggle().Tick().Reset().AtRest() {
		t.Error("reset state is not at rest")
	}
}

func TestFullRunStaysInRange(t *testing.T) {
	s := playback.State{Operation: "add"}.Toggle()
	var steps []int
	for i := 0; i < 4; i++ {
		s = s.Tick()
		if s.Step < 0 || s.Step > 3 {
			t.Fatalf("step %d out of range", s.Step)
		}
		steps = append(steps, s.Step)
	}
	if diff := deep.Equal(steps, []int{1, 2, 3, 0}); diff != nil {
		t.Error(diff)
	}
	if !s.AtRest() {
		t.Errorf("run did not stop after four ticks: %v", s)
	}
}

func TestResetIdempotent(t *testing.T) {
	for _, s := range []playback.State{
		rest("add"),
		paused("add", 3),
		running("permute", 1),
	} {
		once := s.Reset()
		if once != (playback.State{Operation: s.Operation}) {
			t.Errorf("Reset(%v) = %v", s, once)
		}
		if twice := once.Reset(); twice != once {
			t.Errorf("Reset not idempotent: %v then %v", once, twice)
		}
	}
}

func TestStateString(t *testing.T) {
	for _, c := range []struct {
		s    playback.State
		want string
	}{
		{running("add", 2), "running(add, step 2)"},
		{paused("add", 0), "paused(add, step 0)"},
		{rest("xor"), "idle(xor, step 0)"},
	} {
		if got := c.s.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}
