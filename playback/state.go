// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package playback

import (
	"fmt"

	"github.com/grailbio/simdviz/simd"
)

// State is the playback state of one view. The transition methods are
// pure: they return the next state and never touch timers; Machine
// performs the timer side effects implied by a change of Running.
//
// A state is running, paused or at rest. At rest, Step is 0.
type State struct {
	// Operation is the selected operation id. It is always registered.
	Operation string `json:"operation"`
	// Step is the highlighted lane, in [0, simd.Width).
	Step int `json:"step"`
	// Running is true while a tick source is active.
	Running bool `json:"running"`
	// Paused is true when a run was interrupted by Toggle and can be
	// resumed from Step.
	Paused bool `json:"paused"`
}

// AtRest tells whether s is neither running nor paused.
func (s State) AtRest() bool {
	return !s.Running && !s.Paused
}

func (s State) String() string {
	mode := "idle"
	switch {
	case s.Running:
		mode = "running"
	case s.Paused:
		mode = "paused"
	}
	return fmt.Sprintf("%s(%s, step %d)", mode, s.Operation, s.Step)
}

// Select changes the operation. The cursor and the running flag are
// kept, so a run in progress continues on the new operation.
func (s State) Select(id string) State {
	s.Operation = id
	return s
}

// Toggle starts an idle state or pauses a running one. Pausing keeps the
// cursor so that the next Toggle resumes from it.
func (s State) Toggle() State {
	s.Running = !s.Running
	s.Paused = !s.Running
	return s
}

// Tick advances the cursor of a running state. Advancing past the last
// lane ends the run: the cursor returns to 0 and the state comes to rest.
// Paused and resting states are returned unchanged.
func (s State) Tick() State {
	if !s.Running {
		return s
	}
	s.Step++
	if s.Step > simd.Width-1 {
		s.Step = 0
		s.Running = false
	}
	return s
}

// Reset stops playback and rewinds the cursor, keeping the operation.
func (s State) Reset() State {
	return State{Operation: s.Operation}
}
