// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package playback implements the step-through state machine of a
// visualizer view: the selected operation, the highlighted lane and the
// play/pause flag, advanced by a periodic tick source.
//
// A Machine owns at most one ticker. Every transition that ends a run
// (pause, reset, completion, Close) stops the ticker and releases it
// before the new state is published, so no tick is ever applied after
// playback is observed as stopped.
package playback

import (
	"sync"
	"time"

	"github.com/grailbio/simdviz/errors"
	"github.com/grailbio/simdviz/log"
	"github.com/grailbio/simdviz/must"
	"github.com/grailbio/simdviz/op"
	"github.com/grailbio/simdviz/simd"
)

// DefaultPeriod is the time each lane stays highlighted.
const DefaultPeriod = time.Second

// Opts configures a Machine.
type Opts struct {
	// Clock creates the tick source. RealClock is used if nil.
	Clock Clock
	// Period is the tick period. DefaultPeriod is used if zero.
	Period time.Duration
}

// Machine is the playback state machine of one view. It is safe for
// concurrent use.
type Machine struct {
	reg    *op.Registry
	clock  Clock
	period time.Duration

	mu     sync.Mutex
	state  State
	ticker Ticker
	done   chan struct{}
	// gen is incremented whenever a ticker is started or stopped; a tick
	// carrying a stale generation is dropped.
	gen    uint64
	subs   map[int]chan State
	nextID int
	closed bool
	wg     sync.WaitGroup
}

// New returns an idle machine with reg's default operation selected.
func New(reg *op.Registry, opts Opts) *Machine {
	m := &Machine{
		reg:    reg,
		clock:  opts.Clock,
		period: opts.Period,
		state:  State{Operation: reg.Default()},
		subs:   make(map[int]chan State),
	}
	if m.clock == nil {
		m.clock = RealClock
	}
	if m.period == 0 {
		m.period = DefaultPeriod
	}
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// ActiveTimers returns the number of live tick sources, 0 or 1.
func (m *Machine) ActiveTimers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ticker == nil {
		return 0
	}
	return 1
}

// Select selects operation id. If id is not registered, Select returns an
// error for which op.IsUnknownOperation is true and the state is left
// unchanged. A run in progress keeps its timer and cursor.
func (m *Machine) Select(id string) (State, error) {
	if _, err := m.reg.Lookup(id); err != nil {
		return m.State(), err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return m.state, errClosed()
	}
	return m.transitionLocked(m.state.Select(id)), nil
}

// TogglePlay starts an idle machine or pauses a running one.
func (m *Machine) TogglePlay() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return m.state
	}
	return m.transitionLocked(m.state.Toggle())
}

// Reset stops playback and rewinds the cursor to lane 0. It is idempotent.
func (m *Machine) Reset() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transitionLocked(m.state.Reset())
}

// Subscribe returns a channel that receives the state after every
// transition, and a function that cancels the subscription. The channel
// holds only the latest state: a slow reader skips intermediate states
// but always sees the most recent one. The channel is closed by cancel
// or by Close.
func (m *Machine) Subscribe() (<-chan State, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan State, 1)
	if m.closed {
		close(ch)
		return ch, func() {}
	}
	id := m.nextID
	m.nextID++
	m.subs[id] = ch
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if c, ok := m.subs[id]; ok {
				delete(m.subs, id)
				close(c)
			}
		})
	}
}

// Close stops playback, releases the tick source and closes all
// subscriptions. Close waits for the tick goroutine to exit. Further
// transitions other than Reset are ignored.
func (m *Machine) Close() {
	m.mu.Lock()
	if !m.closed {
		m.stopLocked()
		m.state = m.state.Reset()
		m.closed = true
		for id, c := range m.subs {
			delete(m.subs, id)
			close(c)
		}
	}
	m.mu.Unlock()
	m.wg.Wait()
}

func (m *Machine) transitionLocked(next State) State {
	must.Truef(next.Step >= 0 && next.Step < simd.Width, "playback: step %d out of range", next.Step)
	prev := m.state
	m.state = next
	switch {
	case !prev.Running && next.Running:
		m.startLocked()
	case prev.Running && !next.Running:
		m.stopLocked()
	}
	if prev != next {
		log.Debug.Printf("playback: %v -> %v", prev, next)
		m.publishLocked()
	}
	return next
}

func (m *Machine) startLocked() {
	must.True(m.ticker == nil, "playback: ticker already running")
	m.ticker = m.clock.NewTicker(m.period)
	m.done = make(chan struct{})
	m.gen++
	m.wg.Add(1)
	go m.loop(m.ticker, m.done, m.gen)
}

func (m *Machine) stopLocked() {
	if m.ticker == nil {
		return
	}
	m.ticker.Stop()
	close(m.done)
	m.ticker, m.done = nil, nil
	m.gen++
}

func (m *Machine) loop(t Ticker, done <-chan struct{}, gen uint64) {
	defer m.wg.Done()
	for {
		select {
		case <-done:
			return
		case <-t.C():
			m.tick(gen)
		}
	}
}

func (m *Machine) tick(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen || m.closed {
		return
	}
	m.transitionLocked(m.state.Tick())
}

func (m *Machine) publishLocked() {
	for _, c := range m.subs {
		select {
		case c <- m.state:
		default:
			select {
			case <-c:
			default:
			}
			c <- m.state
		}
	}
}

func errClosed() error {
	return errors.E(errors.Precondition, "playback machine is closed")
}
