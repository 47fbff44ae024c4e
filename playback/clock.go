// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package playback

import (
	"sync"
	"time"
)

// A Ticker delivers ticks on C until it is stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// A Clock creates tickers. Machines use RealClock unless told otherwise.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// RealClock is the wall clock, backed by time.Ticker.
var RealClock Clock = realClock{}

type realClock struct{}

func (realClock) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// ManualClock is a Clock whose tickers fire only when Tick is called. It
// is intended for tests.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

// NewManualClock returns a ManualClock starting at the zero time.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// NewTicker implements Clock.
func (c *ManualClock) NewTicker(d time.Duration) Ticker {
	t := &manualTicker{
		period: d,
		c:      make(chan time.Time),
		stop:   make(chan struct{}),
	}
	c.mu.Lock()
	c.tickers = append(c.tickers, t)
	c.mu.Unlock()
	return t
}

// Tick advances the clock by the period of the live tickers and delivers
// one tick to each of them, blocking until every tick is received or its
// ticker is stopped. It returns the number of ticks delivered.
func (c *ManualClock) Tick() int {
	c.mu.Lock()
	live := c.liveLocked()
	if len(live) > 0 {
		c.now = c.now.Add(live[0].period)
	}
	now := c.now
	c.mu.Unlock()
	n := 0
	for _, t := range live {
		select {
		case t.c <- now:
			n++
		case <-t.stop:
		}
	}
	return n
}

// Active returns the number of tickers that have not been stopped.
func (c *ManualClock) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.liveLocked())
}

// Created returns the number of tickers ever created.
func (c *ManualClock) Created() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

func (c *ManualClock) liveLocked() []*manualTicker {
	var live []*manualTicker
	for _, t := range c.tickers {
		if !t.stopped() {
			live = append(live, t)
		}
	}
	return live
}

type manualTicker struct {
	period   time.Duration
	c        chan time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
}

func (t *manualTicker) stopped() bool {
	select {
	case <-t.stop:
		return true
	default:
		return false
	}
}
