// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ttlcache_test

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/grailbio/simdviz/ttlcache"
)

type fakeNow struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeNow) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeNow) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func TestCache(t *testing.T) {
	for _, test := range []struct {
		setKey   int
		setValue string

		getKey    int
		wantValue string
		wantFound bool
	}{
		{10, "10", 10, "10", true},
		{10, "10", 11, "", false},
		{10, "10", 0, "", false},
	} {
		c := ttlcache.New[int, string](time.Minute, nil)
		c.Set(test.setKey, test.setValue)
		if gotValue, gotFound := c.Get(test.getKey); (gotFound != test.wantFound) || (gotValue != test.wantValue) {
			t.Errorf("unexpected result for %+v: want (%v, %v), got (%v, %v)", test, test.wantFound, test.wantValue, gotFound, gotValue)
		}
	}
}

func TestCacheTTL(t *testing.T) {
	now := &fakeNow{t: time.Unix(1000, 0)}
	var evicted []string
	c := ttlcache.New(10*time.Second, func(k string, _ int) { evicted = append(evicted, k) })
	c.SetNow(now.Now)
	c.Set("a", 1)
	c.Set("b", 2)
	now.Advance(6 * time.Second)
	if _, ok := c.Get("a"); !ok {
		t.Error("missing key a")
	}
	now.Advance(6 * time.Second)
	// a was refreshed by Get; b was not.
	if _, ok := c.Get("a"); !ok {
		t.Error("key a expired despite being read")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("unexpected key b")
	}
	if got, want := evicted, []string{"b"}; len(got) != 1 || got[0] != want[0] {
		t.Errorf("evicted %v, want %v", got, want)
	}
}

func TestSweepAndDelete(t *testing.T) {
	now := &fakeNow{t: time.Unix(1000, 0)}
	evicted := map[string]int{}
	c := ttlcache.New(time.Second, func(k string, v int) { evicted[k] = v })
	c.SetNow(now.Now)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	c.Delete("c")
	c.Delete("missing")
	if got, want := evicted["c"], 3; got != want {
		t.Errorf("Delete: evicted %v, want %v", got, want)
	}
	now.Advance(2 * time.Second)
	c.Set("d", 4)
	if got, want := c.Sweep(), 2; got != want {
		t.Errorf("Sweep removed %d, want %d", got, want)
	}
	if got, want := c.Len(), 1; got != want {
		t.Errorf("Len %d, want %d", got, want)
	}
	c.Clear()
	if got, want := len(evicted), 4; got != want {
		t.Errorf("evicted %v", evicted)
	}
	if c.Len() != 0 {
		t.Error("Clear left items")
	}
}

// TestCacheConcurrent can fail implicitly by deadlocking.
func TestCacheConcurrent(t *testing.T) {
	c := ttlcache.New[int, int](time.Minute, func(int, int) {})
	wg := sync.WaitGroup{}
	deadline := time.Now().Add(100 * time.Millisecond)
	key := 10
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for !time.Now().After(deadline) {
				switch rand.Int() % 3 {
				case 0:
					c.Get(key)
				case 1:
					c.Set(key, i)
				default:
					c.Delete(key)
				}
			}
		}(i)
	}
	wg.Wait()
}
