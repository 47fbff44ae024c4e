// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.
//
// Package ttlcache implements a cache with a fixed TTL. The TTL of an item
// restarts every time the item is set or successfully read.
//
// Expired items are removed lazily, when they are next read, and by Sweep.
// The eviction callback is called for every removed item, outside the
// cache lock, so that owners can release resources (e.g. timers) held by
// the value.

package ttlcache

import (
	"sync"
	"time"
)

type cacheValue[V any] struct {
	value      V
	expiration time.Time
}

type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	cache   map[K]cacheValue[V]
	ttl     time.Duration
	now     func() time.Time
	onEvict func(K, V)
}

// New returns a cache whose items expire ttl after they were last set or
// read. onEvict, if not nil, is called for every item removed by
// expiry or Delete.
func New[K comparable, V any](ttl time.Duration, onEvict func(K, V)) *Cache[K, V] {
	return &Cache[K, V]{
		cache:   map[K]cacheValue[V]{},
		ttl:     ttl,
		now:     time.Now,
		onEvict: onEvict,
	}
}

// SetNow replaces the cache's time source. It is intended for tests.
func (c *Cache[K, V]) SetNow(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// Get returns the value of key, refreshing its TTL.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	v, ok := c.cache[key]
	now := c.now()
	if ok && v.expiration.After(now) {
		v.expiration = now.Add(c.ttl)
		c.cache[key] = v
		c.mu.Unlock()
		return v.value, true
	}
	if ok {
		delete(c.cache, key) // key is expired - delete it.
	}
	c.mu.Unlock()
	if ok {
		c.evict(key, v.value)
	}
	var zero V
	return zero, false
}

// Set stores value under key with a fresh TTL. A replaced value is not
// passed to the eviction callback.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	c.cache[key] = cacheValue[V]{
		value:      value,
		expiration: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Delete removes key, calling the eviction callback if it was present.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	v, ok := c.cache[key]
	delete(c.cache, key)
	c.mu.Unlock()
	if ok {
		c.evict(key, v.value)
	}
}

// Sweep removes every expired item and returns how many were removed.
func (c *Cache[K, V]) Sweep() int {
	type kv struct {
		k K
		v V
	}
	var expired []kv
	c.mu.Lock()
	now := c.now()
	for k, v := range c.cache {
		if !v.expiration.After(now) {
			expired = append(expired, kv{k, v.value})
			delete(c.cache, k)
		}
	}
	c.mu.Unlock()
	for _, e := range expired {
		c.evict(e.k, e.v)
	}
	return len(expired)
}

// Len returns the number of items in the cache, including expired items
// that have not been swept yet.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

// Clear removes every item, calling the eviction callback for each.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	items := c.cache
	c.cache = map[K]cacheValue[V]{}
	c.mu.Unlock()
	for k, v := range items {
		c.evict(k, v.value)
	}
}

func (c *Cache[K, V]) evict(k K, v V) {
	if c.onEvict != nil {
		c.onEvict(k, v)
	}
}
