// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package resolve

import "sync"

// Cache memoizes resolved values, e.g. canonical qualified names of symbols.
// It is owned by the caller and safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu     sync.RWMutex
	values map[K]V
	hits   int64
}

// NewCache creates an empty [Cache].
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{values: make(map[K]V)}
}

// Get returns the cached value for key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if c == nil {
		var zero V

		return zero, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.values[key]

	return v, ok
}

// GetOrCompute returns the cached value for key, calling compute and storing its
// result on a miss. A nil cache always computes.
func (c *Cache[K, V]) GetOrCompute(key K, compute func(K) V) V {
	if c == nil {
		return compute(key)
	}

	c.mu.RLock()
	v, ok := c.values[key]
	c.mu.RUnlock()

	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()

		return v
	}

	v = compute(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.values[key]; ok {
		return existing
	}

	c.values[key] = v

	return v
}

// Stats returns the number of cache hits and entries.
func (c *Cache[K, V]) Stats() (hits int64, entries int) {
	if c == nil {
		return 0, 0
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.hits, len(c.values)
}
