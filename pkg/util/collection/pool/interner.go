// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package pool

import (
	"fmt"

	"github.com/consensys/go-sdd/pkg/util/collection/hash"
)

// Interner provides an abstraction for referring to values by a small index.
// Every value put into the interner is stored at most once, hence two values
// are equal exactly when their indices are.  Indices are allocated
// consecutively from zero and remain valid until the interner is cleared.
// An interner is single-owner: concurrent access must be serialised
// externally.
type Interner[T hash.Hasher[T]] struct {
	// values maps indices back to the values they were allocated for.
	values []T
	// buckets indexes stored values by hashcode.  Collisions are kept within
	// per-hash buckets and resolved via Equals.
	buckets map[uint64][]uint32
	// access counters
	hits, misses uint
}

// NewInterner constructs an empty interner.
func NewInterner[T hash.Hasher[T]]() *Interner[T] {
	return &Interner[T]{buckets: make(map[uint64][]uint32)}
}

// Put interns a value, returning the existing index when an equal value has
// been seen before and allocating the next consecutive index otherwise.
func (p *Interner[T]) Put(value T) uint32 {
	hashcode := value.Hash()
	// Attempt to lookup value
	for _, index := range p.buckets[hashcode] {
		if p.values[index].Equals(value) {
			p.hits++
			return index
		}
	}
	// Value not present, so add it.
	index := uint32(len(p.values))
	p.values = append(p.values, value)
	p.buckets[hashcode] = append(p.buckets[hashcode], index)
	p.misses++
	//
	return index
}

// Get returns the value previously allocated a given index.  This panics if
// the index was never allocated, which indicates either use of a stale index
// after Clear or an index from a different interner.
func (p *Interner[T]) Get(index uint32) T {
	if uint(index) >= uint(len(p.values)) {
		panic(fmt.Sprintf("unknown index %d (interner holds %d values)", index, len(p.values)))
	}
	//
	return p.values[index]
}

// Size returns the number of values currently interned.
func (p *Interner[T]) Size() uint {
	return uint(len(p.values))
}

// Clear drops every interned value, resetting the index counter to zero.  All
// outstanding indices become invalid.
func (p *Interner[T]) Clear() {
	p.values = nil
	p.buckets = make(map[uint64][]uint32)
	p.hits = 0
	p.misses = 0
}

// Each visits every interned value in allocation order, stopping early if the
// callback returns an error.
func (p *Interner[T]) Each(fn func(uint32, T) error) error {
	for i, value := range p.values {
		if err := fn(uint32(i), value); err != nil {
			return err
		}
	}
	//
	return nil
}

// Counters reports how many Put calls found an existing value, versus how many
// allocated a fresh index.
func (p *Interner[T]) Counters() (hits uint, misses uint) {
	return p.hits, p.misses
}
