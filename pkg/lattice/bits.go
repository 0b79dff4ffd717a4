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
package lattice

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-sdd/pkg/util/collection/hash"
)

// Bits constrains a variable to a finite set of small naturals, backed by a
// bitset.  Every meet and join is representable (intersection and union of
// sets), with an empty intersection reported as a missing meet.  A Bits value
// must be treated as immutable once used as a guard.
type Bits struct {
	set *bitset.BitSet
}

// NewBits constructs the constraint admitting exactly the given values, which
// must be non-empty.
func NewBits(values ...uint) Bits {
	if len(values) == 0 {
		panic("empty bitset constraint")
	}
	//
	set := bitset.New(uint(len(values)))
	//
	for _, value := range values {
		set.Set(value)
	}
	//
	return Bits{set}
}

// Contains checks whether a given value satisfies this constraint.
func (p Bits) Contains(value uint) bool {
	return p.set.Test(value)
}

func (p Bits) String() string {
	return p.set.String()
}

// Equals implementation for the Hasher interface.
func (p Bits) Equals(other Bits) bool {
	return p.Cmp(other) == 0
}

// Hash implementation for the Hasher interface.
func (p Bits) Hash() uint64 {
	return hash.Words(trim(p.set.Bytes()))
}

// Cmp implementation for the Comparable interface.  Sets are ordered as the
// numbers obtained by reading their membership words from the highest down,
// which is a total order consistent with Equals.
func (p Bits) Cmp(other Bits) int {
	var (
		lhs = trim(p.set.Bytes())
		rhs = trim(other.set.Bytes())
	)
	//
	switch {
	case len(lhs) < len(rhs):
		return -1
	case len(lhs) > len(rhs):
		return 1
	}
	//
	for i := len(lhs) - 1; i >= 0; i-- {
		switch {
		case lhs[i] < rhs[i]:
			return -1
		case lhs[i] > rhs[i]:
			return 1
		}
	}
	//
	return 0
}

// SubsetEq implementation for the Lattice interface (set inclusion).
func (p Bits) SubsetEq(other Bits) bool {
	return other.set.IsSuperSet(p.set)
}

// Meet implementation for the Lattice interface.  Intersections are always
// representable, hence tightness never fails on its own.
func (p Bits) Meet(other Bits, tight bool) (Bits, bool) {
	meet := p.set.Intersection(other.set)
	//
	if meet.None() {
		return Bits{}, false
	}
	//
	return Bits{meet}, true
}

// Join implementation for the Lattice interface.  Unions are always
// representable.
func (p Bits) Join(other Bits, tight bool) (Bits, bool) {
	return Bits{p.set.Union(other.set)}, true
}

// trim drops trailing zero words so that hashes and comparisons are oblivious
// to bitset capacity.
func trim(words []uint64) []uint64 {
	n := len(words)
	//
	for n > 0 && words[n-1] == 0 {
		n--
	}
	//
	return words[:n]
}
