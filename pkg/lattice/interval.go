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
	"fmt"

	"github.com/consensys/go-sdd/pkg/util/collection/hash"
)

// Interval constrains an integer variable to a closed interval [Lo,Hi].
// Intervals are always non-empty.  Meets (intersections) are representable
// whenever non-empty, whilst the tight join of two intervals separated by a
// gap does not exist as an interval.
type Interval struct {
	// Lo is the least value within the interval.
	Lo int64
	// Hi is the greatest value within the interval.
	Hi int64
}

// NewInterval constructs the interval [lo,hi], panicking when it is empty.
func NewInterval(lo int64, hi int64) Interval {
	if lo > hi {
		panic(fmt.Sprintf("empty interval [%d,%d]", lo, hi))
	}
	//
	return Interval{Lo: lo, Hi: hi}
}

// Point constructs the singleton interval [val,val].
func Point(val int64) Interval {
	return Interval{Lo: val, Hi: val}
}

func (p Interval) String() string {
	return fmt.Sprintf("[%d,%d]", p.Lo, p.Hi)
}

// Equals implementation for the Hasher interface.
func (p Interval) Equals(other Interval) bool {
	return p == other
}

// Hash implementation for the Hasher interface.
func (p Interval) Hash() uint64 {
	return hash.Words([]uint64{uint64(p.Lo), uint64(p.Hi)})
}

// Cmp implementation for the Comparable interface, ordering intervals
// lexicographically by lower then upper bound.
func (p Interval) Cmp(other Interval) int {
	switch {
	case p.Lo < other.Lo:
		return -1
	case p.Lo > other.Lo:
		return 1
	case p.Hi < other.Hi:
		return -1
	case p.Hi > other.Hi:
		return 1
	default:
		return 0
	}
}

// SubsetEq implementation for the Lattice interface (interval containment).
func (p Interval) SubsetEq(other Interval) bool {
	return other.Lo <= p.Lo && p.Hi <= other.Hi
}

// Meet implementation for the Lattice interface.  The intersection of two
// intervals is itself an interval, hence the meet is tight whenever it is
// non-empty.
func (p Interval) Meet(other Interval, tight bool) (Interval, bool) {
	lo := max(p.Lo, other.Lo)
	hi := min(p.Hi, other.Hi)
	//
	if lo > hi {
		return Interval{}, false
	}
	//
	return Interval{Lo: lo, Hi: hi}, true
}

// Join implementation for the Lattice interface.  The convex hull covers the
// union exactly only when the two intervals overlap or abut; a tight join
// across a gap does not exist.
func (p Interval) Join(other Interval, tight bool) (Interval, bool) {
	lo := min(p.Lo, other.Lo)
	hi := max(p.Hi, other.Hi)
	//
	if tight && gap(p, other) {
		return Interval{}, false
	}
	//
	return Interval{Lo: lo, Hi: hi}, true
}

// gap checks whether two intervals are separated by at least one absent value.
// The first conjunct guards the second against overflow at the top of the
// int64 range.
func gap(p Interval, q Interval) bool {
	if p.Lo > q.Lo {
		p, q = q, p
	}
	//
	return p.Hi < q.Lo && p.Hi+1 < q.Lo
}
