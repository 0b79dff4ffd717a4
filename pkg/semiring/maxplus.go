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
package semiring

import (
	"strconv"

	"github.com/consensys/go-sdd/pkg/util/collection/hash"
)

// MaxPlus is the tropical semiring: maximum as sum and addition as product,
// with -∞ as the additive identity and 0 as the multiplicative identity.
type MaxPlus struct {
	// neginf marks the additive identity -∞.
	neginf bool
	// value is meaningless when neginf is set.
	value int64
}

// Tropical constructs a finite tropical value.
func Tropical(value int64) MaxPlus {
	return MaxPlus{value: value}
}

// NegInf constructs the additive identity -∞.
func NegInf() MaxPlus {
	return MaxPlus{neginf: true}
}

// Value returns the finite value held, with false for -∞.
func (p MaxPlus) Value() (int64, bool) {
	return p.value, !p.neginf
}

func (p MaxPlus) String() string {
	if p.neginf {
		return "-∞"
	}
	//
	return strconv.FormatInt(p.value, 10)
}

// Equals implementation for the Hasher interface.
func (p MaxPlus) Equals(other MaxPlus) bool {
	if p.neginf || other.neginf {
		return p.neginf == other.neginf
	}
	//
	return p.value == other.value
}

// Hash implementation for the Hasher interface.
func (p MaxPlus) Hash() uint64 {
	if p.neginf {
		return hash.Uint64(0) ^ 0x5bf03635
	}
	//
	return hash.Uint64(uint64(p.value))
}

// Cmp implementation for the Comparable interface, with -∞ below everything.
func (p MaxPlus) Cmp(other MaxPlus) int {
	switch {
	case p.neginf && other.neginf:
		return 0
	case p.neginf:
		return -1
	case other.neginf:
		return 1
	case p.value < other.value:
		return -1
	case p.value > other.value:
		return 1
	default:
		return 0
	}
}

// Zero implementation for the Semiring interface.
func (p MaxPlus) Zero() MaxPlus {
	return NegInf()
}

// One implementation for the Semiring interface.
func (p MaxPlus) One() MaxPlus {
	return Tropical(0)
}

// IsZero implementation for the Semiring interface.
func (p MaxPlus) IsZero() bool {
	return p.neginf
}

// IsOne implementation for the Semiring interface.
func (p MaxPlus) IsOne() bool {
	return !p.neginf && p.value == 0
}

// Add max(x,y)
func (p MaxPlus) Add(other MaxPlus) MaxPlus {
	if p.Cmp(other) >= 0 {
		return p
	}
	//
	return other
}

// Mul x + y, with -∞ absorbing.
func (p MaxPlus) Mul(other MaxPlus) MaxPlus {
	if p.neginf || other.neginf {
		return NegInf()
	}
	//
	return Tropical(p.value + other.value)
}
