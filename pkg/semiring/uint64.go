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

// Package semiring provides ready-made result domains for decision diagrams:
// the naturals, the boolean semiring, the tropical max-plus semiring and the
// scalar field of BLS12-377.
package semiring

import (
	"strconv"

	"github.com/consensys/go-sdd/pkg/util/collection/hash"
)

// Uint64 is the semiring of natural numbers under addition and
// multiplication.  Overflow wraps silently.
type Uint64 uint64

func (p Uint64) String() string {
	return strconv.FormatUint(uint64(p), 10)
}

// Equals implementation for the Hasher interface.
func (p Uint64) Equals(other Uint64) bool {
	return p == other
}

// Hash implementation for the Hasher interface.
func (p Uint64) Hash() uint64 {
	return hash.Uint64(uint64(p))
}

// Cmp implementation for the Comparable interface.
func (p Uint64) Cmp(other Uint64) int {
	switch {
	case p < other:
		return -1
	case p > other:
		return 1
	default:
		return 0
	}
}

// Zero implementation for the Semiring interface.
func (p Uint64) Zero() Uint64 {
	return 0
}

// One implementation for the Semiring interface.
func (p Uint64) One() Uint64 {
	return 1
}

// IsZero implementation for the Semiring interface.
func (p Uint64) IsZero() bool {
	return p == 0
}

// IsOne implementation for the Semiring interface.
func (p Uint64) IsOne() bool {
	return p == 1
}

// Add x + y
func (p Uint64) Add(other Uint64) Uint64 {
	return p + other
}

// Mul x * y
func (p Uint64) Mul(other Uint64) Uint64 {
	return p * other
}
