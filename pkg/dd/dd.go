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

// Package dd implements reduced ordered decision diagrams parameterised by a
// variable domain, a lattice of variable values and a result semiring.  A
// diagram denotes a function from total variable assignments into the result
// semiring: a leaf denotes a constant function, whilst a branch (v,l,t,f)
// denotes "if the value assigned to v lies within l then t else f".  Diagrams
// are hash-consed within an engine, hence structural equality of diagrams
// reduces to equality of their identifiers.
package dd

import (
	"fmt"

	"github.com/consensys/go-sdd/pkg/util/collection/array"
	"github.com/consensys/go-sdd/pkg/util/collection/hash"
)

// Variable is implemented by types usable as decision variables.  The order
// induced by Cmp fixes the variable order of every diagram built over V, and
// must be consistent with Equals and Hash.
type Variable[V any] interface {
	fmt.Stringer
	hash.Hasher[V]
	array.Comparable[V]
}

// Lattice is implemented by types usable as branch guards.  An element
// represents a set of variable values, and a branch is taken when the value
// assigned to its variable lies within the guard (in the SubsetEq sense).  Cmp
// is an arbitrary total order used for tie-breaking amongst guards sharing a
// variable, and must be consistent with Equals and Hash.
type Lattice[L any] interface {
	fmt.Stringer
	hash.Hasher[L]
	array.Comparable[L]
	// SubsetEq reports whether every value within this element also lies
	// within the other.  It must be reflexive and transitive.
	SubsetEq(other L) bool
	// Meet returns the greatest lower bound of two elements, with false
	// indicating either that the meet is empty or (when tight is requested)
	// that it exists as a set but cannot be represented by a single element.
	Meet(other L, tight bool) (L, bool)
	// Join returns the least upper bound of two elements, with false
	// indicating either that the join is empty or (when tight is requested)
	// that it exists as a set but cannot be represented by a single element.
	Join(other L, tight bool) (L, bool)
}

// Semiring is implemented by types usable as diagram results.  Add and Mul
// must be associative and commutative, with Zero as the identity of Add and
// the absorbing element of Mul, and One as the identity of Mul.
type Semiring[R any] interface {
	fmt.Stringer
	hash.Hasher[R]
	array.Comparable[R]
	// Zero returns the additive identity.
	Zero() R
	// One returns the multiplicative identity.
	One() R
	// IsZero checks whether this is the additive identity.
	IsZero() bool
	// IsOne checks whether this is the multiplicative identity.
	IsOne() bool
	// Add x + y
	Add(y R) R
	// Mul x * y
	Mul(y R) R
}

// NodeID identifies an interned node within a given engine.  Identifiers are
// allocated consecutively from zero, and remain valid until the owning engine
// is cleared.  Two diagrams within the same engine with equal identifiers denote
// the same function.  The converse holds only for diagrams testing each
// variable through the same guards: diagrams built from different guards (for
// instance complementary Bool guards with swapped children) may denote the
// same function under distinct identifiers.
type NodeID uint32

// Assignment constrains the value of a single variable to lie within a given
// lattice element.
type Assignment[V Variable[V], L Lattice[L]] struct {
	// Var is the constrained variable.
	Var V
	// Val bounds the values Var may take.
	Val L
}

// Cmp implementation for the Comparable interface.  Assignments are ordered by
// variable first so that sorted assignment lists align with diagram order.
func (p Assignment[V, L]) Cmp(other Assignment[V, L]) int {
	if c := p.Var.Cmp(other.Var); c != 0 {
		return c
	}
	//
	return p.Val.Cmp(other.Val)
}
