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
package dd

import "github.com/consensys/go-sdd/pkg/util/collection/hash"

// Ident is a ready-made variable implementation: a name paired with an index
// which determines the variable order.  Names carry no semantic weight.
type Ident struct {
	// Index of this variable within the overall order.
	Index uint32
	// Name of this variable (for rendering only).
	Name string
}

// NewIdent constructs a variable at a given position in the variable order.
func NewIdent(index uint32, name string) Ident {
	return Ident{Index: index, Name: name}
}

func (p Ident) String() string {
	return p.Name
}

// Equals implementation for the Hasher interface.
func (p Ident) Equals(other Ident) bool {
	return p.Index == other.Index
}

// Hash implementation for the Hasher interface.
func (p Ident) Hash() uint64 {
	return hash.Uint64(uint64(p.Index))
}

// Cmp implementation for the Comparable interface.
func (p Ident) Cmp(other Ident) int {
	switch {
	case p.Index < other.Index:
		return -1
	case p.Index > other.Index:
		return 1
	default:
		return 0
	}
}
