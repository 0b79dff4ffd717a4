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

import (
	"fmt"
	"strings"

	"github.com/consensys/go-sdd/pkg/util/collection/pool"
)

// Engine owns a pool of interned nodes along with the operation caches built
// over them.  Identifiers handed out by one engine are meaningless to another,
// and all identifiers are invalidated by Clear.  An engine is not safe for
// concurrent use; the intended pattern is one engine per task.
type Engine[V Variable[V], L Lattice[L], R Semiring[R]] struct {
	// nodes interns every node ever constructed.  Children are always interned
	// strictly before their parents, hence no cycles.
	nodes *pool.Interner[Node[V, L, R]]
	// sums caches Sum results, keyed on normalised operand pairs.
	sums map[[2]NodeID]NodeID
	// prods caches Prod results, keyed on normalised operand pairs.
	prods map[[2]NodeID]NodeID
}

// NewEngine constructs a fresh engine with an empty pool.
func NewEngine[V Variable[V], L Lattice[L], R Semiring[R]]() *Engine[V, L, R] {
	return &Engine[V, L, R]{
		nodes: pool.NewInterner[Node[V, L, R]](),
		sums:  make(map[[2]NodeID]NodeID),
		prods: make(map[[2]NodeID]NodeID),
	}
}

// Get returns the node behind a given identifier.  This panics if the
// identifier was never allocated, which indicates either use of a stale
// identifier after Clear or an identifier from a different engine.
func (p *Engine[V, L, R]) Get(id NodeID) Node[V, L, R] {
	return p.nodes.Get(uint32(id))
}

// Size returns the number of nodes currently interned.
func (p *Engine[V, L, R]) Size() uint {
	return p.nodes.Size()
}

// Clear drops every interned node and cached operation result, resetting the
// identifier counter to zero.  All outstanding identifiers become invalid.
func (p *Engine[V, L, R]) Clear() {
	p.nodes.Clear()
	p.sums = make(map[[2]NodeID]NodeID)
	p.prods = make(map[[2]NodeID]NodeID)
}

// MkLeaf returns the diagram denoting the constant function value.
func (p *Engine[V, L, R]) MkLeaf(value R) NodeID {
	return NodeID(p.nodes.Put(Node[V, L, R]{Leaf: true, Value: value}))
}

// Const is a documented alias for MkLeaf.
func (p *Engine[V, L, R]) Const(value R) NodeID {
	return p.MkLeaf(value)
}

// MkBranch returns the diagram branching on variable v guarded by l, taking hi
// when the assigned value lies within l and lo otherwise.  When both branches
// coincide the branch is redundant and hi is returned unchanged.  Callers must
// ensure every branch key reachable through hi or lo is strictly greater than
// (v,l); the algebraic operations maintain this themselves.
func (p *Engine[V, L, R]) MkBranch(v V, l L, hi NodeID, lo NodeID) NodeID {
	if hi == lo {
		return hi
	}
	//
	return NodeID(p.nodes.Put(Node[V, L, R]{Var: v, Guard: l, Hi: hi, Lo: lo}))
}

// Atom returns the elementary diagram "if v lies within l then hi else lo",
// for constant results hi and lo.
func (p *Engine[V, L, R]) Atom(v V, l L, hi R, lo R) NodeID {
	return p.MkBranch(v, l, p.MkLeaf(hi), p.MkLeaf(lo))
}

// Peek exposes the constant value of a leaf diagram, with false indicating the
// diagram still depends on at least one variable.
func (p *Engine[V, L, R]) Peek(id NodeID) (R, bool) {
	node := p.Get(id)
	//
	return node.Value, node.Leaf
}

// Equal checks whether two diagrams are structurally identical, which
// hash-consing reduces to identifier equality.  Structurally identical diagrams
// denote the same function; structurally distinct diagrams built from
// different guards (such as complementary Bool guards with swapped children)
// may also denote the same function, and are reported unequal.
func (p *Engine[V, L, R]) Equal(x NodeID, y NodeID) bool {
	return x == y
}

// AllNodes visits every interned node in allocation order, stopping early if
// the callback returns an error.
func (p *Engine[V, L, R]) AllNodes(fn func(id NodeID, node Node[V, L, R]) error) error {
	return p.nodes.Each(func(index uint32, node Node[V, L, R]) error {
		return fn(NodeID(index), node)
	})
}

// String renders the diagram rooted at a given identifier.  Sharing within the
// DAG is not reflected; this is intended for small diagrams.
func (p *Engine[V, L, R]) String(id NodeID) string {
	node := p.Get(id)
	//
	if node.Leaf {
		return node.Value.String()
	}
	//
	return fmt.Sprintf("(%s∈%s ? %s : %s)",
		node.Var.String(), node.Guard.String(), p.String(node.Hi), p.String(node.Lo))
}

// Stats summarises pool occupancy and unique-table behaviour.
func (p *Engine[V, L, R]) Stats() string {
	var (
		builder      strings.Builder
		hits, misses = p.nodes.Counters()
	)
	//
	fmt.Fprintf(&builder, "Allocated:  %d\n", p.nodes.Size())
	fmt.Fprintf(&builder, "Accesses:   %d\n", hits+misses)
	fmt.Fprintf(&builder, "Hits:       %d\n", hits)
	fmt.Fprintf(&builder, "Misses:     %d\n", misses)
	fmt.Fprintf(&builder, "Cached ops: %d\n", len(p.sums)+len(p.prods))
	//
	return builder.String()
}
