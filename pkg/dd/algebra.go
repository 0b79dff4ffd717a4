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
	"slices"
)

// operator discriminates the two apply-style operations sharing a skeleton.
type operator int

const (
	opSum operator = iota
	opProd
)

func (p operator) String() string {
	if p == opSum {
		return "sum"
	}
	//
	return "prod"
}

// Fold computes a catamorphism over the diagram rooted at a given identifier:
// leaf is applied to the value of every leaf, whilst branch combines the key
// of every branch with the folded results of its two children.  Results are
// memoised by identifier, hence shared subdiagrams are folded once.  This is a
// standalone function rather than a method because the result type is a type
// parameter of its own.
func Fold[V Variable[V], L Lattice[L], R Semiring[R], A any](engine *Engine[V, L, R],
	leaf func(R) A, branch func(V, L, A, A) A, id NodeID) A {
	//
	memo := make(map[NodeID]A)
	//
	return foldRec(engine, leaf, branch, id, memo)
}

func foldRec[V Variable[V], L Lattice[L], R Semiring[R], A any](engine *Engine[V, L, R],
	leaf func(R) A, branch func(V, L, A, A) A, id NodeID, memo map[NodeID]A) A {
	//
	if res, ok := memo[id]; ok {
		return res
	}
	//
	var (
		node = engine.Get(id)
		res  A
	)
	//
	if node.Leaf {
		res = leaf(node.Value)
	} else {
		hi := foldRec(engine, leaf, branch, node.Hi, memo)
		lo := foldRec(engine, leaf, branch, node.Lo, memo)
		res = branch(node.Var, node.Guard, hi, lo)
	}
	//
	memo[id] = res
	//
	return res
}

// MapR rewrites the leaf values of a diagram by applying a given function,
// leaving its branching structure untouched (up to re-reduction, since two
// distinct leaves may be mapped onto the same value).
func (p *Engine[V, L, R]) MapR(fn func(R) R, id NodeID) NodeID {
	return Fold(p,
		func(value R) NodeID { return p.MkLeaf(fn(value)) },
		func(v V, l L, hi NodeID, lo NodeID) NodeID { return p.MkBranch(v, l, hi, lo) },
		id)
}

// Restrict specialises a diagram under a partial assignment.  For every total
// assignment consistent with the given constraints, the restricted diagram
// agrees with the original.  Each constraint is expected to either lie within
// or rule out any guard it meets on the constrained variable; restriction is
// not well-defined for constraints which merely overlap a guard.
func (p *Engine[V, L, R]) Restrict(assignments []Assignment[V, L], id NodeID) NodeID {
	// Sort constraints to align with diagram order.
	sorted := slices.Clone(assignments)
	slices.SortFunc(sorted, func(l, r Assignment[V, L]) int { return l.Var.Cmp(r.Var) })
	//
	return p.restrict(sorted, id)
}

func (p *Engine[V, L, R]) restrict(assignments []Assignment[V, L], id NodeID) NodeID {
	node := p.Get(id)
	//
	if len(assignments) == 0 || node.Leaf {
		return id
	}
	//
	head := assignments[0]
	//
	switch c := head.Var.Cmp(node.Var); {
	case c == 0 && head.Val.SubsetEq(node.Guard):
		// Constraint forces the hi branch and is consumed by it.
		return p.restrict(assignments[1:], node.Hi)
	case c == 0:
		// Constraint rules out the guard, but still applies to deeper
		// occurrences of the same variable.
		return p.restrict(assignments, node.Lo)
	case c < 0:
		// Constrained variable does not occur here.
		return p.restrict(assignments[1:], id)
	default:
		// Unconstrained branch variable.
		return p.MkBranch(node.Var, node.Guard,
			p.restrict(assignments, node.Hi), p.restrict(assignments, node.Lo))
	}
}

// Sum returns the diagram denoting the pointwise semiring sum of two diagrams.
func (p *Engine[V, L, R]) Sum(x NodeID, y NodeID) NodeID {
	return p.apply(opSum, x, y)
}

// Prod returns the diagram denoting the pointwise semiring product of two
// diagrams.
func (p *Engine[V, L, R]) Prod(x NodeID, y NodeID) NodeID {
	return p.apply(opProd, x, y)
}

// apply lifts a semiring operation to diagrams, re-establishing the ordered
// reduced invariants.  Results are cached per engine; since both operations
// are commutative, cache keys are normalised by identifier order.
func (p *Engine[V, L, R]) apply(op operator, x NodeID, y NodeID) NodeID {
	var (
		key   = normalise(x, y)
		cache = p.sums
	)
	//
	if op == opProd {
		cache = p.prods
	}
	//
	if res, ok := cache[key]; ok {
		return res
	}
	//
	res := p.applyRec(op, x, y)
	cache[key] = res
	//
	return res
}

func (p *Engine[V, L, R]) applyRec(op operator, x NodeID, y NodeID) NodeID {
	var (
		nx = p.Get(x)
		ny = p.Get(y)
	)
	// Dispatch terminal cases first.
	switch {
	case nx.Leaf:
		return p.applyLeaf(op, nx.Value, x, y)
	case ny.Leaf:
		return p.applyLeaf(op, ny.Value, y, x)
	}
	// Branch against branch.
	switch c := nx.Var.Cmp(ny.Var); {
	case c < 0:
		return p.MkBranch(nx.Var, nx.Guard, p.apply(op, nx.Hi, y), p.apply(op, nx.Lo, y))
	case c > 0:
		return p.MkBranch(ny.Var, ny.Guard, p.apply(op, x, ny.Hi), p.apply(op, x, ny.Lo))
	}
	// Same variable on both sides: attempt the tight guard combination.
	if guard, ok := p.combine(op, nx.Guard, ny.Guard); ok {
		return p.MkBranch(nx.Var, guard, p.apply(op, nx.Hi, ny.Hi), p.apply(op, nx.Lo, ny.Lo))
	}
	// Guards overlap inexactly or are disjoint: split on the smaller guard and
	// restrict the other operand by it.
	switch c := nx.Guard.Cmp(ny.Guard); {
	case c < 0:
		constraint := []Assignment[V, L]{{Var: nx.Var, Val: nx.Guard}}
		//
		return p.MkBranch(nx.Var, nx.Guard,
			p.apply(op, nx.Hi, p.restrict(constraint, y)),
			p.apply(op, nx.Lo, y))
	case c > 0:
		constraint := []Assignment[V, L]{{Var: ny.Var, Val: ny.Guard}}
		//
		return p.MkBranch(ny.Var, ny.Guard,
			p.apply(op, p.restrict(constraint, x), ny.Hi),
			p.apply(op, x, ny.Lo))
	default:
		// Equal guards must combine tightly; the lattice broke its contract.
		panic(fmt.Sprintf("lattice %s of equal guards %s and %s is not tight",
			p.combineName(op), nx.Guard.String(), ny.Guard.String()))
	}
}

// applyLeaf handles the cases where at least one operand is a constant,
// including the absorbing and identity shortcuts.  The leaf operand is passed
// first; commutativity of the semiring makes the swap sound.
func (p *Engine[V, L, R]) applyLeaf(op operator, value R, leaf NodeID, other NodeID) NodeID {
	if op == opSum {
		if value.IsZero() {
			return other
		}
		//
		return p.MapR(func(r R) R { return value.Add(r) }, other)
	}
	//
	switch {
	case value.IsZero():
		return leaf
	case value.IsOne():
		return other
	default:
		return p.MapR(func(r R) R { return value.Mul(r) }, other)
	}
}

// combine applies the per-operation guard combinator: meet for products and
// join for sums, both in tight mode.
func (p *Engine[V, L, R]) combine(op operator, x L, y L) (L, bool) {
	if op == opProd {
		return x.Meet(y, true)
	}
	//
	return x.Join(y, true)
}

func (p *Engine[V, L, R]) combineName(op operator) string {
	if op == opProd {
		return "meet"
	}
	//
	return "join"
}

func normalise(x NodeID, y NodeID) [2]NodeID {
	if x > y {
		x, y = y, x
	}
	//
	return [2]NodeID{x, y}
}
