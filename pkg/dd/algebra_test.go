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
	"math/rand"
	"testing"

	"github.com/consensys/go-sdd/pkg/lattice"
	"github.com/consensys/go-sdd/pkg/semiring"
)

const nvars = 3

func Test_Sum_01(t *testing.T) {
	engine := newBoolEngine()
	// sum of two atoms on the same guard adds pointwise.
	sum := engine.Sum(engine.Atom(vx, true, 1, 0), engine.Atom(vx, true, 2, 0))
	//
	checkEval(t, engine, sum, assignment(true, false, false), 3)
	checkEval(t, engine, sum, assignment(false, false, false), 0)
}

func Test_Sum_02(t *testing.T) {
	checkBinop(t, "sum")
}

func Test_Sum_03(t *testing.T) {
	engine := newBoolEngine()
	// const(zero) is the identity of sum.
	u := engine.Atom(vy, true, 3, 7)
	zero := engine.MkLeaf(0)
	//
	if res := engine.Sum(zero, u); !engine.Equal(res, u) {
		t.Errorf("expected %s, got %s", engine.String(u), engine.String(res))
	}
	//
	if res := engine.Sum(u, zero); !engine.Equal(res, u) {
		t.Errorf("expected %s, got %s", engine.String(u), engine.String(res))
	}
}

func Test_Prod_01(t *testing.T) {
	engine := newBoolEngine()
	// product of atoms on distinct variables behaves conjunctively.
	prod := engine.Prod(engine.Atom(vx, true, 1, 0), engine.Atom(vy, true, 1, 0))
	//
	checkEval(t, engine, prod, assignment(true, true, false), 1)
	checkEval(t, engine, prod, assignment(true, false, false), 0)
	checkEval(t, engine, prod, assignment(false, true, false), 0)
	// The root must branch on the smaller variable.
	if root := engine.Get(prod); root.Leaf || root.Var.Cmp(vx) != 0 {
		t.Errorf("expected root branching on %s, got %s", vx.String(), engine.String(prod))
	}
}

func Test_Prod_02(t *testing.T) {
	checkBinop(t, "prod")
}

func Test_Prod_03(t *testing.T) {
	engine := newBoolEngine()
	// const(one) is the identity and const(zero) the absorber of prod.
	u := engine.Atom(vy, true, 3, 7)
	zero := engine.MkLeaf(0)
	one := engine.MkLeaf(1)
	//
	if res := engine.Prod(one, u); !engine.Equal(res, u) {
		t.Errorf("expected %s, got %s", engine.String(u), engine.String(res))
	}
	//
	if res := engine.Prod(zero, u); !engine.Equal(res, zero) {
		t.Errorf("expected 0, got %s", engine.String(res))
	}
}

func Test_Restrict_01(t *testing.T) {
	engine := newBoolEngine()
	//
	atom := engine.Atom(vx, true, 5, 7)
	//
	hi := engine.Restrict(boolAssignment(vx, true), atom)
	lo := engine.Restrict(boolAssignment(vx, false), atom)
	//
	if !engine.Equal(hi, engine.MkLeaf(5)) {
		t.Errorf("expected 5, got %s", engine.String(hi))
	}
	//
	if !engine.Equal(lo, engine.MkLeaf(7)) {
		t.Errorf("expected 7, got %s", engine.String(lo))
	}
}

func Test_Restrict_02(t *testing.T) {
	var (
		engine = newBoolEngine()
		source = rand.New(rand.NewSource(5))
	)
	// Restriction agrees with the original on every consistent assignment,
	// and restricting twice changes nothing further.  Single-polarity guards
	// keep a variable from recurring along a path; with repeated guards the
	// constraint is consumed by the first occurrence it forces, so a second
	// restriction may prune deeper occurrences further.
	for i := 0; i < 50; i++ {
		u := randomMonotone(engine, source, 3)
		constraint := boolAssignment(vy, source.Intn(2) == 0)
		//
		once := engine.Restrict(constraint, u)
		twice := engine.Restrict(constraint, once)
		//
		if !engine.Equal(once, twice) {
			t.Fatalf("restriction not idempotent on %s", engine.String(u))
		}
		//
		for _, sigma := range assignments() {
			if consistent(constraint, sigma) {
				checkEval(t, engine, once, sigma, eval(engine, u, sigma))
			}
		}
	}
}

func Test_Restrict_04(t *testing.T) {
	var (
		engine = newBoolEngine()
		source = rand.New(rand.NewSource(19))
	)
	// Semantic agreement also holds for diagrams mixing guard polarities.
	for i := 0; i < 50; i++ {
		u := randomDiagram(engine, source, 3)
		constraint := boolAssignment(vx, source.Intn(2) == 0)
		//
		res := engine.Restrict(constraint, u)
		//
		for _, sigma := range assignments() {
			if consistent(constraint, sigma) {
				checkEval(t, engine, res, sigma, eval(engine, u, sigma))
			}
		}
	}
}

func Test_Restrict_03(t *testing.T) {
	engine := newBoolEngine()
	// Constraints on variables absent from the diagram are dropped.
	u := engine.Atom(vy, true, 1, 2)
	res := engine.Restrict(boolAssignment(vx, true), u)
	//
	if !engine.Equal(res, u) {
		t.Errorf("expected %s, got %s", engine.String(u), engine.String(res))
	}
}

func Test_Fold_01(t *testing.T) {
	var (
		engine = newBoolEngine()
		source = rand.New(rand.NewSource(7))
	)
	// Folding with the smart constructors reconstructs the diagram.
	for i := 0; i < 50; i++ {
		u := randomDiagram(engine, source, 4)
		//
		v := Fold(engine,
			func(r semiring.Uint64) NodeID { return engine.MkLeaf(r) },
			func(v Ident, l lattice.Bool, hi, lo NodeID) NodeID {
				return engine.MkBranch(v, l, hi, lo)
			}, u)
		//
		if !engine.Equal(u, v) {
			t.Fatalf("fold reconstruction changed %s into %s", engine.String(u), engine.String(v))
		}
	}
}

func Test_Fold_02(t *testing.T) {
	engine := newBoolEngine()
	// Count leaves of a small diagram.
	u := engine.Sum(engine.Atom(vx, true, 1, 0), engine.Atom(vy, true, 2, 0))
	//
	size := Fold(engine,
		func(semiring.Uint64) uint { return 1 },
		func(_ Ident, _ lattice.Bool, hi, lo uint) uint { return hi + lo },
		u)
	//
	if size == 0 {
		t.Errorf("expected at least one leaf in %s", engine.String(u))
	}
}

func Test_MapR_01(t *testing.T) {
	var (
		engine = newBoolEngine()
		source = rand.New(rand.NewSource(11))
	)
	//
	double := func(r semiring.Uint64) semiring.Uint64 { return r.Add(r) }
	addOne := func(r semiring.Uint64) semiring.Uint64 { return r.Add(1) }
	//
	for i := 0; i < 50; i++ {
		u := randomDiagram(engine, source, 4)
		// identity
		if res := engine.MapR(func(r semiring.Uint64) semiring.Uint64 { return r }, u); !engine.Equal(res, u) {
			t.Fatalf("identity map changed %s into %s", engine.String(u), engine.String(res))
		}
		// functoriality
		lhs := engine.MapR(double, engine.MapR(addOne, u))
		rhs := engine.MapR(func(r semiring.Uint64) semiring.Uint64 { return double(addOne(r)) }, u)
		//
		if !engine.Equal(lhs, rhs) {
			t.Fatalf("map composition differed on %s", engine.String(u))
		}
	}
}

func Test_Canonical_01(t *testing.T) {
	var (
		engine = newBoolEngine()
		source = rand.New(rand.NewSource(13))
	)
	// Semantically equal diagrams share an identifier.  Random diagrams are
	// compared pointwise over every assignment.  Guards are fixed to a single
	// polarity: complementary guards with swapped children denote the same
	// function yet are structurally distinct, so canonicity only holds within
	// one polarity.
	diagrams := make([]NodeID, 40)
	//
	for i := range diagrams {
		diagrams[i] = randomMonotone(engine, source, 3)
	}
	//
	for _, x := range diagrams {
		for _, y := range diagrams {
			if sameSemantics(engine, x, y) != engine.Equal(x, y) {
				t.Fatalf("canonicity violated between %s and %s",
					engine.String(x), engine.String(y))
			}
		}
	}
}

func Test_Invariant_01(t *testing.T) {
	var (
		engine = newBoolEngine()
		source = rand.New(rand.NewSource(17))
	)
	//
	for i := 0; i < 100; i++ {
		randomDiagram(engine, source, 4)
	}
	// No reachable branch has coinciding children, and branch keys strictly
	// increase along every path.
	err := engine.AllNodes(func(id NodeID, node Node[Ident, lattice.Bool, semiring.Uint64]) error {
		if !node.Leaf {
			if node.Hi == node.Lo {
				t.Errorf("node %d is redundant", id)
			}
			//
			checkOrdered(t, engine, node, node.Hi)
			checkOrdered(t, engine, node, node.Lo)
		}
		//
		return nil
	})
	//
	if err != nil {
		t.Fatal(err)
	}
}

func Test_MaxPlus_01(t *testing.T) {
	engine := NewEngine[Ident, lattice.Bool, semiring.MaxPlus]()
	// In the tropical semiring, Sum takes pointwise maxima.
	x := engine.Atom(vx, true, semiring.Tropical(3), semiring.NegInf())
	y := engine.Atom(vx, true, semiring.Tropical(5), semiring.Tropical(1))
	sum := engine.Sum(x, y)
	//
	hi := engine.Restrict([]Assignment[Ident, lattice.Bool]{{Var: vx, Val: true}}, sum)
	//
	if value, ok := engine.Peek(hi); !ok || value.Cmp(semiring.Tropical(5)) != 0 {
		t.Errorf("expected 5, got %s", engine.String(hi))
	}
	//
	lo := engine.Restrict([]Assignment[Ident, lattice.Bool]{{Var: vx, Val: false}}, sum)
	//
	if value, ok := engine.Peek(lo); !ok || value.Cmp(semiring.Tropical(1)) != 0 {
		t.Errorf("expected 1, got %s", engine.String(lo))
	}
}

func Test_Interval_01(t *testing.T) {
	engine := NewEngine[Ident, lattice.Interval, semiring.Uint64]()
	// Products intersect overlapping guards on a shared variable.
	x := engine.Atom(vx, lattice.NewInterval(0, 5), 2, 1)
	y := engine.Atom(vx, lattice.NewInterval(3, 8), 3, 1)
	prod := engine.Prod(x, y)
	// Within [3,5] both atoms fire.
	in := engine.Restrict(intervalAssignment(vx, lattice.Point(4)), prod)
	//
	if value, ok := engine.Peek(in); !ok || value != 6 {
		t.Errorf("expected 6, got %s", engine.String(in))
	}
}

func Test_Interval_02(t *testing.T) {
	engine := NewEngine[Ident, lattice.Interval, semiring.Uint64]()
	// The tight join of two gapped intervals does not exist, hence Sum splits
	// on the smaller guard and restricts the other operand.
	x := engine.Atom(vx, lattice.NewInterval(0, 1), 2, 0)
	y := engine.Atom(vx, lattice.NewInterval(5, 6), 3, 0)
	sum := engine.Sum(x, y)
	//
	for _, test := range []struct {
		point    lattice.Interval
		expected semiring.Uint64
	}{
		{lattice.Point(0), 2},
		{lattice.Point(5), 3},
		{lattice.Point(9), 0},
	} {
		res := engine.Restrict(intervalAssignment(vx, test.point), sum)
		//
		if value, ok := engine.Peek(res); !ok || value != test.expected {
			t.Errorf("at %s: expected %s, got %s",
				test.point.String(), test.expected.String(), engine.String(res))
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// sigma is a total assignment of the test variables to truth values.
type sigma [nvars]bool

func assignment(values ...bool) sigma {
	var s sigma
	//
	copy(s[:], values)
	//
	return s
}

// assignments enumerates every total assignment over the test variables.
func assignments() []sigma {
	var res []sigma
	//
	for mask := 0; mask < (1 << nvars); mask++ {
		var s sigma
		//
		for i := range s {
			s[i] = mask&(1<<i) != 0
		}
		//
		res = append(res, s)
	}
	//
	return res
}

// eval computes the semantic denotation of a diagram under a total assignment.
func eval(engine *boolEngine, id NodeID, s sigma) semiring.Uint64 {
	node := engine.Get(id)
	//
	for !node.Leaf {
		if lattice.Bool(s[node.Var.Index]).SubsetEq(node.Guard) {
			id = node.Hi
		} else {
			id = node.Lo
		}
		//
		node = engine.Get(id)
	}
	//
	return node.Value
}

func checkEval(t *testing.T, engine *boolEngine, id NodeID, s sigma, expected semiring.Uint64) {
	t.Helper()
	//
	if actual := eval(engine, id, s); actual != expected {
		t.Errorf("under %v: expected %s, got %s from %s",
			s, expected.String(), actual.String(), engine.String(id))
	}
}

// checkBinop checks the homomorphism property of an apply-style operation over
// randomly built diagrams: evaluation commutes with the lifted operation.
func checkBinop(t *testing.T, name string) {
	var (
		engine = newBoolEngine()
		source = rand.New(rand.NewSource(3))
	)
	//
	for i := 0; i < 100; i++ {
		x := randomDiagram(engine, source, 3)
		y := randomDiagram(engine, source, 3)
		//
		var res NodeID
		//
		if name == "sum" {
			res = engine.Sum(x, y)
		} else {
			res = engine.Prod(x, y)
		}
		//
		for _, s := range assignments() {
			var (
				lhs = eval(engine, x, s)
				rhs = eval(engine, y, s)
				//
				expected semiring.Uint64
			)
			//
			if name == "sum" {
				expected = lhs.Add(rhs)
			} else {
				expected = lhs.Mul(rhs)
			}
			//
			checkEval(t, engine, res, s, expected)
		}
	}
}

// randomDiagram builds a random diagram by combining random atoms with random
// applications of Sum and Prod.
func randomDiagram(engine *boolEngine, source *rand.Rand, depth int) NodeID {
	if depth == 0 || source.Intn(3) == 0 {
		var (
			v  = source.Intn(nvars)
			id = NewIdent(uint32(v), string(rune('x'+v)))
		)
		//
		return engine.Atom(id, lattice.Bool(source.Intn(2) == 0),
			semiring.Uint64(source.Intn(5)), semiring.Uint64(source.Intn(5)))
	}
	//
	x := randomDiagram(engine, source, depth-1)
	y := randomDiagram(engine, source, depth-1)
	//
	if source.Intn(2) == 0 {
		return engine.Sum(x, y)
	}
	//
	return engine.Prod(x, y)
}

// randomMonotone builds a random diagram whose guards all share a single
// polarity, for which reduced ordered diagrams are canonical.
func randomMonotone(engine *boolEngine, source *rand.Rand, depth int) NodeID {
	if depth == 0 || source.Intn(3) == 0 {
		var (
			v  = source.Intn(nvars)
			id = NewIdent(uint32(v), string(rune('x'+v)))
		)
		//
		return engine.Atom(id, true,
			semiring.Uint64(source.Intn(3)), semiring.Uint64(source.Intn(3)))
	}
	//
	x := randomMonotone(engine, source, depth-1)
	y := randomMonotone(engine, source, depth-1)
	//
	if source.Intn(2) == 0 {
		return engine.Sum(x, y)
	}
	//
	return engine.Prod(x, y)
}

func sameSemantics(engine *boolEngine, x NodeID, y NodeID) bool {
	for _, s := range assignments() {
		if eval(engine, x, s) != eval(engine, y, s) {
			return false
		}
	}
	//
	return true
}

func boolAssignment(v Ident, value bool) []Assignment[Ident, lattice.Bool] {
	return []Assignment[Ident, lattice.Bool]{{Var: v, Val: lattice.Bool(value)}}
}

func intervalAssignment(v Ident, value lattice.Interval) []Assignment[Ident, lattice.Interval] {
	return []Assignment[Ident, lattice.Interval]{{Var: v, Val: value}}
}

// consistent checks whether a total assignment satisfies every constraint.
func consistent(constraints []Assignment[Ident, lattice.Bool], s sigma) bool {
	for _, c := range constraints {
		if !lattice.Bool(s[c.Var.Index]).SubsetEq(c.Val) {
			return false
		}
	}
	//
	return true
}

// checkOrdered checks that every branch key below a given parent is strictly
// greater than the parent's key.
func checkOrdered(t *testing.T, engine *boolEngine, parent Node[Ident, lattice.Bool, semiring.Uint64], id NodeID) {
	t.Helper()
	//
	node := engine.Get(id)
	//
	if node.Leaf {
		return
	}
	//
	c := parent.Var.Cmp(node.Var)
	//
	if c > 0 || (c == 0 && parent.Guard.Cmp(node.Guard) >= 0) {
		t.Errorf("key (%s,%s) not above (%s,%s)",
			parent.Var.String(), parent.Guard.String(), node.Var.String(), node.Guard.String())
	}
	//
	checkOrdered(t, engine, node, node.Hi)
	checkOrdered(t, engine, node, node.Lo)
}
