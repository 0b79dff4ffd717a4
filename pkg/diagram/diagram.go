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

// Package diagram provides a YAML description format for building decision
// diagrams over boolean variables with natural number results, as consumed by
// the command-line tools.  The underlying engine is generic; this format
// deliberately fixes the three algebraic parameters to keep documents simple.
package diagram

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/consensys/go-sdd/pkg/dd"
	"github.com/consensys/go-sdd/pkg/lattice"
	"github.com/consensys/go-sdd/pkg/semiring"
)

// Engine is the concrete engine instantiation used by diagram documents.
type Engine = dd.Engine[dd.Ident, lattice.Bool, semiring.Uint64]

// NewEngine constructs an engine suitable for building documents.
func NewEngine() *Engine {
	return dd.NewEngine[dd.Ident, lattice.Bool, semiring.Uint64]()
}

// File is the root of a diagram document.
type File struct {
	// Variables lists the variables in order; position fixes variable order.
	Variables []string `yaml:"variables"`
	// Expr is the expression denoting the diagram.
	Expr *Expr `yaml:"expr"`
	// Assignments under which to evaluate the diagram (optional).
	Assignments []map[string]bool `yaml:"assignments"`
}

// Expr is a single node within an expression tree.  Exactly one of its fields
// may be set.
type Expr struct {
	// Atom denotes an elementary single-variable diagram.
	Atom *Atom `yaml:"atom"`
	// Sum denotes the pointwise sum of two or more subexpressions.
	Sum []*Expr `yaml:"sum"`
	// Prod denotes the pointwise product of two or more subexpressions.
	Prod []*Expr `yaml:"prod"`
	// Const denotes a constant diagram.
	Const *uint64 `yaml:"const"`
}

// Atom describes an elementary diagram "if var = value then then else else".
type Atom struct {
	Var   string `yaml:"var"`
	Value bool   `yaml:"value"`
	Then  uint64 `yaml:"then"`
	Else  uint64 `yaml:"else"`
}

// Parse reads a diagram document from its YAML representation.
func Parse(bytes []byte) (*File, error) {
	var file File
	//
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, err
	}
	//
	if len(file.Variables) == 0 {
		return nil, fmt.Errorf("document declares no variables")
	} else if file.Expr == nil {
		return nil, fmt.Errorf("document declares no expression")
	}
	//
	return &file, nil
}

// Build constructs the diagram denoted by this document within a given engine.
func (p *File) Build(engine *Engine) (dd.NodeID, error) {
	return p.build(engine, p.Expr)
}

// Assignment translates a variable-to-truth-value map into engine constraints.
func (p *File) Assignment(values map[string]bool) ([]dd.Assignment[dd.Ident, lattice.Bool], error) {
	assignments := make([]dd.Assignment[dd.Ident, lattice.Bool], 0, len(values))
	//
	for name, value := range values {
		ident, err := p.lookup(name)
		if err != nil {
			return nil, err
		}
		//
		assignments = append(assignments, dd.Assignment[dd.Ident, lattice.Bool]{
			Var: ident, Val: lattice.Bool(value),
		})
	}
	//
	return assignments, nil
}

func (p *File) build(engine *Engine, expr *Expr) (dd.NodeID, error) {
	switch {
	case expr == nil:
		return 0, fmt.Errorf("empty expression")
	case expr.Atom != nil:
		return p.buildAtom(engine, expr.Atom)
	case expr.Const != nil:
		return engine.Const(semiring.Uint64(*expr.Const)), nil
	case len(expr.Sum) > 0:
		return p.buildNary(engine, expr.Sum, engine.Sum)
	case len(expr.Prod) > 0:
		return p.buildNary(engine, expr.Prod, engine.Prod)
	default:
		return 0, fmt.Errorf("expression sets none of atom / sum / prod / const")
	}
}

func (p *File) buildAtom(engine *Engine, atom *Atom) (dd.NodeID, error) {
	ident, err := p.lookup(atom.Var)
	if err != nil {
		return 0, err
	}
	//
	return engine.Atom(ident, lattice.Bool(atom.Value),
		semiring.Uint64(atom.Then), semiring.Uint64(atom.Else)), nil
}

func (p *File) buildNary(engine *Engine, exprs []*Expr,
	op func(dd.NodeID, dd.NodeID) dd.NodeID) (dd.NodeID, error) {
	//
	res, err := p.build(engine, exprs[0])
	if err != nil {
		return 0, err
	}
	//
	for _, expr := range exprs[1:] {
		arg, err := p.build(engine, expr)
		if err != nil {
			return 0, err
		}
		//
		res = op(res, arg)
	}
	//
	return res, nil
}

func (p *File) lookup(name string) (dd.Ident, error) {
	for i, n := range p.Variables {
		if n == name {
			return dd.NewIdent(uint32(i), n), nil
		}
	}
	//
	return dd.Ident{}, fmt.Errorf("unknown variable %q", name)
}
