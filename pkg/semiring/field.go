package semiring

import (
	"hash/fnv"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Field wraps fr.Element of BLS12-377's scalar field to conform to the
// Semiring interface.
type Field struct {
	fr.Element
}

// NewField constructs a field element from a given machine word.
func NewField(value uint64) Field {
	return Field{fr.NewElement(value)}
}

func (p Field) String() string {
	return p.Element.String()
}

// Equals implementation for the Hasher interface.
func (p Field) Equals(other Field) bool {
	return p.Element == other.Element
}

// Hash implementation for the Hasher interface.
func (p Field) Hash() uint64 {
	hash := fnv.New64a()
	hash.Write(p.Marshal())
	// Done
	return hash.Sum64()
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (p Field) Cmp(other Field) int {
	return p.Element.Cmp(&other.Element)
}

// Zero implementation for the Semiring interface.
func (p Field) Zero() Field {
	return Field{}
}

// One implementation for the Semiring interface.
func (p Field) One() Field {
	return NewField(1)
}

// IsZero implementation for the Semiring interface.
func (p Field) IsZero() bool {
	return p.Element.IsZero()
}

// IsOne implementation for the Semiring interface.
func (p Field) IsOne() bool {
	return p.Element.IsOne()
}

// Add x + y
func (p Field) Add(other Field) Field {
	var res fr.Element
	//
	res.Add(&p.Element, &other.Element)
	//
	return Field{res}
}

// Mul x * y
func (p Field) Mul(other Field) Field {
	var res fr.Element
	//
	res.Mul(&p.Element, &other.Element)
	//
	return Field{res}
}
