package math

import (
	"fmt"
	"io"
)

// Field is the scalar field Z_r of a pairing-friendly curve, where r is the order of both of the curve's groups.
type Field interface {
	// Returns the field's modulus r.
	Modulus() *Modulus

	// Returns the number of bytes used to encode a field element.
	ElementSize() int

	// Returns a new zero-valued element.
	Zero() Scalar

	// Samples a uniformly distributed element, reading a constant number of bytes from rand.
	Random(rand io.Reader) (Scalar, error)

	// Decodes the canonical (big-endian, fixed-size, fully reduced) encoding of an element.
	FromBytes(b []byte) (Scalar, error)

	// Reduces an arbitrary length big-endian integer modulo r.
	FromUniformBytes(b []byte) Scalar

	// Returns the sum of all given elements as a new element, the zero element if no arguments are given.
	Add(elements ...Scalar) Scalar
}

type scalarField struct {
	name    string
	modulus *Modulus
}

func (f *scalarField) Modulus() *Modulus { return f.modulus }
func (f *scalarField) ElementSize() int  { return f.modulus.Size() }
func (f *scalarField) Zero() Scalar      { return NewScalar(f.modulus) }

func (f *scalarField) Random(rand io.Reader) (Scalar, error) {
	s, err := NewScalar(f.modulus).SetRandom(rand)
	if err != nil {
		return nil, fmt.Errorf("failed to sample random %s scalar: %w", f.name, err)
	}
	return s, nil
}

func (f *scalarField) FromBytes(b []byte) (Scalar, error) {
	if len(b) != f.ElementSize() {
		return nil, fmt.Errorf("invalid %s scalar length: %d, expected: %d", f.name, len(b), f.ElementSize())
	}
	s, err := NewScalar(f.modulus).SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("invalid %s scalar: %w", f.name, err)
	}
	return s, nil
}

func (f *scalarField) FromUniformBytes(b []byte) Scalar {
	return NewScalar(f.modulus).SetUniformBytes(b)
}

func (f *scalarField) Add(elements ...Scalar) Scalar {
	sum := f.Zero()
	for _, e := range elements {
		sum.Add(e)
	}
	return sum
}
