package math

// Point is an element of one of the two groups of a pairing-friendly curve.
// Points of different groups are not compatible; mixing them in arithmetic operations results in a panic.
type Point interface {
	// v.Group() returns the group the point belongs to.
	Group() Group

	// v.New() returns a new independent Point instance for the same group, initialized to the identity.
	New() Point

	// v.Clone() returns a copy of v.
	Clone() Point

	// v.Set(u) sets v = u, and returns v.
	Set(u Point) Point

	// v.Add(p, q) sets v = p + q, and returns v.
	Add(p, q Point) Point

	// v.ScalarMult(x, q) sets v = x * q, and returns v.
	ScalarMult(x Scalar, q Point) Point

	// v.ScalarBaseMult(x) sets v = x * G, where G is the generator of the point's group, and returns v.
	ScalarBaseMult(x Scalar) Point

	// v.Equal(u) returns true if v is equivalent to u, and false otherwise.
	Equal(u Point) bool

	// v.IsIdentity() returns true if v is the point at infinity.
	IsIdentity() bool

	// v.Bytes() returns the canonical (compressed) encoding of v.
	// Implementations must ensure that encoded points of the same group have a consistent length.
	Bytes() []byte

	// v.SetBytes(x) sets v = x, where x is the compressed encoding of a point in the prime-order subgroup.
	// If x does not represent a valid point, SetBytes returns nil and an error and the receiver is unchanged.
	// Otherwise, SetBytes returns v.
	SetBytes(x []byte) (Point, error)
}

type Points []Point

// p.Sum() returns the sum of all points in p as a new point. If p is empty, Sum returns nil.
func (p Points) Sum() Point {
	var result Point
	for _, pᵢ := range p {
		if result == nil {
			result = pᵢ.Clone()
		} else {
			result.Add(result, pᵢ)
		}
	}
	return result
}
