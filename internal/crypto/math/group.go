package math

// Group is one of the two prime-order groups (G1 or G2) of a pairing-friendly curve.
type Group interface {
	// Returns the curve the group belongs to.
	Curve() PairingFriendlyCurve

	// Returns the name of the group, e.g. "BLS12_381/G2". Used for debugging and logging purposes.
	Name() string

	// Returns a new Point instance of this group, initialized to the identity.
	Point() Point

	// Returns a copy of the group's standard generator, the caller may modify it.
	Generator() Point

	// Deterministically maps msg to a point of the group (hash_to_curve, random oracle variant), using the group's
	// domain separation tag.
	HashToCurve(msg []byte) (Point, error)

	// Returns the number of bytes used to encode a point of the group.
	PointBytes() int

	// Decodes a point from its compressed encoding. See Point.SetBytes(...).
	FromBytes(b []byte) (Point, error)

	// Returns the sum of all given points as a new point, the identity if no arguments are given.
	Add(points ...Point) Point
}

func sumOrIdentity(g Group, points []Point) Point {
	sum := Points(points).Sum()
	if sum == nil {
		return g.Point()
	}
	return sum
}
