package math

// CurveID is the small integer identifier of a pairing-friendly curve, in range [0, MaxCurveID].
type CurveID int

type PairingFriendlyCurve interface {
	// prevent outside packages from implementing this interface, the registry relies on the set of curves being closed
	internal()

	// Returns the curve's identifier, its index in the registry.
	ID() CurveID

	// Returns the name of the curve.
	// This is used for debugging and logging purposes.
	Name() string

	// Returns the scalar field Z_r shared by both groups of the curve.
	Field() Field

	// Returns the first group of the curve, the one with the shorter point encoding.
	G1() Group

	// Returns the second group of the curve.
	G2() Group

	// Computes the pairing e(p, q). One of the arguments must be a point of G1, the other one a point of G2; the order
	// of the arguments is irrelevant.
	Pair(p, q Point) (Pairing, error)
}

// Pairing is an element of the target group GT, as returned by PairingFriendlyCurve.Pair(...).
type Pairing interface {
	Curve() PairingFriendlyCurve

	// Returns true if both pairing results are the same element of GT.
	Equal(other Pairing) bool
}
