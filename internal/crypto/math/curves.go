package math

const MaxCurveID CurveID = 127

const (
	AltBN128ID CurveID = 0
	BLS12381ID CurveID = 1
)

var curveTable = func() (table [MaxCurveID + 1]PairingFriendlyCurve) {
	for _, c := range []PairingFriendlyCurve{BN254, BLS12381} {
		if table[c.ID()] != nil {
			panic("duplicate curve id in registry: " + c.Name())
		}
		table[c.ID()] = c
	}
	return table
}()

// SupportedCurves returns all registered curves, ordered by their identifier.
func SupportedCurves() []PairingFriendlyCurve {
	var curves []PairingFriendlyCurve
	for _, c := range curveTable {
		if c != nil {
			curves = append(curves, c)
		}
	}
	return curves
}

// CurveByID looks up a curve in the registry. The second return value is false if id is out of range or no curve is
// registered for it.
func CurveByID(id CurveID) (PairingFriendlyCurve, bool) {
	if id < 0 || id > MaxCurveID {
		return nil, false
	}
	c := curveTable[id]
	return c, c != nil
}

func CurveByName(name string) PairingFriendlyCurve {
	for _, curve := range SupportedCurves() {
		if curve.Name() == name {
			return curve
		}
	}
	return nil
}
