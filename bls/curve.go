package bls

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smartcontractkit/smbls/internal/crypto/math"
)

// Curve identifies a pairing-friendly curve. Valid identifiers are in range [0, 127]; only the ones returned by
// SupportedCurves() can be used to construct a SignatureSchema.
type Curve int

const (
	// ALTBN128 is the BN254 curve of the EIP-196/EIP-197 precompiles.
	ALTBN128 = Curve(math.AltBN128ID)

	// BLS12381 is the curve of the IETF BLS signature ciphersuites.
	BLS12381 = Curve(math.BLS12381ID)
)

// SupportedCurves returns the identifiers of all supported curves in ascending order.
func SupportedCurves() []Curve {
	var curves []Curve
	for _, c := range math.SupportedCurves() {
		curves = append(curves, Curve(c.ID()))
	}
	return curves
}

func (c Curve) resolve() (math.PairingFriendlyCurve, bool) {
	return math.CurveByID(math.CurveID(c))
}

func (c Curve) String() string {
	if pfc, ok := c.resolve(); ok {
		return pfc.Name()
	}
	return fmt.Sprintf("Curve(%d)", int(c))
}

func (c Curve) MarshalText() ([]byte, error) {
	pfc, ok := c.resolve()
	if !ok {
		return nil, fmt.Errorf("%w: unsupported curve id %d", ErrInvalidArgument, int(c))
	}
	return []byte(strings.ToLower(pfc.Name())), nil
}

// UnmarshalText accepts a curve name (case-insensitive, '-' and '_' are interchangeable) or a decimal curve id.
func (c *Curve) UnmarshalText(text []byte) error {
	s := string(text)
	if id, err := strconv.Atoi(s); err == nil {
		if _, ok := Curve(id).resolve(); !ok {
			return fmt.Errorf("%w: unsupported curve id %d", ErrInvalidArgument, id)
		}
		*c = Curve(id)
		return nil
	}
	if pfc := math.CurveByName(strings.ToUpper(strings.ReplaceAll(s, "-", "_"))); pfc != nil {
		*c = Curve(pfc.ID())
		return nil
	}
	return fmt.Errorf("%w: unknown curve %q", ErrInvalidArgument, s)
}
