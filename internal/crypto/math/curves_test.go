package math

import (
	"math/big"
	"testing"

	bls12381fr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestCurveRegistry(t *testing.T) {
	require.Equal(t, []PairingFriendlyCurve{BN254, BLS12381}, SupportedCurves())

	for _, c := range SupportedCurves() {
		byID, ok := CurveByID(c.ID())
		require.True(t, ok)
		require.Equal(t, c, byID)
		require.Equal(t, c, CurveByName(c.Name()))
		require.Equal(t, c, c.G1().Curve())
		require.Equal(t, c, c.G2().Curve())
	}

	for _, id := range []CurveID{-1, 2, MaxCurveID, MaxCurveID + 1} {
		_, ok := CurveByID(id)
		require.False(t, ok, "curve id %d", id)
	}
	require.Nil(t, CurveByName("P256"))
}

func TestFieldModuli(t *testing.T) {
	tests := []struct {
		curve    PairingFriendlyCurve
		expected *big.Int
	}{
		{BN254, bn254fr.Modulus()},
		{BLS12381, bls12381fr.Modulus()},
	}
	for _, tt := range tests {
		m := tt.curve.Field().Modulus()
		require.Equal(t, tt.expected, new(big.Int).SetBytes(m.Bytes()), tt.curve.Name())
		require.Equal(t, tt.expected.BitLen(), m.BitLen())
		require.Equal(t, 32, tt.curve.Field().ElementSize())
	}
}
