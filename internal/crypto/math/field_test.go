package math

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/smartcontractkit/smbls/internal/testimplementations/detrand"
	"github.com/stretchr/testify/require"
)

func TestFieldEncoding(t *testing.T) {
	for _, c := range SupportedCurves() {
		t.Run(c.Name(), func(t *testing.T) {
			f := c.Field()
			r := new(big.Int).SetBytes(f.Modulus().Bytes())

			x, err := f.Random(detrand.New(t.Name()))
			require.NoError(t, err)
			require.Len(t, x.Bytes(), f.ElementSize())

			y, err := f.FromBytes(x.Bytes())
			require.NoError(t, err)
			require.True(t, x.Equal(y))

			// r is not a canonical encoding, r - 1 is.
			_, err = f.FromBytes(r.FillBytes(make([]byte, f.ElementSize())))
			require.Error(t, err)
			rMinusOne := new(big.Int).Sub(r, big.NewInt(1)).FillBytes(make([]byte, f.ElementSize()))
			_, err = f.FromBytes(rMinusOne)
			require.NoError(t, err)

			_, err = f.FromBytes(x.Bytes()[1:])
			require.Error(t, err)
			_, err = f.FromBytes(append(x.Bytes(), 0))
			require.Error(t, err)
		})
	}
}

func TestFieldArithmetic(t *testing.T) {
	for _, c := range SupportedCurves() {
		t.Run(c.Name(), func(t *testing.T) {
			f := c.Field()
			r := new(big.Int).SetBytes(f.Modulus().Bytes())

			require.True(t, f.Zero().IsZero())
			require.True(t, f.Add().IsZero())

			rMinusOne, err := f.FromBytes(new(big.Int).Sub(r, big.NewInt(1)).FillBytes(make([]byte, f.ElementSize())))
			require.NoError(t, err)
			one := f.FromUniformBytes([]byte{1})
			require.True(t, f.Add(rMinusOne, one).IsZero())

			// Add returns a new element and leaves its inputs unchanged.
			a, err := f.Random(detrand.New(t.Name(), "a"))
			require.NoError(t, err)
			b, err := f.Random(detrand.New(t.Name(), "b"))
			require.NoError(t, err)
			aBytes := a.Bytes()
			sum := f.Add(a, b)
			require.Equal(t, aBytes, a.Bytes())
			expected := new(big.Int).Add(a.BigInt(), b.BigInt())
			expected.Mod(expected, r)
			require.Equal(t, expected, sum.BigInt())

			require.True(t, f.FromUniformBytes(r.Bytes()).IsZero())
			require.True(t, f.FromUniformBytes(append(r.Bytes(), bytes.Repeat([]byte{0}, 16)...)).IsZero())
		})
	}
}

func TestFieldRandom(t *testing.T) {
	f := BLS12381.Field()
	a, err := f.Random(detrand.New("random"))
	require.NoError(t, err)
	b, err := f.Random(detrand.New("random"))
	require.NoError(t, err)
	c, err := f.Random(detrand.New("random", 2))
	require.NoError(t, err)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))

	_, err = f.Random(detrand.Failing(errors.New("no entropy")))
	require.ErrorContains(t, err, "no entropy")

	_, err = f.Random(bytes.NewReader(make([]byte, f.ElementSize())))
	require.Error(t, err)
}

func TestScalarsWithDifferentModuli(t *testing.T) {
	a := BN254.Field().Zero()
	b := BLS12381.Field().Zero()
	require.False(t, a.Equal(b))
	require.Panics(t, func() { a.Add(b) })
}
