package math

import (
	"io"
	"math/big"

	"filippo.io/bigmod"
)

// Scalar is an element of Z_r, the scalar field shared by both groups of a pairing-friendly curve. Private keys are
// scalars. Arithmetic is constant time (filippo.io/bigmod) except where noted. Mixing scalars of different fields
// panics.
type Scalar = *scalar

type scalar struct {
	value   *bigmod.Nat
	modulus *Modulus
}

// NewScalar returns the zero element of Z_m.
func NewScalar(m *Modulus) Scalar {
	return &scalar{bigmod.NewNat().ExpandFor(&m.value), m}
}

// SetBytes decodes a fixed-size, fully reduced big-endian encoding. On error the receiver is left unchanged.
func (x *scalar) SetBytes(b []byte) (Scalar, error) {
	if _, err := x.value.SetBytes(b, &x.modulus.value); err != nil {
		return nil, err
	}
	return x, nil
}

// SetUniformBytes reduces the big-endian integer b, of any length, modulo r. b should carry at least 128 bits more than
// r for the result to be close to uniform.
func (x *scalar) SetUniformBytes(b []byte) Scalar {
	// 2^(8*len(b)) exceeds every value b can encode, so loading b needs no reduction.
	wide := make([]byte, len(b)+1)
	wide[0] = 1
	wideMod, err := bigmod.NewModulus(wide)
	if err != nil {
		panic("failed to initialize reduction modulus: " + err.Error())
	}
	n, err := bigmod.NewNat().SetBytes(b, wideMod)
	if err != nil {
		panic("failed to load bytes for reduction: " + err.Error())
	}
	x.value.Mod(n, &x.modulus.value)
	return x
}

// SetRandom reads exactly Size()+16 bytes from rand and reduces them modulo r, so the same stream always yields the
// same scalar.
func (x *scalar) SetRandom(rand io.Reader) (Scalar, error) {
	b := make([]byte, x.modulus.Size()+16)
	if _, err := io.ReadFull(rand, b); err != nil {
		return nil, err
	}
	return x.SetUniformBytes(b), nil
}

// Add sets x = x + y mod r.
func (x *scalar) Add(y Scalar) Scalar {
	x.mustMatch(y)
	x.value.Add(y.value, &x.modulus.value)
	return x
}

func (x *scalar) IsZero() bool {
	return x.value.IsZero() == 1
}

func (x *scalar) Modulus() *Modulus {
	return x.modulus
}

// Bytes returns the big-endian encoding, always Modulus().Size() bytes long.
func (x *scalar) Bytes() []byte {
	return x.value.Bytes(&x.modulus.value)
}

// BigInt is not constant time. The curve backends take their scalar multipliers as big.Int.
func (x *scalar) BigInt() *big.Int {
	return new(big.Int).SetBytes(x.Bytes())
}

func (x *scalar) Equal(y Scalar) bool {
	return x == y || (x.modulus.Equal(y.modulus) && x.value.Equal(y.value) == 1)
}

// String is not constant time, use for tests only.
func (x *scalar) String() string {
	return x.BigInt().String()
}

func (x *scalar) mustMatch(y Scalar) {
	if !x.modulus.Equal(y.modulus) {
		panic("scalars have different moduli")
	}
}
