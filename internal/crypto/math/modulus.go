package math

import (
	"math/big"

	"filippo.io/bigmod"
)

// Modulus wraps a bigmod.Modulus, used as the order r of a pairing-friendly curve's prime-order subgroups.
type Modulus struct {
	value bigmod.Modulus
}

// Non-constant time function, to be used for testing purposes and initialization only.
// Panics on invalid input; value must represent a natural number.
func NewModulus(value string) *Modulus {
	n, ok := new(big.Int).SetString(value, 10)
	if !ok {
		panic("invalid modulus value: " + value)
	}
	m, err := bigmod.NewModulus(n.Bytes())
	if err != nil {
		panic("invalid modulus value: " + value + ", error: " + err.Error())
	}
	return &Modulus{*m}
}

func (m *Modulus) Equal(other *Modulus) bool {
	return m == other || (&m.value).Nat().Equal((&other.value).Nat()) == 1
}

// Size returns the number of bytes of the big-endian encoding of the modulus, and thereby of every scalar reduced by
// it.
func (m *Modulus) Size() int {
	return (&m.value).Size()
}

// BitLen returns the bit length of the modulus.
func (m *Modulus) BitLen() int {
	return (&m.value).BitLen()
}

func (m *Modulus) Bytes() []byte {
	return (&m.value).Nat().Bytes(&m.value)
}
