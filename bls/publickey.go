package bls

import (
	"encoding"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/smartcontractkit/smbls/internal/codec"
	"github.com/smartcontractkit/smbls/internal/crypto/math"
)

// PublicKey is a point of the schema's public key group.
type PublicKey struct {
	point  math.Point
	schema SignatureSchema
}

var _ codec.Marshaler = PublicKey{}
var _ encoding.BinaryMarshaler = PublicKey{}
var _ encoding.BinaryUnmarshaler = &PublicKey{}
var _ encoding.TextMarshaler = PublicKey{}
var _ encoding.TextUnmarshaler = &PublicKey{}

// PublicKeyFromBytes decodes a public key from [schema byte][compressed point]. Points outside of the prime-order
// subgroup and non-canonical encodings are rejected.
func PublicKeyFromBytes(data []byte) (PublicKey, error) {
	return decode("public key", data, func(src codec.Source) PublicKey {
		schema := readSchema(src)
		g := schema.publicKeyGroup()
		return PublicKey{codec.Must(g.FromBytes(src.ReadBytes(g.PointBytes()))), schema}
	})
}

// AggregatePublicKeys returns the sum of the given public keys. At least two keys of the same schema are required.
func AggregatePublicKeys(keys []PublicKey) (PublicKey, error) {
	schema, err := aggregationSchema("public keys", keys)
	if err != nil {
		return PublicKey{}, err
	}
	points := make([]math.Point, len(keys))
	for i, k := range keys {
		points[i] = k.point
	}
	return PublicKey{schema.publicKeyGroup().Add(points...), schema}, nil
}

func (pk PublicKey) Schema() SignatureSchema {
	return pk.schema
}

func (pk PublicKey) IsZero() bool {
	return pk.point == nil
}

// Verify decodes signature and verifies it for msg under this public key. See Signature.Verify.
func (pk PublicKey) Verify(signature []byte, msg []byte) (bool, error) {
	sig, err := SignatureFromBytes(signature)
	if err != nil {
		return false, err
	}
	return sig.Verify(pk, msg)
}

func (pk PublicKey) MarshalTo(target codec.Target) {
	target.WriteUint8(pk.schema.mustByte())
	target.WriteBytes(pk.point.Bytes())
}

// Bytes returns the encoding [schema byte][compressed point], or nil for the zero value.
func (pk PublicKey) Bytes() []byte {
	if pk.IsZero() {
		return nil
	}
	target := codec.NewTarget(pk.schema.PublicKeySize())
	pk.MarshalTo(target)
	return target.Bytes()
}

func (pk PublicKey) MarshalBinary() ([]byte, error) {
	if pk.IsZero() {
		return nil, fmt.Errorf("%w: uninitialized public key", ErrNilArgument)
	}
	return codec.Marshal(pk)
}

func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	v, err := PublicKeyFromBytes(data)
	if err != nil {
		return err
	}
	*pk = v
	return nil
}

// MarshalText returns the 0x-prefixed hex encoding of Bytes().
func (pk PublicKey) MarshalText() ([]byte, error) {
	b, err := pk.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return []byte(hexutil.Encode(b)), nil
}

func (pk *PublicKey) UnmarshalText(text []byte) error {
	v, err := decodeHex("public key", text, PublicKeyFromBytes)
	if err != nil {
		return err
	}
	*pk = v
	return nil
}

func (pk PublicKey) Equal(other PublicKey) bool {
	if pk.IsZero() || other.IsZero() {
		return pk.IsZero() && other.IsZero()
	}
	return pk.schema.Equal(other.schema) && pk.point.Equal(other.point)
}

func (pk PublicKey) String() string {
	if pk.IsZero() {
		return "PublicKey{}"
	}
	return hexutil.Encode(pk.Bytes())
}
