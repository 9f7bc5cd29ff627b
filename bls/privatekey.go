package bls

import (
	"crypto/rand"
	"encoding"
	"fmt"
	"io"

	"github.com/smartcontractkit/smbls/internal/codec"
	"github.com/smartcontractkit/smbls/internal/crypto/math"
)

// PrivateKey is a scalar of the schema's field.
type PrivateKey struct {
	key    math.Scalar
	schema SignatureSchema
}

var _ codec.Marshaler = PrivateKey{}
var _ encoding.BinaryMarshaler = PrivateKey{}
var _ encoding.BinaryUnmarshaler = &PrivateKey{}
var _ fmt.Stringer = PrivateKey{}
var _ fmt.GoStringer = PrivateKey{}

// GeneratePrivateKey samples a uniformly random private key for the given schema. If rng is nil, crypto/rand.Reader
// is used.
func GeneratePrivateKey(schema SignatureSchema, rng io.Reader) (PrivateKey, error) {
	if schema.IsZero() {
		return PrivateKey{}, fmt.Errorf("%w: uninitialized signature schema", ErrNilArgument)
	}
	if rng == nil {
		rng = rand.Reader
	}
	sk, err := schema.field().Random(rng)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("failed to generate private key: %w", err)
	}
	return PrivateKey{sk, schema}, nil
}

// PrivateKeyFromBytes decodes a private key from [schema byte][big-endian scalar]. The scalar must be fully reduced.
func PrivateKeyFromBytes(data []byte) (PrivateKey, error) {
	return decode("private key", data, func(src codec.Source) PrivateKey {
		schema := readSchema(src)
		field := schema.field()
		return PrivateKey{codec.Must(field.FromBytes(src.ReadBytes(field.ElementSize()))), schema}
	})
}

// AggregatePrivateKeys returns the sum of the given private keys. At least two keys of the same schema are required.
// The public key of the result is the aggregate of the keys' public keys.
func AggregatePrivateKeys(keys []PrivateKey) (PrivateKey, error) {
	schema, err := aggregationSchema("private keys", keys)
	if err != nil {
		return PrivateKey{}, err
	}
	scalars := make([]math.Scalar, len(keys))
	for i, k := range keys {
		scalars[i] = k.key
	}
	return PrivateKey{schema.field().Add(scalars...), schema}, nil
}

func (k PrivateKey) Schema() SignatureSchema {
	return k.schema
}

// IsZero returns true for the uninitialized zero value (not for a key whose scalar is zero).
func (k PrivateKey) IsZero() bool {
	return k.key == nil
}

// PublicKey derives the public key sk * G, where G is the generator of the schema's public key group.
// It panics if called on the zero value.
func (k PrivateKey) PublicKey() PublicKey {
	if k.IsZero() {
		panic("PublicKey called on uninitialized private key")
	}
	g := k.schema.publicKeyGroup()
	return PublicKey{g.Point().ScalarBaseMult(k.key), k.schema}
}

// Sign computes sk * H(msg), where H hashes into the schema's signature group.
func (k PrivateKey) Sign(msg []byte) (Signature, error) {
	if k.IsZero() {
		return Signature{}, fmt.Errorf("%w: uninitialized private key", ErrNilArgument)
	}
	h, err := k.schema.signatureGroup().HashToCurve(msg)
	if err != nil {
		return Signature{}, fmt.Errorf("failed to sign message: %w", err)
	}
	return Signature{h.New().ScalarMult(k.key, h), k.schema}, nil
}

func (k PrivateKey) MarshalTo(target codec.Target) {
	target.WriteUint8(k.schema.mustByte())
	target.WriteBytes(k.key.Bytes())
}

// Bytes returns the encoding [schema byte][big-endian scalar], or nil for the zero value.
func (k PrivateKey) Bytes() []byte {
	if k.IsZero() {
		return nil
	}
	target := codec.NewTarget(k.schema.PrivateKeySize())
	k.MarshalTo(target)
	return target.Bytes()
}

func (k PrivateKey) MarshalBinary() ([]byte, error) {
	if k.IsZero() {
		return nil, fmt.Errorf("%w: uninitialized private key", ErrNilArgument)
	}
	return codec.Marshal(k)
}

func (k *PrivateKey) UnmarshalBinary(data []byte) error {
	v, err := PrivateKeyFromBytes(data)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Equal compares the keys in constant time (with respect to the scalar's value).
func (k PrivateKey) Equal(other PrivateKey) bool {
	if k.IsZero() || other.IsZero() {
		return k.IsZero() && other.IsZero()
	}
	return k.schema.Equal(other.schema) && k.key.Equal(other.key)
}

// Implement Stringer and GoStringer interfaces to ensure that the secret scalar is never accidentally logged.

func (k PrivateKey) String() string {
	return k.GoString()
}

func (k PrivateKey) GoString() string {
	if k.IsZero() {
		return "PrivateKey{}"
	}
	return fmt.Sprintf("PrivateKey{schema: %s, publicKey: %s}", k.schema, k.PublicKey())
}
