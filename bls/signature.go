package bls

import (
	"encoding"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/smartcontractkit/smbls/internal/codec"
	"github.com/smartcontractkit/smbls/internal/crypto/math"
)

// Signature is a point of the schema's signature group.
type Signature struct {
	point  math.Point
	schema SignatureSchema
}

var _ codec.Marshaler = Signature{}
var _ encoding.BinaryMarshaler = Signature{}
var _ encoding.BinaryUnmarshaler = &Signature{}
var _ encoding.TextMarshaler = Signature{}
var _ encoding.TextUnmarshaler = &Signature{}

// SignatureFromBytes decodes a signature from [schema byte][compressed point]. Points outside of the prime-order
// subgroup and non-canonical encodings are rejected.
func SignatureFromBytes(data []byte) (Signature, error) {
	return decode("signature", data, func(src codec.Source) Signature {
		schema := readSchema(src)
		g := schema.signatureGroup()
		return Signature{codec.Must(g.FromBytes(src.ReadBytes(g.PointBytes()))), schema}
	})
}

// AggregateSignatures returns the sum of the given signatures. At least two signatures of the same schema are required.
// The signatures may be computed over different messages; the result only verifies under the aggregate of the
// signers' public keys if all of them signed the same message.
func AggregateSignatures(signatures []Signature) (Signature, error) {
	schema, err := aggregationSchema("signatures", signatures)
	if err != nil {
		return Signature{}, err
	}
	points := make([]math.Point, len(signatures))
	for i, s := range signatures {
		points[i] = s.point
	}
	return Signature{schema.signatureGroup().Add(points...), schema}, nil
}

func (s Signature) Schema() SignatureSchema {
	return s.schema
}

func (s Signature) IsZero() bool {
	return s.point == nil
}

// Verify checks e(pk, H(msg)) == e(G, s), where G is the generator of the public key group and H hashes into the
// signature group. It returns ErrSchemaMismatch if the signature and the public key use different schemas. An invalid
// signature yields false and no error. For the identity public key Verify deviates from the bare equation: it returns
// false, although the equation holds for the identity signature and any message.
func (s Signature) Verify(pk PublicKey, msg []byte) (bool, error) {
	if s.IsZero() {
		return false, fmt.Errorf("%w: uninitialized signature", ErrNilArgument)
	}
	if pk.IsZero() {
		return false, fmt.Errorf("%w: uninitialized public key", ErrNilArgument)
	}
	if !s.schema.Equal(pk.schema) {
		return false, fmt.Errorf("%w: signature uses %s, public key uses %s", ErrSchemaMismatch, s.schema, pk.schema)
	}
	if pk.point.IsIdentity() {
		return false, nil
	}

	h, err := s.schema.signatureGroup().HashToCurve(msg)
	if err != nil {
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}
	curve := s.schema.pfc
	lhs, err := curve.Pair(pk.point, h)
	if err != nil {
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}
	rhs, err := curve.Pair(s.schema.publicKeyGroup().Generator(), s.point)
	if err != nil {
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}
	return lhs.Equal(rhs), nil
}

func (s Signature) MarshalTo(target codec.Target) {
	target.WriteUint8(s.schema.mustByte())
	target.WriteBytes(s.point.Bytes())
}

// Bytes returns the encoding [schema byte][compressed point], or nil for the zero value.
func (s Signature) Bytes() []byte {
	if s.IsZero() {
		return nil
	}
	target := codec.NewTarget(s.schema.SignatureSize())
	s.MarshalTo(target)
	return target.Bytes()
}

func (s Signature) MarshalBinary() ([]byte, error) {
	if s.IsZero() {
		return nil, fmt.Errorf("%w: uninitialized signature", ErrNilArgument)
	}
	return codec.Marshal(s)
}

func (s *Signature) UnmarshalBinary(data []byte) error {
	v, err := SignatureFromBytes(data)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText returns the 0x-prefixed hex encoding of Bytes().
func (s Signature) MarshalText() ([]byte, error) {
	b, err := s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return []byte(hexutil.Encode(b)), nil
}

func (s *Signature) UnmarshalText(text []byte) error {
	v, err := decodeHex("signature", text, SignatureFromBytes)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Signature) Equal(other Signature) bool {
	if s.IsZero() || other.IsZero() {
		return s.IsZero() && other.IsZero()
	}
	return s.schema.Equal(other.schema) && s.point.Equal(other.point)
}

func (s Signature) String() string {
	if s.IsZero() {
		return "Signature{}"
	}
	return hexutil.Encode(s.Bytes())
}
