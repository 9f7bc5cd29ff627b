package bls

import (
	"fmt"

	"github.com/smartcontractkit/smbls/internal/crypto/math"
)

// SignatureSchema selects a pairing-friendly curve and a group assignment. Two schemas are equal if their curve and
// group assignment are equal. The zero value is uninitialized and not a valid schema.
type SignatureSchema struct {
	groupAssignment GroupAssignment
	curve           Curve
	pfc             math.PairingFriendlyCurve
}

// NewSignatureSchema returns the schema for the given curve and group assignment. It fails with ErrInvalidArgument if
// the curve is not supported or the group assignment is unknown.
func NewSignatureSchema(curve Curve, groupAssignment GroupAssignment) (SignatureSchema, error) {
	if !groupAssignment.valid() {
		return SignatureSchema{}, fmt.Errorf("%w: unknown group assignment %d", ErrInvalidArgument, uint8(groupAssignment))
	}
	pfc, ok := curve.resolve()
	if !ok {
		return SignatureSchema{}, fmt.Errorf("%w: unsupported curve id %d", ErrInvalidArgument, int(curve))
	}
	return SignatureSchema{groupAssignment, curve, pfc}, nil
}

// MustSignatureSchema is like NewSignatureSchema but panics on error. Intended for package-level variables and tests.
func MustSignatureSchema(curve Curve, groupAssignment GroupAssignment) SignatureSchema {
	s, err := NewSignatureSchema(curve, groupAssignment)
	if err != nil {
		panic(err)
	}
	return s
}

// SupportedSignatureSchemas returns every combination of a supported curve and a group assignment, ordered by curve id
// first.
func SupportedSignatureSchemas() []SignatureSchema {
	var schemas []SignatureSchema
	for _, c := range SupportedCurves() {
		for _, g := range GroupAssignments {
			schemas = append(schemas, MustSignatureSchema(c, g))
		}
	}
	return schemas
}

// SignatureSchemaFromBytes decodes the schema from the first byte of b, e.g., of an encoded key or signature.
func SignatureSchemaFromBytes(b []byte) (SignatureSchema, error) {
	if len(b) == 0 {
		return SignatureSchema{}, fmt.Errorf("%w: cannot decode signature schema from empty input", ErrInvalidArgument)
	}
	return SignatureSchemaFromByte(b[0])
}

// SignatureSchemaFromByte decodes a schema byte: the most significant bit is the group assignment id, the remaining
// bits are the curve id.
func SignatureSchemaFromByte(b byte) (SignatureSchema, error) {
	groupAssignment, curve := schemaByte(b).unpack()
	s, err := NewSignatureSchema(curve, groupAssignment)
	if err != nil {
		return SignatureSchema{}, fmt.Errorf("invalid signature schema byte 0x%02x: %w", b, err)
	}
	return s, nil
}

// ToByte returns the schema byte (groupAssignment.ID() << 7) | curve.
func (s SignatureSchema) ToByte() (byte, error) {
	if s.IsZero() {
		return 0, fmt.Errorf("%w: uninitialized signature schema", ErrNilArgument)
	}
	b, err := packSchemaByte(s.groupAssignment, s.curve)
	if err != nil {
		return 0, err
	}
	return byte(b), nil
}

// Encoding helper for initialized schemas, which are guaranteed to have a valid schema byte.
func (s SignatureSchema) mustByte() byte {
	b, err := s.ToByte()
	if err != nil {
		panic(err)
	}
	return b
}

func (s SignatureSchema) Curve() Curve {
	return s.curve
}

func (s SignatureSchema) GroupAssignment() GroupAssignment {
	return s.groupAssignment
}

// IsZero returns true for the uninitialized zero value.
func (s SignatureSchema) IsZero() bool {
	return s.pfc == nil
}

func (s SignatureSchema) Equal(other SignatureSchema) bool {
	return s.IsZero() == other.IsZero() && s.groupAssignment == other.groupAssignment && s.curve == other.curve
}

func (s SignatureSchema) String() string {
	if s.IsZero() {
		return "SignatureSchema{}"
	}
	return fmt.Sprintf("SignatureSchema{%s, %s}", s.curve, s.groupAssignment)
}

// PrivateKeySize returns the length of an encoded private key, including the schema byte.
func (s SignatureSchema) PrivateKeySize() int {
	return 1 + s.field().ElementSize()
}

// PublicKeySize returns the length of an encoded public key, including the schema byte.
func (s SignatureSchema) PublicKeySize() int {
	return 1 + s.publicKeyGroup().PointBytes()
}

// SignatureSize returns the length of an encoded signature, including the schema byte.
func (s SignatureSchema) SignatureSize() int {
	return 1 + s.signatureGroup().PointBytes()
}

func (s SignatureSchema) field() math.Field {
	return s.pfc.Field()
}

func (s SignatureSchema) publicKeyGroup() math.Group {
	if s.groupAssignment == ShortSignatures {
		return s.pfc.G2()
	}
	return s.pfc.G1()
}

func (s SignatureSchema) signatureGroup() math.Group {
	if s.groupAssignment == ShortSignatures {
		return s.pfc.G1()
	}
	return s.pfc.G2()
}
