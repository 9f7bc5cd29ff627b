package math

import (
	"crypto/subtle"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// ALT_BN128, a.k.a. BN254, the curve of the EIP-196/EIP-197 precompiles.
// Group operations, hash-to-curve (SVDW map, RFC 9380) and the optimal ate pairing are provided by gnark-crypto.

// EIP-197, group order r of G1 and G2.
var bn254GroupOrder = NewModulus("21888242871839275222246405745257275088548364400416034343698204186575808495617")

const (
	bn254G1CompressedLength = bn254.SizeOfG1AffineCompressed // 32
	bn254G2CompressedLength = bn254.SizeOfG2AffineCompressed // 64

	bn254G1DST = "BLS_SIG_BN254G1_XMD:SHA-256_SVDW_RO_NUL_"
	bn254G2DST = "BLS_SIG_BN254G2_XMD:SHA-256_SVDW_RO_NUL_"
)

type bn254Curve struct{}
type bn254G1Group struct{}
type bn254G2Group struct{}

var BN254 = &bn254Curve{}

var (
	bn254Field = &scalarField{"ALT_BN128", bn254GroupOrder}
	bn254G1    = &bn254G1Group{}
	bn254G2    = &bn254G2Group{}
)

func (c *bn254Curve) internal()        {}
func (c *bn254Curve) ID() CurveID      { return AltBN128ID }
func (c *bn254Curve) Name() string     { return "ALT_BN128" }
func (c *bn254Curve) Field() Field     { return bn254Field }
func (c *bn254Curve) G1() Group        { return bn254G1 }
func (c *bn254Curve) G2() Group        { return bn254G2 }
func (c *bn254Curve) String() string   { return c.Name() }
func (g *bn254G1Group) String() string { return g.Name() }
func (g *bn254G2Group) String() string { return g.Name() }

func (c *bn254Curve) Pair(p, q Point) (Pairing, error) {
	var a *BN254G1Point
	var b *BN254G2Point
	switch p := p.(type) {
	case *BN254G1Point:
		a = p
		b, _ = q.(*BN254G2Point)
	case *BN254G2Point:
		a, _ = q.(*BN254G1Point)
		b = p
	}
	if a == nil || b == nil {
		return nil, fmt.Errorf("ALT_BN128 pairing requires one G1 and one G2 point, got %T and %T", p, q)
	}

	gt, err := bn254.Pair([]bn254.G1Affine{a.value}, []bn254.G2Affine{b.value})
	if err != nil {
		return nil, fmt.Errorf("ALT_BN128 pairing failed: %w", err)
	}
	return &bn254Pairing{gt}, nil
}

type bn254Pairing struct {
	value bn254.GT
}

func (e *bn254Pairing) Curve() PairingFriendlyCurve { return BN254 }

func (e *bn254Pairing) Equal(other Pairing) bool {
	o, ok := other.(*bn254Pairing)
	return ok && e.value.Equal(&o.value)
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

func (g *bn254G1Group) Curve() PairingFriendlyCurve { return BN254 }
func (g *bn254G1Group) Name() string                { return "ALT_BN128/G1" }
func (g *bn254G1Group) Point() Point                { return &BN254G1Point{} }
func (g *bn254G1Group) PointBytes() int             { return bn254G1CompressedLength }
func (g *bn254G1Group) Add(points ...Point) Point   { return sumOrIdentity(g, points) }

func (g *bn254G1Group) Generator() Point {
	_, _, g1, _ := bn254.Generators()
	return &BN254G1Point{g1}
}

func (g *bn254G1Group) HashToCurve(msg []byte) (Point, error) {
	p, err := bn254.HashToG1(msg, []byte(bn254G1DST))
	if err != nil {
		return nil, fmt.Errorf("failed to hash message to ALT_BN128 G1: %w", err)
	}
	return &BN254G1Point{p}, nil
}

func (g *bn254G1Group) FromBytes(b []byte) (Point, error) {
	return g.Point().SetBytes(b)
}

type BN254G1Point struct {
	value bn254.G1Affine
}

func (v *BN254G1Point) Group() Group {
	return bn254G1
}

func (v *BN254G1Point) New() Point {
	return &BN254G1Point{}
}

func (v *BN254G1Point) Clone() Point {
	return &BN254G1Point{v.value}
}

func (v *BN254G1Point) Set(u Point) Point {
	v.value.Set(&u.(*BN254G1Point).value)
	return v
}

func (v *BN254G1Point) Add(p Point, q Point) Point {
	var a, b bn254.G1Jac
	a.FromAffine(&p.(*BN254G1Point).value)
	b.FromAffine(&q.(*BN254G1Point).value)
	a.AddAssign(&b)
	v.value.FromJacobian(&a)
	return v
}

func (v *BN254G1Point) ScalarMult(x Scalar, q Point) Point {
	v.value.ScalarMultiplication(&q.(*BN254G1Point).value, x.BigInt())
	return v
}

func (v *BN254G1Point) ScalarBaseMult(x Scalar) Point {
	return v.ScalarMult(x, bn254G1.Generator())
}

func (v *BN254G1Point) Equal(q Point) bool {
	return v.value.Equal(&q.(*BN254G1Point).value)
}

func (v *BN254G1Point) IsIdentity() bool {
	return v.value.IsInfinity()
}

func (v *BN254G1Point) Bytes() []byte {
	b := v.value.Bytes()
	return b[:]
}

func (v *BN254G1Point) SetBytes(x []byte) (Point, error) {
	if len(x) != bn254G1CompressedLength {
		return nil, fmt.Errorf("invalid ALT_BN128 G1 point length: %d, expected: %d (compressed format)", len(x), bn254G1CompressedLength)
	}
	var p bn254.G1Affine
	if _, err := p.SetBytes(x); err != nil {
		return nil, fmt.Errorf("invalid ALT_BN128 G1 point: %w", err)
	}

	b := p.Bytes()
	if subtle.ConstantTimeCompare(b[:], x) != 1 {
		return nil, fmt.Errorf("invalid ALT_BN128 G1 point: not in canonical form")
	}
	v.value = p
	return v, nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

func (g *bn254G2Group) Curve() PairingFriendlyCurve { return BN254 }
func (g *bn254G2Group) Name() string                { return "ALT_BN128/G2" }
func (g *bn254G2Group) Point() Point                { return &BN254G2Point{} }
func (g *bn254G2Group) PointBytes() int             { return bn254G2CompressedLength }
func (g *bn254G2Group) Add(points ...Point) Point   { return sumOrIdentity(g, points) }

func (g *bn254G2Group) Generator() Point {
	_, _, _, g2 := bn254.Generators()
	return &BN254G2Point{g2}
}

func (g *bn254G2Group) HashToCurve(msg []byte) (Point, error) {
	p, err := bn254.HashToG2(msg, []byte(bn254G2DST))
	if err != nil {
		return nil, fmt.Errorf("failed to hash message to ALT_BN128 G2: %w", err)
	}
	return &BN254G2Point{p}, nil
}

func (g *bn254G2Group) FromBytes(b []byte) (Point, error) {
	return g.Point().SetBytes(b)
}

type BN254G2Point struct {
	value bn254.G2Affine
}

func (v *BN254G2Point) Group() Group {
	return bn254G2
}

func (v *BN254G2Point) New() Point {
	return &BN254G2Point{}
}

func (v *BN254G2Point) Clone() Point {
	return &BN254G2Point{v.value}
}

func (v *BN254G2Point) Set(u Point) Point {
	v.value.Set(&u.(*BN254G2Point).value)
	return v
}

func (v *BN254G2Point) Add(p Point, q Point) Point {
	var a, b bn254.G2Jac
	a.FromAffine(&p.(*BN254G2Point).value)
	b.FromAffine(&q.(*BN254G2Point).value)
	a.AddAssign(&b)
	v.value.FromJacobian(&a)
	return v
}

func (v *BN254G2Point) ScalarMult(x Scalar, q Point) Point {
	v.value.ScalarMultiplication(&q.(*BN254G2Point).value, x.BigInt())
	return v
}

func (v *BN254G2Point) ScalarBaseMult(x Scalar) Point {
	return v.ScalarMult(x, bn254G2.Generator())
}

func (v *BN254G2Point) Equal(q Point) bool {
	return v.value.Equal(&q.(*BN254G2Point).value)
}

func (v *BN254G2Point) IsIdentity() bool {
	return v.value.IsInfinity()
}

func (v *BN254G2Point) Bytes() []byte {
	b := v.value.Bytes()
	return b[:]
}

func (v *BN254G2Point) SetBytes(x []byte) (Point, error) {
	if len(x) != bn254G2CompressedLength {
		return nil, fmt.Errorf("invalid ALT_BN128 G2 point length: %d, expected: %d (compressed format)", len(x), bn254G2CompressedLength)
	}
	var p bn254.G2Affine
	if _, err := p.SetBytes(x); err != nil {
		return nil, fmt.Errorf("invalid ALT_BN128 G2 point: %w", err)
	}

	b := p.Bytes()
	if subtle.ConstantTimeCompare(b[:], x) != 1 {
		return nil, fmt.Errorf("invalid ALT_BN128 G2 point: not in canonical form")
	}
	v.value = p
	return v, nil
}
