package math

import (
	"crypto/subtle"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// BLS12_381, the curve of the IETF BLS signature ciphersuites (and of Ethereum's consensus layer).
// Group operations, hash-to-curve (SSWU map, RFC 9380) and the optimal ate pairing are provided by gnark-crypto.
// Point encodings follow the ZCash compressed format, as used by blst.

// draft-irtf-cfrg-pairing-friendly-curves, Section 4.2.1, group order r of G1 and G2.
var bls12381GroupOrder = NewModulus("52435875175126190479447740508185965837690552500527637822603658699938581184513")

const (
	bls12381G1CompressedLength = bls12381.SizeOfG1AffineCompressed // 48
	bls12381G2CompressedLength = bls12381.SizeOfG2AffineCompressed // 96

	bls12381G1DST = "BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_"
	bls12381G2DST = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_NUL_"
)

type bls12381Curve struct{}
type bls12381G1Group struct{}
type bls12381G2Group struct{}

var BLS12381 = &bls12381Curve{}

var (
	bls12381Field = &scalarField{"BLS12_381", bls12381GroupOrder}
	bls12381G1    = &bls12381G1Group{}
	bls12381G2    = &bls12381G2Group{}
)

func (c *bls12381Curve) internal()        {}
func (c *bls12381Curve) ID() CurveID      { return BLS12381ID }
func (c *bls12381Curve) Name() string     { return "BLS12_381" }
func (c *bls12381Curve) Field() Field     { return bls12381Field }
func (c *bls12381Curve) G1() Group        { return bls12381G1 }
func (c *bls12381Curve) G2() Group        { return bls12381G2 }
func (c *bls12381Curve) String() string   { return c.Name() }
func (g *bls12381G1Group) String() string { return g.Name() }
func (g *bls12381G2Group) String() string { return g.Name() }

func (c *bls12381Curve) Pair(p, q Point) (Pairing, error) {
	var a *BLS12381G1Point
	var b *BLS12381G2Point
	switch p := p.(type) {
	case *BLS12381G1Point:
		a = p
		b, _ = q.(*BLS12381G2Point)
	case *BLS12381G2Point:
		a, _ = q.(*BLS12381G1Point)
		b = p
	}
	if a == nil || b == nil {
		return nil, fmt.Errorf("BLS12_381 pairing requires one G1 and one G2 point, got %T and %T", p, q)
	}

	gt, err := bls12381.Pair([]bls12381.G1Affine{a.value}, []bls12381.G2Affine{b.value})
	if err != nil {
		return nil, fmt.Errorf("BLS12_381 pairing failed: %w", err)
	}
	return &bls12381Pairing{gt}, nil
}

type bls12381Pairing struct {
	value bls12381.GT
}

func (e *bls12381Pairing) Curve() PairingFriendlyCurve { return BLS12381 }

func (e *bls12381Pairing) Equal(other Pairing) bool {
	o, ok := other.(*bls12381Pairing)
	return ok && e.value.Equal(&o.value)
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

func (g *bls12381G1Group) Curve() PairingFriendlyCurve { return BLS12381 }
func (g *bls12381G1Group) Name() string                { return "BLS12_381/G1" }
func (g *bls12381G1Group) Point() Point                { return &BLS12381G1Point{} }
func (g *bls12381G1Group) PointBytes() int             { return bls12381G1CompressedLength }
func (g *bls12381G1Group) Add(points ...Point) Point   { return sumOrIdentity(g, points) }

func (g *bls12381G1Group) Generator() Point {
	_, _, g1, _ := bls12381.Generators()
	return &BLS12381G1Point{g1}
}

func (g *bls12381G1Group) HashToCurve(msg []byte) (Point, error) {
	p, err := bls12381.HashToG1(msg, []byte(bls12381G1DST))
	if err != nil {
		return nil, fmt.Errorf("failed to hash message to BLS12_381 G1: %w", err)
	}
	return &BLS12381G1Point{p}, nil
}

func (g *bls12381G1Group) FromBytes(b []byte) (Point, error) {
	return g.Point().SetBytes(b)
}

type BLS12381G1Point struct {
	value bls12381.G1Affine
}

func (v *BLS12381G1Point) Group() Group {
	return bls12381G1
}

func (v *BLS12381G1Point) New() Point {
	return &BLS12381G1Point{}
}

func (v *BLS12381G1Point) Clone() Point {
	return &BLS12381G1Point{v.value}
}

func (v *BLS12381G1Point) Set(u Point) Point {
	v.value.Set(&u.(*BLS12381G1Point).value)
	return v
}

func (v *BLS12381G1Point) Add(p Point, q Point) Point {
	var a, b bls12381.G1Jac
	a.FromAffine(&p.(*BLS12381G1Point).value)
	b.FromAffine(&q.(*BLS12381G1Point).value)
	a.AddAssign(&b)
	v.value.FromJacobian(&a)
	return v
}

func (v *BLS12381G1Point) ScalarMult(x Scalar, q Point) Point {
	v.value.ScalarMultiplication(&q.(*BLS12381G1Point).value, x.BigInt())
	return v
}

func (v *BLS12381G1Point) ScalarBaseMult(x Scalar) Point {
	return v.ScalarMult(x, bls12381G1.Generator())
}

func (v *BLS12381G1Point) Equal(q Point) bool {
	return v.value.Equal(&q.(*BLS12381G1Point).value)
}

func (v *BLS12381G1Point) IsIdentity() bool {
	return v.value.IsInfinity()
}

func (v *BLS12381G1Point) Bytes() []byte {
	b := v.value.Bytes()
	return b[:]
}

func (v *BLS12381G1Point) SetBytes(x []byte) (Point, error) {
	if len(x) != bls12381G1CompressedLength {
		return nil, fmt.Errorf("invalid BLS12_381 G1 point length: %d, expected: %d (compressed format)", len(x), bls12381G1CompressedLength)
	}
	var p bls12381.G1Affine
	if _, err := p.SetBytes(x); err != nil {
		return nil, fmt.Errorf("invalid BLS12_381 G1 point: %w", err)
	}

	b := p.Bytes()
	if subtle.ConstantTimeCompare(b[:], x) != 1 {
		return nil, fmt.Errorf("invalid BLS12_381 G1 point: not in canonical form")
	}
	v.value = p
	return v, nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

func (g *bls12381G2Group) Curve() PairingFriendlyCurve { return BLS12381 }
func (g *bls12381G2Group) Name() string                { return "BLS12_381/G2" }
func (g *bls12381G2Group) Point() Point                { return &BLS12381G2Point{} }
func (g *bls12381G2Group) PointBytes() int             { return bls12381G2CompressedLength }
func (g *bls12381G2Group) Add(points ...Point) Point   { return sumOrIdentity(g, points) }

func (g *bls12381G2Group) Generator() Point {
	_, _, _, g2 := bls12381.Generators()
	return &BLS12381G2Point{g2}
}

func (g *bls12381G2Group) HashToCurve(msg []byte) (Point, error) {
	p, err := bls12381.HashToG2(msg, []byte(bls12381G2DST))
	if err != nil {
		return nil, fmt.Errorf("failed to hash message to BLS12_381 G2: %w", err)
	}
	return &BLS12381G2Point{p}, nil
}

func (g *bls12381G2Group) FromBytes(b []byte) (Point, error) {
	return g.Point().SetBytes(b)
}

type BLS12381G2Point struct {
	value bls12381.G2Affine
}

func (v *BLS12381G2Point) Group() Group {
	return bls12381G2
}

func (v *BLS12381G2Point) New() Point {
	return &BLS12381G2Point{}
}

func (v *BLS12381G2Point) Clone() Point {
	return &BLS12381G2Point{v.value}
}

func (v *BLS12381G2Point) Set(u Point) Point {
	v.value.Set(&u.(*BLS12381G2Point).value)
	return v
}

func (v *BLS12381G2Point) Add(p Point, q Point) Point {
	var a, b bls12381.G2Jac
	a.FromAffine(&p.(*BLS12381G2Point).value)
	b.FromAffine(&q.(*BLS12381G2Point).value)
	a.AddAssign(&b)
	v.value.FromJacobian(&a)
	return v
}

func (v *BLS12381G2Point) ScalarMult(x Scalar, q Point) Point {
	v.value.ScalarMultiplication(&q.(*BLS12381G2Point).value, x.BigInt())
	return v
}

func (v *BLS12381G2Point) ScalarBaseMult(x Scalar) Point {
	return v.ScalarMult(x, bls12381G2.Generator())
}

func (v *BLS12381G2Point) Equal(q Point) bool {
	return v.value.Equal(&q.(*BLS12381G2Point).value)
}

func (v *BLS12381G2Point) IsIdentity() bool {
	return v.value.IsInfinity()
}

func (v *BLS12381G2Point) Bytes() []byte {
	b := v.value.Bytes()
	return b[:]
}

func (v *BLS12381G2Point) SetBytes(x []byte) (Point, error) {
	if len(x) != bls12381G2CompressedLength {
		return nil, fmt.Errorf("invalid BLS12_381 G2 point length: %d, expected: %d (compressed format)", len(x), bls12381G2CompressedLength)
	}
	var p bls12381.G2Affine
	if _, err := p.SetBytes(x); err != nil {
		return nil, fmt.Errorf("invalid BLS12_381 G2 point: %w", err)
	}

	b := p.Bytes()
	if subtle.ConstantTimeCompare(b[:], x) != 1 {
		return nil, fmt.Errorf("invalid BLS12_381 G2 point: not in canonical form")
	}
	v.value = p
	return v, nil
}
