package bls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	forEachSchema(t, func(t *testing.T, schema SignatureSchema) {
		sks, pks := newTestKeys(t, schema, 2)
		msg := []byte("hello world")
		sig := mustSign(t, sks[0], msg)
		require.True(t, schema.Equal(sig.Schema()))

		valid, err := sig.Verify(pks[0], msg)
		require.NoError(t, err)
		require.True(t, valid)

		valid, err = pks[0].Verify(sig.Bytes(), msg)
		require.NoError(t, err)
		require.True(t, valid)

		// BLS signatures are deterministic.
		require.True(t, sig.Equal(mustSign(t, sks[0], msg)))

		valid, err = sig.Verify(pks[0], []byte("hello world!"))
		require.NoError(t, err)
		require.False(t, valid)

		valid, err = sig.Verify(pks[1], msg)
		require.NoError(t, err)
		require.False(t, valid)

		valid, err = pks[1].Verify(sig.Bytes(), msg)
		require.NoError(t, err)
		require.False(t, valid)
	})
}

func TestSignEmptyMessage(t *testing.T) {
	forEachSchema(t, func(t *testing.T, schema SignatureSchema) {
		sks, pks := newTestKeys(t, schema, 1)
		sig := mustSign(t, sks[0], nil)

		valid, err := sig.Verify(pks[0], []byte{})
		require.NoError(t, err)
		require.True(t, valid)

		valid, err = sig.Verify(pks[0], []byte{0})
		require.NoError(t, err)
		require.False(t, valid)
	})
}

func TestVerifySchemaMismatch(t *testing.T) {
	forEachSchema(t, func(t *testing.T, schema SignatureSchema) {
		sks, _ := newTestKeys(t, schema, 1)
		_, otherPks := newTestKeys(t, otherSchema(schema), 1)
		sig := mustSign(t, sks[0], []byte("msg"))

		valid, err := sig.Verify(otherPks[0], []byte("msg"))
		require.ErrorIs(t, err, ErrSchemaMismatch)
		require.False(t, valid)

		valid, err = otherPks[0].Verify(sig.Bytes(), []byte("msg"))
		require.ErrorIs(t, err, ErrSchemaMismatch)
		require.False(t, valid)
	})
}

func TestVerifyZeroValues(t *testing.T) {
	schema := MustSignatureSchema(ALTBN128, ShortSignatures)
	sks, pks := newTestKeys(t, schema, 1)
	sig := mustSign(t, sks[0], []byte("msg"))

	_, err := sig.Verify(PublicKey{}, []byte("msg"))
	require.ErrorIs(t, err, ErrNilArgument)
	_, err = Signature{}.Verify(pks[0], []byte("msg"))
	require.ErrorIs(t, err, ErrNilArgument)
	_, err = PrivateKey{}.Sign([]byte("msg"))
	require.ErrorIs(t, err, ErrNilArgument)

	valid, err := pks[0].Verify([]byte{}, []byte("msg"))
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.False(t, valid)
}

func TestIdentityPublicKeyNeverVerifies(t *testing.T) {
	forEachSchema(t, func(t *testing.T, schema SignatureSchema) {
		encoded := make([]byte, schema.PrivateKeySize())
		encoded[0] = schema.mustByte()
		sk, err := PrivateKeyFromBytes(encoded)
		require.NoError(t, err)

		pk := sk.PublicKey()
		decoded, err := PublicKeyFromBytes(pk.Bytes())
		require.NoError(t, err)
		require.True(t, pk.Equal(decoded))

		sig := mustSign(t, sk, []byte("msg"))
		valid, err := sig.Verify(pk, []byte("msg"))
		require.NoError(t, err)
		require.False(t, valid)
	})
}

func TestAggregation(t *testing.T) {
	forEachSchema(t, func(t *testing.T, schema SignatureSchema) {
		const n = 5
		msg := []byte("aggregate me")
		sks, pks := newTestKeys(t, schema, n)
		sigs := make([]Signature, n)
		for i, sk := range sks {
			sigs[i] = mustSign(t, sk, msg)
		}

		aggSk, err := AggregatePrivateKeys(sks)
		require.NoError(t, err)
		aggPk, err := AggregatePublicKeys(pks)
		require.NoError(t, err)
		aggSig, err := AggregateSignatures(sigs)
		require.NoError(t, err)

		require.Len(t, aggSk.Bytes(), schema.PrivateKeySize())
		require.Len(t, aggPk.Bytes(), schema.PublicKeySize())
		require.Len(t, aggSig.Bytes(), schema.SignatureSize())

		require.True(t, aggSk.PublicKey().Equal(aggPk))
		require.True(t, mustSign(t, aggSk, msg).Equal(aggSig))

		valid, err := aggSig.Verify(aggPk, msg)
		require.NoError(t, err)
		require.True(t, valid)

		valid, err = aggSig.Verify(pks[0], msg)
		require.NoError(t, err)
		require.False(t, valid)

		// Missing one signer.
		partialPk, err := AggregatePublicKeys(pks[:n-1])
		require.NoError(t, err)
		valid, err = aggSig.Verify(partialPk, msg)
		require.NoError(t, err)
		require.False(t, valid)

		// The aggregation does not depend on the order of the inputs.
		reversed := make([]PublicKey, n)
		for i := range pks {
			reversed[n-1-i] = pks[i]
		}
		aggPkReversed, err := AggregatePublicKeys(reversed)
		require.NoError(t, err)
		require.True(t, aggPk.Equal(aggPkReversed))
	})
}

func TestAggregateSignaturesOfDifferentMessages(t *testing.T) {
	forEachSchema(t, func(t *testing.T, schema SignatureSchema) {
		sks, pks := newTestKeys(t, schema, 2)
		sigA := mustSign(t, sks[0], []byte("a"))
		sigB := mustSign(t, sks[1], []byte("b"))

		aggSig, err := AggregateSignatures([]Signature{sigA, sigB})
		require.NoError(t, err)
		aggPk, err := AggregatePublicKeys(pks)
		require.NoError(t, err)

		for _, msg := range []string{"a", "b"} {
			valid, err := aggSig.Verify(aggPk, []byte(msg))
			require.NoError(t, err)
			require.False(t, valid)
		}
	})
}

func TestAggregationPreconditions(t *testing.T) {
	forEachSchema(t, func(t *testing.T, schema SignatureSchema) {
		sks, pks := newTestKeys(t, schema, 2)
		otherSks, otherPks := newTestKeys(t, otherSchema(schema), 1)
		sigs := []Signature{mustSign(t, sks[0], []byte("m")), mustSign(t, sks[1], []byte("m"))}
		otherSig := mustSign(t, otherSks[0], []byte("m"))

		// arity
		_, err := AggregatePrivateKeys(nil)
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = AggregatePrivateKeys(sks[:1])
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = AggregatePublicKeys([]PublicKey{})
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = AggregatePublicKeys(pks[:1])
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = AggregateSignatures(nil)
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = AggregateSignatures(sigs[:1])
		require.ErrorIs(t, err, ErrInvalidArgument)

		// mixed schemas
		_, err = AggregatePrivateKeys([]PrivateKey{sks[0], otherSks[0]})
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = AggregatePublicKeys([]PublicKey{pks[0], pks[1], otherPks[0]})
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = AggregateSignatures([]Signature{otherSig, sigs[0]})
		require.ErrorIs(t, err, ErrInvalidArgument)

		// uninitialized inputs
		_, err = AggregatePrivateKeys([]PrivateKey{sks[0], {}})
		require.ErrorIs(t, err, ErrNilArgument)
		_, err = AggregatePublicKeys([]PublicKey{{}, pks[0]})
		require.ErrorIs(t, err, ErrNilArgument)
		_, err = AggregateSignatures([]Signature{sigs[0], {}})
		require.ErrorIs(t, err, ErrNilArgument)
	})
}

func TestAggregationDoesNotModifyInputs(t *testing.T) {
	schema := MustSignatureSchema(BLS12381, ShortPublicKeys)
	sks, pks := newTestKeys(t, schema, 3)
	skBytes := sks[0].Bytes()
	pkBytes := pks[0].Bytes()

	_, err := AggregatePrivateKeys(sks)
	require.NoError(t, err)
	_, err = AggregatePublicKeys(pks)
	require.NoError(t, err)

	require.Equal(t, skBytes, sks[0].Bytes())
	require.Equal(t, pkBytes, pks[0].Bytes())
}
