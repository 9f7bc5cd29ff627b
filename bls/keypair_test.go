package bls

import (
	"testing"

	"github.com/smartcontractkit/smbls/internal/testimplementations/detrand"
	"github.com/stretchr/testify/require"
)

func TestNewKeyPair(t *testing.T) {
	forEachSchema(t, func(t *testing.T, schema SignatureSchema) {
		sks, pks := newTestKeys(t, schema, 2)

		kp, err := NewKeyPair(sks[0], pks[0])
		require.NoError(t, err)
		require.True(t, sks[0].Equal(kp.PrivateKey()))
		require.True(t, pks[0].Equal(kp.PublicKey()))
		require.True(t, schema.Equal(kp.Schema()))

		sig, err := kp.Sign([]byte("key pair"))
		require.NoError(t, err)
		valid, err := sig.Verify(kp.PublicKey(), []byte("key pair"))
		require.NoError(t, err)
		require.True(t, valid)

		_, err = NewKeyPair(sks[0], pks[1])
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, otherPks := newTestKeys(t, otherSchema(schema), 1)
		_, err = NewKeyPair(sks[0], otherPks[0])
		require.ErrorIs(t, err, ErrSchemaMismatch)

		_, err = NewKeyPair(PrivateKey{}, pks[0])
		require.ErrorIs(t, err, ErrNilArgument)
		_, err = NewKeyPair(sks[0], PublicKey{})
		require.ErrorIs(t, err, ErrNilArgument)
	})
}

func TestGenerateKeyPair(t *testing.T) {
	forEachSchema(t, func(t *testing.T, schema SignatureSchema) {
		kp, err := GenerateKeyPair(schema, detrand.New(t.Name()))
		require.NoError(t, err)
		require.False(t, kp.IsZero())
		require.True(t, kp.PrivateKey().PublicKey().Equal(kp.PublicKey()))

		same, err := KeyPairFromPrivateKey(kp.PrivateKey())
		require.NoError(t, err)
		require.True(t, kp.PublicKey().Equal(same.PublicKey()))
	})

	_, err := GenerateKeyPair(SignatureSchema{}, nil)
	require.ErrorIs(t, err, ErrNilArgument)
	_, err = KeyPairFromPrivateKey(PrivateKey{})
	require.ErrorIs(t, err, ErrNilArgument)
	require.True(t, KeyPair{}.IsZero())
}
