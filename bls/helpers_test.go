package bls

import (
	"testing"

	"github.com/smartcontractkit/smbls/internal/testimplementations/detrand"
	"github.com/stretchr/testify/require"
)

func forEachSchema(t *testing.T, f func(t *testing.T, schema SignatureSchema)) {
	for _, schema := range SupportedSignatureSchemas() {
		t.Run(schema.String(), func(t *testing.T) {
			f(t, schema)
		})
	}
}

func newTestKeys(t *testing.T, schema SignatureSchema, n int) ([]PrivateKey, []PublicKey) {
	sks := make([]PrivateKey, n)
	pks := make([]PublicKey, n)
	for i := range n {
		sk, err := GeneratePrivateKey(schema, detrand.New(t.Name(), i))
		require.NoError(t, err)
		sks[i] = sk
		pks[i] = sk.PublicKey()
	}
	return sks, pks
}

func mustSign(t *testing.T, sk PrivateKey, msg []byte) Signature {
	sig, err := sk.Sign(msg)
	require.NoError(t, err)
	return sig
}

// otherSchema returns a supported schema different from schema.
func otherSchema(schema SignatureSchema) SignatureSchema {
	for _, s := range SupportedSignatureSchemas() {
		if !s.Equal(schema) {
			return s
		}
	}
	panic("only a single signature schema is supported")
}
