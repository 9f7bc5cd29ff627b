package keyfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartcontractkit/smbls/bls"
	"github.com/smartcontractkit/smbls/internal/testimplementations/detrand"
	"github.com/stretchr/testify/require"
)

func newTestKeyPair(t *testing.T, schema bls.SignatureSchema) bls.KeyPair {
	kp, err := bls.GenerateKeyPair(schema, detrand.New(t.Name()))
	require.NoError(t, err)
	return kp
}

func TestWriteAndRead(t *testing.T) {
	for _, schema := range bls.SupportedSignatureSchemas() {
		t.Run(schema.String(), func(t *testing.T) {
			kp := newTestKeyPair(t, schema)
			name := filepath.Join(t.TempDir(), "key.cbor")

			f, err := New(kp, nil)
			require.NoError(t, err)
			require.False(t, f.IsEncrypted())
			require.NoError(t, Write(name, f, 0600))

			info, err := os.Stat(name)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())

			loaded, err := Read(name)
			require.NoError(t, err)
			require.True(t, loaded.HasPrivateKey())

			loadedKp, err := loaded.KeyPair(nil)
			require.NoError(t, err)
			require.True(t, kp.PrivateKey().Equal(loadedKp.PrivateKey()))
			require.True(t, kp.PublicKey().Equal(loadedKp.PublicKey()))
		})
	}
}

func TestEncryptedKeyFile(t *testing.T) {
	kp := newTestKeyPair(t, bls.MustSignatureSchema(bls.BLS12381, bls.ShortSignatures))
	name := filepath.Join(t.TempDir(), "key.cbor")
	passphrase := []byte("correct horse battery staple")

	f, err := New(kp, passphrase)
	require.NoError(t, err)
	require.True(t, f.IsEncrypted())
	require.Nil(t, f.PrivateKey)
	require.NoError(t, Write(name, f, 0600))

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	require.NotContains(t, string(data), string(kp.PrivateKey().Bytes()[1:]))

	loaded, err := Read(name)
	require.NoError(t, err)
	pk, err := loaded.Public()
	require.NoError(t, err)
	require.True(t, kp.PublicKey().Equal(pk))

	_, err = loaded.KeyPair(nil)
	require.ErrorIs(t, err, ErrPassphraseMissing)
	_, err = loaded.KeyPair([]byte("wrong"))
	require.ErrorIs(t, err, ErrPassphrase)

	loadedKp, err := loaded.KeyPair(passphrase)
	require.NoError(t, err)
	require.True(t, kp.PrivateKey().Equal(loadedKp.PrivateKey()))
}

func TestPublicKeyFile(t *testing.T) {
	kp := newTestKeyPair(t, bls.MustSignatureSchema(bls.ALTBN128, bls.ShortPublicKeys))
	name := filepath.Join(t.TempDir(), "pub.cbor")

	f, err := NewPublic(kp.PublicKey())
	require.NoError(t, err)
	require.NoError(t, Write(name, f, 0644))

	loaded, err := Read(name)
	require.NoError(t, err)
	require.False(t, loaded.HasPrivateKey())
	pk, err := loaded.Public()
	require.NoError(t, err)
	require.True(t, kp.PublicKey().Equal(pk))

	_, err = loaded.KeyPair(nil)
	require.ErrorIs(t, err, ErrNoPrivateKey)

	_, err = NewPublic(bls.PublicKey{})
	require.ErrorIs(t, err, bls.ErrNilArgument)
	_, err = New(bls.KeyPair{}, nil)
	require.ErrorIs(t, err, bls.ErrNilArgument)
}

func TestInvalidKeyFiles(t *testing.T) {
	schema := bls.MustSignatureSchema(bls.ALTBN128, bls.ShortSignatures)
	kp := newTestKeyPair(t, schema)
	other, err := bls.GenerateKeyPair(schema, detrand.New(t.Name(), "other"))
	require.NoError(t, err)

	// mismatching public key
	f := &File{PublicKey: other.PublicKey().Bytes(), PrivateKey: kp.PrivateKey().Bytes()}
	_, err = f.KeyPair(nil)
	require.ErrorIs(t, err, ErrInvalidKeyFile)
	require.ErrorIs(t, err, bls.ErrInvalidArgument)

	// malformed private key
	f = &File{PublicKey: kp.PublicKey().Bytes(), PrivateKey: []byte{0x00, 0x01}}
	_, err = f.KeyPair(nil)
	require.ErrorIs(t, err, ErrInvalidKeyFile)

	// malformed public key
	f = &File{PublicKey: []byte{0x00}}
	_, err = f.Public()
	require.ErrorIs(t, err, ErrInvalidKeyFile)

	dir := t.TempDir()
	name := filepath.Join(dir, "garbage.cbor")
	require.NoError(t, os.WriteFile(name, []byte{0xFF, 0x00}, 0600))
	_, err = Read(name)
	require.ErrorIs(t, err, ErrInvalidKeyFile)

	name = filepath.Join(dir, "empty-map.cbor")
	require.NoError(t, os.WriteFile(name, []byte{0xA0}, 0600))
	_, err = Read(name)
	require.ErrorIs(t, err, ErrInvalidKeyFile)

	_, err = Read(filepath.Join(dir, "missing.cbor"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "key.cbor")
	schema := bls.MustSignatureSchema(bls.BLS12381, bls.ShortPublicKeys)

	first, err := New(newTestKeyPair(t, schema), nil)
	require.NoError(t, err)
	require.NoError(t, Write(name, first, 0600))

	kp, err := bls.GenerateKeyPair(schema, detrand.New(t.Name(), 2))
	require.NoError(t, err)
	second, err := New(kp, nil)
	require.NoError(t, err)
	require.NoError(t, Write(name, second, 0600))

	loaded, err := Read(name)
	require.NoError(t, err)
	require.Equal(t, second.PublicKey, loaded.PublicKey)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")

	require.Error(t, Write(filepath.Join(dir, "missing", "key.cbor"), second, 0600))
}

func TestEncodingIsDeterministic(t *testing.T) {
	f, err := New(newTestKeyPair(t, bls.MustSignatureSchema(bls.BLS12381, bls.ShortSignatures)), nil)
	require.NoError(t, err)

	a, err := f.Encode()
	require.NoError(t, err)
	b, err := f.Encode()
	require.NoError(t, err)
	require.Equal(t, a, b)

	parsed, err := Parse(a)
	require.NoError(t, err)
	require.Equal(t, f, parsed)
}
