package bls

import (
	"crypto/sha256"
	"fmt"
	"io"
	"slices"

	"golang.org/x/crypto/hkdf"
)

const (
	keyGenSalt = "BLS-SIG-KEYGEN-SALT-"

	// MinSeedLength is the minimal length of the input keying material accepted by PrivateKeyFromSeed.
	MinSeedLength = 32
)

// PrivateKeyFromSeed deterministically derives a private key from secret input keying material ikm, which must be at
// least MinSeedLength bytes long. The derivation is KeyGen of draft-irtf-cfrg-bls-signature-05 (Section 2.3) with an
// empty key_info, i.e., for BLS12-381 the keys match the ones of other implementations of the draft.
func PrivateKeyFromSeed(schema SignatureSchema, ikm []byte) (PrivateKey, error) {
	return PrivateKeyFromSeedWithInfo(schema, ikm, nil)
}

// PrivateKeyFromSeedWithInfo is PrivateKeyFromSeed with an application specific key_info, allowing to derive multiple
// independent keys from the same ikm.
func PrivateKeyFromSeedWithInfo(schema SignatureSchema, ikm []byte, keyInfo []byte) (PrivateKey, error) {
	if schema.IsZero() {
		return PrivateKey{}, fmt.Errorf("%w: uninitialized signature schema", ErrNilArgument)
	}
	if len(ikm) < MinSeedLength {
		return PrivateKey{}, fmt.Errorf("%w: seed must be at least %d bytes, got %d", ErrInvalidArgument, MinSeedLength, len(ikm))
	}

	field := schema.field()
	l := (3*field.Modulus().BitLen() + 15) / 16 // ceil((3 * ceil(log2(r))) / 16)

	ikm = append(slices.Clip(ikm), 0)                         // IKM || I2OSP(0, 1)
	info := append(slices.Clip(keyInfo), byte(l>>8), byte(l)) // key_info || I2OSP(L, 2)
	salt := []byte(keyGenSalt)
	okm := make([]byte, l)

	for {
		digest := sha256.Sum256(salt)
		salt = digest[:]

		prk := hkdf.Extract(sha256.New, ikm, salt)
		if _, err := io.ReadFull(hkdf.Expand(sha256.New, prk, info), okm); err != nil {
			return PrivateKey{}, fmt.Errorf("failed to expand seed: %w", err)
		}
		if sk := field.FromUniformBytes(okm); !sk.IsZero() {
			return PrivateKey{sk, schema}, nil
		}
	}
}
