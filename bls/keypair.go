package bls

import (
	"fmt"
	"io"
)

// KeyPair is a private key together with its public key.
type KeyPair struct {
	privateKey PrivateKey
	publicKey  PublicKey
}

// NewKeyPair validates that pk is the public key of sk.
func NewKeyPair(sk PrivateKey, pk PublicKey) (KeyPair, error) {
	if sk.IsZero() {
		return KeyPair{}, fmt.Errorf("%w: uninitialized private key", ErrNilArgument)
	}
	if pk.IsZero() {
		return KeyPair{}, fmt.Errorf("%w: uninitialized public key", ErrNilArgument)
	}
	if !sk.Schema().Equal(pk.Schema()) {
		return KeyPair{}, fmt.Errorf("%w: private key uses %s, public key uses %s", ErrSchemaMismatch, sk.Schema(), pk.Schema())
	}
	if !sk.PublicKey().Equal(pk) {
		return KeyPair{}, fmt.Errorf("%w: public key does not belong to the private key", ErrInvalidArgument)
	}
	return KeyPair{sk, pk}, nil
}

// GenerateKeyPair generates a new random key pair. If rng is nil, crypto/rand.Reader is used.
func GenerateKeyPair(schema SignatureSchema, rng io.Reader) (KeyPair, error) {
	sk, err := GeneratePrivateKey(schema, rng)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{sk, sk.PublicKey()}, nil
}

// KeyPairFromPrivateKey derives the public key of sk.
func KeyPairFromPrivateKey(sk PrivateKey) (KeyPair, error) {
	if sk.IsZero() {
		return KeyPair{}, fmt.Errorf("%w: uninitialized private key", ErrNilArgument)
	}
	return KeyPair{sk, sk.PublicKey()}, nil
}

func (kp KeyPair) PrivateKey() PrivateKey {
	return kp.privateKey
}

func (kp KeyPair) PublicKey() PublicKey {
	return kp.publicKey
}

func (kp KeyPair) Schema() SignatureSchema {
	return kp.privateKey.Schema()
}

func (kp KeyPair) IsZero() bool {
	return kp.privateKey.IsZero()
}

func (kp KeyPair) Sign(msg []byte) (Signature, error) {
	return kp.privateKey.Sign(msg)
}

func (kp KeyPair) String() string {
	return fmt.Sprintf("KeyPair{schema: %s, publicKey: %s}", kp.Schema(), kp.publicKey)
}
