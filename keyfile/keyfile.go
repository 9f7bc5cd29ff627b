// Package keyfile stores BLS key pairs and public keys in CBOR encoded files. Private keys can optionally be encrypted
// with a passphrase (PBKDF2-SHA512 and XChaCha20-Poly1305).
package keyfile

import (
	"crypto/cipher"
	"crypto/pbkdf2"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/smartcontractkit/smbls/bls"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	encIterations = 32768
	encKeyLen     = chacha20poly1305.KeySize
	encSaltLen    = 16
)

var (
	ErrNoPrivateKey      = errors.New("key file does not contain a private key")
	ErrPassphrase        = errors.New("wrong passphrase or corrupted private key")
	ErrInvalidKeyFile    = errors.New("invalid key file")
	ErrPassphraseMissing = errors.New("private key is encrypted, passphrase required")
)

type encryptedPrivateKey struct {
	_    struct{} `cbor:",toarray"`
	Data []byte
	Salt []byte
}

// File is the content of a key file. Keys are stored in their binary encoding, including the schema byte.
type File struct {
	PublicKey           []byte               `cbor:"0,keyasint"`
	PrivateKey          []byte               `cbor:"1,keyasint,omitempty"`
	EncryptedPrivateKey *encryptedPrivateKey `cbor:"2,keyasint,omitempty"`
}

// New creates a key file for the key pair. If passphrase is not empty, the private key is encrypted.
func New(keyPair bls.KeyPair, passphrase []byte) (*File, error) {
	if keyPair.IsZero() {
		return nil, fmt.Errorf("%w: uninitialized key pair", bls.ErrNilArgument)
	}
	f := &File{PublicKey: keyPair.PublicKey().Bytes()}
	sk := keyPair.PrivateKey().Bytes()
	if len(passphrase) == 0 {
		f.PrivateKey = sk
		return f, nil
	}

	salt := make([]byte, encSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	aead, err := newAEAD(passphrase, salt)
	if err != nil {
		return nil, err
	}
	// The key is unique per salt, a fixed nonce is fine.
	var nonce [chacha20poly1305.NonceSizeX]byte
	f.EncryptedPrivateKey = &encryptedPrivateKey{
		Data: aead.Seal(nil, nonce[:], sk, f.PublicKey),
		Salt: salt,
	}
	return f, nil
}

// NewPublic creates a key file holding only a public key.
func NewPublic(pk bls.PublicKey) (*File, error) {
	if pk.IsZero() {
		return nil, fmt.Errorf("%w: uninitialized public key", bls.ErrNilArgument)
	}
	return &File{PublicKey: pk.Bytes()}, nil
}

func (f *File) IsEncrypted() bool {
	return f.EncryptedPrivateKey != nil
}

func (f *File) HasPrivateKey() bool {
	return f.PrivateKey != nil || f.EncryptedPrivateKey != nil
}

func (f *File) Public() (bls.PublicKey, error) {
	pk, err := bls.PublicKeyFromBytes(f.PublicKey)
	if err != nil {
		return bls.PublicKey{}, fmt.Errorf("%w: %w", ErrInvalidKeyFile, err)
	}
	return pk, nil
}

// KeyPair returns the stored key pair, decrypting the private key with passphrase if it is encrypted. The stored
// public key must match the private key.
func (f *File) KeyPair(passphrase []byte) (bls.KeyPair, error) {
	pk, err := f.Public()
	if err != nil {
		return bls.KeyPair{}, err
	}

	var skBytes []byte
	switch {
	case f.PrivateKey != nil:
		skBytes = f.PrivateKey
	case f.EncryptedPrivateKey != nil:
		if len(passphrase) == 0 {
			return bls.KeyPair{}, ErrPassphraseMissing
		}
		aead, err := newAEAD(passphrase, f.EncryptedPrivateKey.Salt)
		if err != nil {
			return bls.KeyPair{}, err
		}
		var nonce [chacha20poly1305.NonceSizeX]byte
		skBytes, err = aead.Open(nil, nonce[:], f.EncryptedPrivateKey.Data, f.PublicKey)
		if err != nil {
			return bls.KeyPair{}, ErrPassphrase
		}
	default:
		return bls.KeyPair{}, ErrNoPrivateKey
	}

	sk, err := bls.PrivateKeyFromBytes(skBytes)
	if err != nil {
		return bls.KeyPair{}, fmt.Errorf("%w: %w", ErrInvalidKeyFile, err)
	}
	kp, err := bls.NewKeyPair(sk, pk)
	if err != nil {
		return bls.KeyPair{}, fmt.Errorf("%w: %w", ErrInvalidKeyFile, err)
	}
	return kp, nil
}

func newAEAD(passphrase []byte, salt []byte) (cipher.AEAD, error) {
	key, err := pbkdf2.Key(sha512.New, string(passphrase), salt, encIterations, encKeyLen)
	if err != nil {
		return nil, err
	}
	return chacha20poly1305.NewX(key)
}

var encMode = func() cbor.EncMode {
	mode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

// Encode returns the deterministic CBOR encoding of f.
func (f *File) Encode() ([]byte, error) {
	return encMode.Marshal(f)
}

// Parse decodes a CBOR encoded key file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := cbor.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyFile, err)
	}
	if f.PublicKey == nil {
		return nil, fmt.Errorf("%w: missing public key", ErrInvalidKeyFile)
	}
	return &f, nil
}

// Read loads a key file from disk.
func Read(name string) (*File, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// Write stores f atomically, replacing an existing file.
func Write(name string, f *File, perm fs.FileMode) error {
	data, err := f.Encode()
	if err != nil {
		return err
	}
	return atomicWrite(name, data, perm)
}
