package bls

import (
	"fmt"

	"github.com/smartcontractkit/smbls/internal/crypto/xof"
)

const signerSetDigestDST = "smbls/bls/SignerSet"

// SignerIndex is the position of a signer in a SignerSet. Indices are assigned in order of registration and never
// change.
type SignerIndex int

// SignerSet collects the public keys of a group of signers and the signatures they contribute for a common message.
// Each signature is bound to the index of its signer, so the aggregate public key and the aggregate signature returned
// by Aggregate() always cover the same signers.
//
// A SignerSet is not safe for concurrent modification.
type SignerSet struct {
	schema     SignatureSchema
	publicKeys []PublicKey
	signatures []Signature
	indices    map[string]SignerIndex
}

// NewSignerSet returns a signer set for the given schema and registers the given public keys in order.
func NewSignerSet(schema SignatureSchema, publicKeys ...PublicKey) (*SignerSet, error) {
	if schema.IsZero() {
		return nil, fmt.Errorf("%w: uninitialized signature schema", ErrNilArgument)
	}
	s := &SignerSet{schema: schema, indices: make(map[string]SignerIndex)}
	for _, pk := range publicKeys {
		if _, err := s.Add(pk); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *SignerSet) Schema() SignatureSchema {
	return s.schema
}

// Len returns the number of registered signers.
func (s *SignerSet) Len() int {
	return len(s.publicKeys)
}

// Add registers a signer and returns its index. Public keys can only be registered once.
func (s *SignerSet) Add(pk PublicKey) (SignerIndex, error) {
	if pk.IsZero() {
		return 0, fmt.Errorf("%w: uninitialized public key", ErrNilArgument)
	}
	if !pk.Schema().Equal(s.schema) {
		return 0, fmt.Errorf("%w: public key uses %s, signer set uses %s", ErrSchemaMismatch, pk.Schema(), s.schema)
	}
	key := string(pk.Bytes())
	if i, ok := s.indices[key]; ok {
		return 0, fmt.Errorf("%w: public key %s is already registered as signer %d", ErrInvalidArgument, pk, i)
	}

	i := SignerIndex(len(s.publicKeys))
	s.publicKeys = append(s.publicKeys, pk)
	s.signatures = append(s.signatures, Signature{})
	s.indices[key] = i
	return i, nil
}

// IndexOf returns the index of a registered signer.
func (s *SignerSet) IndexOf(pk PublicKey) (SignerIndex, bool) {
	if pk.IsZero() {
		return 0, false
	}
	i, ok := s.indices[string(pk.Bytes())]
	return i, ok
}

func (s *SignerSet) PublicKey(i SignerIndex) (PublicKey, error) {
	if err := s.checkIndex(i); err != nil {
		return PublicKey{}, err
	}
	return s.publicKeys[i], nil
}

// Signature returns the signature contributed by signer i, if any.
func (s *SignerSet) Signature(i SignerIndex) (Signature, bool) {
	if s.checkIndex(i) != nil || s.signatures[i].IsZero() {
		return Signature{}, false
	}
	return s.signatures[i], true
}

// AddSignature records the signature of signer i. The signature is not verified, see VerifyAndAddSignature. Each
// signer can contribute at most one signature.
func (s *SignerSet) AddSignature(i SignerIndex, sig Signature) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	if sig.IsZero() {
		return fmt.Errorf("%w: uninitialized signature", ErrNilArgument)
	}
	if !sig.Schema().Equal(s.schema) {
		return fmt.Errorf("%w: signature uses %s, signer set uses %s", ErrSchemaMismatch, sig.Schema(), s.schema)
	}
	if !s.signatures[i].IsZero() {
		return fmt.Errorf("%w: signer %d already contributed a signature", ErrInvalidArgument, i)
	}
	s.signatures[i] = sig
	return nil
}

// VerifyAndAddSignature verifies sig for msg under the public key of signer i and records it if it is valid. An invalid
// signature is rejected with ErrInvalidArgument.
func (s *SignerSet) VerifyAndAddSignature(i SignerIndex, sig Signature, msg []byte) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	valid, err := sig.Verify(s.publicKeys[i], msg)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("%w: invalid signature of signer %d", ErrInvalidArgument, i)
	}
	return s.AddSignature(i, sig)
}

// Signers returns the indices of all signers that contributed a signature, in ascending order.
func (s *SignerSet) Signers() []SignerIndex {
	var signers []SignerIndex
	for i, sig := range s.signatures {
		if !sig.IsZero() {
			signers = append(signers, SignerIndex(i))
		}
	}
	return signers
}

// Aggregate returns the aggregate public key and the aggregate signature of all signers that contributed a signature.
// If only a single signature was contributed, its signer's public key and signature are returned unchanged.
func (s *SignerSet) Aggregate() (PublicKey, Signature, error) {
	signers := s.Signers()
	switch len(signers) {
	case 0:
		return PublicKey{}, Signature{}, fmt.Errorf("%w: no signatures have been contributed", ErrInvalidArgument)
	case 1:
		return s.publicKeys[signers[0]], s.signatures[signers[0]], nil
	}

	publicKeys := make([]PublicKey, len(signers))
	signatures := make([]Signature, len(signers))
	for j, i := range signers {
		publicKeys[j] = s.publicKeys[i]
		signatures[j] = s.signatures[i]
	}
	pk, err := AggregatePublicKeys(publicKeys)
	if err != nil {
		return PublicKey{}, Signature{}, err
	}
	sig, err := AggregateSignatures(signatures)
	if err != nil {
		return PublicKey{}, Signature{}, err
	}
	return pk, sig, nil
}

// Verify checks the aggregate signature of the contributing signers for msg.
func (s *SignerSet) Verify(msg []byte) (bool, error) {
	pk, sig, err := s.Aggregate()
	if err != nil {
		return false, err
	}
	return sig.Verify(pk, msg)
}

// Digest returns a 32-byte commitment to the schema and to the ordered list of contributing signers (their indices
// and public keys). It does not depend on the signatures' values.
func (s *SignerSet) Digest() []byte {
	h := xof.New(signerSetDigestDST)
	h.WriteInt(int(s.schema.mustByte()))
	signers := s.Signers()
	h.WriteInt(len(signers))
	for _, i := range signers {
		h.WriteInt(int(i))
		h.WriteBytes(s.publicKeys[i].Bytes())
	}
	return h.Digest()
}

func (s *SignerSet) checkIndex(i SignerIndex) error {
	if i < 0 || int(i) >= len(s.publicKeys) {
		return fmt.Errorf("%w: signer index %d is out of range [0, %d)", ErrInvalidArgument, i, len(s.publicKeys))
	}
	return nil
}
