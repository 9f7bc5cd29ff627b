// Package signer provides a long-lived BLS signing service around a key pair, with structured logging and prometheus
// metrics. Signers and Verifiers are safe for concurrent use.
package signer

import (
	"fmt"

	"github.com/smartcontractkit/libocr/commontypes"
	"github.com/smartcontractkit/smbls/bls"
)

// Verifier verifies and aggregates signatures of any schema, logging and counting each operation.
type Verifier struct {
	logger  commontypes.Logger
	metrics *Metrics
}

// Signer signs with a fixed key pair. It embeds a Verifier sharing its logger and metrics.
type Signer struct {
	*Verifier
	keyPair bls.KeyPair
	fields  commontypes.LogFields
}

type Option func(*Verifier)

// WithLogger sets the logger, by default nothing is logged.
func WithLogger(logger commontypes.Logger) Option {
	return func(v *Verifier) {
		v.logger = logger
	}
}

// WithMetrics sets the metrics reported to, by default no metrics are recorded.
func WithMetrics(metrics *Metrics) Option {
	return func(v *Verifier) {
		v.metrics = metrics
	}
}

func NewVerifier(opts ...Option) *Verifier {
	v := &Verifier{logger: nopLogger{}}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func New(keyPair bls.KeyPair, opts ...Option) (*Signer, error) {
	if keyPair.IsZero() {
		return nil, fmt.Errorf("%w: uninitialized key pair", bls.ErrNilArgument)
	}
	s := &Signer{Verifier: NewVerifier(opts...), keyPair: keyPair}
	s.fields = commontypes.LogFields{
		"schema":    keyPair.Schema().String(),
		"publicKey": keyPair.PublicKey().String(),
	}
	s.logger.Info("signer initialized", s.fields)
	return s, nil
}

func (s *Signer) PublicKey() bls.PublicKey {
	return s.keyPair.PublicKey()
}

func (s *Signer) Schema() bls.SignatureSchema {
	return s.keyPair.Schema()
}

func (s *Signer) Sign(msg []byte) (bls.Signature, error) {
	sig, err := s.keyPair.Sign(msg)
	if err != nil {
		s.logger.Error("failed to sign message", merge(s.fields, commontypes.LogFields{"error": err}))
		return bls.Signature{}, err
	}
	s.metrics.signed(s.Schema())
	s.logger.Debug("signed message", merge(s.fields, commontypes.LogFields{"messageLength": len(msg)}))
	return sig, nil
}

// Verify verifies sig for msg under pk. The signature schema may differ from the signer's own schema.
func (v *Verifier) Verify(pk bls.PublicKey, sig bls.Signature, msg []byte) (bool, error) {
	valid, err := sig.Verify(pk, msg)
	v.recordVerification(sig.Schema(), pk, valid, err)
	return valid, err
}

// VerifyBytes decodes signature and verifies it for msg under pk.
func (v *Verifier) VerifyBytes(pk bls.PublicKey, signature []byte, msg []byte) (bool, error) {
	valid, err := pk.Verify(signature, msg)
	v.recordVerification(pk.Schema(), pk, valid, err)
	return valid, err
}

// VerifyAggregate verifies the aggregate signature of the contributing signers of set for msg.
func (v *Verifier) VerifyAggregate(set *bls.SignerSet, msg []byte) (bool, error) {
	pk, sig, err := set.Aggregate()
	if err != nil {
		v.recordVerification(set.Schema(), bls.PublicKey{}, false, err)
		return false, err
	}
	v.metrics.aggregated(set.Schema(), kindPublicKeys)
	v.metrics.aggregated(set.Schema(), kindSignatures)
	return v.Verify(pk, sig, msg)
}

func (v *Verifier) AggregatePublicKeys(keys []bls.PublicKey) (bls.PublicKey, error) {
	pk, err := bls.AggregatePublicKeys(keys)
	if err != nil {
		v.logger.Warn("failed to aggregate public keys", commontypes.LogFields{"count": len(keys), "error": err})
		return bls.PublicKey{}, err
	}
	v.metrics.aggregated(pk.Schema(), kindPublicKeys)
	return pk, nil
}

func (v *Verifier) AggregateSignatures(signatures []bls.Signature) (bls.Signature, error) {
	sig, err := bls.AggregateSignatures(signatures)
	if err != nil {
		v.logger.Warn("failed to aggregate signatures", commontypes.LogFields{"count": len(signatures), "error": err})
		return bls.Signature{}, err
	}
	v.metrics.aggregated(sig.Schema(), kindSignatures)
	return sig, nil
}

func (v *Verifier) recordVerification(schema bls.SignatureSchema, pk bls.PublicKey, valid bool, err error) {
	fields := commontypes.LogFields{"schema": schema.String(), "publicKey": pk.String()}
	switch {
	case err != nil:
		fields["error"] = err
		v.logger.Warn("signature verification failed", fields)
		if !schema.IsZero() {
			v.metrics.verified(schema, resultError)
		}
	case !valid:
		v.logger.Warn("invalid signature", fields)
		v.metrics.verified(schema, resultInvalid)
	default:
		v.logger.Debug("valid signature", fields)
		v.metrics.verified(schema, resultValid)
	}
}
