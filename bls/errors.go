package bls

import "errors"

var (
	// ErrNilArgument is returned if an uninitialized (zero) schema, key or signature is passed to an operation.
	ErrNilArgument = errors.New("bls: uninitialized argument")

	// ErrInvalidArgument is returned for malformed encodings, unsupported curves and group assignments, and for
	// aggregations over fewer than two values or over values of different schemas.
	ErrInvalidArgument = errors.New("bls: invalid argument")

	// ErrSchemaMismatch is returned if values of different signature schemas are combined, e.g., when verifying a
	// signature against a public key of another schema.
	ErrSchemaMismatch = errors.New("bls: signature schema mismatch")
)
