// Package bls implements BLS signatures over pairing-friendly curves.
//
// A SignatureSchema selects the curve and which of the curve's two groups holds public keys and which one holds
// signatures (see GroupAssignment). PrivateKey, PublicKey and Signature are immutable values tagged with their schema;
// they can be aggregated with values of the same schema and are encoded as
//
//	[schema byte][element bytes]
//
// where the schema byte packs the group assignment into its most significant bit and the curve id into the remaining
// seven bits, and the element size is fixed by the schema.
//
// All values are safe for concurrent use. The zero value of each type is uninitialized; passing it to an operation
// returns ErrNilArgument.
package bls
