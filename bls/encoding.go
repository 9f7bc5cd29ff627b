package bls

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/smartcontractkit/smbls/internal/codec"
)

type schemed interface {
	Schema() SignatureSchema
	IsZero() bool
}

// readSchema reads the leading schema byte of an encoded key or signature.
func readSchema(src codec.Source) SignatureSchema {
	return codec.Must(SignatureSchemaFromByte(src.ReadUint8()))
}

func decode[T any](kind string, data []byte, unmarshal func(codec.Source) T) (T, error) {
	if len(data) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: empty %s encoding", ErrInvalidArgument, kind)
	}
	result, err := codec.UnmarshalUsing(data, unmarshal)
	if err != nil {
		return result, fmt.Errorf("%w: malformed %s encoding: %w", ErrInvalidArgument, kind, err)
	}
	return result, nil
}

func decodeHex[T any](kind string, text []byte, fromBytes func([]byte) (T, error)) (T, error) {
	data, err := hexutil.Decode(string(text))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: invalid hex encoded %s: %w", ErrInvalidArgument, kind, err)
	}
	return fromBytes(data)
}

// aggregationSchema checks the preconditions shared by all aggregations: at least two initialized values, all of the
// same schema. It returns the common schema.
func aggregationSchema[T schemed](kind string, values []T) (SignatureSchema, error) {
	if len(values) < 2 {
		return SignatureSchema{}, fmt.Errorf("%w: aggregation requires at least two %s, got %d", ErrInvalidArgument, kind, len(values))
	}
	for i, v := range values {
		if v.IsZero() {
			return SignatureSchema{}, fmt.Errorf("%w: %s at index %d", ErrNilArgument, kind, i)
		}
	}
	schema := values[0].Schema()
	for i, v := range values[1:] {
		if !v.Schema().Equal(schema) {
			return SignatureSchema{}, fmt.Errorf(
				"%w: all %s must use the same signature schema, index %d uses %s, expected %s",
				ErrInvalidArgument, kind, i+1, v.Schema(), schema,
			)
		}
	}
	return schema, nil
}
