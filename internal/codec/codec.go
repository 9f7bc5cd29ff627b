package codec

import (
	"errors"
	"fmt"
)

// High level type definitions for the codec package.
// Use the codec.Marshal(...) and codec.UnmarshalUsing(...) functions for marshaling and unmarshaling.
//
// Decoding helpers signal malformed input by panicking; the top-level functions always recover from those panics and
// return them as errors. If the panic value is an error, it is wrapped, so errors.Is / errors.As keep working.

type Marshaler interface {
	MarshalTo(target Target)
}

type Target = *target
type Source = *source

// ErrTrailingBytes is returned by UnmarshalUsing if the input is longer than the decoded object.
var ErrTrailingBytes = errors.New("unmarshaling did not consume all bytes")

// Marshals the given (non-nil) object into a byte slice.
// Panics during marshaling are recovered and returned as errors.
func Marshal(object Marshaler) ([]byte, error) {
	target := &target{}
	err := target.Marshal(object)
	if err != nil {
		return nil, err
	}
	return target.buffer, nil
}

// Unmarshal the given byte slice into a new instance of type T. The unmarshaling is implemented by the provided
// function. This a wrapper to ensure panics during unmarshaling are recovered and returned as errors. Additionally,
// this function also checks that all input bytes are consumed during unmarshaling, returning an error if any non-read
// bytes remain.
func UnmarshalUsing[T any](data []byte, unmarshalFunc func(Source) T) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result, err = zero, recovered("unmarshaling", r)
		}
	}()

	src := &source{data}
	result = unmarshalFunc(src)

	if src.Available() > 0 {
		var zero T
		return zero, fmt.Errorf("%w, %d bytes remaining", ErrTrailingBytes, src.Available())
	}
	return result, nil
}

func recovered(op string, r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("recovered panic while %s: %w", op, err)
	}
	return fmt.Errorf("recovered panic while %s: %v", op, r)
}
