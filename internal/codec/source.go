package codec

import (
	"errors"
	"fmt"
)

// ErrShortBuffer is raised (as panic value) by the read functions if the source holds fewer bytes than requested.
var ErrShortBuffer = errors.New("not enough bytes available")

// Internal representation for a source of bytes to be unmarshaled. The buffer slice is modified during reading.
type source struct {
	buffer []byte
}

// Available returns the number of bytes that are still available for reading from the source.
func (s *source) Available() int {
	return len(s.buffer)
}

// ReadUint8 reads a single byte from the source.
// It panics if the source is empty.
func (s *source) ReadUint8() uint8 {
	if len(s.buffer) < 1 {
		panic(fmt.Errorf("%w: ReadUint8 called on empty source buffer", ErrShortBuffer))
	}
	value := s.buffer[0]
	s.buffer = s.buffer[1:]
	return value
}

// ReadBytes reads a specified number of bytes from the source. Its returns a slice of the source's buffer without
// creating a copy.
// It panics if not enough bytes are available in the source.
func (s *source) ReadBytes(length int) []byte {
	if len(s.buffer) < length {
		panic(fmt.Errorf("%w: ReadBytes called with length %d, but only %d bytes available", ErrShortBuffer, length, len(s.buffer)))
	}
	value := s.buffer[:length:length] // limit cap(value) to prevent overwriting the source's buffer on append
	s.buffer = s.buffer[length:]
	return value
}

// Must panics with err if it is not nil, and returns v otherwise. Used by unmarshal functions to turn the error of a
// nested decoder into a panic recovered by UnmarshalUsing.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
