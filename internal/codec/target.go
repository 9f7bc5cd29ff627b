package codec

import "errors"

type target struct {
	buffer []byte
}

// NewTarget returns an empty target with capacity for size bytes.
func NewTarget(size int) Target {
	return &target{make([]byte, 0, size)}
}

func (t *target) Written() int {
	return len(t.buffer)
}

// Bytes returns the bytes written so far. The returned slice aliases the target's buffer.
func (t *target) Bytes() []byte {
	return t.buffer
}

// Marshals the given object into the this target. Panics, which may be raised by the marshaling of child objects,
// are recovered and returned as errors. To propagate (i.e., not catch) the panic use target.Write(...) instead.
func (t *target) Marshal(object Marshaler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered("marshaling", r)
		}
	}()

	t.Write(object)
	return nil
}

// Write the given object into this target. This is just an alias for object.MarshalTo(target). The given object must
// not be nil. Panics raised during marshaling are NOT recovered and must be handled by the caller.
func (t *target) Write(object Marshaler) {
	if object == nil {
		panic(errors.New("Write called with nil object"))
	}
	object.MarshalTo(t)
}

func (t *target) WriteUint8(value uint8) {
	t.buffer = append(t.buffer, value)
}

func (t *target) WriteBytes(value []byte) {
	t.buffer = append(t.buffer, value...)
}
