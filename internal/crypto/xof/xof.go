// Package xof provides a domain separated SHAKE256 extendable output function with an unambiguous encoding of its
// inputs. It computes signer set digests and backs the deterministic randomness of tests.
package xof

import (
	"crypto/sha3"
	"encoding/binary"
	"io"
)

// DigestLength is the length of the output of Digest in bytes.
const DigestLength = 32

const (
	tagNil byte = iota + 1
	tagInt
	tagBytes
	tagString
)

type state uint8

const (
	absorbing state = iota
	squeezing
	finalized
)

var _ io.Reader = (*XOF)(nil)

// XOF absorbs typed values and then either produces a fixed size Digest or an unbounded stream through Read, not both.
// Writing after the output phase started panics. An XOF is not safe for concurrent use.
type XOF struct {
	shake  *sha3.SHAKE
	state  state
	digest [DigestLength]byte
}

// New returns an XOF that has absorbed the domain separation tag dst.
func New(dst string) *XOF {
	x := &XOF{shake: sha3.NewSHAKE256()}
	x.WriteString(dst)
	return x
}

// Each value is absorbed as tag || uint64 big-endian header || payload. The header is the value itself for integers
// and the payload length otherwise.
func (x *XOF) absorb(tag byte, header uint64, payload []byte) {
	if x.state != absorbing {
		panic("xof: write after Digest or Read")
	}
	var buf [9]byte
	buf[0] = tag
	binary.BigEndian.PutUint64(buf[1:], header)
	_, _ = x.shake.Write(buf[:])
	_, _ = x.shake.Write(payload)
}

func (x *XOF) WriteInt(v int) {
	x.absorb(tagInt, uint64(v), nil)
}

// WriteBytes absorbs b. A nil slice is distinct from an empty one.
func (x *XOF) WriteBytes(b []byte) {
	if b == nil {
		x.absorb(tagNil, 0, nil)
		return
	}
	x.absorb(tagBytes, uint64(len(b)), b)
}

func (x *XOF) WriteString(s string) {
	x.absorb(tagString, uint64(len(s)), []byte(s))
}

// Read squeezes the next len(p) bytes of output. It never returns an error. Read panics after Digest.
func (x *XOF) Read(p []byte) (int, error) {
	if x.state == finalized {
		panic("xof: Read after Digest")
	}
	x.state = squeezing
	return x.shake.Read(p)
}

// Digest returns the first DigestLength bytes of output. Repeated calls return the same value. Digest panics after
// Read.
func (x *XOF) Digest() []byte {
	switch x.state {
	case squeezing:
		panic("xof: Digest after Read")
	case absorbing:
		_, _ = x.shake.Read(x.digest[:])
		x.state = finalized
	}
	d := x.digest
	return d[:]
}
