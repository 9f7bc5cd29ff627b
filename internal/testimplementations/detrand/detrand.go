// Package detrand provides deterministic randomness sources for tests.
// The generated sequences are not secret and must never be used for key generation outside of tests.
package detrand

import (
	"fmt"
	"io"

	"github.com/smartcontractkit/smbls/internal/crypto/xof"
)

// Initializes a new io.Reader that produces a deterministic byte stream based on the given seed argument(s). The
// stream is read from a SHAKE256 XOF. Deterministic behavior depends on the fmt.Sprintf("%#v", seedArgs...)
// representation of the passed arguments. The returned reader is not safe for concurrent use.
func New(seedArgs ...any) io.Reader {
	h := xof.New("smbls/internal/testimplementations/detrand")
	h.WriteString(fmt.Sprintf("%#v", seedArgs))
	return h
}

// Failing returns an io.Reader whose Read calls always fail with err.
func Failing(err error) io.Reader {
	return failingReader{err}
}

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}
