package xof

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigestDeterministic(t *testing.T) {
	digest := func(dst string, args ...any) []byte {
		h := New(dst)
		for _, arg := range args {
			switch arg := arg.(type) {
			case int:
				h.WriteInt(arg)
			case []byte:
				h.WriteBytes(arg)
			case string:
				h.WriteString(arg)
			}
		}
		return h.Digest()
	}

	d := digest("test", 1, []byte("a"), "b")
	require.Len(t, d, DigestLength)
	require.Equal(t, d, digest("test", 1, []byte("a"), "b"))
	require.NotEqual(t, d, digest("other", 1, []byte("a"), "b"))
	require.NotEqual(t, d, digest("test", 2, []byte("a"), "b"))

	// Arguments are encoded unambiguously.
	require.NotEqual(t, digest("test", []byte("ab"), []byte("c")), digest("test", []byte("a"), []byte("bc")))
	require.NotEqual(t, digest("test", []byte("a")), digest("test", "a"))
	require.NotEqual(t, digest("test", []byte(nil)), digest("test", []byte{}))
}

func TestDigestAndRead(t *testing.T) {
	h := New("test")
	h.WriteString("seed")
	d := h.Digest()
	require.Equal(t, d, h.Digest())
	require.Panics(t, func() { h.WriteInt(1) })
	require.Panics(t, func() { _, _ = h.Read(make([]byte, 1)) })

	r := New("test")
	r.WriteString("seed")
	out := make([]byte, DigestLength)
	_, err := r.Read(out)
	require.NoError(t, err)
	require.Equal(t, d, out)
	require.Panics(t, func() { r.Digest() })
	require.Panics(t, func() { r.WriteBytes(nil) })
}
