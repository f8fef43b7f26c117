package streamciphers

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ordolib/ordo/status"
)

func TestRC4KnownAnswer(t *testing.T) {
	key := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	plaintext, err := hex.DecodeString("0123456789abcdef")
	require.NoError(t, err)
	want, err := hex.DecodeString("cd7b6aec2059a80d")
	require.NoError(t, err)

	c := NewRC4()
	require.Equal(t, status.Success, c.Init(key, &RC4Params{Drop: 2048}))

	got := append([]byte(nil), plaintext...)
	c.Process(got)
	require.Equal(t, want, got)
}

func TestRC4DefaultDropMatchesExplicit2048(t *testing.T) {
	key := []byte{0xde, 0xad, 0xbe, 0xef, 0x00}

	c1 := NewRC4()
	require.Equal(t, status.Success, c1.Init(key, nil))

	c2 := NewRC4()
	require.Equal(t, status.Success, c2.Init(key, &RC4Params{Drop: 2048}))

	b1 := make([]byte, 16)
	b2 := make([]byte, 16)
	c1.Process(b1)
	c2.Process(b2)
	require.Equal(t, b1, b2)
}

func TestRC4ProcessIsInvolution(t *testing.T) {
	c := NewRC4()
	key := []byte("some-shared-secret")
	require.Equal(t, status.Success, c.Init(key, &RC4Params{Drop: 0}))

	plaintext := []byte("the quick brown fox jumps over the lazy dog")
	buf := append([]byte(nil), plaintext...)
	c.Process(buf)
	require.NotEqual(t, plaintext, buf)

	c2 := NewRC4()
	require.Equal(t, status.Success, c2.Init(key, &RC4Params{Drop: 0}))
	c2.Process(buf)
	require.Equal(t, plaintext, buf)
}

func TestRC4RejectsKeySizeOutOfRange(t *testing.T) {
	c := NewRC4()
	require.Equal(t, status.KeySize, c.Init([]byte{1, 2, 3}, nil))
	require.Equal(t, status.KeySize, c.Init(make([]byte, 257), nil))
}

func TestRC4KeyLenClamping(t *testing.T) {
	c := NewRC4()
	require.Equal(t, 5, c.KeyLen(1))
	require.Equal(t, 256, c.KeyLen(1000))
	require.Equal(t, 16, c.KeyLen(16))
}
