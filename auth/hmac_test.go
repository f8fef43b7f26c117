package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ordolib/ordo/status"
)

func TestHMACMD5KnownAnswer(t *testing.T) {
	h := NewHMAC("MD5")
	require.Equal(t, status.Success, h.Init([]byte("key"), nil))
	_, err := h.Write([]byte("The quick brown fox jumps over the lazy dog"))
	require.NoError(t, err)
	got := hex.EncodeToString(h.Final(nil))
	require.Equal(t, "80070713463e7749b90c2dc24911e275", got)
}

func TestHMACSHA256KnownAnswer(t *testing.T) {
	h := NewHMAC("SHA-256")
	require.Equal(t, status.Success, h.Init([]byte("key"), nil))
	_, err := h.Write([]byte("The quick brown fox jumps over the lazy dog"))
	require.NoError(t, err)
	got := hex.EncodeToString(h.Final(nil))
	require.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", got)
}

func TestHMACKeyLongerThanBlockSizeIsReduced(t *testing.T) {
	longKey := make([]byte, 200)
	for i := range longKey {
		longKey[i] = byte(i)
	}

	h1 := NewHMAC("SHA-256")
	require.Equal(t, status.Success, h1.Init(longKey, nil))
	h1.Write([]byte("message"))
	d1 := h1.Final(nil)

	// A key longer than the block size must behave exactly like its digest.
	reducedKey := sha256.Sum256(longKey)
	h2 := NewHMAC("SHA-256")
	require.Equal(t, status.Success, h2.Init(reducedKey[:], nil))
	h2.Write([]byte("message"))
	d2 := h2.Final(nil)

	require.Equal(t, d1, d2)
	require.Len(t, d1, 32)
}

func TestHMACIncrementalWriteMatchesSinglePass(t *testing.T) {
	single := NewHMAC("SHA-256")
	require.Equal(t, status.Success, single.Init([]byte("k"), nil))
	single.Write([]byte("hello world"))
	want := single.Final(nil)

	incremental := NewHMAC("SHA-256")
	require.Equal(t, status.Success, incremental.Init([]byte("k"), nil))
	incremental.Write([]byte("hello "))
	incremental.Write([]byte("world"))
	got := incremental.Final(nil)

	require.Equal(t, want, got)
}

func TestHMACDifferentKeysDiffer(t *testing.T) {
	h1 := NewHMAC("SHA-256")
	require.Equal(t, status.Success, h1.Init([]byte("key-one"), nil))
	h1.Write([]byte("same message"))
	d1 := h1.Final(nil)

	h2 := NewHMAC("SHA-256")
	require.Equal(t, status.Success, h2.Init([]byte("key-two"), nil))
	h2.Write([]byte("same message"))
	d2 := h2.Final(nil)

	require.NotEqual(t, d1, d2)
}

func TestHMACUnknownHashIsArg(t *testing.T) {
	h := NewHMAC("does-not-exist")
	require.Equal(t, status.Arg, h.Init([]byte("key"), nil))
}
