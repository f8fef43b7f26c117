package ordo

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ordolib/ordo/modes"
)

func TestEncBlockRoundTrip(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 16)
	plaintext := []byte("the façade wires cipher and mode together in one call")

	ciphertext, st := EncBlock("AES", nil, "CBC", nil, modes.Encrypt, key, iv, plaintext)
	require.True(t, st.OK())

	got, st := EncBlock("AES", nil, "CBC", nil, modes.Decrypt, key, iv, ciphertext)
	require.True(t, st.OK())
	require.Equal(t, plaintext, got)
}

func TestEncBlockUnknownCipherIsArg(t *testing.T) {
	_, st := EncBlock("does-not-exist", nil, "CBC", nil, modes.Encrypt, nil, nil, nil)
	require.Equal(t, Arg, st)
}

func TestDigestMatchesKnownAnswer(t *testing.T) {
	out, st := Digest("MD5", nil, []byte("abc"))
	require.True(t, st.OK())
	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72", hex.EncodeToString(out))
}

func TestEncStreamRoundTrip(t *testing.T) {
	key := []byte("a stream cipher key")
	plaintext := []byte("round trip through the façade")

	buf := append([]byte(nil), plaintext...)
	st := EncStream("RC4", nil, key, buf)
	require.True(t, st.OK())
	require.NotEqual(t, plaintext, buf)

	st = EncStream("RC4", nil, key, buf)
	require.True(t, st.OK())
	require.Equal(t, plaintext, buf)
}

func TestEncStreamUnknownCipherIsArg(t *testing.T) {
	st := EncStream("does-not-exist", nil, nil, nil)
	require.Equal(t, Arg, st)
}
