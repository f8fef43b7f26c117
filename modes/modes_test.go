package modes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ordolib/ordo/ciphers"
	"github.com/ordolib/ordo/status"
)

func newKeyedAES(t *testing.T) ciphers.BlockCipher {
	t.Helper()
	c := ciphers.NewAES()
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i)
	}
	require.Equal(t, status.Success, c.Init(key, nil))
	return c
}

func TestECBRoundTripWithPadding(t *testing.T) {
	plaintext := []byte("this message is not block aligned")

	enc := &ECB{}
	require.Equal(t, status.Success, enc.Init(newKeyedAES(t), nil, Encrypt, nil))
	ciphertext := enc.Update(plaintext)
	tail, st := enc.Final()
	require.Equal(t, status.Success, st)
	ciphertext = append(ciphertext, tail...)
	require.Equal(t, 0, len(ciphertext)%16)

	dec := &ECB{}
	require.Equal(t, status.Success, dec.Init(newKeyedAES(t), nil, Decrypt, nil))
	got := dec.Update(ciphertext)
	tail, st = dec.Final()
	require.Equal(t, status.Success, st)
	got = append(got, tail...)
	require.Equal(t, plaintext, got)
}

func TestECBNoPaddingRejectsLeftover(t *testing.T) {
	enc := &ECB{}
	require.Equal(t, status.Success, enc.Init(newKeyedAES(t), nil, Encrypt, &PaddingParams{Padding: false}))
	enc.Update([]byte("7 bytes"))
	_, st := enc.Final()
	require.Equal(t, status.Leftover, st)
}

func TestECBDecryptRejectsBadPadding(t *testing.T) {
	enc := &ECB{}
	require.Equal(t, status.Success, enc.Init(newKeyedAES(t), nil, Encrypt, nil))
	ciphertext := enc.Update(make([]byte, 16))
	tail, _ := enc.Final()
	ciphertext = append(ciphertext, tail...)
	ciphertext[len(ciphertext)-1] ^= 0xFF

	dec := &ECB{}
	require.Equal(t, status.Success, dec.Init(newKeyedAES(t), nil, Decrypt, nil))
	dec.Update(ciphertext)
	_, st := dec.Final()
	require.Equal(t, status.Padding, st)
}

func TestCBCRoundTrip(t *testing.T) {
	plaintext := []byte("CBC chains each block into the next one via XOR")
	iv := make([]byte, 16)
	for i := range iv {
		iv[i] = byte(100 + i)
	}

	enc := &CBC{}
	require.Equal(t, status.Success, enc.Init(newKeyedAES(t), iv, Encrypt, nil))
	ciphertext := enc.Update(plaintext)
	tail, st := enc.Final()
	require.Equal(t, status.Success, st)
	ciphertext = append(ciphertext, tail...)

	dec := &CBC{}
	require.Equal(t, status.Success, dec.Init(newKeyedAES(t), iv, Decrypt, nil))
	got := dec.Update(ciphertext)
	tail, st = dec.Final()
	require.Equal(t, status.Success, st)
	got = append(got, tail...)

	require.Equal(t, plaintext, got)
}

func TestCBCRejectsOversizedIV(t *testing.T) {
	c := &CBC{}
	oversized := make([]byte, 17)
	require.Equal(t, status.Arg, c.Init(newKeyedAES(t), oversized, Encrypt, nil))
}

func TestCTRRoundTripArbitraryLength(t *testing.T) {
	plaintext := []byte("counter mode never needs padding, any length goes")
	iv := make([]byte, 16)

	enc := &CTR{}
	require.Equal(t, status.Success, enc.Init(newKeyedAES(t), iv, Encrypt, nil))
	ciphertext := enc.Update(plaintext)

	dec := &CTR{}
	require.Equal(t, status.Success, dec.Init(newKeyedAES(t), iv, Decrypt, nil))
	got := dec.Update(ciphertext)

	require.Equal(t, plaintext, got)
	require.NotEqual(t, plaintext, ciphertext)
}

func TestCTRChunkedUpdateMatchesSinglePass(t *testing.T) {
	plaintext := make([]byte, 50)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}
	iv := make([]byte, 16)

	single := &CTR{}
	require.Equal(t, status.Success, single.Init(newKeyedAES(t), iv, Encrypt, nil))
	want := single.Update(plaintext)

	chunked := &CTR{}
	require.Equal(t, status.Success, chunked.Init(newKeyedAES(t), iv, Encrypt, nil))
	var got []byte
	got = append(got, chunked.Update(plaintext[:3])...)
	got = append(got, chunked.Update(plaintext[3:20])...)
	got = append(got, chunked.Update(plaintext[20:])...)

	require.Equal(t, want, got)
}

func TestOFBRoundTrip(t *testing.T) {
	plaintext := []byte("output feedback keystream is independent of data")
	iv := make([]byte, 16)

	enc := &OFB{}
	require.Equal(t, status.Success, enc.Init(newKeyedAES(t), iv, Encrypt, nil))
	ciphertext := enc.Update(plaintext)

	dec := &OFB{}
	require.Equal(t, status.Success, dec.Init(newKeyedAES(t), iv, Decrypt, nil))
	got := dec.Update(ciphertext)

	require.Equal(t, plaintext, got)
}

func TestCFBRoundTrip(t *testing.T) {
	plaintext := []byte("cipher feedback chains ciphertext into the keystream")
	iv := make([]byte, 16)

	enc := &CFB{}
	require.Equal(t, status.Success, enc.Init(newKeyedAES(t), iv, Encrypt, nil))
	ciphertext := enc.Update(plaintext)

	dec := &CFB{}
	require.Equal(t, status.Success, dec.Init(newKeyedAES(t), iv, Decrypt, nil))
	got := dec.Update(ciphertext)

	require.Equal(t, plaintext, got)
}

func TestCFBBitErrorSelfHeals(t *testing.T) {
	// A corrupted ciphertext byte in CFB garbles the corresponding
	// plaintext byte and the entire next block (whose keystream is
	// derived from the corrupted ciphertext fed back as state), then
	// self-synchronizes from the following block onward.
	plaintext := make([]byte, 48)
	for i := range plaintext {
		plaintext[i] = byte(i * 7)
	}
	iv := make([]byte, 16)

	enc := &CFB{}
	require.Equal(t, status.Success, enc.Init(newKeyedAES(t), iv, Encrypt, nil))
	ciphertext := enc.Update(plaintext)
	ciphertext[0] ^= 0x01

	dec := &CFB{}
	require.Equal(t, status.Success, dec.Init(newKeyedAES(t), iv, Decrypt, nil))
	got := dec.Update(ciphertext)

	require.NotEqual(t, plaintext[:32], got[:32])
	require.Equal(t, plaintext[32:], got[32:])
}

func TestNewByName(t *testing.T) {
	require.IsType(t, &ECB{}, New("ECB"))
	require.IsType(t, &CBC{}, New("CBC"))
	require.IsType(t, &CTR{}, New("CTR"))
	require.IsType(t, &CFB{}, New("CFB"))
	require.IsType(t, &OFB{}, New("OFB"))
	require.Nil(t, New("does-not-exist"))
}
