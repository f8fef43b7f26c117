package kdf

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ordolib/ordo/status"
)

func TestPBKDF2KnownAnswers(t *testing.T) {
	cases := []struct {
		password   string
		salt       string
		iterations int
		outputLen  int
		want       string
	}{
		{"password", "salt", 1, 32, "120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b"},
		{"password", "salt", 2, 32, "ae4d0c95af6b46d32d0adff928f06dd02a303f8ef3c251dfd6e2d85a95474c43"},
		{"password", "salt", 4096, 32, "c5e478d59288c841aa530db6845c4c8d962893a001ce4e11a4963873aa98134a"},
		{"passwordPASSWORDpassword", "saltSALTsaltSALTsaltSALTsaltSALTsalt", 4096, 40,
			"348c89dbcbd32b2f32d814b8116e84cf2b17347ebc1800181c4e2a1fb8dd53e1c635518c7dac47e9"},
	}

	for _, c := range cases {
		got, st := PBKDF2("SHA-256", []byte(c.password), []byte(c.salt), c.iterations, c.outputLen)
		require.Equal(t, status.Success, st)
		require.Equal(t, c.want, hex.EncodeToString(got))
	}
}

func TestPBKDF2RejectsZeroIterations(t *testing.T) {
	_, st := PBKDF2("SHA-256", []byte("p"), []byte("s"), 0, 32)
	require.Equal(t, status.Arg, st)
}

func TestPBKDF2RejectsZeroOutputLen(t *testing.T) {
	_, st := PBKDF2("SHA-256", []byte("p"), []byte("s"), 1, 0)
	require.Equal(t, status.Arg, st)
}

func TestPBKDF2TruncatedOutputIsPrefixOfLonger(t *testing.T) {
	long, st := PBKDF2("SHA-256", []byte("pw"), []byte("salty"), 10, 64)
	require.Equal(t, status.Success, st)

	short, st := PBKDF2("SHA-256", []byte("pw"), []byte("salty"), 10, 32)
	require.Equal(t, status.Success, st)

	require.Equal(t, long[:32], short)
}

func TestPBKDF2DifferentSaltsDiffer(t *testing.T) {
	a, st := PBKDF2("SHA-256", []byte("pw"), []byte("salt-a"), 5, 32)
	require.Equal(t, status.Success, st)

	b, st := PBKDF2("SHA-256", []byte("pw"), []byte("salt-b"), 5, 32)
	require.Equal(t, status.Success, st)

	require.NotEqual(t, a, b)
}
