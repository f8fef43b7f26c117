package ciphers

import "github.com/ordolib/ordo/status"

// nullCipherBlockSize is fixed at 16 bytes, matching the block size the
// original library picked so NullCipher can stand in for any real cipher
// when exercising a mode of operation in isolation.
const nullCipherBlockSize = 16

// NullCipher is the identity block cipher: Forward and Inverse leave the
// block untouched. It accepts any key length and exists purely for testing
// block modes independently of a real cipher's correctness.
type NullCipher struct{}

// NewNullCipher constructs a NullCipher. It has no state to initialize.
func NewNullCipher() *NullCipher { return &NullCipher{} }

func (c *NullCipher) Name() string      { return "NullCipher" }
func (c *NullCipher) BlockSize() int    { return nullCipherBlockSize }
func (c *NullCipher) KeyLen(hint int) int {
	if hint < 0 {
		return 0
	}
	return hint
}

// Init accepts any key (including an empty one) and always succeeds.
func (c *NullCipher) Init(key []byte, params interface{}) status.Status {
	return status.Success
}

func (c *NullCipher) Forward(block []byte) {}
func (c *NullCipher) Inverse(block []byte) {}

func (c *NullCipher) Copy() BlockCipher { return &NullCipher{} }
func (c *NullCipher) Zeroize()          {}
