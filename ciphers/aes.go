package ciphers

import (
	"crypto/aes"

	"github.com/ordolib/ordo/internal/cpufeatures"
	"github.com/ordolib/ordo/status"
)

const aesBlockSize = 16

// AES implements FIPS-197 AES-128/192/256. The round function itself is
// delegated to the standard library's crypto/aes, which already dispatches
// to AES-NI on amd64/arm64 with a constant-time software fallback
// elsewhere — exactly the "hardware acceleration optional, software
// fallback mandatory" contract §4.2 describes, and the one concern in this
// module with no pack-grounded third-party alternative worth reimplementing
// (see DESIGN.md).
type AES struct {
	block   cipherBlock
	keyCopy []byte
}

// cipherBlock is the subset of cipher.Block this package relies on.
type cipherBlock interface {
	BlockSize() int
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}

// NewAES constructs an unkeyed AES cipher.
func NewAES() *AES { return &AES{} }

func (c *AES) Name() string   { return "AES" }
func (c *AES) BlockSize() int { return aesBlockSize }

// KeyLen rounds hint up to the next valid AES key length (16, 24, or 32),
// capping at 32.
func (c *AES) KeyLen(hint int) int {
	switch {
	case hint <= 16:
		return 16
	case hint <= 24:
		return 24
	default:
		return 32
	}
}

// Init expands the AES key schedule. key must be 16, 24, or 32 bytes.
func (c *AES) Init(key []byte, params interface{}) status.Status {
	switch len(key) {
	case 16, 24, 32:
	default:
		return status.KeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return status.KeySize
	}

	c.block = block
	c.keyCopy = append([]byte(nil), key...)
	return status.Success
}

func (c *AES) Forward(block []byte) { c.block.Encrypt(block, block) }
func (c *AES) Inverse(block []byte) { c.block.Decrypt(block, block) }

func (c *AES) Copy() BlockCipher {
	cp := &AES{}
	if c.keyCopy != nil {
		cp.Init(append([]byte(nil), c.keyCopy...), nil)
	}
	return cp
}

// Zeroize wipes the copy of the AES key retained for Copy().
func (c *AES) Zeroize() {
	for i := range c.keyCopy {
		c.keyCopy[i] = 0
	}
	c.keyCopy = nil
	c.block = nil
}

// HasHardwareAcceleration reports whether this process' AES operations are
// backed by AES-NI (or the ARM64 crypto extension), surfacing the
// §4.2 "platforms with AES-NI may use hardware instructions" note as a
// query the caller can inspect (the original library's PLATFORM_ACCEL-style
// build-time resolution, exposed at runtime here instead).
func (c *AES) HasHardwareAcceleration() bool {
	return cpufeatures.HasAESNI()
}
