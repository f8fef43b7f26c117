package ciphers

import (
	"encoding/binary"

	"github.com/ordolib/ordo/internal/threefish"
	"github.com/ordolib/ordo/status"
)

const threefish256BlockSize = 32 // 256-bit block
const threefish256KeySize = 32   // 256-bit key

// ThreefishParams carries the optional 128-bit tweak for Threefish-256, two
// 64-bit words as described in §4.2 and §6.
type ThreefishParams struct {
	Tweak [2]uint64
}

// Threefish256 implements the 72-round (9 big rounds x 8 rounds) tweakable
// ARX permutation, keyed via internal/threefish's key schedule.
type Threefish256 struct {
	subkeys [19][4]uint64
	keyed   bool
}

// NewThreefish256 constructs an unkeyed Threefish-256 cipher.
func NewThreefish256() *Threefish256 { return &Threefish256{} }

func (c *Threefish256) Name() string   { return "Threefish-256" }
func (c *Threefish256) BlockSize() int { return threefish256BlockSize }

// KeyLen ignores hint: Threefish-256 accepts exactly one key length.
func (c *Threefish256) KeyLen(hint int) int { return threefish256KeySize }

// Init runs the Threefish-256 key schedule. key must be exactly 32 bytes;
// params may be a *ThreefishParams to supply a tweak, or nil for a zero
// tweak.
func (c *Threefish256) Init(key []byte, params interface{}) status.Status {
	if len(key) != threefish256KeySize {
		return status.KeySize
	}

	var keyWords [4]uint64
	for i := 0; i < 4; i++ {
		keyWords[i] = binary.LittleEndian.Uint64(key[i*8 : i*8+8])
	}

	var tweak [2]uint64
	if p, ok := params.(*ThreefishParams); ok && p != nil {
		tweak = p.Tweak
	}

	c.subkeys = threefish.KeySchedule(keyWords, tweak)
	c.keyed = true
	return status.Success
}

// Forward applies the Threefish-256 permutation to block (32 bytes) in
// place.
func (c *Threefish256) Forward(block []byte) {
	words := bytesToWords(block)
	threefish.ForwardRaw(&words, c.subkeys)
	wordsToBytes(words, block)
}

// Inverse applies the inverse Threefish-256 permutation to block (32 bytes)
// in place.
func (c *Threefish256) Inverse(block []byte) {
	words := bytesToWords(block)
	threefish.InverseRaw(&words, c.subkeys)
	wordsToBytes(words, block)
}

func (c *Threefish256) Copy() BlockCipher {
	cp := &Threefish256{subkeys: c.subkeys, keyed: c.keyed}
	return cp
}

// Zeroize wipes the derived subkey schedule.
func (c *Threefish256) Zeroize() {
	for i := range c.subkeys {
		for j := range c.subkeys[i] {
			c.subkeys[i][j] = 0
		}
	}
	c.keyed = false
}

func bytesToWords(block []byte) [4]uint64 {
	var w [4]uint64
	for i := 0; i < 4; i++ {
		w[i] = binary.LittleEndian.Uint64(block[i*8 : i*8+8])
	}
	return w
}

func wordsToBytes(w [4]uint64, block []byte) {
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(block[i*8:i*8+8], w[i])
	}
}
