// Package threefish implements the Threefish-256 tweakable block permutation
// and its key schedule, shared by the Threefish-256 block cipher
// (ciphers.Threefish256) and the Skein-256 hash function's UBI compression
// (hashes.Skein256), exactly as the original C library shares
// threefish256_key_schedule/threefish256_forward_raw between
// primitives/block_ciphers/threefish256.c and
// primitives/hash_functions/skein256.c.
package threefish

import "github.com/ordolib/ordo/internal/utils"

// extendedKeyConstant is XORed into the key words to form the fifth,
// extended key word consumed by the key schedule.
const extendedKeyConstant = 0x1BD11BDAA9FC1A22

// rotations are the MIX rotation constants for the first four MIX/permute
// steps of each big round (one pair per step), before the mid-round subkey
// injection.
var rotations = [8]uint{14, 16, 52, 57, 23, 40, 5, 37}

// finalRotations are the remaining constants used for the second half of a
// big round (after the subkey injection).
var finalRotations = [8]uint{25, 33, 46, 12, 58, 22, 32, 32}

// KeySchedule derives the 19 four-word subkeys of Threefish-256 from a
// 256-bit key and an optional 128-bit tweak (tweak may be the zero value to
// mean "no tweak").
func KeySchedule(key [4]uint64, tweak [2]uint64) [19][4]uint64 {
	keyWords := [5]uint64{key[0], key[1], key[2], key[3]}
	keyWords[4] = keyWords[0] ^ keyWords[1] ^ keyWords[2] ^ keyWords[3] ^ extendedKeyConstant

	tweakWords := [3]uint64{tweak[0], tweak[1]}
	tweakWords[2] = tweakWords[0] ^ tweakWords[1]

	var subkeys [19][4]uint64
	for r := 0; r < 19; r++ {
		subkeys[r][0] = keyWords[r%5]
		subkeys[r][1] = keyWords[(r+1)%5] + tweakWords[r%3]
		subkeys[r][2] = keyWords[(r+2)%5] + tweakWords[(r+1)%3]
		subkeys[r][3] = keyWords[(r+3)%5] + uint64(r)
	}
	return subkeys
}

// mix performs the forward ARX MIX step: a += b; b = rol(b, r); b ^= a.
func mix(a, b *uint64, r uint) {
	*a += *b
	*b = utils.RotateLeft64(*b, r)
	*b ^= *a
}

// unmix performs the dual inverse of mix: b ^= a; b = ror(b, r); a -= b.
func unmix(a, b *uint64, r uint) {
	*b ^= *a
	*b = utils.RotateRight64(*b, r)
	*a -= *b
}

// ForwardRaw applies the Threefish-256 forward permutation to block in
// place, given its 19 four-word subkeys.
func ForwardRaw(block *[4]uint64, subkeys [19][4]uint64) {
	block[0] += subkeys[0][0]
	block[1] += subkeys[0][1]
	block[2] += subkeys[0][2]
	block[3] += subkeys[0][3]

	for t := 0; t < 9; t++ {
		for i := 0; i < 4; i++ {
			mix(&block[0], &block[1], rotations[i*2])
			mix(&block[2], &block[3], rotations[i*2+1])
			block[1], block[3] = block[3], block[1]
		}

		block[0] += subkeys[t*2+1][0]
		block[1] += subkeys[t*2+1][1]
		block[2] += subkeys[t*2+1][2]
		block[3] += subkeys[t*2+1][3]

		for i := 0; i < 4; i++ {
			mix(&block[0], &block[1], finalRotations[i*2])
			mix(&block[2], &block[3], finalRotations[i*2+1])
			block[1], block[3] = block[3], block[1]
		}

		block[0] += subkeys[t*2+2][0]
		block[1] += subkeys[t*2+2][1]
		block[2] += subkeys[t*2+2][2]
		block[3] += subkeys[t*2+2][3]
	}
}

// InverseRaw applies the Threefish-256 inverse permutation to block in
// place, undoing ForwardRaw under the same subkeys.
func InverseRaw(block *[4]uint64, subkeys [19][4]uint64) {
	for t := 9; t > 0; t-- {
		block[0] -= subkeys[(t-1)*2+2][0]
		block[1] -= subkeys[(t-1)*2+2][1]
		block[2] -= subkeys[(t-1)*2+2][2]
		block[3] -= subkeys[(t-1)*2+2][3]

		for i := 3; i >= 0; i-- {
			block[1], block[3] = block[3], block[1]
			unmix(&block[0], &block[1], finalRotations[i*2])
			unmix(&block[2], &block[3], finalRotations[i*2+1])
		}

		block[0] -= subkeys[(t-1)*2+1][0]
		block[1] -= subkeys[(t-1)*2+1][1]
		block[2] -= subkeys[(t-1)*2+1][2]
		block[3] -= subkeys[(t-1)*2+1][3]

		for i := 3; i >= 0; i-- {
			block[1], block[3] = block[3], block[1]
			unmix(&block[0], &block[1], rotations[i*2])
			unmix(&block[2], &block[3], rotations[i*2+1])
		}
	}

	block[0] -= subkeys[0][0]
	block[1] -= subkeys[0][1]
	block[2] -= subkeys[0][2]
	block[3] -= subkeys[0][3]
}
