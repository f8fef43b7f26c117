// Package ciphers implements the block cipher primitive family of §4.2:
// NullCipher (identity, for exercising modes in isolation), Threefish-256
// (the 72-round tweakable ARX permutation), and AES (FIPS-197, backed by the
// standard library's hardware-accelerated implementation). Each exposes the
// six §3 operations — alloc (via its constructor), init, forward/inverse,
// free (via Zeroize), copy, and query of derived sizes.
package ciphers

import "github.com/ordolib/ordo/status"

// BlockCipher is the uniform interface every block cipher in this package
// satisfies. Init must complete before Forward or Inverse is called;
// Forward/Inverse permute exactly one BlockSize()-byte block in place.
type BlockCipher interface {
	// Name returns the cipher's canonical name, as listed in §6.
	Name() string
	// BlockSize returns the cipher's block size in bytes.
	BlockSize() int
	// KeyLen reports the accepted key length closest to hint: for
	// fixed-key-length ciphers it ignores hint and returns the only
	// valid length; for variable-length ciphers it clamps hint into the
	// accepted range.
	KeyLen(hint int) int
	// Init keys the cipher. params may be nil, or a cipher-specific
	// parameter struct (e.g. *ThreefishParams). Returns status.KeySize
	// if key is the wrong length for this cipher.
	Init(key []byte, params interface{}) status.Status
	// Forward permutes block (exactly BlockSize() bytes) in place.
	Forward(block []byte)
	// Inverse applies the inverse permutation to block in place.
	Inverse(block []byte)
	// Copy returns a deep copy of the cipher's current keyed state.
	Copy() BlockCipher
	// Zeroize wipes any key material held by the cipher. The cipher must
	// not be used again after Zeroize.
	Zeroize()
}

// HardwareAccelerated is implemented by ciphers whose Forward/Inverse may be
// backed by CPU-specific instructions instead of a portable software path.
// ordo.QueryBlockCipher's QueryPlatformAccel code type-asserts against this
// to surface the capability without exposing cipher internals.
type HardwareAccelerated interface {
	HasHardwareAcceleration() bool
}

// New constructs a fresh, unkeyed instance of the named cipher ("NullCipher",
// "Threefish-256", or "AES"). It is the alloc operation of §3/§4.2.
func New(name string) BlockCipher {
	switch name {
	case "NullCipher":
		return NewNullCipher()
	case "Threefish-256":
		return NewThreefish256()
	case "AES":
		return NewAES()
	default:
		return nil
	}
}
