// Package streamciphers implements the stream cipher primitive family of
// §4.3: currently RC4. Unlike block ciphers, a stream cipher consumes an
// arbitrary-length key and produces a keystream that is XORed directly
// against data of any length — no block alignment, no padding.
package streamciphers

import "github.com/ordolib/ordo/status"

// StreamCipher is the uniform interface every stream cipher in this package
// satisfies. Init must complete before Process is called.
type StreamCipher interface {
	// Name returns the cipher's canonical name, as listed in §6.
	Name() string
	// KeyLen reports the accepted key length closest to hint, clamped into
	// the cipher's valid range.
	KeyLen(hint int) int
	// Init keys the cipher. params may be nil, or a cipher-specific
	// parameter struct. Returns status.KeySize if key is out of range.
	Init(key []byte, params interface{}) status.Status
	// Process XORs the keystream into buf in place, advancing the
	// keystream position by len(buf).
	Process(buf []byte)
	// Copy returns a deep copy of the cipher's current keyed state,
	// including keystream position.
	Copy() StreamCipher
	// Zeroize wipes any key material and keystream state held by the
	// cipher. The cipher must not be used again after Zeroize.
	Zeroize()
}

// New constructs a fresh, unkeyed instance of the named stream cipher
// ("RC4"). It is the alloc operation of §3/§4.3.
func New(name string) StreamCipher {
	switch name {
	case "RC4":
		return NewRC4()
	default:
		return nil
	}
}
