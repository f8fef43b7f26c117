package ordo

import (
	"github.com/ordolib/ordo/ciphers"
	"github.com/ordolib/ordo/hashes"
	"github.com/ordolib/ordo/status"
	"github.com/ordolib/ordo/streamciphers"
)

// QueryCode selects which derived size Query reports, per §6.
type QueryCode int

const (
	QueryBlockSize QueryCode = iota
	QueryKeyLen
	QueryDigestLen
	QueryIVLen
	// QueryPlatformAccel reports whether the named block cipher's
	// Forward/Inverse is backed by a CPU-specific instruction path on this
	// process (1) or the portable software path (0). Ciphers that don't
	// distinguish the two report 0.
	QueryPlatformAccel
)

// QueryBlockCipher reports a derived size for the named block cipher.
// QueryKeyLen clamps hint to the nearest accepted key length; QueryIVLen
// reports the cipher's block size (the IV length every mode over this
// cipher accepts); QueryPlatformAccel reports 1 if hint is ignored and the
// cipher is hardware-accelerated, 0 otherwise. Returns status.Arg if name is
// not a registered cipher or code does not apply to block ciphers.
func QueryBlockCipher(name string, code QueryCode, hint int) (int, status.Status) {
	c := ciphers.New(name)
	if c == nil {
		return 0, status.Arg
	}
	switch code {
	case QueryBlockSize, QueryIVLen:
		return c.BlockSize(), status.Success
	case QueryKeyLen:
		return c.KeyLen(hint), status.Success
	case QueryPlatformAccel:
		if hw, ok := c.(ciphers.HardwareAccelerated); ok && hw.HasHardwareAcceleration() {
			return 1, status.Success
		}
		return 0, status.Success
	default:
		return 0, status.Arg
	}
}

// QueryStreamCipher reports a derived size for the named stream cipher.
// Returns status.Arg if name is not registered or code does not apply.
func QueryStreamCipher(name string, code QueryCode, hint int) (int, status.Status) {
	c := streamciphers.New(name)
	if c == nil {
		return 0, status.Arg
	}
	switch code {
	case QueryKeyLen:
		return c.KeyLen(hint), status.Success
	default:
		return 0, status.Arg
	}
}

// QueryHash reports a derived size for the named hash function.
// Returns status.Arg if name is not registered or code does not apply.
func QueryHash(name string, code QueryCode) (int, status.Status) {
	h := hashes.New(name)
	if h == nil {
		return 0, status.Arg
	}
	switch code {
	case QueryBlockSize:
		return h.BlockSize(), status.Success
	case QueryDigestLen:
		return h.Size(), status.Success
	default:
		return 0, status.Arg
	}
}

// QueryMode reports the IV length a mode over the named block cipher
// accepts, which is always that cipher's block size.
func QueryMode(cipherName string, code QueryCode) (int, status.Status) {
	c := ciphers.New(cipherName)
	if c == nil {
		return 0, status.Arg
	}
	switch code {
	case QueryIVLen, QueryBlockSize:
		return c.BlockSize(), status.Success
	default:
		return 0, status.Arg
	}
}
