// Package ordo is the high-level façade of §4.8: one-shot
// encrypt/decrypt/digest/stream-encrypt entry points that allocate, run,
// and tear down the lower-level primitive and mode state on the caller's
// behalf, returning the first nonzero status encountered.
package ordo

import (
	"github.com/ordolib/ordo/ciphers"
	"github.com/ordolib/ordo/hashes"
	"github.com/ordolib/ordo/modes"
	"github.com/ordolib/ordo/status"
	"github.com/ordolib/ordo/streamciphers"
)

// EncBlock is the one-shot block-cipher-in-a-mode entry point. It
// allocates the named cipher and mode, initializes both, streams in
// through the mode, finalizes, and returns the concatenated output. The
// first nonzero status encountered (bad key, bad IV, leftover data,
// padding failure) is returned with a nil output: no partial output is
// returned on error.
func EncBlock(
	cipherName string, cipherParams interface{},
	modeName string, modeParams interface{},
	dir modes.Direction,
	key, iv, in []byte,
) ([]byte, status.Status) {
	c := ciphers.New(cipherName)
	if c == nil {
		return nil, status.Arg
	}
	if st := c.Init(key, cipherParams); st != status.Success {
		return nil, st
	}

	m := modes.New(modeName)
	if m == nil {
		return nil, status.Arg
	}
	if st := m.Init(c, iv, dir, modeParams); st != status.Success {
		return nil, st
	}

	out := m.Update(in)
	tail, st := m.Final()
	if st != status.Success {
		return nil, st
	}
	return append(out, tail...), status.Success
}

// Digest is the one-shot hashing entry point.
func Digest(hashName string, params interface{}, in []byte) ([]byte, status.Status) {
	h := hashes.New(hashName)
	if h == nil {
		return nil, status.Arg
	}
	if st := h.Init(params); st != status.Success {
		return nil, st
	}
	h.Write(in)
	return h.Final(nil), status.Success
}

// EncStream performs in-place stream encryption (or decryption — the
// operation is symmetric) over buf using the named stream cipher.
func EncStream(cipherName string, params interface{}, key []byte, buf []byte) status.Status {
	c := streamciphers.New(cipherName)
	if c == nil {
		return status.Arg
	}
	if st := c.Init(key, params); st != status.Success {
		return st
	}
	c.Process(buf)
	return status.Success
}
