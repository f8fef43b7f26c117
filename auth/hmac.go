// Package auth implements the message authentication primitive of §4.6:
// HMAC, built generically over any hashes.Hash per RFC 2104.
package auth

import (
	"github.com/ordolib/ordo/hashes"
	"github.com/ordolib/ordo/internal/secmem"
	"github.com/ordolib/ordo/status"
)

const (
	ipad = 0x36
	opad = 0x5c
)

// HMAC computes a keyed message authentication code over any hashes.Hash.
// Oversized keys are reduced by hashing them once with default hash
// parameters, per RFC 2104; the inner pad is processed under the caller's
// chosen hash parameters, and the outer pad always uses the hash's
// defaults, mirroring the asymmetry of the construction this is grounded
// on.
type HMAC struct {
	hash      hashes.Hash
	hashName  string
	keyBuf    *secmem.Bytes
	key       []byte
	blockSize int
}

// NewHMAC constructs an un-keyed HMAC over a fresh instance of the named
// hash function.
func NewHMAC(hashName string) *HMAC {
	return &HMAC{hashName: hashName}
}

// Init derives the padded key and begins absorbing the inner pad. key may
// be any length: shorter keys are zero-padded, longer keys are reduced via
// a single hash pass. hashParams is forwarded to the hash's Init for the
// inner-pad pass (e.g. *hashes.SkeinParams), or nil for defaults.
//
// The padded key lives in a secmem.Pool allocation for the HMAC's lifetime,
// mlock'd best-effort and zeroized by Wipe, rather than a plain make([]byte)
// scratch slice left for the garbage collector to reclaim on its own
// schedule.
func (h *HMAC) Init(key []byte, hashParams interface{}) status.Status {
	h.hash = hashes.New(h.hashName)
	if h.hash == nil {
		return status.Arg
	}

	h.blockSize = h.hash.BlockSize()
	h.keyBuf = secmem.Default().Alloc(h.blockSize)
	if h.keyBuf == nil {
		return status.Alloc
	}
	h.key = h.keyBuf.Bytes()

	if len(key) > h.blockSize {
		h.hash.Init(nil)
		h.hash.Write(key)
		reduced := h.hash.Final(nil)
		copy(h.key, reduced)
	} else {
		copy(h.key, key)
	}

	for i := range h.key {
		h.key[i] ^= ipad
	}

	if st := h.hash.Init(hashParams); st != status.Success {
		return st
	}
	h.hash.Write(h.key)
	return status.Success
}

// Write absorbs more message bytes.
func (h *HMAC) Write(p []byte) (int, error) { return h.hash.Write(p) }

// Final computes the outer-pad pass and appends the resulting tag to tag.
func (h *HMAC) Final(tag []byte) []byte {
	inner := h.hash.Final(nil)

	for i := range h.key {
		h.key[i] ^= opad ^ ipad
	}

	h.hash.Init(nil)
	h.hash.Write(h.key)
	h.hash.Write(inner)
	return h.hash.Final(tag)
}

// Copy returns a deep copy of the HMAC's current running state, with its
// own pool-backed key buffer independent of h's.
func (h *HMAC) Copy() *HMAC {
	cp := &HMAC{
		hash:      h.hash.Copy(),
		hashName:  h.hashName,
		blockSize: h.blockSize,
		keyBuf:    secmem.Default().Alloc(len(h.key)),
	}
	cp.key = cp.keyBuf.Bytes()
	copy(cp.key, h.key)
	return cp
}

// Size returns the digest length of the underlying hash.
func (h *HMAC) Size() int { return h.hash.Size() }

// Wipe zeroizes the derived inner/outer pad key and releases it back to the
// secmem pool. Callers that construct an HMAC over secret key material (as
// kdf.PBKDF2 does, once per iteration block) should call this once the tag
// has been read out. Safe to call more than once.
func (h *HMAC) Wipe() {
	secmem.Default().Free(h.keyBuf)
	h.keyBuf = nil
	h.key = nil
}
