package hashes

import (
	stdmd5 "crypto/md5"
	"encoding"
	"hash"

	"github.com/ordolib/ordo/status"
)

const (
	md5DigestSize = 16
	md5BlockSize  = 64
)

// MD5 implements RFC 1321 MD5. The compression function is delegated to the
// standard library, which already implements the little-endian
// Merkle-Damgard construction §4.4 describes bit-for-bit; there is nothing
// a pack-grounded third-party package would add (see DESIGN.md).
type MD5 struct {
	h hash.Hash
}

// NewMD5 constructs an MD5 hash in its zero, un-initialized state.
func NewMD5() *MD5 { return &MD5{} }

func (h *MD5) Name() string   { return "MD5" }
func (h *MD5) Size() int      { return md5DigestSize }
func (h *MD5) BlockSize() int { return md5BlockSize }

// Init resets the hash to its initial state. MD5 takes no parameters.
func (h *MD5) Init(params interface{}) status.Status {
	h.h = stdmd5.New()
	return status.Success
}

func (h *MD5) Write(p []byte) (int, error) { return h.h.Write(p) }

func (h *MD5) Final(digest []byte) []byte { return h.h.Sum(digest) }

// Copy returns a deep copy of the running digest, cloned via crypto/md5's
// BinaryMarshaler/BinaryUnmarshaler support rather than any exported Clone
// method (the standard library digest type has none).
func (h *MD5) Copy() Hash {
	cp := &MD5{h: stdmd5.New()}
	if marshaler, ok := h.h.(encoding.BinaryMarshaler); ok {
		if state, err := marshaler.MarshalBinary(); err == nil {
			if unmarshaler, ok := cp.h.(encoding.BinaryUnmarshaler); ok {
				_ = unmarshaler.UnmarshalBinary(state)
			}
		}
	}
	return cp
}
