package hashes

import (
	stdsha256 "crypto/sha256"
	"encoding"
	"hash"

	"github.com/ordolib/ordo/status"
)

const (
	sha256DigestSize = 32
	sha256BlockSize  = 64
)

// SHA256 implements FIPS 180-4 SHA-256, delegating the big-endian
// Merkle-Damgard compression function to the standard library for the same
// reason as MD5 (see DESIGN.md).
type SHA256 struct {
	h hash.Hash
}

// NewSHA256 constructs a SHA-256 hash in its zero, un-initialized state.
func NewSHA256() *SHA256 { return &SHA256{} }

func (h *SHA256) Name() string   { return "SHA-256" }
func (h *SHA256) Size() int      { return sha256DigestSize }
func (h *SHA256) BlockSize() int { return sha256BlockSize }

// Init resets the hash to its initial state. SHA-256 takes no parameters.
func (h *SHA256) Init(params interface{}) status.Status {
	h.h = stdsha256.New()
	return status.Success
}

func (h *SHA256) Write(p []byte) (int, error) { return h.h.Write(p) }

func (h *SHA256) Final(digest []byte) []byte { return h.h.Sum(digest) }

// Copy returns a deep copy of the running digest, cloned via crypto/sha256's
// BinaryMarshaler/BinaryUnmarshaler support.
func (h *SHA256) Copy() Hash {
	cp := &SHA256{h: stdsha256.New()}
	if marshaler, ok := h.h.(encoding.BinaryMarshaler); ok {
		if state, err := marshaler.MarshalBinary(); err == nil {
			if unmarshaler, ok := cp.h.(encoding.BinaryUnmarshaler); ok {
				_ = unmarshaler.UnmarshalBinary(state)
			}
		}
	}
	return cp
}
