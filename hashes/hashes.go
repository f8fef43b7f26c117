// Package hashes implements the hash function primitive family of §4.4:
// MD5, SHA-256 (both thin wrappers over the standard library's
// Merkle-Damgard implementations — see DESIGN.md for why no pack-grounded
// third-party replacement is warranted), and Skein-256 (the UBI/Threefish-256
// construction, built from scratch atop internal/threefish).
package hashes

import "github.com/ordolib/ordo/status"

// Hash is the uniform interface every hash function in this package
// satisfies. Write may be called any number of times before Final; after
// Final the Hash must be re-initialized via Init before reuse.
type Hash interface {
	// Name returns the hash function's canonical name, as listed in §6.
	Name() string
	// Size returns the digest length in bytes this instance produces.
	Size() int
	// BlockSize returns the internal block size the hash operates on.
	BlockSize() int
	// Init (re)initializes the hash function's internal state. params may
	// be nil, or a hash-specific parameter struct (e.g. *SkeinParams).
	Init(params interface{}) status.Status
	// Write absorbs len(p) bytes of message into the running digest.
	Write(p []byte) (int, error)
	// Final appends the digest to digest and returns the resulting slice.
	// The Hash must be re-initialized via Init before reuse.
	Final(digest []byte) []byte
	// Copy returns a deep copy of the hash's current running state.
	Copy() Hash
}

// New constructs a fresh, un-initialized instance of the named hash
// function ("MD5", "SHA-256", or "Skein-256"). Init must be called before
// use. It is the alloc operation of §3/§4.4.
func New(name string) Hash {
	switch name {
	case "MD5":
		return NewMD5()
	case "SHA-256":
		return NewSHA256()
	case "Skein-256":
		return NewSkein256()
	default:
		return nil
	}
}
