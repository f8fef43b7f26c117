// Package modes implements the block cipher mode of operation family of
// §4.5: ECB, CBC, CTR, CFB, and OFB. Each mode is a state machine built on
// top of any ciphers.BlockCipher: Init establishes the IV/counter and
// direction, Update consumes input incrementally (buffering any partial
// block), and Final flushes whatever remains, applying or checking PKCS#7
// padding for the block-aligned modes.
package modes

import (
	"github.com/ordolib/ordo/ciphers"
	"github.com/ordolib/ordo/status"
)

// Direction selects whether a mode instance encrypts or decrypts.
type Direction int

const (
	Decrypt Direction = 0
	Encrypt Direction = 1
)

// BlockMode is the uniform interface every block cipher mode in this
// package satisfies.
type BlockMode interface {
	// Name returns the mode's canonical name, as listed in §6.
	Name() string
	// Init establishes the mode's running IV/counter state and direction.
	// iv must not exceed the underlying cipher's block size; params may be
	// a mode-specific parameter struct (e.g. *PaddingParams) or nil.
	// Returns status.Arg if iv is too long.
	Init(cipher ciphers.BlockCipher, iv []byte, dir Direction, params interface{}) status.Status
	// Update processes in, returning any output produced so far (which may
	// be shorter than len(in), since a partial final block is buffered
	// until Final).
	Update(in []byte) []byte
	// Final flushes any buffered final block, applying or validating
	// padding as configured. Returns status.Leftover if padding is
	// disabled and a partial block remains, or status.Padding if
	// decrypted padding fails validation.
	Final() ([]byte, status.Status)
	// Copy returns a deep copy of the mode's current running state.
	Copy() BlockMode
}

// PaddingParams configures whether the block-aligned modes (ECB, CBC) pad
// the final block. Padding defaults to enabled when params is nil.
type PaddingParams struct {
	Padding bool
}

func paddingEnabled(params interface{}) bool {
	if p, ok := params.(*PaddingParams); ok && p != nil {
		return p.Padding
	}
	return true
}

// New constructs a fresh, un-initialized instance of the named mode ("ECB",
// "CBC", "CTR", "CFB", or "OFB").
func New(name string) BlockMode {
	switch name {
	case "ECB":
		return &ECB{}
	case "CBC":
		return &CBC{}
	case "CTR":
		return &CTR{}
	case "CFB":
		return &CFB{}
	case "OFB":
		return &OFB{}
	default:
		return nil
	}
}
