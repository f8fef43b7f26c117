package streamciphers

import "github.com/ordolib/ordo/status"

const (
	rc4MinKeyLen    = 5
	rc4MaxKeyLen    = 256
	rc4DefaultDrop  = 2048
)

// RC4Params carries the keystream drop count: the number of initial
// keystream bytes discarded during Init to defeat the cipher's well-known
// key-scheduling bias. A nil params argument to Init (or a negative Drop)
// selects the default of 2048 bytes; any other Drop, including zero, is
// used as given.
type RC4Params struct {
	Drop int
}

// RC4 implements the RC4 stream cipher with an optional discard of initial
// keystream bytes, per §4.3.
type RC4 struct {
	s      [256]byte
	i, j   byte
	keyed  bool
}

// NewRC4 constructs an unkeyed RC4 cipher.
func NewRC4() *RC4 { return &RC4{} }

func (c *RC4) Name() string { return "RC4" }

// KeyLen clamps hint into RC4's accepted range of 5 to 256 bytes (40 to
// 2048 bits).
func (c *RC4) KeyLen(hint int) int {
	if hint < rc4MinKeyLen {
		return rc4MinKeyLen
	}
	if hint > rc4MaxKeyLen {
		return rc4MaxKeyLen
	}
	return hint
}

// Init runs the RC4 key-scheduling algorithm and discards the configured
// number of initial keystream bytes. key must be between 5 and 256 bytes.
func (c *RC4) Init(key []byte, params interface{}) status.Status {
	if len(key) < rc4MinKeyLen || len(key) > rc4MaxKeyLen {
		return status.KeySize
	}

	for t := 0; t < 256; t++ {
		c.s[t] = byte(t)
	}

	var j byte
	for t := 0; t < 256; t++ {
		j += c.s[t] + key[t%len(key)]
		c.s[t], c.s[j] = c.s[j], c.s[t]
	}

	c.i, c.j = 0, 0
	c.keyed = true

	drop := rc4DefaultDrop
	if p, ok := params.(*RC4Params); ok && p != nil && p.Drop >= 0 {
		drop = p.Drop
	}

	discard := make([]byte, drop)
	c.Process(discard)

	return status.Success
}

// Process XORs the RC4 keystream into buf in place.
func (c *RC4) Process(buf []byte) {
	for t := range buf {
		c.i++
		c.j += c.s[c.i]
		c.s[c.i], c.s[c.j] = c.s[c.j], c.s[c.i]
		buf[t] ^= c.s[byte(c.s[c.i]+c.s[c.j])]
	}
}

func (c *RC4) Copy() StreamCipher {
	cp := &RC4{s: c.s, i: c.i, j: c.j, keyed: c.keyed}
	return cp
}

// Zeroize wipes the permutation table and stream position.
func (c *RC4) Zeroize() {
	for i := range c.s {
		c.s[i] = 0
	}
	c.i, c.j = 0, 0
	c.keyed = false
}
