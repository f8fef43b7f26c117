package modes

import (
	"github.com/ordolib/ordo/ciphers"
	"github.com/ordolib/ordo/internal/utils"
	"github.com/ordolib/ordo/status"
)

// CTR implements Counter mode: a running counter is encrypted to produce a
// keystream, which is XORed against the data. Encryption and decryption are
// the same operation. CTR never buffers a partial block, so Final is
// always a no-op.
type CTR struct {
	cipher    ciphers.BlockCipher
	counter   []byte
	keystream []byte
	remaining int
}

func (m *CTR) Name() string { return "CTR" }

// Init seeds the counter from iv (zero-padded to the cipher's block size)
// and computes the first keystream block. Returns status.Arg if iv is
// longer than the block size.
func (m *CTR) Init(cipher ciphers.BlockCipher, iv []byte, dir Direction, params interface{}) status.Status {
	blockSize := cipher.BlockSize()
	if len(iv) > blockSize {
		return status.Arg
	}

	m.cipher = cipher
	m.counter = make([]byte, blockSize)
	copy(m.counter, iv)

	m.keystream = append([]byte(nil), m.counter...)
	m.cipher.Forward(m.keystream)
	m.remaining = blockSize
	return status.Success
}

func (m *CTR) Update(in []byte) []byte {
	blockSize := m.cipher.BlockSize()
	out := make([]byte, 0, len(in))

	for len(in) != 0 {
		if m.remaining == 0 {
			utils.IncBuffer(m.counter)
			copy(m.keystream, m.counter)
			m.cipher.Forward(m.keystream)
			m.remaining = blockSize
		}

		process := len(in)
		if process > m.remaining {
			process = m.remaining
		}

		segment := append([]byte(nil), in[:process]...)
		utils.XorBuffer(segment, m.keystream[blockSize-m.remaining:], process)

		out = append(out, segment...)
		m.remaining -= process
		in = in[process:]
	}

	return out
}

func (m *CTR) Final() ([]byte, status.Status) { return nil, status.Success }

func (m *CTR) Copy() BlockMode {
	return &CTR{
		cipher:    m.cipher.Copy(),
		counter:   append([]byte(nil), m.counter...),
		keystream: append([]byte(nil), m.keystream...),
		remaining: m.remaining,
	}
}
