package modes

import (
	"github.com/ordolib/ordo/ciphers"
	"github.com/ordolib/ordo/internal/utils"
	"github.com/ordolib/ordo/status"
)

// OFB implements Output Feedback mode: the keystream is produced by
// repeatedly re-encrypting the previous keystream block (rather than
// incrementing a counter, as CTR does). Encryption and decryption are the
// same operation; Final is always a no-op.
type OFB struct {
	cipher    ciphers.BlockCipher
	iv        []byte
	remaining int
}

func (m *OFB) Name() string { return "OFB" }

// Init computes the first keystream block from iv (zero-padded to the
// cipher's block size). Returns status.Arg if iv is longer than the block
// size.
func (m *OFB) Init(cipher ciphers.BlockCipher, iv []byte, dir Direction, params interface{}) status.Status {
	blockSize := cipher.BlockSize()
	if len(iv) > blockSize {
		return status.Arg
	}

	m.cipher = cipher
	m.iv = make([]byte, blockSize)
	copy(m.iv, iv)
	m.cipher.Forward(m.iv)
	m.remaining = blockSize
	return status.Success
}

func (m *OFB) Update(in []byte) []byte {
	blockSize := m.cipher.BlockSize()
	out := make([]byte, 0, len(in))

	for len(in) != 0 {
		if m.remaining == 0 {
			m.cipher.Forward(m.iv)
			m.remaining = blockSize
		}

		process := len(in)
		if process > m.remaining {
			process = m.remaining
		}

		segment := append([]byte(nil), in[:process]...)
		utils.XorBuffer(segment, m.iv[blockSize-m.remaining:], process)

		out = append(out, segment...)
		m.remaining -= process
		in = in[process:]
	}

	return out
}

func (m *OFB) Final() ([]byte, status.Status) { return nil, status.Success }

func (m *OFB) Copy() BlockMode {
	return &OFB{
		cipher:    m.cipher.Copy(),
		iv:        append([]byte(nil), m.iv...),
		remaining: m.remaining,
	}
}
