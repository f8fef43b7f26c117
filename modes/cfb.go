package modes

import (
	"github.com/ordolib/ordo/ciphers"
	"github.com/ordolib/ordo/internal/utils"
	"github.com/ordolib/ordo/status"
)

// CFB implements Cipher Feedback mode: like OFB, the keystream comes from
// repeatedly re-encrypting a running block, but that block is fed back
// from the ciphertext (not the keystream itself), so encryption and
// decryption differ in which side of the XOR they feed back. Final is
// always a no-op.
type CFB struct {
	cipher    ciphers.BlockCipher
	iv        []byte
	remaining int
	dir       Direction
}

func (m *CFB) Name() string { return "CFB" }

// Init computes the first keystream block from iv (zero-padded to the
// cipher's block size). Returns status.Arg if iv is longer than the block
// size.
func (m *CFB) Init(cipher ciphers.BlockCipher, iv []byte, dir Direction, params interface{}) status.Status {
	blockSize := cipher.BlockSize()
	if len(iv) > blockSize {
		return status.Arg
	}

	m.cipher = cipher
	m.iv = make([]byte, blockSize)
	copy(m.iv, iv)
	m.cipher.Forward(m.iv)
	m.remaining = blockSize
	m.dir = dir
	return status.Success
}

func (m *CFB) Update(in []byte) []byte {
	if m.dir == Encrypt {
		return m.encryptUpdate(in)
	}
	return m.decryptUpdate(in)
}

func (m *CFB) encryptUpdate(in []byte) []byte {
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

		offset := blockSize - m.remaining
		segment := append([]byte(nil), in[:process]...)
		utils.XorBuffer(segment, m.iv[offset:], process)
		copy(m.iv[offset:], segment)

		out = append(out, segment...)
		m.remaining -= process
		in = in[process:]
	}

	return out
}

func (m *CFB) decryptUpdate(in []byte) []byte {
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

		offset := blockSize - m.remaining
		ciphertext := append([]byte(nil), in[:process]...)
		segment := append([]byte(nil), in[:process]...)
		utils.XorBuffer(segment, m.iv[offset:], process)
		copy(m.iv[offset:], ciphertext)

		out = append(out, segment...)
		m.remaining -= process
		in = in[process:]
	}

	return out
}

func (m *CFB) Final() ([]byte, status.Status) { return nil, status.Success }

func (m *CFB) Copy() BlockMode {
	return &CFB{
		cipher:    m.cipher.Copy(),
		iv:        append([]byte(nil), m.iv...),
		remaining: m.remaining,
		dir:       m.dir,
	}
}
