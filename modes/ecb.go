package modes

import (
	"github.com/ordolib/ordo/ciphers"
	"github.com/ordolib/ordo/internal/utils"
	"github.com/ordolib/ordo/status"
)

// ECB implements Electronic Codebook mode: each block is ciphered
// independently, with no chaining and no IV.
type ECB struct {
	cipher    ciphers.BlockCipher
	block     []byte
	available int
	padding   bool
	dir       Direction
}

func (m *ECB) Name() string { return "ECB" }

// Init ignores iv (ECB uses none) and records the padding preference.
func (m *ECB) Init(cipher ciphers.BlockCipher, iv []byte, dir Direction, params interface{}) status.Status {
	m.cipher = cipher
	m.block = make([]byte, cipher.BlockSize())
	m.available = 0
	m.padding = paddingEnabled(params)
	m.dir = dir
	return status.Success
}

func (m *ECB) Update(in []byte) []byte {
	if m.dir == Encrypt {
		return m.encryptUpdate(in)
	}
	return m.decryptUpdate(in)
}

func (m *ECB) encryptUpdate(in []byte) []byte {
	blockSize := m.cipher.BlockSize()
	out := make([]byte, 0, len(in)+blockSize)

	for m.available+len(in) >= blockSize {
		need := blockSize - m.available
		copy(m.block[m.available:], in[:need])

		m.cipher.Forward(m.block)
		out = append(out, m.block...)

		in = in[need:]
		m.available = 0
	}

	copy(m.block[m.available:], in)
	m.available += len(in)
	return out
}

func (m *ECB) decryptUpdate(in []byte) []byte {
	blockSize := m.cipher.BlockSize()
	out := make([]byte, 0, len(in)+blockSize)

	threshold := blockSize
	if !m.padding {
		threshold = blockSize - 1
	}

	for m.available+len(in) > threshold {
		need := blockSize - m.available
		copy(m.block[m.available:], in[:need])

		m.cipher.Inverse(m.block)
		out = append(out, m.block...)

		in = in[need:]
		m.available = 0
	}

	copy(m.block[m.available:], in)
	m.available += len(in)
	return out
}

func (m *ECB) Final() ([]byte, status.Status) {
	if m.dir == Encrypt {
		return m.encryptFinal()
	}
	return m.decryptFinal()
}

func (m *ECB) encryptFinal() ([]byte, status.Status) {
	blockSize := m.cipher.BlockSize()

	if !m.padding {
		if m.available != 0 {
			return nil, status.Leftover
		}
		return nil, status.Success
	}

	pad := byte(blockSize - m.available%blockSize)
	for i := m.available; i < blockSize; i++ {
		m.block[i] = pad
	}

	m.cipher.Forward(m.block)
	out := append([]byte(nil), m.block...)
	return out, status.Success
}

func (m *ECB) decryptFinal() ([]byte, status.Status) {
	blockSize := m.cipher.BlockSize()

	if !m.padding {
		if m.available != 0 {
			return nil, status.Leftover
		}
		return nil, status.Success
	}

	m.cipher.Inverse(m.block)
	pad := m.block[blockSize-1]

	if pad == 0 || int(pad) > blockSize || !utils.PadCheck(m.block[blockSize-int(pad):], pad) {
		return nil, status.Padding
	}

	return append([]byte(nil), m.block[:blockSize-int(pad)]...), status.Success
}

func (m *ECB) Copy() BlockMode {
	cp := &ECB{
		cipher:    m.cipher.Copy(),
		block:     append([]byte(nil), m.block...),
		available: m.available,
		padding:   m.padding,
		dir:       m.dir,
	}
	return cp
}
