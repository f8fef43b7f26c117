package modes

import (
	"github.com/ordolib/ordo/ciphers"
	"github.com/ordolib/ordo/internal/utils"
	"github.com/ordolib/ordo/status"
)

// CBC implements Cipher Block Chaining mode: each plaintext block is XORed
// with the previous ciphertext block (or the IV, for the first block)
// before encryption.
type CBC struct {
	cipher    ciphers.BlockCipher
	iv        []byte
	block     []byte
	available int
	padding   bool
	dir       Direction
}

func (m *CBC) Name() string { return "CBC" }

// Init copies iv (zero-padded to the cipher's block size) as the running
// IV. Returns status.Arg if iv is longer than the block size.
func (m *CBC) Init(cipher ciphers.BlockCipher, iv []byte, dir Direction, params interface{}) status.Status {
	blockSize := cipher.BlockSize()
	if len(iv) > blockSize {
		return status.Arg
	}

	m.cipher = cipher
	m.iv = make([]byte, blockSize)
	copy(m.iv, iv)
	m.block = make([]byte, blockSize)
	m.available = 0
	m.padding = paddingEnabled(params)
	m.dir = dir
	return status.Success
}

func (m *CBC) Update(in []byte) []byte {
	if m.dir == Encrypt {
		return m.encryptUpdate(in)
	}
	return m.decryptUpdate(in)
}

func (m *CBC) encryptUpdate(in []byte) []byte {
	blockSize := m.cipher.BlockSize()
	out := make([]byte, 0, len(in)+blockSize)

	for m.available+len(in) >= blockSize {
		need := blockSize - m.available
		copy(m.block[m.available:], in[:need])

		utils.XorBuffer(m.block, m.iv, blockSize)
		m.cipher.Forward(m.block)
		copy(m.iv, m.block)

		out = append(out, m.block...)

		in = in[need:]
		m.available = 0
	}

	copy(m.block[m.available:], in)
	m.available += len(in)
	return out
}

func (m *CBC) decryptUpdate(in []byte) []byte {
	blockSize := m.cipher.BlockSize()
	out := make([]byte, 0, len(in)+blockSize)

	threshold := blockSize
	if !m.padding {
		threshold = blockSize - 1
	}

	for m.available+len(in) > threshold {
		need := blockSize - m.available
		copy(m.block[m.available:], in[:need])

		ciphertext := append([]byte(nil), m.block...)
		m.cipher.Inverse(m.block)
		utils.XorBuffer(m.block, m.iv, blockSize)
		copy(m.iv, ciphertext)

		out = append(out, m.block...)

		in = in[need:]
		m.available = 0
	}

	copy(m.block[m.available:], in)
	m.available += len(in)
	return out
}

func (m *CBC) Final() ([]byte, status.Status) {
	if m.dir == Encrypt {
		return m.encryptFinal()
	}
	return m.decryptFinal()
}

func (m *CBC) encryptFinal() ([]byte, status.Status) {
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

	utils.XorBuffer(m.block, m.iv, blockSize)
	m.cipher.Forward(m.block)

	out := append([]byte(nil), m.block...)
	return out, status.Success
}

func (m *CBC) decryptFinal() ([]byte, status.Status) {
	blockSize := m.cipher.BlockSize()

	if !m.padding {
		if m.available != 0 {
			return nil, status.Leftover
		}
		return nil, status.Success
	}

	m.cipher.Inverse(m.block)
	utils.XorBuffer(m.block, m.iv, blockSize)

	pad := m.block[blockSize-1]
	if pad == 0 || int(pad) > blockSize || !utils.PadCheck(m.block[blockSize-int(pad):], pad) {
		return nil, status.Padding
	}

	return append([]byte(nil), m.block[:blockSize-int(pad)]...), status.Success
}

func (m *CBC) Copy() BlockMode {
	return &CBC{
		cipher:    m.cipher.Copy(),
		iv:        append([]byte(nil), m.iv...),
		block:     append([]byte(nil), m.block...),
		available: m.available,
		padding:   m.padding,
		dir:       m.dir,
	}
}
