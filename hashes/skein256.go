package hashes

import (
	"encoding/binary"

	"github.com/ordolib/ordo/internal/threefish"
	"github.com/ordolib/ordo/status"
)

const (
	skein256Internal = 32 // state size in bytes, also the default digest size
	skein256Block    = 32

	skeinUBICfg = 4
	skeinUBIMsg = 48
	skeinUBIOut = 63
)

// skein256DefaultState is the precomputed result of UBI-compressing the
// default configuration block (256-bit output, schema "SHA3", version 1),
// so Init with default parameters does not need to run that compression.
var skein256DefaultState = [4]uint64{
	0xFC9DA860D048B449, 0x2FCA66479FA7D833, 0xB33BC3896656840F, 0x6A54E920FDE8DA69,
}

// SkeinParams configures Skein-256's variable-length digest output. A nil
// params (or the zero value) selects the default 256-bit digest.
type SkeinParams struct {
	// OutputBits is the desired digest length in bits. It is truncated to
	// a byte boundary; zero selects the default of 256.
	OutputBits int
}

// Skein256 implements the Skein-256 hash function: Unique Block Iteration
// (UBI) over the Threefish-256 permutation in Matyas-Meyer-Oseas mode, per
// §4.4. It supports Threefish-256's shared key schedule via
// internal/threefish.
type Skein256 struct {
	state         [4]uint64
	block         [4]uint64
	blockLen      int
	messageLen    uint64
	outputLenByte int
}

// NewSkein256 constructs a Skein-256 hash in its zero, un-initialized
// state.
func NewSkein256() *Skein256 { return &Skein256{} }

func (h *Skein256) Name() string   { return "Skein-256" }
func (h *Skein256) Size() int      { return h.outputLenByte }
func (h *Skein256) BlockSize() int { return skein256Block }

// makeTweak builds a UBI-compliant tweak: word 0 is the running position,
// word 1 packs the final bit, first bit, and block type into the top byte
// (plus the final bit in the very top bit), per §4.4.
func makeTweak(blockType int, position uint64, first, final bool) [2]uint64 {
	var t1 uint64
	if final {
		t1 |= 1 << 63
	}
	if first {
		t1 |= 1 << 62
	}
	t1 |= uint64(blockType) << 56
	return [2]uint64{position, t1}
}

// compress runs one UBI step: Threefish-256-encrypt block under a key
// schedule derived from state and tweak, then XOR-feed-forward the
// plaintext block back into the ciphertext to get the new state.
func compress(block [4]uint64, state [4]uint64, tweak [2]uint64) [4]uint64 {
	subkeys := threefish.KeySchedule(state, tweak)
	work := block
	threefish.ForwardRaw(&work, subkeys)
	for i := range work {
		work[i] ^= block[i]
	}
	return work
}

// Init (re)initializes Skein-256. params may be a *SkeinParams to request a
// non-default output length, or nil for the default 256-bit digest.
func (h *Skein256) Init(params interface{}) status.Status {
	h.blockLen = 0
	h.messageLen = 0

	p, ok := params.(*SkeinParams)
	if !ok || p == nil || p.OutputBits == 0 {
		h.state = skein256DefaultState
		h.outputLenByte = skein256Internal
		return status.Success
	}

	h.outputLenByte = p.OutputBits / 8

	var cfg [4]uint64
	cfgBytes := make([]byte, 32)
	copy(cfgBytes[0:4], []byte("SHA3"))
	binary.LittleEndian.PutUint16(cfgBytes[4:6], 1)
	binary.LittleEndian.PutUint64(cfgBytes[8:16], uint64(p.OutputBits))
	for i := 0; i < 4; i++ {
		cfg[i] = binary.LittleEndian.Uint64(cfgBytes[i*8 : i*8+8])
	}

	tweak := makeTweak(skeinUBICfg, skein256Block, true, true)
	h.state = compress(cfg, [4]uint64{}, tweak)
	return status.Success
}

// Write absorbs message bytes into Skein-256's UBI message chain,
// compressing every full 32-byte block except the last (which is deferred
// to Final, since only Final knows whether it is also the final block).
func (h *Skein256) Write(p []byte) (int, error) {
	written := len(p)
	blockBuf := wordsToRawBytes(h.block)

	if h.blockLen+len(p) > skein256Block {
		pad := skein256Block - h.blockLen
		copy(blockBuf[h.blockLen:], p[:pad])
		h.block = rawBytesToWords(blockBuf)
		h.messageLen += uint64(pad)

		tweak := makeTweak(skeinUBIMsg, h.messageLen, h.messageLen <= skein256Block, false)
		h.state = compress(h.block, h.state, tweak)
		h.blockLen = 0

		p = p[pad:]

		for len(p) > skein256Block {
			h.messageLen += skein256Block
			h.block = rawBytesToWords(p[:skein256Block])
			tweak = makeTweak(skeinUBIMsg, h.messageLen, h.messageLen <= skein256Block, false)
			h.state = compress(h.block, h.state, tweak)
			p = p[skein256Block:]
		}

		blockBuf = wordsToRawBytes(h.block)
	}

	copy(blockBuf[h.blockLen:], p)
	h.block = rawBytesToWords(blockBuf)
	h.blockLen += len(p)

	return written, nil
}

// Final processes the last (possibly partial) message block, then derives
// the digest by iterating the UBI output transform over 32-byte chunks
// until outputLenByte bytes have been produced.
func (h *Skein256) Final(digest []byte) []byte {
	blockBuf := wordsToRawBytes(h.block)
	for i := h.blockLen; i < skein256Block; i++ {
		blockBuf[i] = 0
	}
	h.block = rawBytesToWords(blockBuf)

	h.messageLen += uint64(h.blockLen)
	tweak := makeTweak(skeinUBIMsg, h.messageLen, h.messageLen <= skein256Block, true)
	h.state = compress(h.block, h.state, tweak)

	remaining := h.outputLenByte
	ctr := uint64(0)
	out := make([]byte, 0, h.outputLenByte)

	for remaining > 0 {
		var ctrBlock [4]uint64
		ctrBlock[0] = ctr
		tweak = makeTweak(skeinUBIOut, 8, true, true)
		lst := compress(ctrBlock, h.state, tweak)

		chunk := wordsToRawBytes(lst)
		take := remaining
		if take > skein256Block {
			take = skein256Block
		}
		out = append(out, chunk[:take]...)
		remaining -= take
		ctr++
	}

	return append(digest, out...)
}

func (h *Skein256) Copy() Hash {
	cp := *h
	return &cp
}

func wordsToRawBytes(w [4]uint64) []byte {
	b := make([]byte, 32)
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(b[i*8:i*8+8], w[i])
	}
	return b
}

func rawBytesToWords(b []byte) [4]uint64 {
	var w [4]uint64
	for i := 0; i < 4; i++ {
		w[i] = binary.LittleEndian.Uint64(b[i*8 : i*8+8])
	}
	return w
}
