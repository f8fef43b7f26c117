// Package kdf implements the key derivation primitive of §4.7: PBKDF2,
// built generically over auth.HMAC.
package kdf

import (
	"encoding/binary"
	"math"

	"github.com/ordolib/ordo/auth"
	"github.com/ordolib/ordo/internal/secmem"
	"github.com/ordolib/ordo/internal/utils"
	"github.com/ordolib/ordo/status"
)

// PBKDF2 derives outputLen bytes of key material from password and salt
// using iterations rounds of HMAC-hashName, per RFC 2898. Returns
// status.Arg if outputLen or iterations is zero, or if the derivation
// would need more than 2^32-2 output blocks (the same bound the original
// 32-bit block counter imposes).
func PBKDF2(hashName string, password, salt []byte, iterations int, outputLen int) ([]byte, status.Status) {
	probe := auth.NewHMAC(hashName)
	if st := probe.Init(nil, nil); st != status.Success {
		return nil, st
	}
	digestLen := probe.Size()

	if outputLen == 0 || iterations == 0 {
		return nil, status.Arg
	}
	// ceil(outputLen/digestLen) - 1: the index of the last block actually
	// needed. outputLen/digestLen alone over-counts by one whole block
	// whenever outputLen is an exact multiple of digestLen, computing and
	// then discarding an extra full iterations-round HMAC chain.
	tMax := (outputLen - 1) / digestLen
	if tMax > math.MaxUint32-2 {
		return nil, status.Arg
	}

	output := make([]byte, outputLen)

	for t := 0; t <= tMax; t++ {
		var counter [4]byte
		binary.BigEndian.PutUint32(counter[:], uint32(t+1))

		ctx := auth.NewHMAC(hashName)
		if st := ctx.Init(password, nil); st != status.Success {
			return nil, st
		}
		ctx.Write(salt)
		ctx.Write(counter[:])

		feedback := ctx.Final(nil)
		bufHandle := secmem.Default().Alloc(digestLen)
		if bufHandle == nil {
			return nil, status.Alloc
		}
		buf := bufHandle.Bytes()
		copy(buf, feedback)
		ctx.Wipe()

		cst := auth.NewHMAC(hashName)
		if st := cst.Init(password, nil); st != status.Success {
			return nil, st
		}

		for i := 1; i < iterations; i++ {
			iter := cst.Copy()
			iter.Write(feedback)
			feedback = iter.Final(nil)
			utils.XorBuffer(buf, feedback, digestLen)
			iter.Wipe()
		}
		cst.Wipe()

		take := digestLen
		if t == tMax && outputLen%digestLen != 0 {
			take = outputLen % digestLen
		}
		copy(output[t*digestLen:], buf[:take])
		secmem.Default().Free(bufHandle)
	}

	return output, status.Success
}
