//go:build linux || darwin

package secmem

import "golang.org/x/sys/unix"

// mlock best-effort locks buf's pages against being paged to swap. Failure
// (e.g. the process' memory-locking quota is exhausted) is not fatal — the
// buffer is still usable, it is just not guaranteed to stay resident, the
// same tradeoff the original C library's secure_alloc documents.
func mlock(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	return unix.Mlock(buf) == nil
}

func munlock(buf []byte) {
	if len(buf) == 0 {
		return
	}
	_ = unix.Munlock(buf)
}
