//go:build !linux && !darwin

package secmem

// mlock is a no-op on platforms without a wired page-locking syscall; the
// buffer remains correct, just not guaranteed resident.
func mlock(buf []byte) bool { return false }

func munlock(buf []byte) {}
