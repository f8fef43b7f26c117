// Package cpufeatures reports hardware acceleration available to this
// process, mirroring the role the original C library's
// internal/asm/resolve.h preprocessor glue played in selecting an AES-NI or
// Threefish assembly path at build time. This module always runs the
// portable Go implementations; the report is surfaced read-only through the
// AES primitive descriptor's query(PLATFORM_ACCEL, ...) so callers can tell
// whether crypto/aes is dispatching to hardware underneath.
package cpufeatures

import "golang.org/x/sys/cpu"

// HasAESNI reports whether the current CPU exposes AES instructions that
// Go's crypto/aes will use automatically.
func HasAESNI() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES
}
