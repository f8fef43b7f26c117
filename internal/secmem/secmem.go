// Package secmem implements the secure-memory model of §5/§9: a typed byte
// container that is the only home for secret material (keys, subkeys, HMAC
// masks, PBKDF2 scratch buffers), zeroizes on free along every exit path
// including error paths, and best-effort locks its pages against swap.
//
// The slab-pool bitmap allocator described in the original C library is
// called out by the design notes as "an optimization, not a semantic
// contract" — Go's allocator is already memory-safe, so Pool here is a thin,
// mutex-guarded accounting layer over the platform allocator rather than a
// hand-rolled bitmap scanner. What the spec does require — zeroize-on-free
// and lock-on-alloc — is preserved.
package secmem

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// poolState is the three-valued idempotent initialization state machine of
// §5: Default (never touched) → Locked (another goroutine is initializing)
// → Ready (safe to use concurrently). "Mutex" in the spec names the state in
// which the guarding mutex itself has been constructed; in Go the mutex is a
// zero-value-ready sync.Mutex, so that step collapses into Locked here.
type poolState int32

const (
	stateDefault poolState = iota
	stateLocked
	stateReady
)

// Pool is the process-wide secure allocator. Allocation failure (out of
// memory) surfaces as a nil Bytes, which callers must cascade as
// status.Alloc.
type Pool struct {
	state     atomic.Int32
	mu        sync.Mutex
	allocated uint64
	live      int
}

var global Pool

// Default returns the process-wide secure allocator singleton, initializing
// it on first use. Safe for concurrent use.
func Default() *Pool {
	global.ensureReady()
	return &global
}

func (p *Pool) ensureReady() {
	for {
		switch poolState(p.state.Load()) {
		case stateReady:
			return
		case stateDefault:
			if p.state.CompareAndSwap(int32(stateDefault), int32(stateLocked)) {
				p.mu = sync.Mutex{}
				p.state.Store(int32(stateReady))
				return
			}
		default:
			runtime.Gosched()
		}
	}
}

// Bytes is a secure-allocated byte buffer. It must be released with the
// Pool's Free once its secret contents are no longer needed.
type Bytes struct {
	buf    []byte
	locked bool
}

// Alloc returns n bytes of secure memory from p, or nil on allocation
// failure. The returned buffer's contents are zero.
func (p *Pool) Alloc(n int) *Bytes {
	if n < 0 {
		return nil
	}
	p.ensureReady()

	buf := make([]byte, n)
	b := &Bytes{buf: buf}
	b.locked = mlock(buf)

	p.mu.Lock()
	p.allocated += uint64(n)
	p.live++
	p.mu.Unlock()

	return b
}

// Free zeroizes b's contents (in a manner the compiler may not elide) and
// releases any page lock. Safe to call on a nil *Bytes.
func (p *Pool) Free(b *Bytes) {
	if b == nil {
		return
	}
	secureErase(b.buf)
	if b.locked {
		munlock(b.buf)
		b.locked = false
	}
	p.mu.Lock()
	if p.live > 0 {
		p.live--
	}
	p.mu.Unlock()
	b.buf = nil
}

// Bytes returns the underlying slice. The caller must not retain it beyond
// the Bytes' lifetime.
func (b *Bytes) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.buf
}

// Len returns the buffer length.
func (b *Bytes) Len() int {
	if b == nil {
		return 0
	}
	return len(b.buf)
}

// secureErase overwrites p with zero in a manner the compiler may not elide
// (§4.1 secure_erase). Every caller of this package reaches a secret buffer
// through a Pool allocation, so this stays unexported and is only ever
// invoked from Free.
func secureErase(p []byte) {
	for i := range p {
		p[i] = 0
	}
	runtime.KeepAlive(p)
}

// Stats reports a snapshot of pool usage, exposed for the compliance/audit
// sample tooling.
type Stats struct {
	TotalBytesAllocated uint64
	LiveAllocations     int
}

func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{TotalBytesAllocated: p.allocated, LiveAllocations: p.live}
}
