// Package audit is a lightweight, in-memory operation log for the façade
// samples. It is not a security boundary and performs no authentication or
// authorization: it is a call-log a caller can optionally populate and
// inspect, in the spirit of the teacher's RBACManager/HSMIntegration audit
// trails, stripped down to the logging concern alone.
package audit

import (
	"sync"
	"time"
)

// Entry records one operation against the library: which primitive was
// invoked, by what operation (encrypt, decrypt, digest, derive), and
// whether it succeeded.
type Entry struct {
	Timestamp time.Time
	Operation string
	Primitive string
	Caller    string
	Success   bool
	Detail    string
}

// Log is a mutex-guarded, append-only sequence of Entry values. The zero
// value is ready to use.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
}

// New returns an empty Log.
func New() *Log {
	return &Log{}
}

// Record appends an entry stamped with the current time.
func (l *Log) Record(operation, primitive, caller string, success bool, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, Entry{
		Timestamp: time.Now(),
		Operation: operation,
		Primitive: primitive,
		Caller:    caller,
		Success:   success,
		Detail:    detail,
	})
}

// Entries returns a copy of the recorded entries in insertion order.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of recorded entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Failures returns the subset of entries where Success is false.
func (l *Log) Failures() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []Entry
	for _, e := range l.entries {
		if !e.Success {
			out = append(out, e)
		}
	}
	return out
}
