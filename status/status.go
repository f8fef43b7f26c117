// Package status defines the taxonomized result codes returned by every
// fallible operation in this module (§6, §7). There is no exception-like
// unwinding: primitives, modes, and composites all report failure through a
// Status value, which is zero (Success) on the happy path so composed
// pipelines can early-return on the first nonzero status encountered.
package status

// Status is the result of a fallible library operation.
type Status int

const (
	// Success indicates the operation completed without error.
	Success Status = 0
	// Fail indicates an external failure (e.g. the OS entropy source).
	Fail Status = -1
	// Leftover indicates a block mode has an incomplete block at Final
	// with padding disabled.
	Leftover Status = -2
	// KeySize indicates a key length invalid for the primitive.
	KeySize Status = -3
	// Padding indicates a malformed padding block on decryption.
	Padding Status = -4
	// Alloc indicates secure allocation failed.
	Alloc Status = -5
	// Arg indicates an out-of-range argument (e.g. zero iterations).
	Arg Status = -6
)

// Error implements the error interface so a Status can be returned directly
// wherever Go idiom expects an error (e.g. wrapped by CLI-layer code), while
// the core library keeps passing it around as a plain comparable value.
func (s Status) Error() string {
	return s.String()
}

// String returns a human-readable message for s, mirroring the original
// library's error_msg() lookup table.
func (s Status) String() string {
	switch s {
	case Success:
		return "no error occurred"
	case Fail:
		return "an external error occurred"
	case Leftover:
		return "there is leftover input data"
	case KeySize:
		return "the key size is invalid"
	case Padding:
		return "the padding block cannot be recognized"
	case Alloc:
		return "memory allocation failed"
	case Arg:
		return "invalid argument provided"
	default:
		return "unknown error code"
	}
}

// OK reports whether s represents success.
func (s Status) OK() bool { return s == Success }
