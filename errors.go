package ordo

import "github.com/ordolib/ordo/status"

// Status is re-exported at the façade level so callers need not import the
// status package directly for ordinary error handling, per §6/§7.
type Status = status.Status

const (
	Success  = status.Success
	Fail     = status.Fail
	Leftover = status.Leftover
	KeySize  = status.KeySize
	Padding  = status.Padding
	Alloc    = status.Alloc
	Arg      = status.Arg
)
