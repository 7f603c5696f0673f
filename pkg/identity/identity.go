// Package identity manages the external identities under which bank
// devices are published.
package identity

import (
	"errors"
	"strconv"
)

// ID is an external identity of a single published device.
type ID uint64

// String implements fmt.Stringer.
func (i ID) String() string {
	return "membank" + strconv.FormatUint(uint64(i), 10)
}

// ErrExhausted is returned when a contiguous identity block of the
// requested size cannot be carved out of the identity space.
var ErrExhausted = errors.New("identity space exhausted")

// Allocator grants contiguous identity blocks and tracks the published
// identities of live devices.
//
// The registration sequence of a bank of n devices is Allocate(n)
// followed by Publish of each identity of the granted block. Teardown
// runs in reverse: Revoke of each published identity, then Release of
// the whole block.
type Allocator interface {
	// Allocate grants a contiguous block of n identities and returns
	// its base. Returns ErrExhausted if no such block fits into the
	// identity space.
	Allocate(n int) (ID, error)

	// Publish makes a single identity of a granted block visible.
	// Returns an error if the identity is outside every granted
	// block or is published already.
	Publish(id ID) error

	// Revoke withdraws a published identity. Revoking an identity
	// that is not published is logged and ignored.
	Revoke(id ID)

	// Release returns a granted block of n identities starting at
	// base. Releasing an unknown block is logged and ignored.
	Release(base ID, n int)
}
