package memstore

import "errors"

// ErrInvalidCapacity is returned when a store cannot be allocated with
// the requested capacity.
var ErrInvalidCapacity = errors.New("invalid store capacity")

// ErrNoSpace is returned when a write lands at the end of the store
// and not a single byte can be accepted.
var ErrNoSpace = errors.New("no space left on device")

// ErrTransfer is returned when an external source or sink fails in the
// middle of a data transfer.
var ErrTransfer = errors.New("data transfer failed")
