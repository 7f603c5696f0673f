package bank

import (
	"fmt"

	"github.com/membank/membank/pkg/device"
	"github.com/membank/membank/pkg/identity"
)

// Open dispatches the identity to its published device and admits a
// new session on it. Dispatch takes no bank-wide exclusive lock, so
// sessions of different devices are admitted independently.
//
// Returns ErrNotStarted if the bank serves no devices and
// ErrDeviceNotFound if the identity is outside the published block.
// Returns device.ErrBusy if the device rejects the session under its
// admission policy.
func (b *Bank) Open(id identity.ID) (*device.Session, error) {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	if b.devices == nil {
		return nil, ErrNotStarted
	}

	if id < b.base || uint64(id-b.base) >= uint64(len(b.devices)) {
		return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, id)
	}

	return b.devices[id-b.base].Open()
}
