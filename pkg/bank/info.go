package bank

import (
	"github.com/membank/membank/pkg/device"
	"github.com/membank/membank/pkg/identity"
)

// Info groups the information about the Bank.
type Info struct {
	// Base is the first identity of the published block.
	Base identity.ID

	// Devices describes the published devices in index order. Nil
	// means the bank is not started.
	Devices []device.Info
}

// DumpInfo returns information about the bank and its devices.
func (b *Bank) DumpInfo() (i Info) {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	if b.devices == nil {
		return
	}

	i.Base = b.base
	i.Devices = make([]device.Info, 0, len(b.devices))

	for _, d := range b.devices {
		i.Devices = append(i.Devices, d.DumpInfo())
	}

	return
}
