package bank

import (
	"fmt"

	"github.com/membank/membank/pkg/device"
	"github.com/membank/membank/pkg/identity"
	"go.uber.org/zap"
)

// Start builds n devices of the given capacity in bytes and publishes
// them under a contiguous identity block granted by the allocator.
// Device of index i is published under identity base+i.
//
// Start is all-or-nothing: if any device fails to construct or
// publish, the identities published so far are revoked in reverse
// order, the granted block is released and the bank stays stopped.
//
// Returns ErrStarted if the bank is started already. Returns an error
// wrapping memstore.ErrInvalidCapacity if capacity is out of bounds,
// and identity.ErrExhausted if the identity block cannot be granted.
func (b *Bank) Start(n int, capacity int64) error {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	if b.devices != nil {
		return ErrStarted
	}

	if n <= 0 {
		return fmt.Errorf("invalid device count %d", n)
	}

	base, err := b.alloc.Allocate(n)
	if err != nil {
		return fmt.Errorf("could not allocate identity block: %w", err)
	}

	devices := make([]*device.Device, 0, n)

	for i := 0; i < n; i++ {
		d, err := device.New(
			device.WithIndex(i),
			device.WithCapacity(capacity),
			device.WithOpenPolicy(b.policy),
			device.WithLogger(b.log),
			device.WithMetrics(b.metrics),
		)
		if err != nil {
			b.unwind(base, i, n)
			return fmt.Errorf("could not create device %d: %w", i, err)
		}

		if err := b.alloc.Publish(base + identity.ID(i)); err != nil {
			b.unwind(base, i, n)
			return fmt.Errorf("could not publish device %d: %w", i, err)
		}

		devices = append(devices, d)
	}

	b.base = base
	b.devices = devices

	if b.metrics != nil {
		b.metrics.SetDeviceCount(n)
		b.metrics.SetDeviceCapacity(capacity)
	}

	b.log.Info("bank started",
		zap.Int("devices", n),
		zap.Int64("capacity", capacity),
		zap.Stringer("base", base),
	)

	return nil
}

// unwind rolls back a partially started bank: the identities published
// so far are revoked in reverse order, then the whole granted block is
// released.
func (b *Bank) unwind(base identity.ID, published, n int) {
	for i := published - 1; i >= 0; i-- {
		b.alloc.Revoke(base + identity.ID(i))
	}

	b.alloc.Release(base, n)

	b.log.Warn("bank start unwound",
		zap.Stringer("base", base),
		zap.Int("published", published),
	)
}

// Stop tears the bank down: the device identities are revoked in
// reverse construction order and the identity block is released. A
// stopped or never started bank is left as is.
//
// Stop does not invalidate live sessions: their owners keep a working
// handle on the deregistered device until release, and the device
// store is reclaimed with its last reference. New Open calls fail with
// ErrNotStarted.
func (b *Bank) Stop() {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	if b.devices == nil {
		b.log.Debug("stopping a bank that serves no devices")
		return
	}

	n := len(b.devices)

	for i := n - 1; i >= 0; i-- {
		if live := b.devices[i].Sessions(); live > 0 {
			b.log.Warn("deregistering device with live sessions",
				zap.Int("device", i),
				zap.Int("sessions", live),
			)
		}

		b.alloc.Revoke(b.base + identity.ID(i))
	}

	b.alloc.Release(b.base, n)

	b.devices = nil

	if b.metrics != nil {
		b.metrics.SetDeviceCount(0)
	}

	b.log.Info("bank stopped", zap.Int("devices", n))
}
