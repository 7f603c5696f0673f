package device

import (
	"fmt"

	"go.uber.org/zap"
)

// Open admits a new session on the device and returns it. The session
// cursor starts at position zero.
//
// Under OpenExclusive the store is wiped on each admission, so every
// session observes zeroed content. Under OpenShared the content is
// retained and shared between sessions.
//
// Returns ErrBusy if the device serves a session already and the
// policy is OpenExclusive.
func (d *Device) Open() (*Session, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.policy == OpenExclusive {
		if d.sessions.Load() > 0 {
			if d.metrics != nil {
				d.metrics.IncBusyCount()
			}

			return nil, fmt.Errorf("open device %d: %w", d.index, ErrBusy)
		}

		d.store.Wipe()
	}

	d.sessions.Inc()

	if d.metrics != nil {
		d.metrics.IncOpenCount()
		d.metrics.IncOpenSessions()
	}

	d.log.Debug("session opened",
		zap.Int("device", d.index),
		zap.Int32("sessions", d.sessions.Load()),
	)

	return &Session{dev: d}, nil
}
