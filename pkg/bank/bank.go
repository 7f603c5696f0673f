// Package bank implements the membank device registry: a fixed set of
// independently locked memory devices published under contiguous
// external identities.
package bank

import (
	"sync"

	"github.com/membank/membank/pkg/device"
	"github.com/membank/membank/pkg/identity"
	"go.uber.org/zap"
)

// Bank represents a registry of memory devices dispatching sessions by
// external identity.
//
// Bank is safe for concurrent use. Traffic of different devices never
// contends on a bank-wide lock: Open takes a read lock to dispatch,
// and every subsequent session operation locks the target device
// alone.
type Bank struct {
	*cfg

	mtx sync.RWMutex

	base identity.ID

	devices []*device.Device
}

// Option represents Bank's constructor option.
type Option func(*cfg)

type cfg struct {
	alloc identity.Allocator

	policy device.OpenPolicy

	log *zap.Logger

	metrics MetricRegister
}

func defaultCfg() *cfg {
	return &cfg{
		alloc:  identity.NewStatic(),
		policy: device.OpenExclusive,
		log:    zap.L(),
	}
}

// New creates and returns a new Bank instance built from the given
// options. The returned bank serves no devices until Start.
func New(opts ...Option) *Bank {
	c := defaultCfg()

	for i := range opts {
		opts[i](c)
	}

	return &Bank{
		cfg: c,
	}
}

// WithAllocator returns an option to set the identity allocator the
// bank publishes its devices with.
func WithAllocator(a identity.Allocator) Option {
	return func(c *cfg) {
		c.alloc = a
	}
}

// WithOpenPolicy returns an option to set the session admission policy
// of every bank device.
func WithOpenPolicy(p device.OpenPolicy) Option {
	return func(c *cfg) {
		c.policy = p
	}
}

// WithLogger returns an option to specify the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *cfg) {
		c.log = l
	}
}

// WithMetrics returns an option to specify the metrics register.
func WithMetrics(m MetricRegister) Option {
	return func(c *cfg) {
		c.metrics = m
	}
}
