// Package device implements a single memory device of a bank: a
// fixed-capacity byte store accessed through sessions with private
// cursors.
package device

import (
	"fmt"
	"sync"

	"github.com/membank/membank/pkg/memstore"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// DefaultCapacity is the device store capacity used when the option is
// not set explicitly.
const DefaultCapacity = 4 * 1024

// Device represents a single memory device of a bank.
//
// Device is safe for concurrent use: every session operation locks the
// device mutex for its whole duration.
type Device struct {
	*cfg

	mtx sync.Mutex

	store *memstore.Store

	sessions *atomic.Int32
}

// Option represents Device's constructor option.
type Option func(*cfg)

type cfg struct {
	index int

	capacity int64

	policy OpenPolicy

	log *zap.Logger

	metrics MetricRegister
}

func defaultCfg() *cfg {
	return &cfg{
		capacity: DefaultCapacity,
		policy:   OpenExclusive,
		log:      zap.L(),
	}
}

// New creates and returns a new Device instance built from the given
// options.
//
// Returns an error wrapping memstore.ErrInvalidCapacity if the
// configured capacity is out of bounds.
func New(opts ...Option) (*Device, error) {
	c := defaultCfg()

	for i := range opts {
		opts[i](c)
	}

	st, err := memstore.New(c.capacity)
	if err != nil {
		return nil, fmt.Errorf("could not allocate device store: %w", err)
	}

	return &Device{
		cfg:      c,
		store:    st,
		sessions: atomic.NewInt32(0),
	}, nil
}

// Index returns the device position in its bank.
func (d *Device) Index() int {
	return d.index
}

// Capacity returns the device store capacity in bytes.
func (d *Device) Capacity() int64 {
	return d.capacity
}

// Sessions returns the number of sessions currently open on the
// device. The counter is read without taking the device mutex.
func (d *Device) Sessions() int {
	return int(d.sessions.Load())
}

// WithIndex returns an option to set the device position in its bank.
func WithIndex(i int) Option {
	return func(c *cfg) {
		c.index = i
	}
}

// WithCapacity returns an option to set the device store capacity in
// bytes.
func WithCapacity(capacity int64) Option {
	return func(c *cfg) {
		c.capacity = capacity
	}
}

// WithOpenPolicy returns an option to set the session admission
// policy.
func WithOpenPolicy(p OpenPolicy) Option {
	return func(c *cfg) {
		c.policy = p
	}
}

// WithLogger returns an option to specify the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *cfg) {
		c.log = l.With(zap.String("component", "Device"))
	}
}

// WithMetrics returns an option to specify the metrics register.
func WithMetrics(m MetricRegister) Option {
	return func(c *cfg) {
		c.metrics = m
	}
}
