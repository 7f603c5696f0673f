package identity

import (
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"
)

// Static is a process-local Allocator granting blocks from a fixed
// base upwards. Once every granted block is released, the allocation
// cursor returns to the base, so an idle allocator reissues the same
// identities.
//
// Static is safe for concurrent use.
type Static struct {
	*cfg

	mtx sync.Mutex

	next ID

	blocks map[ID]int

	published map[ID]struct{}
}

// Option represents Static's constructor option.
type Option func(*cfg)

type cfg struct {
	base ID

	log *zap.Logger
}

func defaultCfg() *cfg {
	return &cfg{
		log: zap.L(),
	}
}

// NewStatic creates and returns a new Static instance built from the
// given options. Without options the allocator grants identities from
// zero upwards.
func NewStatic(opts ...Option) *Static {
	c := defaultCfg()

	for i := range opts {
		opts[i](c)
	}

	return &Static{
		cfg:       c,
		next:      c.base,
		blocks:    make(map[ID]int),
		published: make(map[ID]struct{}),
	}
}

// WithBase returns an option to set the first identity the allocator
// grants.
func WithBase(base ID) Option {
	return func(c *cfg) {
		c.base = base
	}
}

// WithLogger returns an option to specify the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *cfg) {
		c.log = l.With(zap.String("component", "StaticAllocator"))
	}
}

// Allocate implements Allocator.
func (s *Static) Allocate(n int) (ID, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid identity block size %d", n)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if uint64(n) > math.MaxUint64-uint64(s.next) {
		return 0, fmt.Errorf("block of %d identities at %s: %w", n, s.next, ErrExhausted)
	}

	base := s.next
	s.next += ID(n)
	s.blocks[base] = n

	s.log.Debug("identity block allocated",
		zap.Stringer("base", base),
		zap.Int("size", n),
	)

	return base, nil
}

// Publish implements Allocator.
func (s *Static) Publish(id ID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if !s.granted(id) {
		return fmt.Errorf("identity %s is outside allocated blocks", id)
	}

	if _, ok := s.published[id]; ok {
		return fmt.Errorf("identity %s is published already", id)
	}

	s.published[id] = struct{}{}

	return nil
}

func (s *Static) granted(id ID) bool {
	for base, n := range s.blocks {
		if id >= base && uint64(id-base) < uint64(n) {
			return true
		}
	}

	return false
}

// Revoke implements Allocator.
func (s *Static) Revoke(id ID) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.published[id]; !ok {
		s.log.Warn("revoking unpublished identity",
			zap.Stringer("identity", id),
		)

		return
	}

	delete(s.published, id)
}

// Release implements Allocator.
func (s *Static) Release(base ID, n int) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.blocks[base] != n {
		s.log.Warn("releasing unknown identity block",
			zap.Stringer("base", base),
			zap.Int("size", n),
		)

		return
	}

	delete(s.blocks, base)

	if len(s.blocks) == 0 {
		s.next = s.base
	}
}
