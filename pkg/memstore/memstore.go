// Package memstore provides the fixed-capacity in-memory byte store
// backing a single membank device.
package memstore

import (
	"errors"
	"fmt"
	"io"
)

// MaxCapacity is the upper bound of a single store allocation, in bytes.
const MaxCapacity = 1 << 30

// Store is a contiguous byte region of fixed capacity with bounded
// random access.
//
// Store methods are not safe for concurrent use. Callers serialize
// access externally.
type Store struct {
	buf []byte
}

// New allocates a store of the given capacity in bytes.
//
// Returns ErrInvalidCapacity if capacity is not in (0, MaxCapacity].
func New(capacity int64) (*Store, error) {
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	return &Store{
		buf: make([]byte, capacity),
	}, nil
}

// Capacity returns the store capacity in bytes.
func (s *Store) Capacity() int64 {
	return int64(len(s.buf))
}

// room returns the number of bytes addressable from off to the end of
// the store.
func (s *Store) room(off int64) int64 {
	if off < 0 || off >= int64(len(s.buf)) {
		return 0
	}

	return int64(len(s.buf)) - off
}

// ReadAt copies up to len(p) bytes from the store starting at off and
// returns the number of bytes copied. The count is clamped to the
// bytes remaining before the end of the store; at the end it is zero.
func (s *Store) ReadAt(p []byte, off int64) int {
	r := s.room(off)
	if r == 0 || len(p) == 0 {
		return 0
	}

	n := int64(len(p))
	if n > r {
		n = r
	}

	return copy(p, s.buf[off:off+n])
}

// WriteAt copies up to len(p) bytes from p into the store starting at
// off and returns the number of bytes copied. The count is clamped to
// the bytes remaining before the end of the store.
//
// Returns ErrNoSpace if p is not empty and no room remains at off.
// An empty p is accepted and copies nothing.
func (s *Store) WriteAt(p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	r := s.room(off)
	if r == 0 {
		return 0, fmt.Errorf("write at offset %d: %w", off, ErrNoSpace)
	}

	n := int64(len(p))
	if n > r {
		n = r
	}

	return copy(s.buf[off:], p[:n]), nil
}

// TransferIn reads up to limit bytes from src and copies them into the
// store starting at off. The count is clamped like in WriteAt. Bytes
// are staged before the copy: if src fails, the store is left
// unchanged and the source error is returned wrapped in ErrTransfer.
//
// A source that ends before supplying a single byte produces (0, nil).
// Returns ErrNoSpace if limit is positive and no room remains at off.
func (s *Store) TransferIn(src io.Reader, off int64, limit int) (int, error) {
	if limit <= 0 {
		return 0, nil
	}

	r := s.room(off)
	if r == 0 {
		return 0, fmt.Errorf("transfer to offset %d: %w", off, ErrNoSpace)
	}

	n := int64(limit)
	if n > r {
		n = r
	}

	staged := make([]byte, n)

	read, err := io.ReadFull(src, staged)
	switch {
	case err == nil, errors.Is(err, io.ErrUnexpectedEOF):
	case errors.Is(err, io.EOF):
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	return copy(s.buf[off:], staged[:read]), nil
}

// TransferOut writes up to limit bytes from the store starting at off
// into dst. The count is clamped like in ReadAt; at the end of the
// store nothing is written and (0, nil) is returned.
//
// If dst fails or accepts a short count, the sink error is returned
// wrapped in ErrTransfer and the reported count is zero.
func (s *Store) TransferOut(dst io.Writer, off int64, limit int) (int, error) {
	if limit <= 0 {
		return 0, nil
	}

	r := s.room(off)
	if r == 0 {
		return 0, nil
	}

	n := int64(limit)
	if n > r {
		n = r
	}

	written, err := dst.Write(s.buf[off : off+n])
	if err == nil && written < int(n) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	return written, nil
}

// Wipe zeroes the whole store content.
func (s *Store) Wipe() {
	for i := range s.buf {
		s.buf[i] = 0
	}
}
