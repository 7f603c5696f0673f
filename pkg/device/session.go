package device

import (
	"errors"
	"fmt"
	"io"

	"github.com/membank/membank/pkg/memstore"
	"go.uber.org/zap"
)

// Session is an open handle on a Device with a private cursor.
//
// Session implements io.Reader, io.Writer, io.Seeker and io.Closer. A
// released session fails every operation with ErrClosed.
//
// Sessions of one device may be used from different goroutines: the
// device mutex serializes every operation.
type Session struct {
	dev *Device

	pos int64

	closed bool
}

// Write copies bytes from p into the device store at the session
// cursor and advances the cursor by the number of bytes copied. The
// count is clamped to the room remaining before the end of the store,
// so it may be less than len(p).
//
// Returns memstore.ErrNoSpace if p is not empty and the cursor is at
// the end of the store. An empty p is accepted and copies nothing.
// Returns ErrClosed on a released session.
func (s *Session) Write(p []byte) (int, error) {
	d := s.dev

	d.mtx.Lock()
	defer d.mtx.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	if d.metrics != nil {
		defer elapsed(d.metrics.AddWriteDuration)()
	}

	n, err := d.store.WriteAt(p, s.pos)
	if err != nil {
		return 0, err
	}

	s.pos += int64(n)

	if d.metrics != nil {
		d.metrics.AddWriteSize(n)
	}

	return n, nil
}

// Read copies bytes from the device store at the session cursor into p
// and advances the cursor by the number of bytes copied. The count is
// clamped to the bytes remaining before the end of the store.
//
// Returns io.EOF if p is not empty and the cursor is at the end of the
// store. Returns ErrClosed on a released session.
func (s *Session) Read(p []byte) (int, error) {
	d := s.dev

	d.mtx.Lock()
	defer d.mtx.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	if len(p) == 0 {
		return 0, nil
	}

	if d.metrics != nil {
		defer elapsed(d.metrics.AddReadDuration)()
	}

	n := d.store.ReadAt(p, s.pos)
	if n == 0 {
		return 0, io.EOF
	}

	s.pos += int64(n)

	if d.metrics != nil {
		d.metrics.AddReadSize(n)
	}

	return n, nil
}

// Seek moves the session cursor to the position defined by offset and
// whence and returns the new cursor. Unlike the io.Seeker contract,
// positions past the end of the store are rejected: the cursor always
// stays within [0, capacity].
//
// Returns ErrInvalidSeek and keeps the cursor unchanged if the target
// position is out of bounds or whence is unknown. Returns ErrClosed on
// a released session.
func (s *Session) Seek(offset int64, whence int) (int64, error) {
	d := s.dev

	d.mtx.Lock()
	defer d.mtx.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	var abs int64

	switch whence {
	default:
		return 0, fmt.Errorf("%w: unknown whence %d", ErrInvalidSeek, whence)
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.pos + offset
	case io.SeekEnd:
		abs = d.store.Capacity() + offset
	}

	if abs < 0 || abs > d.store.Capacity() {
		return 0, fmt.Errorf("%w: position %d is out of [0, %d]",
			ErrInvalidSeek, abs, d.store.Capacity())
	}

	s.pos = abs

	return abs, nil
}

// WriteFrom transfers up to limit bytes from src into the device store
// at the session cursor and advances the cursor by the number of bytes
// committed. Source bytes are staged before the commit: if src fails,
// the cursor and the store stay untouched and the error is returned
// wrapped in memstore.ErrTransfer.
//
// Returns memstore.ErrNoSpace if limit is positive and the cursor is
// at the end of the store. A non-positive limit transfers nothing.
// Returns ErrClosed on a released session.
func (s *Session) WriteFrom(src io.Reader, limit int) (int, error) {
	d := s.dev

	d.mtx.Lock()
	defer d.mtx.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	if d.metrics != nil {
		defer elapsed(d.metrics.AddWriteDuration)()
	}

	n, err := d.store.TransferIn(src, s.pos, limit)
	if err != nil {
		if d.metrics != nil && errors.Is(err, memstore.ErrTransfer) {
			d.metrics.IncTransferFault()
		}

		return 0, err
	}

	s.pos += int64(n)

	if d.metrics != nil {
		d.metrics.AddWriteSize(n)
	}

	return n, nil
}

// ReadTo transfers up to limit bytes from the device store at the
// session cursor into dst and advances the cursor by the number of
// bytes written out. If dst fails mid-transfer, the cursor stays
// untouched and the error is returned wrapped in memstore.ErrTransfer.
//
// At the end of the store nothing is transferred and (0, nil) is
// returned. Returns ErrClosed on a released session.
func (s *Session) ReadTo(dst io.Writer, limit int) (int, error) {
	d := s.dev

	d.mtx.Lock()
	defer d.mtx.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	if d.metrics != nil {
		defer elapsed(d.metrics.AddReadDuration)()
	}

	n, err := d.store.TransferOut(dst, s.pos, limit)
	if err != nil {
		if d.metrics != nil && errors.Is(err, memstore.ErrTransfer) {
			d.metrics.IncTransferFault()
		}

		return 0, err
	}

	s.pos += int64(n)

	if d.metrics != nil {
		d.metrics.AddReadSize(n)
	}

	return n, nil
}

// Position returns the current session cursor.
func (s *Session) Position() int64 {
	s.dev.mtx.Lock()
	defer s.dev.mtx.Unlock()

	return s.pos
}

// Close releases the session. All operations on a released session
// fail with ErrClosed, including repeated Close.
func (s *Session) Close() error {
	d := s.dev

	d.mtx.Lock()
	defer d.mtx.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.closed = true
	d.sessions.Dec()

	if d.metrics != nil {
		d.metrics.DecOpenSessions()
	}

	d.log.Debug("session released",
		zap.Int("device", d.index),
		zap.Int32("sessions", d.sessions.Load()),
	)

	return nil
}
