package device

import "errors"

// ErrBusy is returned on an attempt to open a device that already
// serves a session under the exclusive policy.
var ErrBusy = errors.New("device is busy")

// ErrClosed is returned on any operation on a released session.
var ErrClosed = errors.New("session is closed")

// ErrInvalidSeek is returned when a seek addresses a position outside
// the device bounds or uses an unknown whence.
var ErrInvalidSeek = errors.New("invalid seek")
