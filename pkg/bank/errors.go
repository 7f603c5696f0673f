package bank

import "errors"

// ErrStarted is returned on an attempt to start a bank that serves
// devices already.
var ErrStarted = errors.New("bank is started already")

// ErrNotStarted is returned on an attempt to open a device of a bank
// that serves no devices.
var ErrNotStarted = errors.New("bank is not started")

// ErrDeviceNotFound is returned when the identity passed to Open is
// outside the bank's published block.
var ErrDeviceNotFound = errors.New("device not found")
