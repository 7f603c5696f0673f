package bank

import "github.com/membank/membank/pkg/device"

// MetricRegister tracks metrics of the bank and its devices.
type MetricRegister interface {
	device.MetricRegister

	SetDeviceCount(n int)
	SetDeviceCapacity(capacity int64)
}
