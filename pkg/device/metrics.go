package device

import "time"

// MetricRegister tracks metrics of device operations.
type MetricRegister interface {
	IncOpenCount()
	IncBusyCount()

	IncOpenSessions()
	DecOpenSessions()

	IncTransferFault()

	AddReadDuration(d time.Duration)
	AddWriteDuration(d time.Duration)

	AddReadSize(sz int)
	AddWriteSize(sz int)
}

func elapsed(addFunc func(d time.Duration)) func() {
	t := time.Now()

	return func() {
		addFunc(time.Since(t))
	}
}
