package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const deviceSubsystem = "device"

type deviceMetrics struct {
	readDuration  prometheus.Histogram
	writeDuration prometheus.Histogram

	readPayload    prometheus.Counter
	writtenPayload prometheus.Counter

	opens          prometheus.Counter
	busyRejections prometheus.Counter
	transferFaults prometheus.Counter

	openSessions prometheus.Gauge
}

func newDeviceMetrics() deviceMetrics {
	var (
		readDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: deviceSubsystem,
			Name:      "read_time",
			Help:      "Device 'read' operations handling time",
		})

		writeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: deviceSubsystem,
			Name:      "write_time",
			Help:      "Device 'write' operations handling time",
		})

		readPayload = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: deviceSubsystem,
			Name:      "read_payload_bytes",
			Help:      "Number of bytes read from devices",
		})

		writtenPayload = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: deviceSubsystem,
			Name:      "written_payload_bytes",
			Help:      "Number of bytes written to devices",
		})

		opens = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: deviceSubsystem,
			Name:      "session_opens",
			Help:      "Number of admitted device sessions",
		})

		busyRejections = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: deviceSubsystem,
			Name:      "session_busy_rejections",
			Help:      "Number of sessions rejected on busy devices",
		})

		transferFaults = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: deviceSubsystem,
			Name:      "transfer_faults",
			Help:      "Number of data transfers aborted by a source or sink failure",
		})

		openSessions = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: deviceSubsystem,
			Name:      "open_sessions",
			Help:      "Number of currently open device sessions",
		})
	)

	return deviceMetrics{
		readDuration:   readDuration,
		writeDuration:  writeDuration,
		readPayload:    readPayload,
		writtenPayload: writtenPayload,
		opens:          opens,
		busyRejections: busyRejections,
		transferFaults: transferFaults,
		openSessions:   openSessions,
	}
}

func (m deviceMetrics) register() {
	prometheus.MustRegister(m.readDuration)
	prometheus.MustRegister(m.writeDuration)
	prometheus.MustRegister(m.readPayload)
	prometheus.MustRegister(m.writtenPayload)
	prometheus.MustRegister(m.opens)
	prometheus.MustRegister(m.busyRejections)
	prometheus.MustRegister(m.transferFaults)
	prometheus.MustRegister(m.openSessions)
}

// AddReadDuration adds a read operation handling time to the histogram.
func (m deviceMetrics) AddReadDuration(d time.Duration) {
	m.readDuration.Observe(d.Seconds())
}

// AddWriteDuration adds a write operation handling time to the
// histogram.
func (m deviceMetrics) AddWriteDuration(d time.Duration) {
	m.writeDuration.Observe(d.Seconds())
}

// AddReadSize adds a read payload size to the counter.
func (m deviceMetrics) AddReadSize(sz int) {
	m.readPayload.Add(float64(sz))
}

// AddWriteSize adds a written payload size to the counter.
func (m deviceMetrics) AddWriteSize(sz int) {
	m.writtenPayload.Add(float64(sz))
}

// IncOpenCount increments the admitted session counter.
func (m deviceMetrics) IncOpenCount() {
	m.opens.Inc()
}

// IncBusyCount increments the busy rejection counter.
func (m deviceMetrics) IncBusyCount() {
	m.busyRejections.Inc()
}

// IncTransferFault increments the aborted transfer counter.
func (m deviceMetrics) IncTransferFault() {
	m.transferFaults.Inc()
}

// IncOpenSessions increments the open session gauge.
func (m deviceMetrics) IncOpenSessions() {
	m.openSessions.Inc()
}

// DecOpenSessions decrements the open session gauge.
func (m deviceMetrics) DecOpenSessions() {
	m.openSessions.Dec()
}
