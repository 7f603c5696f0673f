package metrics

import "github.com/prometheus/client_golang/prometheus"

const bankSubsystem = "bank"

type bankMetrics struct {
	deviceCount    prometheus.Gauge
	deviceCapacity prometheus.Gauge
}

func newBankMetrics() bankMetrics {
	return bankMetrics{
		deviceCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: bankSubsystem,
			Name:      "device_count",
			Help:      "Number of devices published by the bank",
		}),
		deviceCapacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: bankSubsystem,
			Name:      "device_capacity_bytes",
			Help:      "Capacity of a single bank device",
		}),
	}
}

func (m bankMetrics) register() {
	prometheus.MustRegister(m.deviceCount)
	prometheus.MustRegister(m.deviceCapacity)
}

// SetDeviceCount updates the published device count metric.
func (m bankMetrics) SetDeviceCount(n int) {
	m.deviceCount.Set(float64(n))
}

// SetDeviceCapacity updates the device capacity metric.
func (m bankMetrics) SetDeviceCapacity(capacity int64) {
	m.deviceCapacity.Set(float64(capacity))
}
