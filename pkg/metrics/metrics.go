// Package metrics exports internal instrumentation of the membank node
// in Prometheus format.
package metrics

const namespace = "membank"

// NodeMetrics is the metrics register of the membank node. It
// implements bank.MetricRegister.
type NodeMetrics struct {
	bankMetrics
	deviceMetrics
}

// NewNodeMetrics builds the node collectors and registers them in the
// default Prometheus registry.
func NewNodeMetrics(version string) *NodeMetrics {
	bank := newBankMetrics()
	bank.register()

	device := newDeviceMetrics()
	device.register()

	registerVersionMetric(namespace, version)

	return &NodeMetrics{
		bankMetrics:   bank,
		deviceMetrics: device,
	}
}
