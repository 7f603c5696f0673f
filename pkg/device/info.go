package device

// Info groups the information about the Device.
type Info struct {
	// Index is the device position in its bank.
	Index int

	// Capacity is the device store capacity in bytes.
	Capacity int64

	// Policy is the session admission policy.
	Policy OpenPolicy

	// Sessions is the number of currently open sessions.
	Sessions int
}

// DumpInfo returns information about the Device.
func (d *Device) DumpInfo() Info {
	return Info{
		Index:    d.index,
		Capacity: d.capacity,
		Policy:   d.policy,
		Sessions: d.Sessions(),
	}
}
