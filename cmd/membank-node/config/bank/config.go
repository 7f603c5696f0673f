package bankconfig

import (
	"fmt"
	"strings"

	"github.com/membank/membank/cmd/membank-node/config"
	"github.com/membank/membank/pkg/device"
)

const (
	subsection = "bank"

	// DevicesDefault is a default number of devices served by the bank.
	DevicesDefault = 4

	// CapacityDefault is a default per-device capacity in bytes.
	CapacityDefault = 4 * 1024
)

// Devices returns the value of "devices" config parameter
// from "bank" section.
//
// Returns DevicesDefault if the value is not a positive number.
func Devices(c *config.Config) int {
	v := config.IntSafe(c.Sub(subsection), "devices")
	if v > 0 {
		return int(v)
	}

	return DevicesDefault
}

// Capacity returns the value of "capacity" config parameter
// from "bank" section. The value may carry a size suffix,
// e.g. "4kb" (see config.SizeInBytesSafe).
//
// Returns CapacityDefault if the value is not a positive number.
func Capacity(c *config.Config) int64 {
	v := config.SizeInBytesSafe(c.Sub(subsection), "capacity")
	if v > 0 {
		return int64(v)
	}

	return CapacityDefault
}

// BaseIdentity returns the value of "base_identity" config parameter
// from "bank" section.
//
// Returns 0 if the value is missing or invalid.
func BaseIdentity(c *config.Config) uint64 {
	return config.Uint64Safe(c.Sub(subsection), "base_identity")
}

// OpenPolicy returns the value of "open_policy" config parameter
// from "bank" section. Missing value and "exclusive" map to
// device.OpenExclusive, "shared" maps to device.OpenShared.
//
// Panics if the value is some other string.
func OpenPolicy(c *config.Config) device.OpenPolicy {
	v := config.StringSafe(c.Sub(subsection), "open_policy")

	switch strings.ToLower(v) {
	case "", "exclusive":
		return device.OpenExclusive
	case "shared":
		return device.OpenShared
	default:
		panic(fmt.Errorf("unknown open policy: %s", v))
	}
}
