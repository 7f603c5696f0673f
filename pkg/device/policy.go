package device

// OpenPolicy represents enumeration of Device session admission
// policies.
type OpenPolicy uint32

const (
	// OpenExclusive is an OpenPolicy value for a device that admits
	// at most one session at a time and wipes the store on each
	// admission. Default device policy.
	OpenExclusive OpenPolicy = iota

	// OpenShared is an OpenPolicy value for a device that admits any
	// number of concurrent sessions and retains the store content
	// between them.
	OpenShared
)

func (p OpenPolicy) String() string {
	switch p {
	default:
		return "UNDEFINED"
	case OpenExclusive:
		return "EXCLUSIVE"
	case OpenShared:
		return "SHARED"
	}
}
