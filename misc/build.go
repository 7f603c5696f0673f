// Package misc carries build-time application metadata.
package misc

// These variables are set at build time via -ldflags.
var (
	// Build is an application build time.
	Build = "now"

	// Version is an application version.
	Version = "dev"

	// Debug is an application debug mode flag.
	Debug = "false"
)
