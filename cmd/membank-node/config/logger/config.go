package loggerconfig

import (
	"github.com/membank/membank/cmd/membank-node/config"
)

const (
	subsection = "logger"

	// LevelDefault is a default logger level.
	LevelDefault = "info"

	// FormatDefault is a default logger encoding.
	FormatDefault = "json"
)

// Level returns the value of "level" config parameter
// from "logger" section.
//
// Returns LevelDefault if the value is not a non-empty string.
func Level(c *config.Config) string {
	v := config.StringSafe(c.Sub(subsection), "level")
	if v != "" {
		return v
	}

	return LevelDefault
}

// Format returns the value of "format" config parameter
// from "logger" section.
//
// Returns FormatDefault if the value is not a non-empty string.
func Format(c *config.Config) string {
	v := config.StringSafe(c.Sub(subsection), "format")
	if v != "" {
		return v
	}

	return FormatDefault
}

// SamplingInitial returns the value of "sampling.initial" config
// parameter from "logger" section.
//
// Returns 0, meaning disabled sampling, if the value is not a positive
// number.
func SamplingInitial(c *config.Config) int {
	v := config.IntSafe(c.Sub(subsection).Sub("sampling"), "initial")
	if v > 0 {
		return int(v)
	}

	return 0
}

// SamplingThereafter returns the value of "sampling.thereafter" config
// parameter from "logger" section.
//
// Returns 0, meaning disabled sampling, if the value is not a positive
// number.
func SamplingThereafter(c *config.Config) int {
	v := config.IntSafe(c.Sub(subsection).Sub("sampling"), "thereafter")
	if v > 0 {
		return int(v)
	}

	return 0
}
