package internal

import "strings"

// EnvPrefix is a prefix of ENV variables related
// to membank node configuration.
const EnvPrefix = "membank"

// EnvSeparator is a section separator in ENV variables.
const EnvSeparator = "_"

// Env returns the ENV variable name of the configuration
// value by its path in the config tree.
func Env(path ...string) string {
	return strings.ToUpper(
		strings.Join(append([]string{EnvPrefix}, path...), EnvSeparator),
	)
}
