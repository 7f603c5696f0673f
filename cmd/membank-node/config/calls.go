package config

import (
	"strings"
)

// Sub returns a subsection of the Config by name.
func (x *Config) Sub(name string) *Config {
	// copy path in order to prevent child from
	// overwriting parent's and sibling's paths
	path := make([]string, len(x.path), len(x.path)+1)
	copy(path, x.path)

	var defaultPath []string
	if x.defaultPath != nil {
		defaultPath = make([]string, len(x.defaultPath), len(x.defaultPath)+1)
		copy(defaultPath, x.defaultPath)
		defaultPath = append(defaultPath, name)
	}

	return &Config{
		v:           x.v,
		path:        append(path, name),
		defaultPath: defaultPath,
	}
}

// Value returns the configuration value by name.
//
// Result can be casted to a particular type
// via corresponding function (e.g. StringSafe).
// Note: casting via Go `.()` operator is not
// recommended.
//
// If the value is missing on the config path and a default
// path is set via SetDefault, the value is looked up on the
// default path.
func (x *Config) Value(name string) any {
	value := x.v.Get(strings.Join(append(x.path, name), separator))
	if value != nil || x.defaultPath == nil {
		return value
	}

	return x.v.Get(strings.Join(append(x.defaultPath, name), separator))
}

// SetDefault sets the config tree the missing values are
// looked up in. Defaults propagate to subsections.
func (x *Config) SetDefault(from *Config) {
	x.defaultPath = make([]string, len(from.path))
	copy(x.defaultPath, from.path)
}
