package httputil

import "time"

// DefaultShutdownTimeout is the Server shutdown timeout used when the
// option is not set explicitly.
const DefaultShutdownTimeout = 15 * time.Second

// Option sets an optional parameter of Server.
type Option func(*cfg)

type cfg struct {
	shutdownTimeout time.Duration
}

func defaultCfg() *cfg {
	return &cfg{
		shutdownTimeout: DefaultShutdownTimeout,
	}
}

// WithShutdownTimeout returns an option to set the graceful shutdown
// timeout of the internal HTTP server.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(c *cfg) {
		c.shutdownTimeout = timeout
	}
}
