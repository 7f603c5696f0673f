package main

import (
	"context"

	pprofconfig "github.com/membank/membank/cmd/membank-node/config/pprof"
	httputil "github.com/membank/membank/pkg/util/http"
	"go.uber.org/zap"
)

func initProfiler(c *cfg) {
	if !pprofconfig.Enabled(c.appCfg) {
		return
	}

	var prm httputil.Prm

	prm.Address = pprofconfig.Address(c.appCfg)
	prm.Handler = httputil.Handler()

	srv := httputil.New(prm,
		httputil.WithShutdownTimeout(
			pprofconfig.ShutdownTimeout(c.appCfg),
		),
	)

	c.workers = append(c.workers, newWorkerFromFunc(func(context.Context) {
		fatalOnErr(srv.Serve())
	}))

	c.closers = append(c.closers, func() {
		c.log.Debug("shutting down profiling service")

		err := srv.Shutdown()
		if err != nil {
			c.log.Debug("could not shutdown pprof server",
				zap.String("error", err.Error()),
			)
		}

		c.log.Debug("profiling service has been stopped")
	})
}
