package main

import (
	"context"

	metricsconfig "github.com/membank/membank/cmd/membank-node/config/metrics"
	"github.com/membank/membank/misc"
	"github.com/membank/membank/pkg/metrics"
	httputil "github.com/membank/membank/pkg/util/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func initMetrics(c *cfg) {
	if !metricsconfig.Enabled(c.appCfg) {
		return
	}

	c.metricsRegister = metrics.NewNodeMetrics(misc.Version)

	var prm httputil.Prm

	prm.Address = metricsconfig.Address(c.appCfg)
	prm.Handler = promhttp.Handler()

	srv := httputil.New(prm,
		httputil.WithShutdownTimeout(
			metricsconfig.ShutdownTimeout(c.appCfg),
		),
	)

	c.workers = append(c.workers, newWorkerFromFunc(func(context.Context) {
		fatalOnErr(srv.Serve())
	}))

	c.closers = append(c.closers, func() {
		c.log.Debug("shutting down metrics service")

		err := srv.Shutdown()
		if err != nil {
			c.log.Debug("could not shutdown metrics server",
				zap.String("error", err.Error()),
			)
		}

		c.log.Debug("metrics service has been stopped")
	})
}
