package main

import (
	"github.com/membank/membank/pkg/bank"
	"github.com/membank/membank/pkg/identity"
	"go.uber.org/zap"
)

func initBank(c *cfg) {
	opts := []bank.Option{
		bank.WithLogger(c.log),
		bank.WithOpenPolicy(c.cfgBank.policy),
		bank.WithAllocator(identity.NewStatic(
			identity.WithBase(identity.ID(c.cfgBank.baseIdentity)),
			identity.WithLogger(c.log),
		)),
	}

	if c.metricsRegister != nil {
		opts = append(opts, bank.WithMetrics(c.metricsRegister))
	}

	c.cfgBank.bank = bank.New(opts...)

	c.closers = append(c.closers, func() {
		c.cfgBank.bank.Stop()
	})
}

func startBank(c *cfg) {
	err := c.cfgBank.bank.Start(c.cfgBank.devices, c.cfgBank.capacity)
	fatalOnErr(err)

	c.log.Info("memory bank is online",
		zap.Int("devices", c.cfgBank.devices),
		zap.Int64("device_capacity", c.cfgBank.capacity),
	)
}
