package main

import (
	"context"
	"sync"

	"github.com/membank/membank/cmd/membank-node/config"
	bankconfig "github.com/membank/membank/cmd/membank-node/config/bank"
	loggerconfig "github.com/membank/membank/cmd/membank-node/config/logger"
	"github.com/membank/membank/misc"
	"github.com/membank/membank/pkg/bank"
	"github.com/membank/membank/pkg/device"
	"github.com/membank/membank/pkg/metrics"
	"github.com/membank/membank/pkg/util/logger"
	"go.uber.org/zap"
)

const appName = "membank-node"

type cfg struct {
	appCfg *config.Config

	ctx context.Context

	log *zap.Logger

	wg *sync.WaitGroup

	workers []worker

	closers []func()

	metricsRegister *metrics.NodeMetrics

	cfgBank cfgBank
}

type cfgBank struct {
	bank *bank.Bank

	devices int

	capacity int64

	baseIdentity uint64

	policy device.OpenPolicy
}

func initCfg(path string) *cfg {
	appCfg := config.New(config.Prm{}, config.WithConfigFile(path))

	var logPrm logger.Prm

	logPrm.Level = loggerconfig.Level(appCfg)
	logPrm.Format = loggerconfig.Format(appCfg)
	logPrm.SamplingInitial = loggerconfig.SamplingInitial(appCfg)
	logPrm.SamplingThereafter = loggerconfig.SamplingThereafter(appCfg)
	logPrm.AppName = appName
	logPrm.AppVersion = misc.Version

	log, err := logger.NewLogger(logPrm)
	fatalOnErr(err)

	return &cfg{
		appCfg: appCfg,
		log:    log,
		wg:     new(sync.WaitGroup),
		cfgBank: cfgBank{
			devices:      bankconfig.Devices(appCfg),
			capacity:     bankconfig.Capacity(appCfg),
			baseIdentity: bankconfig.BaseIdentity(appCfg),
			policy:       bankconfig.OpenPolicy(appCfg),
		},
	}
}
