package main

import (
	"flag"
	"log"

	"github.com/membank/membank/pkg/util/grace"
)

func fatalOnErr(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	configFile := flag.String("config", "", "path to config")
	flag.Parse()

	c := initCfg(*configFile)

	initApp(c)

	bootUp(c)

	wait(c)

	shutdown(c)
}

func initApp(c *cfg) {
	c.ctx = grace.NewGracefulContext(c.log)

	initMetrics(c)
	initProfiler(c)
	initBank(c)
}

func bootUp(c *cfg) {
	startBank(c)
	startWorkers(c)
}

func wait(c *cfg) {
	c.log.Info("application started")

	<-c.ctx.Done()
}

func shutdown(c *cfg) {
	for _, closer := range c.closers {
		closer()
	}

	c.wg.Wait()

	c.log.Info("application stopped")
}
