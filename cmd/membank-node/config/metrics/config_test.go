package metricsconfig_test

import (
	"testing"
	"time"

	"github.com/membank/membank/cmd/membank-node/config"
	metricsconfig "github.com/membank/membank/cmd/membank-node/config/metrics"
	configtest "github.com/membank/membank/cmd/membank-node/config/test"
	"github.com/stretchr/testify/require"
)

func TestMetricsSection(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		emptyConfig := configtest.EmptyConfig()

		require.False(t, metricsconfig.Enabled(emptyConfig))
		require.Equal(t, metricsconfig.ShutdownTimeoutDefault, metricsconfig.ShutdownTimeout(emptyConfig))
		require.Equal(t, metricsconfig.AddressDefault, metricsconfig.Address(emptyConfig))
	})

	const path = "../../../../config/example/node"

	var fileConfigTest = func(c *config.Config) {
		require.True(t, metricsconfig.Enabled(c))
		require.Equal(t, 15*time.Second, metricsconfig.ShutdownTimeout(c))
		require.Equal(t, "localhost:9090", metricsconfig.Address(c))
	}

	configtest.ForEachFileType(path, fileConfigTest)
}
