package loggerconfig_test

import (
	"testing"

	"github.com/membank/membank/cmd/membank-node/config"
	loggerconfig "github.com/membank/membank/cmd/membank-node/config/logger"
	configtest "github.com/membank/membank/cmd/membank-node/config/test"
	"github.com/stretchr/testify/require"
)

func TestLoggerSection(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		emptyConfig := configtest.EmptyConfig()

		require.Equal(t, loggerconfig.LevelDefault, loggerconfig.Level(emptyConfig))
		require.Equal(t, loggerconfig.FormatDefault, loggerconfig.Format(emptyConfig))
		require.Zero(t, loggerconfig.SamplingInitial(emptyConfig))
		require.Zero(t, loggerconfig.SamplingThereafter(emptyConfig))
	})

	const path = "../../../../config/example/node"

	var fileConfigTest = func(c *config.Config) {
		require.Equal(t, "debug", loggerconfig.Level(c))
		require.Equal(t, "console", loggerconfig.Format(c))
		require.Equal(t, 100, loggerconfig.SamplingInitial(c))
		require.Equal(t, 200, loggerconfig.SamplingThereafter(c))
	}

	configtest.ForEachFileType(path, fileConfigTest)
}
