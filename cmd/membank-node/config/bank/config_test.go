package bankconfig_test

import (
	"testing"

	"github.com/membank/membank/cmd/membank-node/config"
	bankconfig "github.com/membank/membank/cmd/membank-node/config/bank"
	configtest "github.com/membank/membank/cmd/membank-node/config/test"
	"github.com/membank/membank/pkg/device"
	"github.com/stretchr/testify/require"
)

func TestBankSection(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		emptyConfig := configtest.EmptyConfig()

		require.Equal(t, bankconfig.DevicesDefault, bankconfig.Devices(emptyConfig))
		require.EqualValues(t, bankconfig.CapacityDefault, bankconfig.Capacity(emptyConfig))
		require.Zero(t, bankconfig.BaseIdentity(emptyConfig))
		require.Equal(t, device.OpenExclusive, bankconfig.OpenPolicy(emptyConfig))
	})

	const path = "../../../../config/example/node"

	var fileConfigTest = func(c *config.Config) {
		require.Equal(t, 8, bankconfig.Devices(c))
		require.EqualValues(t, 64*1024, bankconfig.Capacity(c))
		require.EqualValues(t, 100, bankconfig.BaseIdentity(c))
		require.Equal(t, device.OpenShared, bankconfig.OpenPolicy(c))
	}

	configtest.ForEachFileType(path, fileConfigTest)

	t.Run("unknown open policy", func(t *testing.T) {
		t.Setenv("MEMBANK_BANK_OPEN_POLICY", "round-robin")

		require.Panics(t, func() {
			bankconfig.OpenPolicy(configtest.EmptyConfig())
		})
	})
}
