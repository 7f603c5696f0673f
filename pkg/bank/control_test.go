package bank

import (
	"testing"

	"github.com/membank/membank/internal/testutil"
	"github.com/membank/membank/pkg/device"
	"github.com/membank/membank/pkg/identity"
	"github.com/membank/membank/pkg/memstore"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBankStartStop(t *testing.T) {
	b := testNewBank(t)

	// operations before start
	_, err := b.Open(0)
	require.ErrorIs(t, err, ErrNotStarted)

	require.NoError(t, b.Start(4, 64))

	// repeated start is rejected
	require.ErrorIs(t, b.Start(4, 64), ErrStarted)

	require.Len(t, b.DumpInfo().Devices, 4)

	b.Stop()
	require.Nil(t, b.DumpInfo().Devices)

	_, err = b.Open(0)
	require.ErrorIs(t, err, ErrNotStarted)

	// stop of a stopped bank is a no-op
	b.Stop()

	// the bank may be started again
	require.NoError(t, b.Start(2, 32))
	require.Len(t, b.DumpInfo().Devices, 2)

	b.Stop()
}

func TestBankStartValidation(t *testing.T) {
	b := testNewBank(t)

	require.Error(t, b.Start(0, 64))
	require.Error(t, b.Start(-1, 64))

	require.ErrorIs(t, b.Start(4, 0), memstore.ErrInvalidCapacity)
	require.ErrorIs(t, b.Start(4, -5), memstore.ErrInvalidCapacity)
	require.ErrorIs(t, b.Start(4, memstore.MaxCapacity+1), memstore.ErrInvalidCapacity)

	// failed starts leave the bank usable
	require.NoError(t, b.Start(1, 16))
	b.Stop()
}

func TestBankStartUnwind(t *testing.T) {
	a := newTestAllocator()
	a.fail = true
	a.failPublish = 2

	b := testNewBank(t, WithAllocator(a))

	require.Error(t, b.Start(4, 16))

	// identities published before the failure are revoked in reverse
	require.Equal(t, []identity.ID{1, 0}, a.revoked)

	// the whole granted block is released
	require.Equal(t, [][2]uint64{{0, 4}}, a.released)

	// the bank stays stopped
	_, err := b.Open(0)
	require.ErrorIs(t, err, ErrNotStarted)

	// and starts normally once the allocator recovers
	a.fail = false

	require.NoError(t, b.Start(4, 16))
	b.Stop()
}

func TestBankStopLiveSessions(t *testing.T) {
	l, lb := testutil.NewBufferedLogger(t, zap.WarnLevel)

	b := New(
		WithLogger(l),
		WithOpenPolicy(device.OpenShared),
	)

	require.NoError(t, b.Start(2, 16))

	s, err := b.Open(b.DumpInfo().Base)
	require.NoError(t, err)

	b.Stop()

	lb.AssertContainsMessage(zapcore.WarnLevel, "deregistering device with live sessions")

	// the session outlives its deregistered device
	_, err = s.Write([]byte("abc"))
	require.NoError(t, err)

	require.NoError(t, s.Close())
}

func TestBankStopTeardownOrder(t *testing.T) {
	a := newTestAllocator()
	b := testNewBank(t, WithAllocator(a))

	require.NoError(t, b.Start(3, 16))

	base := b.DumpInfo().Base

	b.Stop()

	// identities are revoked in reverse construction order before the
	// block is released
	require.Equal(t, []identity.ID{base + 2, base + 1, base}, a.revoked)
	require.Equal(t, [][2]uint64{{uint64(base), 3}}, a.released)
}
