package bank

import (
	"errors"
	"testing"

	"github.com/membank/membank/pkg/identity"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// testAllocator records teardown calls and optionally refuses to
// publish one identity.
type testAllocator struct {
	inner *identity.Static

	fail        bool
	failPublish identity.ID

	revoked  []identity.ID
	released [][2]uint64
}

func newTestAllocator() *testAllocator {
	return &testAllocator{
		inner: identity.NewStatic(),
	}
}

func (a *testAllocator) Allocate(n int) (identity.ID, error) {
	return a.inner.Allocate(n)
}

func (a *testAllocator) Publish(id identity.ID) error {
	if a.fail && id == a.failPublish {
		return errors.New("publish refused")
	}

	return a.inner.Publish(id)
}

func (a *testAllocator) Revoke(id identity.ID) {
	a.revoked = append(a.revoked, id)
	a.inner.Revoke(id)
}

func (a *testAllocator) Release(base identity.ID, n int) {
	a.released = append(a.released, [2]uint64{uint64(base), uint64(n)})
	a.inner.Release(base, n)
}

func testNewBank(t *testing.T, opts ...Option) *Bank {
	return New(append([]Option{
		WithLogger(zaptest.NewLogger(t)),
	}, opts...)...)
}

func TestDumpInfo(t *testing.T) {
	b := testNewBank(t)

	// a stopped bank reports no devices
	require.Nil(t, b.DumpInfo().Devices)

	require.NoError(t, b.Start(3, 128))
	defer b.Stop()

	info := b.DumpInfo()
	require.Len(t, info.Devices, 3)

	for i, d := range info.Devices {
		require.Equal(t, i, d.Index)
		require.EqualValues(t, 128, d.Capacity)
		require.Zero(t, d.Sessions)
	}

	s, err := b.Open(info.Base + 1)
	require.NoError(t, err)

	require.Equal(t, 1, b.DumpInfo().Devices[1].Sessions)

	require.NoError(t, s.Close())
	require.Zero(t, b.DumpInfo().Devices[1].Sessions)
}
