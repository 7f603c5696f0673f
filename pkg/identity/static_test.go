package identity

import (
	"math"
	"testing"

	"github.com/membank/membank/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

func testNewStatic(t *testing.T, opts ...Option) *Static {
	return NewStatic(append([]Option{
		WithLogger(zaptest.NewLogger(t)),
	}, opts...)...)
}

func TestIDString(t *testing.T) {
	require.Equal(t, "membank0", ID(0).String())
	require.Equal(t, "membank17", ID(17).String())
}

func TestStaticAllocate(t *testing.T) {
	a := testNewStatic(t, WithBase(10))

	// blocks are contiguous and do not overlap
	b1, err := a.Allocate(4)
	require.NoError(t, err)
	require.Equal(t, ID(10), b1)

	b2, err := a.Allocate(2)
	require.NoError(t, err)
	require.Equal(t, ID(14), b2)

	// invalid block size
	_, err = a.Allocate(0)
	require.Error(t, err)

	// identity space is recycled when every block is released
	a.Release(b1, 4)
	a.Release(b2, 2)

	b3, err := a.Allocate(1)
	require.NoError(t, err)
	require.Equal(t, ID(10), b3)
}

func TestStaticExhausted(t *testing.T) {
	a := testNewStatic(t, WithBase(math.MaxUint64-1))

	_, err := a.Allocate(4)
	require.ErrorIs(t, err, ErrExhausted)

	// a block still fitting the space is granted
	b, err := a.Allocate(1)
	require.NoError(t, err)
	require.Equal(t, ID(math.MaxUint64-1), b)
}

func TestStaticPublishRevoke(t *testing.T) {
	a := testNewStatic(t)

	base, err := a.Allocate(2)
	require.NoError(t, err)
	require.Equal(t, ID(0), base)

	require.NoError(t, a.Publish(base))
	require.NoError(t, a.Publish(base+1))

	// double publish is rejected
	require.Error(t, a.Publish(base))

	// identities outside granted blocks are rejected
	require.Error(t, a.Publish(base+2))

	// revoke of an unpublished identity is ignored
	a.Revoke(base + 2)

	a.Revoke(base)
	a.Revoke(base + 1)

	// revoked identity may be published again
	require.NoError(t, a.Publish(base))

	a.Revoke(base)
	a.Release(base, 2)

	// releasing an unknown block is ignored
	a.Release(base, 2)
}

func TestStaticIgnoredCallsAreLogged(t *testing.T) {
	l, lb := testutil.NewBufferedLogger(t, zap.WarnLevel)

	a := NewStatic(WithLogger(l))

	base, err := a.Allocate(2)
	require.NoError(t, err)

	a.Revoke(base)
	lb.AssertContainsMessage(zapcore.WarnLevel, "revoking unpublished identity")

	a.Release(base, 5)
	lb.AssertContainsMessage(zapcore.WarnLevel, "releasing unknown identity block")
}
