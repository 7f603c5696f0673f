package device

import (
	"io"
	"testing"

	"github.com/membank/membank/pkg/memstore"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testNewDevice(t *testing.T, opts ...Option) *Device {
	d, err := New(append([]Option{
		WithIndex(0),
		WithCapacity(16),
		WithLogger(zaptest.NewLogger(t)),
	}, opts...)...)
	require.NoError(t, err)

	return d
}

func TestNew(t *testing.T) {
	// capacity bounds are enforced by the store
	_, err := New(WithCapacity(0))
	require.ErrorIs(t, err, memstore.ErrInvalidCapacity)

	d := testNewDevice(t)
	require.Equal(t, int64(16), d.Capacity())
	require.Zero(t, d.Index())
	require.Zero(t, d.Sessions())
}

func TestOpenExclusive(t *testing.T) {
	d := testNewDevice(t)

	s, err := d.Open()
	require.NoError(t, err)
	require.Equal(t, 1, d.Sessions())

	// second open is rejected while the session is live
	_, err = d.Open()
	require.ErrorIs(t, err, ErrBusy)

	// written content does not survive the session
	_, err = s.Write([]byte{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.Zero(t, d.Sessions())

	s2, err := d.Open()
	require.NoError(t, err)

	// reopened device starts with a zero cursor and zeroed content
	require.Zero(t, s2.Position())

	buf := make([]byte, 3)

	_, err = io.ReadFull(s2, buf)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 3), buf)

	require.NoError(t, s2.Close())
}

func TestOpenShared(t *testing.T) {
	d := testNewDevice(t, WithOpenPolicy(OpenShared))

	s1, err := d.Open()
	require.NoError(t, err)

	s2, err := d.Open()
	require.NoError(t, err)
	require.Equal(t, 2, d.Sessions())

	// sessions share the content but keep private cursors
	_, err = s1.Write([]byte("data"))
	require.NoError(t, err)
	require.EqualValues(t, 4, s1.Position())
	require.Zero(t, s2.Position())

	buf := make([]byte, 4)

	_, err = s2.Read(buf)
	require.NoError(t, err)
	require.Equal(t, []byte("data"), buf)

	require.NoError(t, s1.Close())

	// content survives releases under the shared policy
	s3, err := d.Open()
	require.NoError(t, err)

	_, err = s3.Read(buf)
	require.NoError(t, err)
	require.Equal(t, []byte("data"), buf)

	require.NoError(t, s2.Close())
	require.NoError(t, s3.Close())
	require.Zero(t, d.Sessions())
}

func TestOpenPolicyString(t *testing.T) {
	require.Equal(t, "EXCLUSIVE", OpenExclusive.String())
	require.Equal(t, "SHARED", OpenShared.String())
	require.Equal(t, "UNDEFINED", OpenPolicy(42).String())
}
