package bank

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/membank/membank/pkg/device"
	"github.com/membank/membank/pkg/identity"
	"github.com/membank/membank/pkg/memstore"
	"github.com/stretchr/testify/require"
)

func TestBankOpen(t *testing.T) {
	b := testNewBank(t)

	require.NoError(t, b.Start(2, 16))
	defer b.Stop()

	base := b.DumpInfo().Base

	// identities outside the published block are not dispatched
	_, err := b.Open(base + 2)
	require.ErrorIs(t, err, ErrDeviceNotFound)

	s, err := b.Open(base)
	require.NoError(t, err)

	// busy rejection travels up from the device
	_, err = b.Open(base)
	require.ErrorIs(t, err, device.ErrBusy)

	// other devices are not affected
	s1, err := b.Open(base + 1)
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s1.Close())
}

func TestBankScenario(t *testing.T) {
	b := testNewBank(t)

	require.NoError(t, b.Start(4, 16))
	defer b.Stop()

	id := b.DumpInfo().Base + 2

	s, err := b.Open(id)
	require.NoError(t, err)

	// fill ten bytes from position zero
	n, err := s.Write([]byte("0123456789"))
	require.NoError(t, err)
	require.Equal(t, 10, n)

	// seek back to the start and read them
	_, err = s.Seek(0, io.SeekStart)
	require.NoError(t, err)

	buf := make([]byte, 10)

	_, err = io.ReadFull(s, buf)
	require.NoError(t, err)
	require.Equal(t, []byte("0123456789"), buf)

	// at the end of the device reads drain and writes are rejected
	_, err = s.Seek(0, io.SeekEnd)
	require.NoError(t, err)

	_, err = s.Read(buf)
	require.ErrorIs(t, err, io.EOF)

	_, err = s.Write([]byte{1})
	require.ErrorIs(t, err, memstore.ErrNoSpace)

	// release and reopen: the device comes up fresh
	require.NoError(t, s.Close())

	s, err = b.Open(id)
	require.NoError(t, err)

	require.Zero(t, s.Position())

	_, err = io.ReadFull(s, buf)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 10), buf)

	require.NoError(t, s.Close())
}

func TestBankDeviceIndependence(t *testing.T) {
	b := testNewBank(t)

	const devices = 4

	require.NoError(t, b.Start(devices, 1024))
	defer b.Stop()

	base := b.DumpInfo().Base

	errCh := make(chan error, devices)

	var wg sync.WaitGroup

	for i := 0; i < devices; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			errCh <- deviceRoundTrips(b, base+identity.ID(i), byte(i+1))
		}(i)
	}

	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	for _, d := range b.DumpInfo().Devices {
		require.Zero(t, d.Sessions)
	}
}

// deviceRoundTrips repeatedly opens the device, fills it with the
// given byte and verifies the content back.
func deviceRoundTrips(b *Bank, id identity.ID, fill byte) error {
	for round := 0; round < 16; round++ {
		s, err := b.Open(id)
		if err != nil {
			return err
		}

		payload := bytes.Repeat([]byte{fill}, 512)

		if _, err = s.Write(payload); err == nil {
			_, err = s.Seek(0, io.SeekStart)
		}

		buf := make([]byte, 512)

		if err == nil {
			_, err = io.ReadFull(s, buf)
		}

		if err != nil {
			_ = s.Close()
			return err
		}

		if !bytes.Equal(payload, buf) {
			_ = s.Close()
			return fmt.Errorf("device %s: corrupted payload", id)
		}

		if err := s.Close(); err != nil {
			return err
		}
	}

	return nil
}
