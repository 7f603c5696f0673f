package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/membank/membank/pkg/bank"
	"github.com/membank/membank/pkg/device"
	"github.com/membank/membank/pkg/identity"
	"github.com/spf13/cobra"
)

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Run a scripted session against a fresh bank",
	Long: `Smoke starts a single-device bank, drives one session through the
write/rewind/read cycle and verifies every step. Non-zero exit code
means some step went sideways.`,
	RunE: smokeRun,
}

var smokeCapacity int64

func init() {
	rootCmd.AddCommand(smokeCmd)

	smokeCmd.Flags().Int64Var(&smokeCapacity, "capacity", device.DefaultCapacity, "device capacity in bytes")
}

func smokeRun(cmd *cobra.Command, _ []string) error {
	b := bank.New()

	if err := b.Start(1, smokeCapacity); err != nil {
		return fmt.Errorf("could not start bank: %w", err)
	}

	defer b.Stop()

	id := b.DumpInfo().Base

	s, err := b.Open(id)
	if err != nil {
		return fmt.Errorf("could not open device %s: %w", id, err)
	}

	defer s.Close()

	payload := []byte("membank smoke payload")

	if _, err := s.Write(payload); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	cmd.Printf("wrote %d bytes to %s\n", len(payload), id)

	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind failed: %w", err)
	}

	got := make([]byte, len(payload))

	if _, err := io.ReadFull(s, got); err != nil {
		return fmt.Errorf("read back failed: %w", err)
	}

	if !bytes.Equal(payload, got) {
		return fmt.Errorf("payload mismatch: wrote %q, read %q", payload, got)
	}

	cmd.Printf("read back %d bytes, payloads match\n", len(got))

	if _, err := s.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek to device end failed: %w", err)
	}

	if _, err := s.Read(got); !errors.Is(err, io.EOF) {
		return fmt.Errorf("expected EOF at device end, got: %v", err)
	}

	cmd.Println("device end reached, EOF as expected")

	if verbose {
		printBankInfo(cmd, b)
	}

	return nil
}

func printBankInfo(cmd *cobra.Command, b *bank.Bank) {
	info := b.DumpInfo()

	for i := range info.Devices {
		cmd.Printf("device %s: capacity %d, policy %s, sessions %d\n",
			info.Base+identity.ID(i),
			info.Devices[i].Capacity,
			info.Devices[i].Policy,
			info.Devices[i].Sessions,
		)
	}
}
