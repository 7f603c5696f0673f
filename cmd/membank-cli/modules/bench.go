package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/membank/membank/pkg/bank"
	"github.com/membank/membank/pkg/device"
	"github.com/membank/membank/pkg/identity"
	"github.com/olekukonko/tablewriter"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/atomic"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Stress a bank of memory devices with concurrent sessions",
	Long: `Bench starts an in-process bank and hammers every device with
concurrent write/rewind/read session rounds from a shared worker pool,
then prints a per-device report. Under the default exclusive policy
concurrent rounds targeting the same device are rejected as busy and
counted separately.`,
	RunE: benchRun,
}

var benchFlags struct {
	devices  int
	capacity int64
	workers  int
	rounds   int
	payload  int
	shared   bool
}

func bindBenchFlags(fs *pflag.FlagSet) {
	fs.IntVar(&benchFlags.devices, "devices", 4, "number of devices to start")
	fs.Int64Var(&benchFlags.capacity, "capacity", device.DefaultCapacity, "per-device capacity in bytes")
	fs.IntVar(&benchFlags.workers, "workers", 8, "size of the session worker pool")
	fs.IntVar(&benchFlags.rounds, "rounds", 64, "session rounds per device")
	fs.IntVar(&benchFlags.payload, "payload", 512, "payload size per round in bytes")
	fs.BoolVar(&benchFlags.shared, "shared", false, "admit concurrent sessions to the same device")
}

func init() {
	rootCmd.AddCommand(benchCmd)

	bindBenchFlags(benchCmd.Flags())
}

type benchCounters struct {
	rounds  atomic.Uint64
	written atomic.Uint64
	read    atomic.Uint64
	busy    atomic.Uint64
	faults  atomic.Uint64
}

func benchRun(cmd *cobra.Command, _ []string) error {
	if benchFlags.payload <= 0 {
		return fmt.Errorf("invalid payload size %d", benchFlags.payload)
	}

	policy := device.OpenExclusive
	if benchFlags.shared {
		policy = device.OpenShared
	}

	b := bank.New(bank.WithOpenPolicy(policy))

	if err := b.Start(benchFlags.devices, benchFlags.capacity); err != nil {
		return fmt.Errorf("could not start bank: %w", err)
	}

	defer b.Stop()

	pool, err := ants.NewPool(benchFlags.workers)
	if err != nil {
		return fmt.Errorf("could not create worker pool: %w", err)
	}

	defer pool.Release()

	base := b.DumpInfo().Base
	counters := make([]benchCounters, benchFlags.devices)

	var wg sync.WaitGroup

	started := time.Now()

	for i := 0; i < benchFlags.devices; i++ {
		for j := 0; j < benchFlags.rounds; j++ {
			i := i

			wg.Add(1)

			err := pool.Submit(func() {
				defer wg.Done()

				benchRound(b, base+identity.ID(i), &counters[i])
			})
			if err != nil {
				wg.Done()

				return fmt.Errorf("could not submit session round: %w", err)
			}
		}
	}

	wg.Wait()

	printBenchReport(cmd, time.Since(started), counters)

	return nil
}

func benchRound(b *bank.Bank, id identity.ID, acc *benchCounters) {
	s, err := b.Open(id)
	if err != nil {
		if errors.Is(err, device.ErrBusy) {
			acc.busy.Inc()
		} else {
			acc.faults.Inc()
		}

		return
	}

	defer s.Close()

	payload := bytes.Repeat([]byte{0xB5}, benchFlags.payload)

	n, err := s.Write(payload)
	if err != nil {
		acc.faults.Inc()
		return
	}

	acc.written.Add(uint64(n))

	if _, err := s.Seek(0, io.SeekStart); err != nil {
		acc.faults.Inc()
		return
	}

	n, err = s.Read(payload)
	if err != nil {
		acc.faults.Inc()
		return
	}

	acc.read.Add(uint64(n))
	acc.rounds.Inc()
}

func printBenchReport(cmd *cobra.Command, took time.Duration, counters []benchCounters) {
	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.SetHeader([]string{"Device", "Rounds", "Written", "Read", "Busy", "Faults"})
	out.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i := range counters {
		out.Append([]string{
			strconv.Itoa(i),
			strconv.FormatUint(counters[i].rounds.Load(), 10),
			strconv.FormatUint(counters[i].written.Load(), 10),
			strconv.FormatUint(counters[i].read.Load(), 10),
			strconv.FormatUint(counters[i].busy.Load(), 10),
			strconv.FormatUint(counters[i].faults.Load(), 10),
		})
	}

	out.Render()

	cmd.Printf("Total time: %s\n", took)
}
