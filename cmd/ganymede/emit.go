package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/relay/buffer"
	"mercator-hq/ganymede/pkg/relay/process"
)

var emitFlags struct {
	output string
}

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Accumulate a sample workload and write the encoded payload",
	Long: `Emit plays the non-primary-process side of the relay: it accumulates a
representative mix of metric updates (counters, booleans, labels, samples,
events), harvests the payload, and writes the encoded blob to the output
file. Feed the file to 'ganymede ingest' to replay it.`,
	RunE: runEmit,
}

func init() {
	emitCmd.Flags().StringVarP(&emitFlags.output, "output", "o", "batch.bin", "output file for the encoded payload")
	rootCmd.AddCommand(emitCmd)
}

func runEmit(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if cfgFile != "" {
		loaded, err := config.LoadConfigWithEnvOverrides(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if logLevel == "" {
		logLevel = cfg.Log.Level
	}
	setupLogging(logLevel)

	// A single-process demo has no child role; force the shipping path the
	// way a test harness would.
	restore := process.TestSetNeedIPC(true)
	defer restore()

	if !process.NeedIPC() {
		return fmt.Errorf("process role does not require cross-process shipping")
	}

	acc := buffer.New(&buffer.Config{
		Watermark: cfg.Transport.AccessWatermark(),
		Notifier:  buffer.NoopNotifier{},
	})

	accumulateWorkload(acc)

	buf, err := acc.TakeBuf()
	if err != nil {
		return fmt.Errorf("harvest failed: %w", err)
	}

	if err := os.WriteFile(emitFlags.output, buf, 0o644); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	slog.Info("payload written",
		"batch_id", uuid.NewString(),
		"output", emitFlags.output,
		"bytes", len(buf),
	)
	return nil
}

// accumulateWorkload records a representative mix of updates, including
// duplicate counter deltas that merge in the pending batch and an unknown
// identifier the receiving side will drop.
func accumulateWorkload(acc *buffer.Accumulator) {
	acc.AddCounter(idPageLoads, 3)
	acc.AddCounter(idPageLoads, 3)
	acc.SetBoolean(idCleanShutdown, true)

	acc.AddLabeledCounter(idRequestsByHost, "example.com", 12)
	acc.AddLabeledCounter(idRequestsByHost, "mozilla.org", 7)

	acc.AccumulateTimingSamples(idFrameTimes, []uint64{16_600_000, 16_800_000, 33_400_000})
	acc.AccumulateMemorySamples(idHeapSamples, []uint64{64 << 20, 96 << 20})

	acc.RecordEventWithTime(idSessionEvents, 1000, map[string]string{"action": "open"})
	acc.RecordEventWithTime(idSessionEvents, 2000, map[string]string{"action": "close", "reason": "user"})

	acc.AddToStringList(idSearchEngines, "ddg")
	acc.AddToStringList(idSearchEngines, "wikipedia")

	acc.AddRate(idCacheHitRate, 42, 50)

	// Dynamic metric, registered at runtime on the receiving side.
	acc.AddCounter(idAddonPings, 1)

	// Identifier known to no store; replay drops it silently.
	acc.AddCounter(999, 5)
}
