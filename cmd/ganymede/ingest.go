package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/relay/replay"
	"mercator-hq/ganymede/pkg/relay/store"
	"mercator-hq/ganymede/pkg/telemetry"
)

var ingestFlags struct {
	input string
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Replay an encoded payload into the demo stores",
	Long: `Ingest plays the primary-process side of the relay: it reads an encoded
payload produced by 'ganymede emit', replays it into the demo metric
stores, and prints the resulting store state together with the relay's own
operation counters.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestFlags.input, "input", "i", "batch.bin", "input file with the encoded payload")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
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

	buf, err := os.ReadFile(ingestFlags.input)
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	static, dynamic := demoStores()

	registry := prometheus.NewRegistry()
	metrics := telemetry.NewRelayMetrics(&cfg.Telemetry, registry)

	dispatcher := replay.New(static, dynamic, replay.WithMetrics(metrics))
	if err := dispatcher.ReplayFromBuf(buf); err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	slog.Info("payload replayed", "input", ingestFlags.input, "bytes", len(buf))

	printStores(static, dynamic)
	printCounters(registry)
	return nil
}

// printStores dumps the demo store state after replay.
func printStores(static *store.MapStore, dynamic *store.Registry) {
	fmt.Println("Static store:")
	fmt.Printf("  page_loads:       %d\n", static.Counters[idPageLoads].(*store.MemoryCounter).Total)
	fmt.Printf("  clean_shutdown:   %v\n", static.Booleans[idCleanShutdown].(*store.MemoryBoolean).Value)

	byHost := static.LabeledCounters[idRequestsByHost].(*store.MemoryLabeled[store.Counter])
	for label, sub := range byHost.ByLabel {
		fmt.Printf("  requests[%s]: %d\n", label, sub.(*store.MemoryCounter).Total)
	}

	fmt.Printf("  frame_times:      %v\n", static.TimingDistributions[idFrameTimes].(*store.MemorySampleSeries).Samples)
	fmt.Printf("  heap_samples:     %v\n", static.MemoryDistributions[idHeapSamples].(*store.MemorySampleSeries).Samples)
	fmt.Printf("  session_events:   %d records\n", len(static.Events[idSessionEvents].(*store.MemoryEvent).Records))
	fmt.Printf("  search_engines:   %v\n", static.StringLists[idSearchEngines].(*store.MemoryStringList).Values)

	rate := static.Rates[idCacheHitRate].(*store.MemoryRate)
	fmt.Printf("  cache_hit_rate:   %d/%d\n", rate.Numerator, rate.Denominator)

	fmt.Println("Dynamic registry:")
	if m, ok := dynamic.Counter(idAddonPings); ok {
		fmt.Printf("  addon_pings:      %d\n", m.(*store.MemoryCounter).Total)
	}
}

// printCounters dumps the relay's own operation counters.
func printCounters(registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		slog.Error("failed to gather relay counters", "error", err)
		return
	}

	fmt.Println("Relay counters:")
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if metric.GetCounter() == nil {
				continue
			}
			name := family.GetName()
			for _, label := range metric.GetLabel() {
				name += fmt.Sprintf("{%s=%s}", label.GetName(), label.GetValue())
			}
			fmt.Printf("  %-55s %.0f\n", name, metric.GetCounter().GetValue())
		}
	}
}
