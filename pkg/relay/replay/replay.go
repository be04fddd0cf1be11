// Package replay applies a harvested payload to the primary process's
// metric stores: decode the blob, then route every update to the
// compiled-in store or the dynamic registry according to its identifier's
// tag.
//
// Decoding is all-or-nothing: a structurally invalid blob yields a
// codec.DecodeError and nothing is applied. Dispatch after a successful
// decode is best-effort per entry: updates whose identifier is absent from
// the targeted store are silently dropped, so a newer producer and an older
// consumer (or vice versa) interoperate without hard failures.
package replay

import (
	"log/slog"

	"mercator-hq/ganymede/pkg/relay"
	"mercator-hq/ganymede/pkg/relay/codec"
	"mercator-hq/ganymede/pkg/relay/store"
	"mercator-hq/ganymede/pkg/telemetry"
)

// Dispatcher routes decoded updates to metric stores.
type Dispatcher struct {
	static  store.Store
	dynamic store.Store
	logger  *slog.Logger
	metrics *telemetry.RelayMetrics
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMetrics attaches relay operation counters to the dispatcher.
func WithMetrics(m *telemetry.RelayMetrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// New creates a dispatcher over the compiled-in store and the dynamic
// registry. Either store may be nil, in which case every update targeting
// it is skipped.
func New(static, dynamic store.Store, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		static:  static,
		dynamic: dynamic,
		logger:  slog.Default().With("component", "relay.replay"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ReplayFromBuf decodes buf and applies every update it contains. The only
// hard error is a decode failure, returned as a *codec.DecodeError with
// nothing applied; per-entry failures are dropped and counted, never
// propagated. Replaying the encoding of an empty payload applies nothing
// and succeeds.
func (d *Dispatcher) ReplayFromBuf(buf []byte) error {
	p, err := codec.Decode(buf)
	if err != nil {
		d.metrics.DecodeFailed()
		d.logger.Error("payload rejected", "error", err)
		return err
	}
	d.Apply(p)
	return nil
}

// Apply dispatches every update in an already-decoded payload. Containers
// are processed independently; within the event container, records for one
// identifier are applied in their recorded order, which matters because
// event timestamps are monotonic per metric.
func (d *Dispatcher) Apply(p *relay.Payload) {
	dispatch(d, "booleans", p.Booleans, store.Store.Boolean,
		func(m store.Boolean, value bool) {
			m.Set(value)
		})
	dispatch(d, "labeled_booleans", p.LabeledBooleans, store.Store.LabeledBoolean,
		func(m store.LabeledBoolean, labels map[string]bool) {
			for label, value := range labels {
				m.Get(label).Set(value)
			}
		})
	dispatch(d, "counters", p.Counters, store.Store.Counter,
		func(m store.Counter, amount int32) {
			m.Add(amount)
		})
	dispatch(d, "custom_samples", p.CustomSamples, store.Store.CustomDistribution,
		func(m store.CustomDistribution, samples []int64) {
			m.AccumulateSamples(samples)
		})
	dispatch(d, "labeled_custom_samples", p.LabeledCustomSamples, store.Store.LabeledCustomDistribution,
		func(m store.LabeledCustomDistribution, labels map[string][]int64) {
			for label, samples := range labels {
				m.Get(label).AccumulateSamples(samples)
			}
		})
	dispatch(d, "denominators", p.Denominators, store.Store.Denominator,
		func(m store.Counter, amount int32) {
			m.Add(amount)
		})
	dispatch(d, "events", p.Events, store.Store.Event,
		func(m store.Event, records []relay.EventRecord) {
			for _, record := range records {
				m.RecordWithTime(record.Timestamp, record.Extra)
			}
		})
	dispatch(d, "labeled_counters", p.LabeledCounters, store.Store.LabeledCounter,
		func(m store.LabeledCounter, labels map[string]int32) {
			for label, amount := range labels {
				m.Get(label).Add(amount)
			}
		})
	dispatch(d, "dual_labeled_counters", p.DualLabeledCounters, store.Store.DualLabeledCounter,
		func(m store.DualLabeledCounter, pairs map[relay.LabelPair]int32) {
			for pair, amount := range pairs {
				m.Get(pair.Key, pair.Category).Add(amount)
			}
		})
	dispatch(d, "memory_samples", p.MemorySamples, store.Store.MemoryDistribution,
		func(m store.MemoryDistribution, samples []uint64) {
			m.AccumulateSamples(samples)
		})
	dispatch(d, "labeled_memory_samples", p.LabeledMemorySamples, store.Store.LabeledMemoryDistribution,
		func(m store.LabeledMemoryDistribution, labels map[string][]uint64) {
			for label, samples := range labels {
				m.Get(label).AccumulateSamples(samples)
			}
		})
	dispatch(d, "numerators", p.Numerators, store.Store.Numerator,
		func(m store.Numerator, amount int32) {
			m.AddToNumerator(amount)
		})
	dispatch(d, "rates", p.Rates, store.Store.Rate,
		func(m store.Rate, delta relay.RateDelta) {
			m.AddToNumerator(delta.Numerator)
			m.AddToDenominator(delta.Denominator)
		})
	dispatch(d, "string_lists", p.StringLists, store.Store.StringList,
		func(m store.StringList, values []string) {
			for _, value := range values {
				m.Add(value)
			}
		})
	dispatch(d, "timing_samples", p.TimingSamples, store.Store.TimingDistribution,
		func(m store.TimingDistribution, samples []uint64) {
			m.AccumulateRawSamplesNanos(samples)
		})
	dispatch(d, "labeled_timing_samples", p.LabeledTimingSamples, store.Store.LabeledTimingDistribution,
		func(m store.LabeledTimingDistribution, labels map[string][]uint64) {
			for label, samples := range labels {
				m.Get(label).AccumulateRawSamplesNanos(samples)
			}
		})
}

// dispatch routes one container's entries. The identifier's tag selects the
// store: dynamic-tagged identifiers resolve through the registry (shared
// read lock inside), all others through the compiled-in store. Identifiers
// the selected store does not know are skipped without touching any other
// store's state.
func dispatch[M, V any](
	d *Dispatcher,
	container string,
	entries map[relay.MetricID]V,
	lookup func(store.Store, relay.MetricID) (M, bool),
	apply func(M, V),
) {
	for id, value := range entries {
		src := d.static
		if id.IsDynamic() {
			src = d.dynamic
		}
		if src == nil {
			d.metrics.UpdateSkipped(container)
			continue
		}
		m, ok := lookup(src, id)
		if !ok {
			d.metrics.UpdateSkipped(container)
			d.logger.Debug("unknown metric identifier skipped",
				"container", container,
				"id", uint32(id),
				"dynamic", id.IsDynamic(),
			)
			continue
		}
		apply(m, value)
		d.metrics.UpdateReplayed(container)
	}
}
