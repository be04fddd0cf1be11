package buffer

import (
	"mercator-hq/ganymede/pkg/relay"
)

// Typed accumulation helpers, one per metric shape. They keep the merge
// policy in a single place: counter-family updates merge per identifier
// (and per label) within the pending batch, while samples, string values,
// and events append in recording order.

// SetBoolean records the latest value for a boolean metric.
func (a *Accumulator) SetBoolean(id relay.MetricID, value bool) {
	a.WithPayload(func(p *relay.Payload) {
		p.Booleans[id] = value
	})
}

// SetLabeledBoolean records the latest value for one label of a labeled
// boolean metric.
func (a *Accumulator) SetLabeledBoolean(id relay.MetricID, label string, value bool) {
	a.WithPayload(func(p *relay.Payload) {
		labels, ok := p.LabeledBooleans[id]
		if !ok {
			labels = make(map[string]bool)
			p.LabeledBooleans[id] = labels
		}
		labels[label] = value
	})
}

// AddCounter merges a delta into a counter metric.
func (a *Accumulator) AddCounter(id relay.MetricID, amount int32) {
	a.WithPayload(func(p *relay.Payload) {
		p.Counters[id] += amount
	})
}

// AddLabeledCounter merges a delta into one label of a labeled counter
// metric.
func (a *Accumulator) AddLabeledCounter(id relay.MetricID, label string, amount int32) {
	a.WithPayload(func(p *relay.Payload) {
		labels, ok := p.LabeledCounters[id]
		if !ok {
			labels = make(map[string]int32)
			p.LabeledCounters[id] = labels
		}
		labels[label] += amount
	})
}

// AddDualLabeledCounter merges a delta into one key/category pair of a
// dual-labeled counter metric.
func (a *Accumulator) AddDualLabeledCounter(id relay.MetricID, key, category string, amount int32) {
	a.WithPayload(func(p *relay.Payload) {
		pairs, ok := p.DualLabeledCounters[id]
		if !ok {
			pairs = make(map[relay.LabelPair]int32)
			p.DualLabeledCounters[id] = pairs
		}
		pairs[relay.LabelPair{Key: key, Category: category}] += amount
	})
}

// AddDenominator merges a delta into a rate metric's denominator.
func (a *Accumulator) AddDenominator(id relay.MetricID, amount int32) {
	a.WithPayload(func(p *relay.Payload) {
		p.Denominators[id] += amount
	})
}

// AddNumerator merges a delta into a rate metric's numerator.
func (a *Accumulator) AddNumerator(id relay.MetricID, amount int32) {
	a.WithPayload(func(p *relay.Payload) {
		p.Numerators[id] += amount
	})
}

// AddRate merges a paired numerator/denominator delta into a rate metric.
func (a *Accumulator) AddRate(id relay.MetricID, numerator, denominator int32) {
	a.WithPayload(func(p *relay.Payload) {
		delta := p.Rates[id]
		delta.Numerator += numerator
		delta.Denominator += denominator
		p.Rates[id] = delta
	})
}

// AccumulateCustomSamples appends raw signed samples for a custom
// distribution metric.
func (a *Accumulator) AccumulateCustomSamples(id relay.MetricID, samples []int64) {
	a.WithPayload(func(p *relay.Payload) {
		p.CustomSamples[id] = append(p.CustomSamples[id], samples...)
	})
}

// AccumulateLabeledCustomSamples appends raw signed samples for one label
// of a labeled custom distribution metric.
func (a *Accumulator) AccumulateLabeledCustomSamples(id relay.MetricID, label string, samples []int64) {
	a.WithPayload(func(p *relay.Payload) {
		labels, ok := p.LabeledCustomSamples[id]
		if !ok {
			labels = make(map[string][]int64)
			p.LabeledCustomSamples[id] = labels
		}
		labels[label] = append(labels[label], samples...)
	})
}

// AccumulateMemorySamples appends raw byte-size samples for a memory
// distribution metric.
func (a *Accumulator) AccumulateMemorySamples(id relay.MetricID, samples []uint64) {
	a.WithPayload(func(p *relay.Payload) {
		p.MemorySamples[id] = append(p.MemorySamples[id], samples...)
	})
}

// AccumulateLabeledMemorySamples appends raw byte-size samples for one
// label of a labeled memory distribution metric.
func (a *Accumulator) AccumulateLabeledMemorySamples(id relay.MetricID, label string, samples []uint64) {
	a.WithPayload(func(p *relay.Payload) {
		labels, ok := p.LabeledMemorySamples[id]
		if !ok {
			labels = make(map[string][]uint64)
			p.LabeledMemorySamples[id] = labels
		}
		labels[label] = append(labels[label], samples...)
	})
}

// AccumulateTimingSamples appends raw nanosecond samples for a timing
// distribution metric.
func (a *Accumulator) AccumulateTimingSamples(id relay.MetricID, samples []uint64) {
	a.WithPayload(func(p *relay.Payload) {
		p.TimingSamples[id] = append(p.TimingSamples[id], samples...)
	})
}

// AccumulateLabeledTimingSamples appends raw nanosecond samples for one
// label of a labeled timing distribution metric.
func (a *Accumulator) AccumulateLabeledTimingSamples(id relay.MetricID, label string, samples []uint64) {
	a.WithPayload(func(p *relay.Payload) {
		labels, ok := p.LabeledTimingSamples[id]
		if !ok {
			labels = make(map[string][]uint64)
			p.LabeledTimingSamples[id] = labels
		}
		labels[label] = append(labels[label], samples...)
	})
}

// AddToStringList appends a value to a string list metric.
func (a *Accumulator) AddToStringList(id relay.MetricID, value string) {
	a.WithPayload(func(p *relay.Payload) {
		p.StringLists[id] = append(p.StringLists[id], value)
	})
}

// RecordEventWithTime appends an event occurrence with an explicit
// timestamp. Event timestamps are monotonic per metric; records are
// replayed in exactly this order.
func (a *Accumulator) RecordEventWithTime(id relay.MetricID, timestamp uint64, extra map[string]string) {
	a.WithPayload(func(p *relay.Payload) {
		p.Events[id] = append(p.Events[id], relay.EventRecord{
			Timestamp: timestamp,
			Extra:     extra,
		})
	})
}
