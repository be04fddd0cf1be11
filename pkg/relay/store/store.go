package store

import (
	"mercator-hq/ganymede/pkg/relay"
)

// Boolean is a metric holding a single boolean value.
type Boolean interface {
	Set(value bool)
}

// Counter is a metric accumulating integer deltas. Denominator metrics
// share this shape: a denominator update is a plain add.
type Counter interface {
	Add(amount int32)
}

// Numerator is the numerator-only view of a rate metric.
type Numerator interface {
	AddToNumerator(amount int32)
}

// Rate is a metric accumulating paired numerator/denominator deltas.
type Rate interface {
	Numerator
	AddToDenominator(amount int32)
}

// CustomDistribution accumulates raw signed samples into a caller-defined
// bucketing.
type CustomDistribution interface {
	AccumulateSamples(samples []int64)
}

// MemoryDistribution accumulates raw byte-size samples.
type MemoryDistribution interface {
	AccumulateSamples(samples []uint64)
}

// TimingDistribution accumulates raw nanosecond samples.
type TimingDistribution interface {
	AccumulateRawSamplesNanos(samples []uint64)
}

// StringList is a metric appending string values in order.
type StringList interface {
	Add(value string)
}

// Event is a metric recording timestamped occurrences with string extras.
// Records must be applied in their original recorded order.
type Event interface {
	RecordWithTime(timestamp uint64, extra map[string]string)
}

// LabeledBoolean resolves a label to its boolean sub-metric, creating the
// sub-metric on demand for labels never seen before.
type LabeledBoolean interface {
	Get(label string) Boolean
}

// LabeledCounter resolves a label to its counter sub-metric.
type LabeledCounter interface {
	Get(label string) Counter
}

// DualLabeledCounter resolves a key/category pair to its counter sub-metric.
type DualLabeledCounter interface {
	Get(key, category string) Counter
}

// LabeledCustomDistribution resolves a label to its distribution sub-metric.
type LabeledCustomDistribution interface {
	Get(label string) CustomDistribution
}

// LabeledMemoryDistribution resolves a label to its distribution sub-metric.
type LabeledMemoryDistribution interface {
	Get(label string) MemoryDistribution
}

// LabeledTimingDistribution resolves a label to its distribution sub-metric.
type LabeledTimingDistribution interface {
	Get(label string) TimingDistribution
}

// Store is the lookup-by-identifier contract the replay dispatcher needs
// from a metric store: one lookup per metric shape, returning the handle
// and whether the identifier is known. Absent identifiers are skipped by
// the dispatcher, never treated as errors, to tolerate version skew between
// the producing and consuming processes.
type Store interface {
	Boolean(id relay.MetricID) (Boolean, bool)
	LabeledBoolean(id relay.MetricID) (LabeledBoolean, bool)
	Counter(id relay.MetricID) (Counter, bool)
	CustomDistribution(id relay.MetricID) (CustomDistribution, bool)
	LabeledCustomDistribution(id relay.MetricID) (LabeledCustomDistribution, bool)
	Denominator(id relay.MetricID) (Counter, bool)
	Event(id relay.MetricID) (Event, bool)
	LabeledCounter(id relay.MetricID) (LabeledCounter, bool)
	DualLabeledCounter(id relay.MetricID) (DualLabeledCounter, bool)
	MemoryDistribution(id relay.MetricID) (MemoryDistribution, bool)
	LabeledMemoryDistribution(id relay.MetricID) (LabeledMemoryDistribution, bool)
	Numerator(id relay.MetricID) (Numerator, bool)
	Rate(id relay.MetricID) (Rate, bool)
	StringList(id relay.MetricID) (StringList, bool)
	TimingDistribution(id relay.MetricID) (TimingDistribution, bool)
	LabeledTimingDistribution(id relay.MetricID) (LabeledTimingDistribution, bool)
}
