package store

import (
	"sync"

	"mercator-hq/ganymede/pkg/relay"
)

// MemoryBoolean is an in-memory boolean metric. It keeps the last value set
// and the full sequence of Set calls for inspection.
type MemoryBoolean struct {
	mu    sync.Mutex
	Value bool
	Sets  []bool
}

// Set implements Boolean.
func (m *MemoryBoolean) Set(value bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Value = value
	m.Sets = append(m.Sets, value)
}

// MemoryCounter is an in-memory counter metric. It keeps the running total
// and the individual deltas applied.
type MemoryCounter struct {
	mu    sync.Mutex
	Total int32
	Adds  []int32
}

// Add implements Counter.
func (m *MemoryCounter) Add(amount int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Total += amount
	m.Adds = append(m.Adds, amount)
}

// MemoryRate is an in-memory rate metric.
type MemoryRate struct {
	mu          sync.Mutex
	Numerator   int32
	Denominator int32
}

// AddToNumerator implements Rate.
func (m *MemoryRate) AddToNumerator(amount int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Numerator += amount
}

// AddToDenominator implements Rate.
func (m *MemoryRate) AddToDenominator(amount int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Denominator += amount
}

// MemorySampleSeries is an in-memory unsigned sample series. One type covers
// both the memory and timing distribution shapes, which differ only in the
// name of their accumulation operation.
type MemorySampleSeries struct {
	mu      sync.Mutex
	Samples []uint64
}

// AccumulateSamples implements MemoryDistribution.
func (m *MemorySampleSeries) AccumulateSamples(samples []uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Samples = append(m.Samples, samples...)
}

// AccumulateRawSamplesNanos implements TimingDistribution.
func (m *MemorySampleSeries) AccumulateRawSamplesNanos(samples []uint64) {
	m.AccumulateSamples(samples)
}

// MemorySignedSampleSeries is an in-memory signed sample series implementing
// the custom distribution shape.
type MemorySignedSampleSeries struct {
	mu      sync.Mutex
	Samples []int64
}

// AccumulateSamples implements CustomDistribution.
func (m *MemorySignedSampleSeries) AccumulateSamples(samples []int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Samples = append(m.Samples, samples...)
}

// MemoryStringList is an in-memory string list metric.
type MemoryStringList struct {
	mu     sync.Mutex
	Values []string
}

// Add implements StringList.
func (m *MemoryStringList) Add(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Values = append(m.Values, value)
}

// MemoryEvent is an in-memory event metric. Records are kept in the order
// they were applied.
type MemoryEvent struct {
	mu      sync.Mutex
	Records []relay.EventRecord
}

// RecordWithTime implements Event.
func (m *MemoryEvent) RecordWithTime(timestamp uint64, extra map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = append(m.Records, relay.EventRecord{Timestamp: timestamp, Extra: extra})
}

// MemoryLabeled is an in-memory labeled metric: it resolves a string label
// to its sub-metric, creating one on demand for labels never seen before.
// Unknown labels are not an error anywhere in the replay path.
type MemoryLabeled[M any] struct {
	mu      sync.Mutex
	newSub  func() M
	ByLabel map[string]M
}

// NewMemoryLabeled returns a labeled metric whose sub-metrics are created
// by newSub.
func NewMemoryLabeled[M any](newSub func() M) *MemoryLabeled[M] {
	return &MemoryLabeled[M]{
		newSub:  newSub,
		ByLabel: make(map[string]M),
	}
}

// Get resolves label to its sub-metric, creating it if needed.
func (m *MemoryLabeled[M]) Get(label string) M {
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.ByLabel[label]
	if !ok {
		sub = m.newSub()
		m.ByLabel[label] = sub
	}
	return sub
}

// MemoryDualLabeled is the dual-labeled variant of MemoryLabeled, keyed by
// a key/category pair.
type MemoryDualLabeled[M any] struct {
	mu     sync.Mutex
	newSub func() M
	ByPair map[relay.LabelPair]M
}

// NewMemoryDualLabeled returns a dual-labeled metric whose sub-metrics are
// created by newSub.
func NewMemoryDualLabeled[M any](newSub func() M) *MemoryDualLabeled[M] {
	return &MemoryDualLabeled[M]{
		newSub: newSub,
		ByPair: make(map[relay.LabelPair]M),
	}
}

// Get resolves the key/category pair to its sub-metric, creating it if
// needed.
func (m *MemoryDualLabeled[M]) Get(key, category string) M {
	m.mu.Lock()
	defer m.mu.Unlock()
	pair := relay.LabelPair{Key: key, Category: category}
	sub, ok := m.ByPair[pair]
	if !ok {
		sub = m.newSub()
		m.ByPair[pair] = sub
	}
	return sub
}

// Convenience constructors matching the interface shapes the dispatcher
// resolves labels through.

// NewMemoryLabeledBoolean returns an in-memory labeled boolean metric.
func NewMemoryLabeledBoolean() *MemoryLabeled[Boolean] {
	return NewMemoryLabeled(func() Boolean { return &MemoryBoolean{} })
}

// NewMemoryLabeledCounter returns an in-memory labeled counter metric.
func NewMemoryLabeledCounter() *MemoryLabeled[Counter] {
	return NewMemoryLabeled(func() Counter { return &MemoryCounter{} })
}

// NewMemoryDualLabeledCounter returns an in-memory dual-labeled counter metric.
func NewMemoryDualLabeledCounter() *MemoryDualLabeled[Counter] {
	return NewMemoryDualLabeled(func() Counter { return &MemoryCounter{} })
}

// NewMemoryLabeledCustomDistribution returns an in-memory labeled custom distribution metric.
func NewMemoryLabeledCustomDistribution() *MemoryLabeled[CustomDistribution] {
	return NewMemoryLabeled(func() CustomDistribution { return &MemorySignedSampleSeries{} })
}

// NewMemoryLabeledMemoryDistribution returns an in-memory labeled memory distribution metric.
func NewMemoryLabeledMemoryDistribution() *MemoryLabeled[MemoryDistribution] {
	return NewMemoryLabeled(func() MemoryDistribution { return &MemorySampleSeries{} })
}

// NewMemoryLabeledTimingDistribution returns an in-memory labeled timing distribution metric.
func NewMemoryLabeledTimingDistribution() *MemoryLabeled[TimingDistribution] {
	return NewMemoryLabeled(func() TimingDistribution { return &MemorySampleSeries{} })
}
