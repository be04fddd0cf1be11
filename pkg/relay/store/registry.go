package store

import (
	"sync"

	"mercator-hq/ganymede/pkg/relay"
)

// Registry is the runtime-registered metric store. Registration takes the
// write lock; lookups take the read lock, so any number of replaying
// threads may resolve identifiers concurrently, serialized only against
// registration of new metrics.
//
// Identifiers registered here must carry the dynamic tag
// (relay.NewDynamicID); the replay dispatcher never consults the registry
// for static identifiers.
type Registry struct {
	mu     sync.RWMutex
	tables *MapStore
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: NewMapStore()}
}

// register inserts m into table under the write lock.
func register[M any](r *Registry, table func(*MapStore) map[relay.MetricID]M, id relay.MetricID, m M) {
	r.mu.Lock()
	defer r.mu.Unlock()
	table(r.tables)[id] = m
}

// lookup resolves id in table under the read lock.
func lookup[M any](r *Registry, table func(*MapStore) map[relay.MetricID]M, id relay.MetricID) (M, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := table(r.tables)[id]
	return m, ok
}

// RegisterBoolean registers a boolean metric under id.
func (r *Registry) RegisterBoolean(id relay.MetricID, m Boolean) {
	register(r, func(t *MapStore) map[relay.MetricID]Boolean { return t.Booleans }, id, m)
}

// RegisterLabeledBoolean registers a labeled boolean metric under id.
func (r *Registry) RegisterLabeledBoolean(id relay.MetricID, m LabeledBoolean) {
	register(r, func(t *MapStore) map[relay.MetricID]LabeledBoolean { return t.LabeledBooleans }, id, m)
}

// RegisterCounter registers a counter metric under id.
func (r *Registry) RegisterCounter(id relay.MetricID, m Counter) {
	register(r, func(t *MapStore) map[relay.MetricID]Counter { return t.Counters }, id, m)
}

// RegisterCustomDistribution registers a custom distribution metric under id.
func (r *Registry) RegisterCustomDistribution(id relay.MetricID, m CustomDistribution) {
	register(r, func(t *MapStore) map[relay.MetricID]CustomDistribution { return t.CustomDistributions }, id, m)
}

// RegisterLabeledCustomDistribution registers a labeled custom distribution metric under id.
func (r *Registry) RegisterLabeledCustomDistribution(id relay.MetricID, m LabeledCustomDistribution) {
	register(r, func(t *MapStore) map[relay.MetricID]LabeledCustomDistribution { return t.LabeledCustomDistributions }, id, m)
}

// RegisterDenominator registers a denominator metric under id.
func (r *Registry) RegisterDenominator(id relay.MetricID, m Counter) {
	register(r, func(t *MapStore) map[relay.MetricID]Counter { return t.Denominators }, id, m)
}

// RegisterEvent registers an event metric under id.
func (r *Registry) RegisterEvent(id relay.MetricID, m Event) {
	register(r, func(t *MapStore) map[relay.MetricID]Event { return t.Events }, id, m)
}

// RegisterLabeledCounter registers a labeled counter metric under id.
func (r *Registry) RegisterLabeledCounter(id relay.MetricID, m LabeledCounter) {
	register(r, func(t *MapStore) map[relay.MetricID]LabeledCounter { return t.LabeledCounters }, id, m)
}

// RegisterDualLabeledCounter registers a dual-labeled counter metric under id.
func (r *Registry) RegisterDualLabeledCounter(id relay.MetricID, m DualLabeledCounter) {
	register(r, func(t *MapStore) map[relay.MetricID]DualLabeledCounter { return t.DualLabeledCounters }, id, m)
}

// RegisterMemoryDistribution registers a memory distribution metric under id.
func (r *Registry) RegisterMemoryDistribution(id relay.MetricID, m MemoryDistribution) {
	register(r, func(t *MapStore) map[relay.MetricID]MemoryDistribution { return t.MemoryDistributions }, id, m)
}

// RegisterLabeledMemoryDistribution registers a labeled memory distribution metric under id.
func (r *Registry) RegisterLabeledMemoryDistribution(id relay.MetricID, m LabeledMemoryDistribution) {
	register(r, func(t *MapStore) map[relay.MetricID]LabeledMemoryDistribution { return t.LabeledMemoryDistributions }, id, m)
}

// RegisterNumerator registers a numerator metric under id.
func (r *Registry) RegisterNumerator(id relay.MetricID, m Numerator) {
	register(r, func(t *MapStore) map[relay.MetricID]Numerator { return t.Numerators }, id, m)
}

// RegisterRate registers a rate metric under id.
func (r *Registry) RegisterRate(id relay.MetricID, m Rate) {
	register(r, func(t *MapStore) map[relay.MetricID]Rate { return t.Rates }, id, m)
}

// RegisterStringList registers a string list metric under id.
func (r *Registry) RegisterStringList(id relay.MetricID, m StringList) {
	register(r, func(t *MapStore) map[relay.MetricID]StringList { return t.StringLists }, id, m)
}

// RegisterTimingDistribution registers a timing distribution metric under id.
func (r *Registry) RegisterTimingDistribution(id relay.MetricID, m TimingDistribution) {
	register(r, func(t *MapStore) map[relay.MetricID]TimingDistribution { return t.TimingDistributions }, id, m)
}

// RegisterLabeledTimingDistribution registers a labeled timing distribution metric under id.
func (r *Registry) RegisterLabeledTimingDistribution(id relay.MetricID, m LabeledTimingDistribution) {
	register(r, func(t *MapStore) map[relay.MetricID]LabeledTimingDistribution { return t.LabeledTimingDistributions }, id, m)
}

// Boolean implements Store.
func (r *Registry) Boolean(id relay.MetricID) (Boolean, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]Boolean { return t.Booleans }, id)
}

// LabeledBoolean implements Store.
func (r *Registry) LabeledBoolean(id relay.MetricID) (LabeledBoolean, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]LabeledBoolean { return t.LabeledBooleans }, id)
}

// Counter implements Store.
func (r *Registry) Counter(id relay.MetricID) (Counter, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]Counter { return t.Counters }, id)
}

// CustomDistribution implements Store.
func (r *Registry) CustomDistribution(id relay.MetricID) (CustomDistribution, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]CustomDistribution { return t.CustomDistributions }, id)
}

// LabeledCustomDistribution implements Store.
func (r *Registry) LabeledCustomDistribution(id relay.MetricID) (LabeledCustomDistribution, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]LabeledCustomDistribution { return t.LabeledCustomDistributions }, id)
}

// Denominator implements Store.
func (r *Registry) Denominator(id relay.MetricID) (Counter, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]Counter { return t.Denominators }, id)
}

// Event implements Store.
func (r *Registry) Event(id relay.MetricID) (Event, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]Event { return t.Events }, id)
}

// LabeledCounter implements Store.
func (r *Registry) LabeledCounter(id relay.MetricID) (LabeledCounter, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]LabeledCounter { return t.LabeledCounters }, id)
}

// DualLabeledCounter implements Store.
func (r *Registry) DualLabeledCounter(id relay.MetricID) (DualLabeledCounter, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]DualLabeledCounter { return t.DualLabeledCounters }, id)
}

// MemoryDistribution implements Store.
func (r *Registry) MemoryDistribution(id relay.MetricID) (MemoryDistribution, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]MemoryDistribution { return t.MemoryDistributions }, id)
}

// LabeledMemoryDistribution implements Store.
func (r *Registry) LabeledMemoryDistribution(id relay.MetricID) (LabeledMemoryDistribution, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]LabeledMemoryDistribution { return t.LabeledMemoryDistributions }, id)
}

// Numerator implements Store.
func (r *Registry) Numerator(id relay.MetricID) (Numerator, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]Numerator { return t.Numerators }, id)
}

// Rate implements Store.
func (r *Registry) Rate(id relay.MetricID) (Rate, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]Rate { return t.Rates }, id)
}

// StringList implements Store.
func (r *Registry) StringList(id relay.MetricID) (StringList, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]StringList { return t.StringLists }, id)
}

// TimingDistribution implements Store.
func (r *Registry) TimingDistribution(id relay.MetricID) (TimingDistribution, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]TimingDistribution { return t.TimingDistributions }, id)
}

// LabeledTimingDistribution implements Store.
func (r *Registry) LabeledTimingDistribution(id relay.MetricID) (LabeledTimingDistribution, bool) {
	return lookup(r, func(t *MapStore) map[relay.MetricID]LabeledTimingDistribution { return t.LabeledTimingDistributions }, id)
}
