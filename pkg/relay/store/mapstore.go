package store

import (
	"mercator-hq/ganymede/pkg/relay"
)

// MapStore is the compiled-in metric store: one lookup table per metric
// shape, keyed by statically assigned identifiers. The tables are populated
// once at composition time and must not be mutated afterwards; lookups are
// then safe from any number of concurrent threads without locking.
type MapStore struct {
	Booleans                   map[relay.MetricID]Boolean
	LabeledBooleans            map[relay.MetricID]LabeledBoolean
	Counters                   map[relay.MetricID]Counter
	CustomDistributions        map[relay.MetricID]CustomDistribution
	LabeledCustomDistributions map[relay.MetricID]LabeledCustomDistribution
	Denominators               map[relay.MetricID]Counter
	Events                     map[relay.MetricID]Event
	LabeledCounters            map[relay.MetricID]LabeledCounter
	DualLabeledCounters        map[relay.MetricID]DualLabeledCounter
	MemoryDistributions        map[relay.MetricID]MemoryDistribution
	LabeledMemoryDistributions map[relay.MetricID]LabeledMemoryDistribution
	Numerators                 map[relay.MetricID]Numerator
	Rates                      map[relay.MetricID]Rate
	StringLists                map[relay.MetricID]StringList
	TimingDistributions        map[relay.MetricID]TimingDistribution
	LabeledTimingDistributions map[relay.MetricID]LabeledTimingDistribution
}

// NewMapStore returns a MapStore with every table allocated.
func NewMapStore() *MapStore {
	return &MapStore{
		Booleans:                   make(map[relay.MetricID]Boolean),
		LabeledBooleans:            make(map[relay.MetricID]LabeledBoolean),
		Counters:                   make(map[relay.MetricID]Counter),
		CustomDistributions:        make(map[relay.MetricID]CustomDistribution),
		LabeledCustomDistributions: make(map[relay.MetricID]LabeledCustomDistribution),
		Denominators:               make(map[relay.MetricID]Counter),
		Events:                     make(map[relay.MetricID]Event),
		LabeledCounters:            make(map[relay.MetricID]LabeledCounter),
		DualLabeledCounters:        make(map[relay.MetricID]DualLabeledCounter),
		MemoryDistributions:        make(map[relay.MetricID]MemoryDistribution),
		LabeledMemoryDistributions: make(map[relay.MetricID]LabeledMemoryDistribution),
		Numerators:                 make(map[relay.MetricID]Numerator),
		Rates:                      make(map[relay.MetricID]Rate),
		StringLists:                make(map[relay.MetricID]StringList),
		TimingDistributions:        make(map[relay.MetricID]TimingDistribution),
		LabeledTimingDistributions: make(map[relay.MetricID]LabeledTimingDistribution),
	}
}

// fromTable is a nil-map-safe lookup shared by every MapStore accessor.
func fromTable[M any](table map[relay.MetricID]M, id relay.MetricID) (M, bool) {
	m, ok := table[id]
	return m, ok
}

// Boolean implements Store.
func (s *MapStore) Boolean(id relay.MetricID) (Boolean, bool) {
	return fromTable(s.Booleans, id)
}

// LabeledBoolean implements Store.
func (s *MapStore) LabeledBoolean(id relay.MetricID) (LabeledBoolean, bool) {
	return fromTable(s.LabeledBooleans, id)
}

// Counter implements Store.
func (s *MapStore) Counter(id relay.MetricID) (Counter, bool) {
	return fromTable(s.Counters, id)
}

// CustomDistribution implements Store.
func (s *MapStore) CustomDistribution(id relay.MetricID) (CustomDistribution, bool) {
	return fromTable(s.CustomDistributions, id)
}

// LabeledCustomDistribution implements Store.
func (s *MapStore) LabeledCustomDistribution(id relay.MetricID) (LabeledCustomDistribution, bool) {
	return fromTable(s.LabeledCustomDistributions, id)
}

// Denominator implements Store.
func (s *MapStore) Denominator(id relay.MetricID) (Counter, bool) {
	return fromTable(s.Denominators, id)
}

// Event implements Store.
func (s *MapStore) Event(id relay.MetricID) (Event, bool) {
	return fromTable(s.Events, id)
}

// LabeledCounter implements Store.
func (s *MapStore) LabeledCounter(id relay.MetricID) (LabeledCounter, bool) {
	return fromTable(s.LabeledCounters, id)
}

// DualLabeledCounter implements Store.
func (s *MapStore) DualLabeledCounter(id relay.MetricID) (DualLabeledCounter, bool) {
	return fromTable(s.DualLabeledCounters, id)
}

// MemoryDistribution implements Store.
func (s *MapStore) MemoryDistribution(id relay.MetricID) (MemoryDistribution, bool) {
	return fromTable(s.MemoryDistributions, id)
}

// LabeledMemoryDistribution implements Store.
func (s *MapStore) LabeledMemoryDistribution(id relay.MetricID) (LabeledMemoryDistribution, bool) {
	return fromTable(s.LabeledMemoryDistributions, id)
}

// Numerator implements Store.
func (s *MapStore) Numerator(id relay.MetricID) (Numerator, bool) {
	return fromTable(s.Numerators, id)
}

// Rate implements Store.
func (s *MapStore) Rate(id relay.MetricID) (Rate, bool) {
	return fromTable(s.Rates, id)
}

// StringList implements Store.
func (s *MapStore) StringList(id relay.MetricID) (StringList, bool) {
	return fromTable(s.StringLists, id)
}

// TimingDistribution implements Store.
func (s *MapStore) TimingDistribution(id relay.MetricID) (TimingDistribution, bool) {
	return fromTable(s.TimingDistributions, id)
}

// LabeledTimingDistribution implements Store.
func (s *MapStore) LabeledTimingDistribution(id relay.MetricID) (LabeledTimingDistribution, bool) {
	return fromTable(s.LabeledTimingDistributions, id)
}
