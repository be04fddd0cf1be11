package main

import (
	"mercator-hq/ganymede/pkg/relay"
	"mercator-hq/ganymede/pkg/relay/store"
)

// Demo metric set shared by emit and ingest. In a real deployment the
// static identifiers are assigned at build time by the metric definitions;
// here a handful are fixed by hand so the two subcommands agree.
const (
	idPageLoads      relay.MetricID = 1 // counter
	idCleanShutdown  relay.MetricID = 2 // boolean
	idRequestsByHost relay.MetricID = 3 // labeled counter
	idFrameTimes     relay.MetricID = 4 // timing distribution
	idSessionEvents  relay.MetricID = 5 // event
	idSearchEngines  relay.MetricID = 6 // string list
	idCacheHitRate   relay.MetricID = 7 // rate
	idHeapSamples    relay.MetricID = 8 // memory distribution
)

// idAddonPings is a runtime-registered counter, as an add-on would create.
var idAddonPings = relay.NewDynamicID(1)

// demoStores builds the receiving side: a compiled-in store and a dynamic
// registry populated with in-memory metrics for the demo identifiers.
func demoStores() (*store.MapStore, *store.Registry) {
	static := store.NewMapStore()
	static.Counters[idPageLoads] = &store.MemoryCounter{}
	static.Booleans[idCleanShutdown] = &store.MemoryBoolean{}
	static.LabeledCounters[idRequestsByHost] = store.NewMemoryLabeledCounter()
	static.TimingDistributions[idFrameTimes] = &store.MemorySampleSeries{}
	static.Events[idSessionEvents] = &store.MemoryEvent{}
	static.StringLists[idSearchEngines] = &store.MemoryStringList{}
	static.Rates[idCacheHitRate] = &store.MemoryRate{}
	static.MemoryDistributions[idHeapSamples] = &store.MemorySampleSeries{}

	dynamic := store.NewRegistry()
	dynamic.RegisterCounter(idAddonPings, &store.MemoryCounter{})

	return static, dynamic
}
