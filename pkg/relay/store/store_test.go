package store

import (
	"fmt"
	"sync"
	"testing"

	"mercator-hq/ganymede/pkg/relay"
)

// TestMapStore_Lookup tests lookup hits and misses against the table maps.
func TestMapStore_Lookup(t *testing.T) {
	s := NewMapStore()
	counter := &MemoryCounter{}
	s.Counters[1] = counter

	got, ok := s.Counter(1)
	if !ok {
		t.Fatal("expected counter 1 to resolve")
	}
	if got != counter {
		t.Error("lookup returned a different metric")
	}

	if _, ok := s.Counter(2); ok {
		t.Error("unregistered identifier must not resolve")
	}
	if _, ok := s.Boolean(1); ok {
		t.Error("identifier registered as a counter must not resolve as a boolean")
	}
}

// TestMapStore_NilTables tests that lookups on a zero-value store miss
// instead of panicking.
func TestMapStore_NilTables(t *testing.T) {
	var s MapStore

	if _, ok := s.Counter(1); ok {
		t.Error("zero-value store must resolve nothing")
	}
	if _, ok := s.Event(1); ok {
		t.Error("zero-value store must resolve nothing")
	}
	if _, ok := s.DualLabeledCounter(1); ok {
		t.Error("zero-value store must resolve nothing")
	}
}

// TestMapStore_DenominatorSeparateTable tests that denominators resolve
// from their own table, not the counter table, even though both hold
// Counter handles.
func TestMapStore_DenominatorSeparateTable(t *testing.T) {
	s := NewMapStore()
	s.Counters[1] = &MemoryCounter{}

	if _, ok := s.Denominator(1); ok {
		t.Error("counter registration must not satisfy a denominator lookup")
	}

	s.Denominators[1] = &MemoryCounter{}
	if _, ok := s.Denominator(1); !ok {
		t.Error("denominator registration must resolve")
	}
}

// TestRegistry_RegisterAndLookup tests the register and lookup pairs across
// a few shapes.
func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	id := relay.NewDynamicID(7)

	boolean := &MemoryBoolean{}
	r.RegisterBoolean(id, boolean)
	event := &MemoryEvent{}
	r.RegisterEvent(id, event)

	if got, ok := r.Boolean(id); !ok || got != Boolean(boolean) {
		t.Error("registered boolean must resolve to the same handle")
	}
	if got, ok := r.Event(id); !ok || got != Event(event) {
		t.Error("registered event must resolve to the same handle")
	}
	if _, ok := r.Counter(id); ok {
		t.Error("identifier not registered as a counter must miss")
	}
	if _, ok := r.Boolean(relay.NewDynamicID(8)); ok {
		t.Error("unregistered identifier must miss")
	}
}

// TestRegistry_Overwrite tests that re-registering an identifier replaces
// the previous handle.
func TestRegistry_Overwrite(t *testing.T) {
	r := NewRegistry()
	id := relay.NewDynamicID(1)

	first := &MemoryCounter{}
	second := &MemoryCounter{}
	r.RegisterCounter(id, first)
	r.RegisterCounter(id, second)

	got, ok := r.Counter(id)
	if !ok || got != Counter(second) {
		t.Error("re-registration must replace the handle")
	}
}

// TestRegistry_ConcurrentAccess tests registration racing lookups. Run with
// the race detector.
func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				id := relay.NewDynamicID(uint32(g*1000 + i))
				r.RegisterCounter(id, &MemoryCounter{})
			}
		}(g)
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				r.Counter(relay.NewDynamicID(uint32(g*1000 + i)))
			}
		}(g)
	}
	wg.Wait()

	for g := 0; g < 4; g++ {
		for i := 0; i < 200; i++ {
			if _, ok := r.Counter(relay.NewDynamicID(uint32(g*1000 + i))); !ok {
				t.Fatalf("registration lost for goroutine %d index %d", g, i)
			}
		}
	}
}

// TestMemoryLabeled_GetOrCreate tests that labels resolve to stable
// sub-metrics created on first use.
func TestMemoryLabeled_GetOrCreate(t *testing.T) {
	labeled := NewMemoryLabeledCounter()

	a := labeled.Get("a")
	a.Add(2)
	if got := labeled.Get("a"); got != a {
		t.Error("repeated Get must return the same sub-metric")
	}
	labeled.Get("a").Add(3)

	if total := a.(*MemoryCounter).Total; total != 5 {
		t.Errorf("sub-metric total = %d, want 5", total)
	}
	if len(labeled.ByLabel) != 1 {
		t.Errorf("expected one label, got %d", len(labeled.ByLabel))
	}

	labeled.Get("b").Add(1)
	if len(labeled.ByLabel) != 2 {
		t.Errorf("expected two labels, got %d", len(labeled.ByLabel))
	}
}

// TestMemoryDualLabeled_PairIdentity tests that the key/category pair is the
// identity, not either half alone.
func TestMemoryDualLabeled_PairIdentity(t *testing.T) {
	dual := NewMemoryDualLabeledCounter()

	dual.Get("dns", "timeout").Add(1)
	dual.Get("dns", "refused").Add(1)
	dual.Get("tcp", "timeout").Add(1)

	if len(dual.ByPair) != 3 {
		t.Fatalf("expected three distinct pairs, got %d", len(dual.ByPair))
	}
	dual.Get("dns", "timeout").Add(1)
	if got := dual.Get("dns", "timeout").(*MemoryCounter).Total; got != 2 {
		t.Errorf("pair total = %d, want 2", got)
	}
}

// TestMemoryLabeled_Concurrent tests concurrent get-or-create on one label.
func TestMemoryLabeled_Concurrent(t *testing.T) {
	labeled := NewMemoryLabeledCounter()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				labeled.Get(fmt.Sprintf("label-%d", i%4)).Add(1)
			}
		}(g)
	}
	wg.Wait()

	if len(labeled.ByLabel) != 4 {
		t.Fatalf("expected 4 labels, got %d", len(labeled.ByLabel))
	}
	var total int32
	for _, m := range labeled.ByLabel {
		total += m.(*MemoryCounter).Total
	}
	if total != 800 {
		t.Errorf("total across labels = %d, want 800", total)
	}
}

// TestMemorySampleSeries_BothShapes tests that one series type serves both
// accumulation operations.
func TestMemorySampleSeries_BothShapes(t *testing.T) {
	series := &MemorySampleSeries{}

	var _ MemoryDistribution = series
	var _ TimingDistribution = series

	series.AccumulateSamples([]uint64{1, 2})
	series.AccumulateRawSamplesNanos([]uint64{3})

	if len(series.Samples) != 3 {
		t.Errorf("expected 3 samples, got %d", len(series.Samples))
	}
}
