package buffer

import (
	"reflect"
	"testing"

	"mercator-hq/ganymede/pkg/relay"
)

// TestAccumulator_CounterMerging tests that counter-family updates merge
// per identifier within the pending batch.
func TestAccumulator_CounterMerging(t *testing.T) {
	acc := New(nil)

	acc.AddCounter(42, 3)
	acc.AddCounter(42, 3)
	acc.AddCounter(43, 1)
	acc.AddDenominator(1, 2)
	acc.AddDenominator(1, 5)
	acc.AddNumerator(2, 4)
	acc.AddRate(3, 1, 2)
	acc.AddRate(3, 10, 20)

	acc.WithPayload(func(p *relay.Payload) {
		if len(p.Counters) != 2 {
			t.Errorf("expected 2 merged counter entries, got %d", len(p.Counters))
		}
		if p.Counters[42] != 6 {
			t.Errorf("counter 42 = %d, want merged 6", p.Counters[42])
		}
		if p.Denominators[1] != 7 {
			t.Errorf("denominator = %d, want merged 7", p.Denominators[1])
		}
		if p.Numerators[2] != 4 {
			t.Errorf("numerator = %d, want 4", p.Numerators[2])
		}
		if got := p.Rates[3]; got != (relay.RateDelta{Numerator: 11, Denominator: 22}) {
			t.Errorf("rate = %+v, want merged 11/22", got)
		}
	})
}

// TestAccumulator_LabeledMerging tests per-label merging for labeled and
// dual-labeled counters.
func TestAccumulator_LabeledMerging(t *testing.T) {
	acc := New(nil)

	acc.AddLabeledCounter(1, "a", 2)
	acc.AddLabeledCounter(1, "a", 3)
	acc.AddLabeledCounter(1, "b", 1)
	acc.AddDualLabeledCounter(2, "dns", "timeout", 1)
	acc.AddDualLabeledCounter(2, "dns", "timeout", 1)
	acc.AddDualLabeledCounter(2, "dns", "refused", 1)

	acc.WithPayload(func(p *relay.Payload) {
		want := map[string]int32{"a": 5, "b": 1}
		if !reflect.DeepEqual(p.LabeledCounters[1], want) {
			t.Errorf("labeled counters = %v, want %v", p.LabeledCounters[1], want)
		}

		pairs := p.DualLabeledCounters[2]
		if pairs[relay.LabelPair{Key: "dns", Category: "timeout"}] != 2 {
			t.Errorf("dual labeled timeout = %d, want merged 2", pairs[relay.LabelPair{Key: "dns", Category: "timeout"}])
		}
		if pairs[relay.LabelPair{Key: "dns", Category: "refused"}] != 1 {
			t.Errorf("dual labeled refused = %d, want 1", pairs[relay.LabelPair{Key: "dns", Category: "refused"}])
		}
	})
}

// TestAccumulator_BooleanLastWins tests that repeated boolean sets keep the
// latest value rather than accumulating.
func TestAccumulator_BooleanLastWins(t *testing.T) {
	acc := New(nil)

	acc.SetBoolean(1, true)
	acc.SetBoolean(1, false)
	acc.SetLabeledBoolean(2, "x", false)
	acc.SetLabeledBoolean(2, "x", true)

	acc.WithPayload(func(p *relay.Payload) {
		if p.Booleans[1] != false {
			t.Error("boolean must hold the latest value")
		}
		if p.LabeledBooleans[2]["x"] != true {
			t.Error("labeled boolean must hold the latest value")
		}
	})
}

// TestAccumulator_SequencesAppendInOrder tests that samples, string values
// and events append in recording order.
func TestAccumulator_SequencesAppendInOrder(t *testing.T) {
	acc := New(nil)

	acc.AccumulateCustomSamples(1, []int64{1, 2})
	acc.AccumulateCustomSamples(1, []int64{3})
	acc.AccumulateLabeledCustomSamples(2, "l", []int64{-1})
	acc.AccumulateMemorySamples(3, []uint64{10})
	acc.AccumulateLabeledMemorySamples(4, "heap", []uint64{20, 30})
	acc.AccumulateTimingSamples(5, []uint64{100})
	acc.AccumulateLabeledTimingSamples(6, "paint", []uint64{200})
	acc.AddToStringList(7, "first")
	acc.AddToStringList(7, "second")
	acc.RecordEventWithTime(8, 1000, map[string]string{"k": "v"})
	acc.RecordEventWithTime(8, 2000, nil)

	acc.WithPayload(func(p *relay.Payload) {
		if !reflect.DeepEqual(p.CustomSamples[1], []int64{1, 2, 3}) {
			t.Errorf("custom samples = %v, want appended in order", p.CustomSamples[1])
		}
		if !reflect.DeepEqual(p.LabeledMemorySamples[4]["heap"], []uint64{20, 30}) {
			t.Errorf("labeled memory samples = %v", p.LabeledMemorySamples[4]["heap"])
		}
		if !reflect.DeepEqual(p.StringLists[7], []string{"first", "second"}) {
			t.Errorf("string list = %v, want insertion order", p.StringLists[7])
		}

		events := p.Events[8]
		if len(events) != 2 || events[0].Timestamp != 1000 || events[1].Timestamp != 2000 {
			t.Errorf("events = %v, want two records in recorded order", events)
		}
		if events[0].Extra["k"] != "v" {
			t.Error("event extras not preserved")
		}
	})
}
