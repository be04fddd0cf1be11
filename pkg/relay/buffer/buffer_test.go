package buffer

import (
	"sync"
	"sync/atomic"
	"testing"

	"mercator-hq/ganymede/pkg/relay"
	"mercator-hq/ganymede/pkg/relay/codec"
)

// countingNotifier records every flush request without coalescing.
type countingNotifier struct {
	count atomic.Int64
}

func (n *countingNotifier) PayloadFull() {
	n.count.Add(1)
}

// TestAccumulator_WatermarkFires tests that exactly one flush request fires
// per watermark's worth of accesses and that firing resets the counter.
func TestAccumulator_WatermarkFires(t *testing.T) {
	const watermark = 10
	notifier := &countingNotifier{}
	acc := New(&Config{Watermark: watermark, Notifier: notifier})

	touch := func(n int) {
		for i := 0; i < n; i++ {
			acc.WithPayload(func(*relay.Payload) {})
		}
	}

	touch(watermark - 1)
	if got := notifier.count.Load(); got != 0 {
		t.Fatalf("signal fired after %d accesses, got %d requests", watermark-1, got)
	}

	touch(1)
	if got := notifier.count.Load(); got != 1 {
		t.Fatalf("expected exactly one request at the watermark, got %d", got)
	}

	// The counter reset on firing, so the next window is full-length again.
	touch(watermark - 1)
	if got := notifier.count.Load(); got != 1 {
		t.Fatalf("counter did not reset: got %d requests", got)
	}
	touch(1)
	if got := notifier.count.Load(); got != 2 {
		t.Fatalf("expected a second request after another %d accesses, got %d", watermark, got)
	}
}

// TestAccumulator_WatermarkConcurrent tests the overflow monitor under
// concurrent producers. The reset races with concurrent increments by
// design, which may swallow a few accesses; that biases toward fewer,
// never more, signals.
func TestAccumulator_WatermarkConcurrent(t *testing.T) {
	const (
		watermark  = 100
		goroutines = 8
		perG       = 1000
	)
	notifier := &countingNotifier{}
	acc := New(&Config{Watermark: watermark, Notifier: notifier})

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				acc.AddCounter(relay.MetricID(1), 1)
			}
		}()
	}
	wg.Wait()

	// The pre-reset check means several producers can observe the same
	// crossing, so allow one extra fire per producer on top of the ideal
	// one-per-window count.
	total := int64(goroutines * perG)
	max := total/watermark + goroutines
	got := notifier.count.Load()
	if got < 1 || got > max {
		t.Errorf("got %d flush requests for %d accesses, want within [1, %d]", got, total, max)
	}

	// All updates survive regardless of signal timing.
	acc.WithPayload(func(p *relay.Payload) {
		if p.Counters[1] != int32(total) {
			t.Errorf("accumulated %d, want %d", p.Counters[1], total)
		}
	})
}

// TestAccumulator_NotifierOutsideLock tests that the flush request is
// raised without holding the payload lock, so a notifier that touches the
// accumulator again does not deadlock.
func TestAccumulator_NotifierOutsideLock(t *testing.T) {
	var acc *Accumulator
	reentrant := notifierFunc(func() {
		// Touching the payload from inside the notifier must not deadlock.
		acc.WithPayload(func(*relay.Payload) {})
	})
	acc = New(&Config{Watermark: 1, Notifier: reentrant})

	done := make(chan struct{})
	go func() {
		acc.WithPayload(func(*relay.Payload) {})
		close(done)
	}()
	<-done
}

type notifierFunc func()

func (f notifierFunc) PayloadFull() { f() }

// TestAccumulator_TakeBuf tests that harvesting encodes the pending batch
// and empties it atomically.
func TestAccumulator_TakeBuf(t *testing.T) {
	acc := New(nil)
	acc.AddCounter(42, 3)
	acc.SetBoolean(7, true)

	buf, err := acc.TakeBuf()
	if err != nil {
		t.Fatalf("TakeBuf failed: %v", err)
	}

	decoded, err := codec.Decode(buf)
	if err != nil {
		t.Fatalf("harvested buffer failed to decode: %v", err)
	}
	if decoded.Counters[42] != 3 {
		t.Errorf("decoded counter = %d, want 3", decoded.Counters[42])
	}
	if !decoded.Booleans[7] {
		t.Error("decoded boolean missing")
	}

	acc.WithPayload(func(p *relay.Payload) {
		if !p.IsEmpty() {
			t.Error("payload must be empty after harvest")
		}
	})
}

// TestAccumulator_TakeBufEmpty tests that harvesting an empty batch yields
// a decodable empty-batch encoding.
func TestAccumulator_TakeBufEmpty(t *testing.T) {
	acc := New(nil)

	buf, err := acc.TakeBuf()
	if err != nil {
		t.Fatalf("TakeBuf failed: %v", err)
	}

	decoded, err := codec.Decode(buf)
	if err != nil {
		t.Fatalf("empty harvest failed to decode: %v", err)
	}
	if !decoded.IsEmpty() {
		t.Error("empty harvest must decode to an empty payload")
	}
}

// TestAccumulator_NoLossAroundHarvest tests that updates racing a harvest
// land in exactly one batch: either the harvested one or the next.
func TestAccumulator_NoLossAroundHarvest(t *testing.T) {
	const producers = 4
	const perG = 500

	acc := New(nil)

	var wg sync.WaitGroup
	for g := 0; g < producers; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				acc.AddCounter(1, 1)
			}
		}()
	}

	var harvested int32
	for i := 0; i < 20; i++ {
		buf, err := acc.TakeBuf()
		if err != nil {
			t.Fatalf("TakeBuf failed: %v", err)
		}
		decoded, err := codec.Decode(buf)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		harvested += decoded.Counters[1]
	}
	wg.Wait()

	// Final harvest picks up whatever the racing flushes missed.
	buf, err := acc.TakeBuf()
	if err != nil {
		t.Fatalf("final TakeBuf failed: %v", err)
	}
	decoded, err := codec.Decode(buf)
	if err != nil {
		t.Fatalf("final Decode failed: %v", err)
	}
	harvested += decoded.Counters[1]

	if want := int32(producers * perG); harvested != want {
		t.Errorf("harvested %d updates in total, want %d", harvested, want)
	}
}
