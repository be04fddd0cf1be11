// Package buffer provides the payload accumulator: the process-wide pending
// batch of metric updates, its single mutex, and the cooperative overflow
// monitor that requests an out-of-band flush before the batch can outgrow
// the transport's maximum message size.
package buffer

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"mercator-hq/ganymede/pkg/relay"
	"mercator-hq/ganymede/pkg/relay/codec"
)

// Notifier receives the "payload nearly full" signal raised when the access
// watermark is crossed. The signal is best-effort: it is raised outside the
// payload lock, must not block, and may coalesce to once per burst. The
// receiver decides when and on which thread to actually harvest.
type Notifier interface {
	PayloadFull()
}

// NoopNotifier discards flush requests. It is the notifier for standalone
// configurations where no collaborator exists to drain the buffer.
type NoopNotifier struct{}

// PayloadFull implements Notifier.
func (NoopNotifier) PayloadFull() {}

// Config contains configuration for the accumulator.
type Config struct {
	// Watermark is the number of payload accesses between flush requests.
	// It must stay conservatively below the transport ceiling divided by
	// the worst-case update cost (relay.WorstCaseUpdateBytes), so that even
	// Watermark consecutive maximal updates cannot exceed the ceiling
	// before the requested flush completes.
	// Default: relay.DefaultAccessWatermark
	Watermark uint64

	// Notifier receives flush requests. Default: NoopNotifier.
	Notifier Notifier
}

// DefaultConfig returns the default accumulator configuration.
func DefaultConfig() *Config {
	return &Config{
		Watermark: relay.DefaultAccessWatermark,
		Notifier:  NoopNotifier{},
	}
}

// Accumulator owns the pending payload for one process. It is created once,
// lazily or at startup, and lives for the process's duration; the payload
// inside is emptied in place on every harvest, never replaced.
//
// The mutex is the only lock a producer ever holds, and it is held only for
// the duration of one accumulation or one harvest — never across the
// notifier or any other external call. The access counter is maintained
// with lock-free atomics, so the watermark check never blocks a concurrent
// accumulation.
type Accumulator struct {
	mu        sync.Mutex
	payload   *relay.Payload
	accesses  atomic.Uint64
	watermark uint64
	notifier  Notifier
	logger    *slog.Logger
}

// New creates an accumulator. A nil config selects DefaultConfig.
func New(config *Config) *Accumulator {
	if config == nil {
		config = DefaultConfig()
	}
	watermark := config.Watermark
	if watermark == 0 {
		watermark = relay.DefaultAccessWatermark
	}
	notifier := config.Notifier
	if notifier == nil {
		notifier = NoopNotifier{}
	}

	return &Accumulator{
		payload:   relay.NewPayload(),
		watermark: watermark,
		notifier:  notifier,
		logger:    slog.Default().With("component", "relay.buffer"),
	}
}

// WithPayload acquires exclusive access to the pending payload and invokes
// f with it. Before taking the lock it counts the access and, when the
// post-increment count reaches the watermark, resets the counter and raises
// the flush request. The counter is reset before the flush actually runs;
// the resulting overcount can only make batches smaller, never larger.
func (a *Accumulator) WithPayload(f func(*relay.Payload)) {
	if a.accesses.Add(1) >= a.watermark {
		a.accesses.Store(0)
		a.notifier.PayloadFull()
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	f(a.payload)
}

// TakeBuf harvests the pending payload: it encodes the current contents and
// empties the payload in place, atomically with respect to every other
// accessor. No update can land between the encode and the reset because
// harvesting holds the same lock as accumulation.
//
// On an encode failure the payload is left untouched and the error is
// returned; no updates are lost.
func (a *Accumulator) TakeBuf() ([]byte, error) {
	var buf []byte
	var err error
	var pending int

	a.WithPayload(func(p *relay.Payload) {
		pending = p.Len()
		buf, err = codec.Encode(p)
		if err != nil {
			return
		}
		p.Reset()
	})
	if err != nil {
		a.logger.Error("payload harvest failed", "error", err)
		return nil, err
	}

	a.logger.Debug("payload harvested",
		"pending_ids", pending,
		"encoded_bytes", len(buf),
	)
	return buf, nil
}
